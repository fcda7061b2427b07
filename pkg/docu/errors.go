package docu

import "errors"

var (
	// ErrEmptyArchive reports a zero-length input file.
	ErrEmptyArchive = errors.New("empty DOCU archive")

	// ErrNotArchive reports a non-empty buffer with no section marker anywhere.
	ErrNotArchive = errors.New("not a DOCU archive")

	// ErrCorruptArchive reports a block whose metadata or payload cannot be
	// sliced out of the buffer.
	ErrCorruptArchive = errors.New("corrupt DOCU archive")
)
