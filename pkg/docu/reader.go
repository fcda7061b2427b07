package docu

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// File is an archive loaded into memory.
type File struct {
	Data    []byte
	mmapped bool
}

// Open maps an archive read-only and validates that it is non-empty.
// If mmap is unavailable, it falls back to ReadAt-based loading.
// The returned file must be closed to release any mapping.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}

	size64 := stat.Size()
	if size64 == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyArchive, path)
	}
	if size64 < 0 || size64 > int64(int(^uint(0)>>1)) {
		// cannot index this file safely as []byte on this architecture.
		return nil, fmt.Errorf("%w: %s", ErrNotArchive, path)
	}
	size := int(size64)

	// Prefer mmap where available for zero-copy record slices.
	data, err := unix.Mmap(
		int(f.Fd()),
		0,
		size,
		unix.PROT_READ,
		unix.MAP_SHARED,
	)
	if err == nil {
		return &File{Data: data, mmapped: true}, nil
	}

	// Fallback path that does not require mmap support.
	data, err = readAllAt(f, size)
	if err != nil {
		return nil, err
	}
	return &File{Data: data}, nil
}

// Load wraps an in-memory buffer as a File. Close is a no-op for loaded files.
func Load(data []byte) *File {
	return &File{Data: data}
}

func readAllAt(r io.ReaderAt, size int) ([]byte, error) {
	out := make([]byte, size)
	var off int64
	for off < int64(size) {
		n, err := r.ReadAt(out[off:], off)
		off += int64(n)
		if err == nil {
			continue
		}
		if err == io.EOF && off == int64(size) {
			break
		}
		return nil, err
	}
	return out, nil
}

// Close releases any mmap backing. Records scanned from the file alias its
// buffer and become invalid after Close.
func (f *File) Close() error {
	if f == nil {
		return nil
	}
	if f.Data != nil && f.mmapped {
		err := unix.Munmap(f.Data)
		f.Data = nil
		f.mmapped = false
		return err
	}
	f.Data = nil
	return nil
}

// Scan parses every block in the file. See Scan.
func (f *File) Scan() ([]Record, error) {
	return Scan(f.Data)
}
