package docu

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Writer builds a DOCU archive block by block.
//
// The writer emits the exact byte layout the scanner expects: section marker,
// extension header and field, filename header and field, content marker,
// physical padding and the payload. Fields are NUL-terminated, satisfying the
// printable-run grammar.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter creates a Writer targeting w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Append writes one embedded file block. Name and extension must be non-empty
// printable ASCII; the payload may be empty.
func (w *Writer) Append(rec Record) error {
	if w.err != nil {
		return w.err
	}
	if rec.Name == "" {
		return errors.New("docu: empty record name")
	}
	if err := checkField("name", rec.Name); err != nil {
		return err
	}
	if rec.Ext == "" {
		return errors.New("docu: empty record extension")
	}
	if err := checkField("extension", rec.Ext); err != nil {
		return err
	}
	if bytes.Contains(rec.Data, SectionMarker) {
		return fmt.Errorf("docu: record %s: payload contains a section marker", rec.Name)
	}

	block := make([]byte, 0, len(SectionMarker)+len(ExtensionHeader)+len(rec.Ext)+
		len(FilenameHeader)+len(rec.Name)+len(ContentMarker)+padBytes+len(rec.Data)+2)
	block = append(block, SectionMarker...)
	block = append(block, ExtensionHeader...)
	block = append(block, rec.Ext...)
	block = append(block, 0)
	block = append(block, FilenameHeader...)
	block = append(block, rec.Name...)
	block = append(block, 0)
	block = append(block, ContentMarker...)
	for range padBytes {
		block = append(block, 0)
	}
	block = append(block, rec.Data...)

	w.err = writeFull(w.w, block)
	return w.err
}

func checkField(what, v string) error {
	for i := 0; i < len(v); i++ {
		if v[i] < 0x20 || v[i] > 0x7E {
			return fmt.Errorf("docu: %s %q contains non-printable byte", what, v)
		}
	}
	return nil
}

func writeFull(w io.Writer, p []byte) error {
	for len(p) > 0 {
		n, err := w.Write(p)
		if err != nil {
			return err
		}
		p = p[n:]
	}
	return nil
}
