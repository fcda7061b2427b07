package docu

// Record is one embedded file sliced out of an archive.
//
// Data aliases the archive buffer it was scanned from; callers that outlive
// the buffer (or its mmap) must copy it.
type Record struct {
	Name string
	Ext  string
	Data []byte
}

// Textual reports whether the record's extension is in the fixed textual set.
func (r Record) Textual() bool {
	return TextualExt(r.Ext)
}

// Size returns the payload length in bytes.
func (r Record) Size() int {
	return len(r.Data)
}
