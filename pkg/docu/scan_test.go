package docu

import (
	"bytes"
	"errors"
	"testing"
)

// buildArchive assembles an archive from records using the Writer.
func buildArchive(t *testing.T, recs ...Record) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, rec := range recs {
		if err := w.Append(rec); err != nil {
			t.Fatalf("append %s: %v", rec.Name, err)
		}
	}
	return buf.Bytes()
}

func TestScanRoundTrip(t *testing.T) {
	t.Parallel()

	want := []Record{
		{Name: "note.txt", Ext: "txt", Data: []byte("hello")},
		{Name: "logo.png", Ext: "png", Data: []byte{0x89, 'P', 'N', 'G', 0x00, 0xFF}},
		{Name: "data.json", Ext: "json", Data: []byte(`{"a":1}`)},
	}
	data := buildArchive(t, want...)

	got, err := Scan(data)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("record count: got %d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Name != want[i].Name {
			t.Fatalf("record %d name: got %q want %q", i, got[i].Name, want[i].Name)
		}
		if got[i].Ext != want[i].Ext {
			t.Fatalf("record %d ext: got %q want %q", i, got[i].Ext, want[i].Ext)
		}
		if !bytes.Equal(got[i].Data, want[i].Data) {
			t.Fatalf("record %d data: got %q want %q", i, got[i].Data, want[i].Data)
		}
	}
}

// The payload skip is applied from the content marker's last byte, so a block
// carries exactly four physical padding bytes between marker and payload.
func TestScanHandBuiltBlock(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	buf.Write(SectionMarker)
	buf.Write(ExtensionHeader)
	buf.WriteString("txt")
	buf.WriteByte(0)
	buf.Write(FilenameHeader)
	buf.WriteString("note.txt")
	buf.WriteByte(0)
	buf.Write(ContentMarker)
	buf.Write([]byte{0, 0, 0, 0})
	buf.WriteString("hello")

	recs, err := Scan(buf.Bytes())
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("record count: got %d want 1", len(recs))
	}
	if recs[0].Name != "note.txt" || recs[0].Ext != "txt" {
		t.Fatalf("metadata: got %q/%q", recs[0].Name, recs[0].Ext)
	}
	if string(recs[0].Data) != "hello" {
		t.Fatalf("payload: got %q want %q", recs[0].Data, "hello")
	}
}

func TestScanIgnoresPrelude(t *testing.T) {
	t.Parallel()

	block := buildArchive(t, Record{Name: "a.txt", Ext: "txt", Data: []byte("x")})
	data := append([]byte("leading junk bytes"), block...)

	recs, err := Scan(data)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(recs) != 1 || string(recs[0].Data) != "x" {
		t.Fatalf("unexpected records: %+v", recs)
	}
}

func TestScanContentEndsAtNextMarker(t *testing.T) {
	t.Parallel()

	data := buildArchive(t,
		Record{Name: "one.bin", Ext: "bin", Data: []byte{1, 2, 3}},
		Record{Name: "two.bin", Ext: "bin", Data: []byte{4, 5}},
	)
	recs, err := Scan(data)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	for i, rec := range recs {
		if bytes.Contains(rec.Data, SectionMarker) {
			t.Fatalf("record %d payload contains a section marker", i)
		}
	}
	if !bytes.Equal(recs[0].Data, []byte{1, 2, 3}) {
		t.Fatalf("first payload leaked into second block: %v", recs[0].Data)
	}
}

func TestScanEmptyBuffer(t *testing.T) {
	t.Parallel()

	if _, err := Scan(nil); !errors.Is(err, ErrEmptyArchive) {
		t.Fatalf("got %v, want ErrEmptyArchive", err)
	}
}

func TestScanNoSectionMarker(t *testing.T) {
	t.Parallel()

	if _, err := Scan([]byte("plain text, no markers at all")); !errors.Is(err, ErrNotArchive) {
		t.Fatalf("got %v, want ErrNotArchive", err)
	}
}

func TestScanMarkerOnly(t *testing.T) {
	t.Parallel()

	_, err := Scan(SectionMarker)
	if !errors.Is(err, ErrCorruptArchive) {
		t.Fatalf("got %v, want ErrCorruptArchive", err)
	}
}

func TestScanUnterminatedField(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	buf.Write(SectionMarker)
	buf.Write(ExtensionHeader)
	buf.WriteString("txt") // printable run reaches the buffer end

	_, err := Scan(buf.Bytes())
	if !errors.Is(err, ErrCorruptArchive) {
		t.Fatalf("got %v, want ErrCorruptArchive", err)
	}
}

func TestScanTruncatedPayload(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	buf.Write(SectionMarker)
	buf.Write(ExtensionHeader)
	buf.WriteString("bin")
	buf.WriteByte(0)
	buf.Write(FilenameHeader)
	buf.WriteString("cut.bin")
	buf.WriteByte(0)
	buf.Write(ContentMarker) // buffer ends before the payload skip

	_, err := Scan(buf.Bytes())
	if !errors.Is(err, ErrCorruptArchive) {
		t.Fatalf("got %v, want ErrCorruptArchive", err)
	}
}

func TestFindMarker(t *testing.T) {
	t.Parallel()

	data := append([]byte("xx"), SectionMarker...)
	off, ok := findMarker(data, 0, SectionMarker)
	if !ok || off != 2 {
		t.Fatalf("got (%d,%v), want (2,true)", off, ok)
	}

	// A marker flush against the buffer end is still a match.
	off, ok = findMarker(data, 2, SectionMarker)
	if !ok || off != 2 {
		t.Fatalf("flush match: got (%d,%v), want (2,true)", off, ok)
	}

	if off, ok = findMarker(data, 3, SectionMarker); ok {
		t.Fatalf("got (%d,%v), want not found", off, ok)
	}
}

func TestMatchAtShortRemainder(t *testing.T) {
	t.Parallel()

	if matchAt([]byte("**%%DOC"), 0, SectionMarker) {
		t.Fatal("matchAt matched past the buffer end")
	}
	if matchAt([]byte("**%%DOCU"), -1, SectionMarker) {
		t.Fatal("matchAt matched at a negative offset")
	}
	if !matchAt([]byte("**%%DOCU"), 0, SectionMarker) {
		t.Fatal("matchAt missed an exact match")
	}
}

func TestReadField(t *testing.T) {
	t.Parallel()

	got, err := readField([]byte("value\x00rest"), 0)
	if err != nil || got != "value" {
		t.Fatalf("got (%q,%v), want (value,nil)", got, err)
	}

	// An immediately non-printable byte yields an empty field.
	got, err = readField([]byte{0x00, 'a'}, 0)
	if err != nil || got != "" {
		t.Fatalf("got (%q,%v), want empty field", got, err)
	}

	if _, err = readField([]byte("noterminator"), 0); !errors.Is(err, ErrCorruptArchive) {
		t.Fatalf("got %v, want ErrCorruptArchive", err)
	}
}

func TestWriterRejectsBadRecords(t *testing.T) {
	t.Parallel()

	w := NewWriter(&bytes.Buffer{})
	if err := w.Append(Record{Ext: "txt", Data: []byte("x")}); err == nil {
		t.Fatal("expected error for empty name")
	}
	if err := w.Append(Record{Name: "a.txt", Data: []byte("x")}); err == nil {
		t.Fatal("expected error for empty extension")
	}
	if err := w.Append(Record{Name: "a\x01.txt", Ext: "txt"}); err == nil {
		t.Fatal("expected error for non-printable name")
	}
	rec := Record{Name: "evil.bin", Ext: "bin", Data: append([]byte("x"), SectionMarker...)}
	if err := w.Append(rec); err == nil {
		t.Fatal("expected error for payload containing a section marker")
	}
}

func TestTextualExt(t *testing.T) {
	t.Parallel()

	for _, ext := range []string{"xml", "txt", "json", "csv", "html", "TXT", "Json"} {
		if !TextualExt(ext) {
			t.Fatalf("%q should be textual", ext)
		}
	}
	for _, ext := range []string{"png", "bin", "", "txt "} {
		if TextualExt(ext) {
			t.Fatalf("%q should not be textual", ext)
		}
	}
}
