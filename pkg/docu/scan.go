package docu

import "fmt"

// matchAt reports whether data carries pat byte-for-byte at off. It is safe to
// call with any offset; a remainder shorter than pat never matches.
func matchAt(data []byte, off int, pat []byte) bool {
	if off < 0 || off+len(pat) > len(data) {
		return false
	}
	for i := range pat {
		if data[off+i] != pat[i] {
			return false
		}
	}
	return true
}

// findMarker returns the offset of the leftmost occurrence of pat at or after
// from. The second result is false when no occurrence exists before the buffer
// ends.
func findMarker(data []byte, from int, pat []byte) (int, bool) {
	if from < 0 {
		from = 0
	}
	for i := from; i+len(pat) <= len(data); i++ {
		if matchAt(data, i, pat) {
			return i, true
		}
	}
	return len(data), false
}

// readField reads the printable-ASCII run starting at off. The run must be
// terminated by a non-printable byte before the buffer ends; an unterminated
// run is a corrupt archive, never an out-of-bounds read.
func readField(data []byte, off int) (string, error) {
	if off < 0 || off > len(data) {
		return "", fmt.Errorf("%w: field offset %d out of range", ErrCorruptArchive, off)
	}
	end := off
	for end < len(data) && data[end] >= 0x20 && data[end] <= 0x7E {
		end++
	}
	if end == len(data) {
		return "", fmt.Errorf("%w: unterminated field at offset %d", ErrCorruptArchive, off)
	}
	return string(data[off:end]), nil
}

// parseBlock slices one embedded file out of data. cursor is the offset of the
// block's section marker. It returns the record and the offset of the next
// block's section marker, or len(data) when the block is the last one.
func parseBlock(data []byte, cursor, index int) (Record, int, error) {
	extOff, ok := findMarker(data, cursor, ExtensionHeader)
	if !ok {
		return Record{}, 0, fmt.Errorf("%w: block %d: missing extension header", ErrCorruptArchive, index)
	}
	ext, err := readField(data, extOff+len(ExtensionHeader))
	if err != nil {
		return Record{}, 0, fmt.Errorf("block %d: extension: %w", index, err)
	}

	// The filename search resumes from the extension header match, not from
	// the block start.
	nameOff, ok := findMarker(data, extOff, FilenameHeader)
	if !ok {
		return Record{}, 0, fmt.Errorf("%w: block %d: missing filename header", ErrCorruptArchive, index)
	}
	name, err := readField(data, nameOff+len(FilenameHeader))
	if err != nil {
		return Record{}, 0, fmt.Errorf("block %d: filename: %w", index, err)
	}
	if name == "" {
		return Record{}, 0, fmt.Errorf("%w: block %d: empty filename", ErrCorruptArchive, index)
	}

	markOff, ok := findMarker(data, nameOff, ContentMarker)
	if !ok {
		return Record{}, 0, fmt.Errorf("%w: block %d: missing content marker", ErrCorruptArchive, index)
	}

	// The payload skip overlaps the marker's final byte, so the payload begins
	// payloadSkip bytes after the marker start rather than after its end. The
	// next-marker search starts on the marker's last byte for the same reason.
	begin := markOff + payloadSkip
	end, found := findMarker(data, markOff+len(ContentMarker)-1, SectionMarker)
	if !found {
		end = len(data)
	}
	if begin > end {
		return Record{}, 0, fmt.Errorf("%w: block %d: truncated payload", ErrCorruptArchive, index)
	}

	return Record{Name: name, Ext: ext, Data: data[begin:end]}, end, nil
}

// Scan walks the whole archive buffer and returns every embedded file in
// archive order. A buffer without a single section marker is not an archive;
// the scan is fatal on the first malformed block. Scan performs no I/O and
// the returned records alias data.
func Scan(data []byte) ([]Record, error) {
	if len(data) == 0 {
		return nil, ErrEmptyArchive
	}

	cursor, ok := findMarker(data, 0, SectionMarker)
	if !ok {
		return nil, ErrNotArchive
	}

	var records []Record
	for cursor < len(data) {
		rec, next, err := parseBlock(data, cursor, len(records))
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
		cursor = next
	}
	return records, nil
}
