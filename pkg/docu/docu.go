// Package docu implements the DOCU embedded-file container format.
//
// A DOCU archive is a flat byte stream holding one or more blocks. Each block
// starts at a section marker and carries an extension field, a filename field
// and a content payload, all delimited by fixed ASCII markers. The format has
// no directory, no compression and no checksums; the whole archive is scanned
// sequentially in memory.
package docu

import "strings"

// Format markers. These byte sequences are fixed and must never change.
var (
	// SectionMarker opens every embedded file block ("**%%DOCU").
	SectionMarker = []byte{0x2A, 0x2A, 0x25, 0x25, 0x44, 0x4F, 0x43, 0x55}

	// FilenameHeader precedes the filename field ("FILENAME/").
	FilenameHeader = []byte{0x46, 0x49, 0x4C, 0x45, 0x4E, 0x41, 0x4D, 0x45, 0x2F}

	// ExtensionHeader precedes the extension field ("EXT/").
	ExtensionHeader = []byte{0x45, 0x58, 0x54, 0x2F}

	// ContentMarker precedes the content payload ("_SIG/D.C.").
	ContentMarker = []byte{0x5F, 0x53, 0x49, 0x47, 0x2F, 0x44, 0x2E, 0x43, 0x2E}
)

// trashBytes is the fixed skip count applied after the content marker before
// the payload begins. The skip is applied from the marker's last byte, not from
// its end, so the payload starts len(ContentMarker)-1+trashBytes bytes past the
// marker start. Sample archives depend on this exact arithmetic.
const trashBytes = 5

// payloadSkip is the distance from a content marker start to the first payload
// byte.
const payloadSkip = len("_SIG/D.C.") - 1 + trashBytes

// padBytes is the number of physical padding bytes between the content marker
// and the payload as produced by the Writer. It accounts for the skip overlap
// with the marker's final byte.
const padBytes = payloadSkip - len("_SIG/D.C.")

// textualExts is the fixed set of extensions whose payloads are persisted as
// UTF-8 text rather than opaque bytes.
var textualExts = map[string]struct{}{
	"xml":  {},
	"txt":  {},
	"json": {},
	"csv":  {},
	"html": {},
}

// TextualExt reports whether the given extension (without dot, any case)
// denotes a textual payload.
func TextualExt(ext string) bool {
	_, ok := textualExts[strings.ToLower(ext)]
	return ok
}
