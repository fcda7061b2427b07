// Package extract turns scanned archive records into files on disk.
package extract

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/samcharles93/docuar/internal/logger"
	"github.com/samcharles93/docuar/pkg/docu"
)

// Extractor writes the embedded files of a DOCU archive under OutputDir.
// A single extraction run is sequential and fatal on the first error.
type Extractor struct {
	Log       logger.Logger
	OutputDir string
}

// Report lists what one extraction run produced, in archive order.
type Report struct {
	Dir   string
	Files []string
}

// Run opens and scans the archive at path and writes every embedded file.
// The output directory is created only after the archive validates.
func (e *Extractor) Run(path string) (*Report, error) {
	f, err := docu.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	recs, err := f.Scan()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return e.WriteRecords(recs)
}

// WriteRecords persists records under OutputDir. Textual extensions are
// written as UTF-8 text with malformed sequences replaced, matching the
// format's reference behaviour; everything else is written verbatim.
func (e *Extractor) WriteRecords(recs []docu.Record) (*Report, error) {
	if err := os.MkdirAll(e.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", e.OutputDir, err)
	}

	report := &Report{Dir: e.OutputDir}
	for _, rec := range recs {
		if !filepath.IsLocal(rec.Name) {
			return nil, fmt.Errorf("%w: unsafe entry name %q", docu.ErrCorruptArchive, rec.Name)
		}
		target := filepath.Join(e.OutputDir, rec.Name)

		data := rec.Data
		if rec.Textual() {
			data = []byte(strings.ToValidUTF8(string(rec.Data), "�"))
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", target, err)
		}
		if e.Log != nil {
			e.Log.Debug("extracted entry", "name", rec.Name, "ext", rec.Ext, "bytes", len(data))
		}
		report.Files = append(report.Files, rec.Name)
	}
	return report, nil
}

// Tree writes the extracted file listing as a flat tree rooted at the output
// directory.
func (r *Report) Tree(w io.Writer) {
	fmt.Fprintf(w, "%s/\n", r.Dir)
	for _, name := range r.Files {
		fmt.Fprintf(w, "├── %s\n", name)
	}
}
