package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateArchiveArg(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "sample.env")
	if err := os.WriteFile(existing, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := validateArchiveArg(existing); err != nil {
		t.Fatalf("valid archive rejected: %v", err)
	}
	if err := validateArchiveArg(""); err == nil {
		t.Fatal("missing argument accepted")
	}
	if err := validateArchiveArg(filepath.Join(dir, "sample.dat")); err == nil {
		t.Fatal("non-.env suffix accepted")
	}
	err := validateArchiveArg(filepath.Join(dir, "absent.env"))
	if err == nil {
		t.Fatal("missing file accepted")
	}
	if !strings.Contains(err.Error(), "absent.env") {
		t.Fatalf("error should name the path: %v", err)
	}
}
