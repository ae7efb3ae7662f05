package pdfmeta

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExtractRejectsNonPDF(t *testing.T) {
	dir := t.TempDir()

	bogus := filepath.Join(dir, "not-a.pdf")
	if err := os.WriteFile(bogus, []byte("just text, no PDF structure"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if err := Extract(bogus, filepath.Join(dir, "out")); err == nil {
		t.Fatal("Extract accepted a non-PDF input")
	}
}

func TestEmbedMissingInput(t *testing.T) {
	dir := t.TempDir()

	if err := Embed(filepath.Join(dir, "cover.pdf"), filepath.Join(dir, "missing"), filepath.Join(dir, "out.pdf")); err == nil {
		t.Fatal("Embed with missing input succeeded, want error")
	}
}
