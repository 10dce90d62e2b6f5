package carve

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteExtractedRoundTrip(t *testing.T) {
	dir := t.TempDir()
	data := []byte("carved payload bytes")

	ok, err := writeExtracted(dir, "JPEG_000000.jpg", data)
	if err != nil {
		t.Fatalf("writeExtracted: %v", err)
	}
	if !ok {
		t.Fatal("writeExtracted reported failure for valid input")
	}

	got, err := os.ReadFile(filepath.Join(dir, "JPEG_000000.jpg"))
	if err != nil {
		t.Fatalf("reading extracted file: %v", err)
	}
	if string(got) != string(data) {
		t.Fatalf("extracted content = %q, want %q", got, data)
	}
}

func TestWriteExtractedEmptyIsNotAnError(t *testing.T) {
	dir := t.TempDir()

	ok, err := writeExtracted(dir, "EMPTY_000000.bin", nil)
	if err != nil {
		t.Fatalf("writeExtracted: %v", err)
	}
	if ok {
		t.Fatal("writeExtracted reported success for a zero-byte candidate")
	}
	if _, err := os.Stat(filepath.Join(dir, "EMPTY_000000.bin")); !os.IsNotExist(err) {
		t.Fatal("writeExtracted must not create a file for a zero-byte candidate")
	}
}

func TestWriteExtractedBadDirectory(t *testing.T) {
	_, err := writeExtracted(filepath.Join(t.TempDir(), "does", "not", "exist"), "X.bin", []byte{0x01})
	if err == nil {
		t.Fatal("expected an error writing into a nonexistent directory")
	}
}
