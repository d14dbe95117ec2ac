package sink

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/snappy"
)

func TestWriterAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	w, err := Open(path, false)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := w.Emit([]byte("aa\n")); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if err := w.Emit([]byte("bb\n")); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "aa\nbb\n" {
		t.Fatalf("got %q, want %q", got, "aa\nbb\n")
	}

	// Open again and confirm it appends rather than truncates.
	w2, err := Open(path, false)
	if err != nil {
		t.Fatalf("Open (append): %v", err)
	}
	if err := w2.Emit([]byte("cc\n")); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if err := w2.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	got, err = os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "aa\nbb\ncc\n" {
		t.Fatalf("got %q, want append semantics", got)
	}
}

func TestWriterCompressesWithSnappy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.snappy")

	w, err := Open(path, true)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := w.Emit([]byte("candidate\n")); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open compressed file: %v", err)
	}
	defer f.Close()

	r := snappy.NewReader(f)
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading snappy stream: %v", err)
	}
	if string(got) != "candidate\n" {
		t.Fatalf("got %q after decompression, want %q", got, "candidate\n")
	}
}
