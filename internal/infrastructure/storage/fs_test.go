package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFSStore_Save(t *testing.T) {
	dir := t.TempDir()
	s := NewFSStore(dir)

	loc, err := s.Save(context.Background(), "jobs/job-1/1700000000000-cv.pdf", []byte("%PDF-1.4"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if loc != "jobs/job-1/1700000000000-cv.pdf" {
		t.Fatalf("unexpected location: %q", loc)
	}

	b, err := os.ReadFile(filepath.Join(dir, "jobs", "job-1", "1700000000000-cv.pdf"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != "%PDF-1.4" {
		t.Fatalf("content mismatch: %q", b)
	}
}

func TestFSStore_RejectsTraversal(t *testing.T) {
	s := NewFSStore(t.TempDir())

	if _, err := s.Save(context.Background(), "../outside.pdf", []byte("x")); err == nil {
		t.Fatalf("expected traversal to be rejected")
	}
	if _, err := s.Save(context.Background(), "  ", []byte("x")); err == nil {
		t.Fatalf("expected empty path to be rejected")
	}
}
