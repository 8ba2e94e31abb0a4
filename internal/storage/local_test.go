package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocal(dir, "/files/")
	if err != nil {
		t.Fatal(err)
	}

	ref, err := store.Save(context.Background(), "blueprint.PDF", strings.NewReader("content"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(ref, "/files/") || !strings.HasSuffix(ref, ".pdf") {
		t.Errorf("unexpected reference %q", ref)
	}

	stored := filepath.Join(dir, filepath.Base(ref))
	data, err := os.ReadFile(stored)
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(data) != "content" {
		t.Errorf("stored %q, want %q", data, "content")
	}

	if err := store.Delete(context.Background(), ref); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(stored); !os.IsNotExist(err) {
		t.Error("file still exists after Delete")
	}
}

func TestDeleteRejectsForeignReference(t *testing.T) {
	store, err := NewLocal(t.TempDir(), "/files")
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Delete(context.Background(), "https://elsewhere/other.pdf"); err == nil {
		t.Error("expected error for a reference outside the store")
	}
}
