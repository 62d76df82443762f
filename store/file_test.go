package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_Contract(t *testing.T) {
	path := "testdata/store_test.json"
	_ = os.Remove(path)
	defer os.Remove(path)

	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	runStoreContract(t, s)
}

func TestFileStore_ReplaceLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "catalog.json")
	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	if err := s.ReplaceCatalog(context.Background(), catalogOf("tee", "cap")); err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("readdir failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "catalog.json" {
		t.Fatalf("expected only catalog.json, got %v", entries)
	}
}

func TestFileStore_DeleteMissingFile(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "none.json"))
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	if err := s.DeleteCatalog(context.Background()); err != nil {
		t.Fatalf("deleting an absent catalog should succeed: %v", err)
	}
}
