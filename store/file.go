package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"squad_catalog/domain"
)

// catalogDocument is the persisted shape of the whole catalog
type catalogDocument struct {
	Products []domain.CatalogProduct `json:"products"`
}

// FileStore keeps the catalog as one JSON document on disk.
// Replaces go through a temp file and a rename so readers never see a partial file.
type FileStore struct {
	mu   sync.RWMutex
	path string
}

// compile-time assertion
var _ domain.CatalogStore = (*FileStore)(nil)

// NewFileStore constructs a FileStore at the given path. An existing file must hold a valid catalog.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}
	if _, err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) load() ([]domain.CatalogProduct, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			// no catalog yet
			return []domain.CatalogProduct{}, nil
		}
		return nil, err
	}
	if len(b) == 0 {
		return []domain.CatalogProduct{}, nil
	}
	var doc catalogDocument
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("decoding catalog %s: %w", s.path, err)
	}
	if doc.Products == nil {
		doc.Products = []domain.CatalogProduct{}
	}
	return doc.Products, nil
}

func (s *FileStore) save(products []domain.CatalogProduct) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if products == nil {
		products = []domain.CatalogProduct{}
	}
	b, err := json.MarshalIndent(catalogDocument{Products: products}, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

func (s *FileStore) ReplaceCatalog(ctx context.Context, products []domain.CatalogProduct) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(products)
}

func (s *FileStore) ReadCatalog(ctx context.Context) ([]domain.CatalogProduct, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.load()
}

func (s *FileStore) DeleteCatalog(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
