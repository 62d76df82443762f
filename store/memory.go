// Package store provides storage implementations for the catalog document.
package store

import (
	"context"
	"sync"

	"squad_catalog/domain"
)

// InMemoryStore is a thread-safe in-memory domain.CatalogStore
type InMemoryStore struct {
	mu       sync.RWMutex
	products []domain.CatalogProduct
}

// NewInMemoryStore constructs a new InMemoryStore
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

// compile-time assertion that InMemoryStore implements domain.CatalogStore
var _ domain.CatalogStore = (*InMemoryStore)(nil)

// ReplaceCatalog swaps the whole catalog under the write lock
func (s *InMemoryStore) ReplaceCatalog(ctx context.Context, products []domain.CatalogProduct) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	next := domain.CloneCatalog(products)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = next
	return nil
}

func (s *InMemoryStore) ReadCatalog(ctx context.Context) ([]domain.CatalogProduct, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CloneCatalog(s.products), nil
}

func (s *InMemoryStore) DeleteCatalog(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = nil
	return nil
}
