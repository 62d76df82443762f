package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"squad_catalog/domain"
)

// DefaultRedisKey holds the catalog document when no key is configured
const DefaultRedisKey = "catalog:products"

// RedisStore keeps the catalog as one JSON document under a single key.
// SET, GET and DEL on one key are atomic, so readers see the old or the new catalog.
type RedisStore struct {
	client *redis.Client
	key    string
}

// compile-time assertion
var _ domain.CatalogStore = (*RedisStore)(nil)

// NewRedisStore wraps an existing client
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: client, key: key}
}

// NewRedisStoreFromURL connects using a redis:// or rediss:// URL
func NewRedisStoreFromURL(rawURL, key string) (*RedisStore, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	return NewRedisStore(redis.NewClient(opts), key), nil
}

// Ping checks the connection
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Close releases the client's connections
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) ReplaceCatalog(ctx context.Context, products []domain.CatalogProduct) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if products == nil {
		products = []domain.CatalogProduct{}
	}
	data, err := json.Marshal(catalogDocument{Products: products})
	if err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis SET %s: %w", s.key, err)
	}
	return nil
}

func (s *RedisStore) ReadCatalog(ctx context.Context) ([]domain.CatalogProduct, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []domain.CatalogProduct{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis GET %s: %w", s.key, err)
	}
	var doc catalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	if doc.Products == nil {
		doc.Products = []domain.CatalogProduct{}
	}
	return doc.Products, nil
}

func (s *RedisStore) DeleteCatalog(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("redis DEL %s: %w", s.key, err)
	}
	return nil
}
