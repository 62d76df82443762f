package store

import (
	"fmt"

	"squad_catalog/domain"
)

// Options selects and locates a store backend
type Options struct {
	Kind     string // "memory", "file" or "redis"
	Path     string // file store path
	RedisURL string
	RedisKey string
}

// NewStore constructs a domain.CatalogStore by kind.
// The file store needs Path, the redis store needs RedisURL; memory ignores both.
func NewStore(opts Options) (domain.CatalogStore, error) {
	switch opts.Kind {
	case "memory", "mem":
		return NewInMemoryStore(), nil
	case "file":
		if opts.Path == "" {
			return nil, fmt.Errorf("file path required for file store")
		}
		return NewFileStore(opts.Path)
	case "redis":
		if opts.RedisURL == "" {
			return nil, fmt.Errorf("redis url required for redis store")
		}
		return NewRedisStoreFromURL(opts.RedisURL, opts.RedisKey)
	default:
		return nil, fmt.Errorf("unknown store kind: %s", opts.Kind)
	}
}
