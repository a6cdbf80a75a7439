package cache

import (
	"context"
	"time"
)

const (
	// ExpiryDefaultInMemory is the default TTL for in-memory cache entries.
	ExpiryDefaultInMemory = 30 * time.Minute
)

// Cache is a minimal get/set cache surface. Report responses are safe to
// cache: the only value that can drift inside a TTL is activated_users,
// whose staleness is accepted behavior.
type Cache interface {
	Get(ctx context.Context, key string) (interface{}, bool)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration)
	Delete(ctx context.Context, key string)
	Flush(ctx context.Context)
}
