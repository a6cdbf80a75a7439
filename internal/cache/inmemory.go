package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type inMemoryCache struct {
	store *gocache.Cache
}

// NewInMemoryCache creates a new in-memory cache with the default expiry.
func NewInMemoryCache() Cache {
	return &inMemoryCache{
		store: gocache.New(ExpiryDefaultInMemory, 10*time.Minute),
	}
}

func (c *inMemoryCache) Get(_ context.Context, key string) (interface{}, bool) {
	return c.store.Get(key)
}

func (c *inMemoryCache) Set(_ context.Context, key string, value interface{}, ttl time.Duration) {
	if ttl <= 0 {
		ttl = ExpiryDefaultInMemory
	}
	c.store.Set(key, value, ttl)
}

func (c *inMemoryCache) Delete(_ context.Context, key string) {
	c.store.Delete(key)
}

func (c *inMemoryCache) Flush(_ context.Context) {
	c.store.Flush()
}
