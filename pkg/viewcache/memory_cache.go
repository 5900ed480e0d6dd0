package viewcache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type memoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache returns an in-process cache. Suitable for single
// instance deployments; use the Redis cache when running more than one.
func NewMemoryCache(defaultTTL time.Duration) Cache {
	return &memoryCache{
		store: gocache.New(defaultTTL, 2*defaultTTL),
	}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	v, found := c.store.Get(key)
	if !found {
		return nil, false
	}
	data, ok := v.([]byte)
	return data, ok
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	c.store.Set(key, value, ttl)
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) {
	for _, key := range keys {
		c.store.Delete(key)
	}
}
