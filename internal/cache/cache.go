// internal/cache/cache.go
package cache

import (
	"context"
	"fmt"
	"sync"
)

// RenderCache memoizes encoded preview PNGs. Implementations treat failures
// as misses so a broken cache never takes rendering down with it.
type RenderCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte)
}

// Key builds the cache key for one rendered preview. The studio version is
// part of the key, so any state change invalidates every slot at once.
func Key(version uint64, slug string, pixelRatio float64) string {
	return fmt.Sprintf("render:%d:%s:%g", version, slug, pixelRatio)
}

type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	order   []string
	limit   int
}

// NewMemoryCache keeps at most limit entries, evicting the oldest first.
func NewMemoryCache(limit int) RenderCache {
	return &memoryCache{
		entries: make(map[string][]byte),
		limit:   limit,
	}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.entries[key]
	return data, ok
}

func (c *memoryCache) Set(_ context.Context, key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok {
		c.order = append(c.order, key)
	}
	c.entries[key] = data

	for len(c.order) > c.limit {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
}
