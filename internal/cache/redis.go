// internal/cache/redis.go
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache verifies the connection and returns a cache backed by the
// given client. Entries expire after ttl.
func NewRedisCache(client *redis.Client, ttl time.Duration) (RenderCache, error) {
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &redisCache{client: client, ttl: ttl}, nil
}

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Redis get failed for %s: %v", key, err)
		}
		return nil, false
	}
	return data, true
}

func (c *redisCache) Set(ctx context.Context, key string, data []byte) {
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.Printf("Redis set failed for %s: %v", key, err)
	}
}
