package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// DueCache holds the serialized due-today query results per user for a
// short TTL. Misses and failures fall back to the database.
type DueCache struct {
	client *redis.Client
}

func NewDueCache(addr string) *DueCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &DueCache{client: rdb}
}

func (c *DueCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (c *DueCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}
