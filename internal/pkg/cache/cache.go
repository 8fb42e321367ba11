package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a thin JSON byte cache over redis. A nil Cache (redis not
// configured) is a no-op so callers never branch.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient connects to redis with short timeouts.
func NewRedisClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	})
}

func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Get returns the cached payload, or nil on miss or redis failure.
func (c *Cache) Get(ctx context.Context, key string) []byte {
	if c == nil || c.client == nil {
		return nil
	}
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}
	return payload
}

// Set stores the payload for the cache TTL. Failures are ignored: the
// cache is an optimization, never a source of truth.
func (c *Cache) Set(ctx context.Context, key string, payload []byte) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Set(ctx, key, payload, c.ttl)
}

// Healthy verifies redis connectivity.
func (c *Cache) Healthy(ctx context.Context) bool {
	if c == nil || c.client == nil {
		return false
	}
	return c.client.Ping(ctx).Err() == nil
}
