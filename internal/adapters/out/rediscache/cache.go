// Package rediscache provides a Redis-backed response cache for read-side
// queries. Cached entries are opaque byte payloads, the HTTP layer decides
// what to serialize into them.
package rediscache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// Default TTLs per cached surface. Driver lists change rarely, revenue
// aggregations are heavier to compute and tolerate more staleness.
const (
	DriverListTTL = 10 * time.Minute
	RevenueTTL    = 30 * time.Minute
)

// Cache wraps a Redis client with the small surface the query layer needs.
type Cache struct {
	client *redis.Client
	prefix string
}

// NewCache creates a cache using the given Redis client. All keys are
// namespaced with the prefix so multiple services can share one instance.
func NewCache(client *redis.Client, prefix string) *Cache {
	return &Cache{
		client: client,
		prefix: prefix,
	}
}

// Get returns the cached payload for the key, or ErrCacheMiss.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	return payload, nil
}

// Set stores the payload under the key with the given TTL.
func (c *Cache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	return c.client.Set(ctx, c.prefix+key, payload, ttl).Err()
}

// Invalidate removes the given keys. Missing keys are not an error.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	prefixed := make([]string, 0, len(keys))
	for _, key := range keys {
		prefixed = append(prefixed, c.prefix+key)
	}

	return c.client.Del(ctx, prefixed...).Err()
}

// Ping verifies the Redis connection is alive.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
