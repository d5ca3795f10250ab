package fetch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultCacheTTL is how long fetched page and stylesheet bodies are reused.
const DefaultCacheTTL = 6 * time.Hour

const cacheKeyPrefix = "styleguide:body:"

// Cache stores fetched bodies keyed by URL.
type Cache interface {
	Get(ctx context.Context, url string) (string, bool, error)
	Set(ctx context.Context, url, body string, ttl time.Duration) error
}

// RedisCache is a Cache backed by Redis string keys with expiry.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to Redis using a redis:// URL.
func NewRedisCache(ctx context.Context, redisURL string) (*RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return &RedisCache{client: client}, nil
}

func cacheKey(url string) string {
	sum := sha256.Sum256([]byte(url))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}

// Get returns the cached body for url. A miss is ("", false, nil).
func (c *RedisCache) Get(ctx context.Context, url string) (string, bool, error) {
	val, err := c.client.Get(ctx, cacheKey(url)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Set stores body for url with the given expiry.
func (c *RedisCache) Set(ctx context.Context, url, body string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return c.client.SetEx(ctx, cacheKey(url), body, ttl).Err()
}

// Invalidate drops the cached body for url.
func (c *RedisCache) Invalidate(ctx context.Context, url string) error {
	return c.client.Del(ctx, cacheKey(url)).Err()
}

// Close releases the underlying connection pool.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
