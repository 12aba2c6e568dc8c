// Package cache implements domain.Cache on Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/travel-sample/travel-sample-api/internal/domain"
	"github.com/travel-sample/travel-sample-api/internal/infrastructure/metrics"
)

const cacheName = "redis"

// Config holds the Redis connection settings.
type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration

	// Prefix namespaces every key, e.g. "travel-sample:"
	Prefix string
}

// Redis stores JSON-encoded values with a fixed TTL.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

var _ domain.Cache = (*Redis)(nil)

// NewRedis creates a Redis cache. No connection is made until first use.
func NewRedis(cfg Config) *Redis {
	return &Redis{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		ttl:    cfg.TTL,
		prefix: cfg.Prefix,
	}
}

// Get decodes the value under key into dst. A missing key is a miss, not an error.
func (r *Redis) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.ObserveCache(cacheName, metrics.CacheMiss)
		return false, nil
	}
	if err != nil {
		metrics.ObserveCache(cacheName, metrics.CacheError)
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(v, dst); err != nil {
		metrics.ObserveCache(cacheName, metrics.CacheError)
		return false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	metrics.ObserveCache(cacheName, metrics.CacheHit)
	return true, nil
}

// Set stores v under key for the configured TTL.
func (r *Redis) Set(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := r.client.Set(ctx, r.prefix+key, b, r.ttl).Err(); err != nil {
		metrics.ObserveCache(cacheName, metrics.CacheError)
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	metrics.ObserveCache(cacheName, metrics.CacheSet)
	return nil
}

// Ping checks the connection.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the underlying client.
func (r *Redis) Close() error {
	return r.client.Close()
}
