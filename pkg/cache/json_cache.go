package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TrackingPrefix namespaces the cached shipment timelines. Shared so contexts
// whose writes reshape shipments (carrier resets) can flush them.
const TrackingPrefix = "thoron:tracking"

// IsMiss reports whether err means the key does not exist or has expired.
func IsMiss(err error) bool {
	return errors.Is(err, redis.Nil)
}

// JSONCache stores read models of type T as Redis hashes holding the JSON
// payload and the time it was cached.
// Key format: "{prefix}:{id}"
type JSONCache[T any] struct {
	client *RedisClient
	prefix string
	ttl    time.Duration
}

// NewJSONCache returns a JSONCache writing keys under prefix with the given TTL.
func NewJSONCache[T any](r *RedisClient, prefix string, ttl time.Duration) *JSONCache[T] {
	return &JSONCache[T]{client: r, prefix: prefix, ttl: ttl}
}

// Get retrieves the cached value for id.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *JSONCache[T]) Get(ctx context.Context, id int64) (*T, error) {
	payload, err := c.client.Client().HGet(ctx, c.Key(id), "payload").Result()
	if err != nil {
		if IsMiss(err) {
			return nil, redis.Nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var v T
	if err := json.Unmarshal([]byte(payload), &v); err != nil {
		return nil, fmt.Errorf("cache decode %s: %w", c.Key(id), err)
	}
	return &v, nil
}

// Set writes v for id. A pipeline sets both fields and the TTL in one round trip.
func (c *JSONCache[T]) Set(ctx context.Context, id int64, v *T) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}

	key := c.Key(id)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"payload", payload,
		"cached_at", time.Now().UTC().Format(time.RFC3339Nano),
	)
	pipe.Expire(ctx, key, c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes the cached value for id.
func (c *JSONCache[T]) Delete(ctx context.Context, id int64) error {
	if err := c.client.Client().Del(ctx, c.Key(id)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// Flush removes every key under the cache prefix.
func (c *JSONCache[T]) Flush(ctx context.Context) error {
	return FlushPrefix(ctx, c.client, c.prefix)
}

// Key builds the Redis key for id.
func (c *JSONCache[T]) Key(id int64) string {
	return fmt.Sprintf("%s:%d", c.prefix, id)
}

// FlushPrefix removes every key under prefix.
func FlushPrefix(ctx context.Context, r *RedisClient, prefix string) error {
	iter := r.Client().Scan(ctx, 0, prefix+":*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cache scan: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.Client().Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache flush: %w", err)
	}
	return nil
}
