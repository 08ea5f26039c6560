package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// KV adapts a Redis client to the string key-value store the console keeps
// sessions and wizard drafts in.
type KV struct {
	client *redis.Client
}

// NewKV creates a KV wrapping the given Redis client.
func NewKV(client *redis.Client) *KV {
	return &KV{client: client}
}

// Get returns the value for key. The second return value is false when the
// key does not exist.
func (kv *KV) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := kv.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, true, nil
}

// Set stores value under key. A non-positive ttl means no expiry.
func (kv *KV) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := kv.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Del removes key. Deleting an absent key is not an error.
func (kv *KV) Del(ctx context.Context, key string) error {
	if err := kv.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}
