package ports

import (
	"context"
	"time"
)

// KV is a durable string-keyed store. The session and draft stores are
// built on top of it; Redis provides the production implementation.
type KV interface {
	// Get returns the stored value. The second return is false when the
	// key is absent (which is not an error).
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key, overwriting any prior value. A zero ttl
	// means the key never expires.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// Del removes the key. Deleting an absent key is a no-op.
	Del(ctx context.Context, key string) error
}
