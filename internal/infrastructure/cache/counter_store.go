package cache

import (
	"context"
	"time"
)

// CounterStore is a key-value store of expiring integer counters.
// The TTL passed to Increment applies only when the key is created, so a
// counter lives for a fixed window measured from its first increment.
type CounterStore interface {
	// Get returns the current value, or 0 when the key is missing or expired
	Get(ctx context.Context, key string) (int64, error)

	// Increment atomically adds one and returns the new value
	Increment(ctx context.Context, key string, ttl time.Duration) (int64, error)

	// Close releases resources held by the store
	Close() error
}
