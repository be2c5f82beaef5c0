package intake

import (
	"context"
	"time"
)

// Default inquiry limits: three submissions per client per hour
const (
	DefaultInquiryLimit  int64 = 3
	DefaultInquiryWindow       = time.Hour

	inquiryKeyPrefix = "rate_limit_inquiry_"
)

// CounterStore is the expiring counter store the limiter keeps its windows in
type CounterStore interface {
	Get(ctx context.Context, key string) (int64, error)
	Increment(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

// InquiryRateLimiter counts accepted inquiries per client in a fixed window
type InquiryRateLimiter struct {
	store  CounterStore
	limit  int64
	window time.Duration
}

// NewInquiryRateLimiter creates a limiter. Non-positive values fall back to the defaults.
func NewInquiryRateLimiter(store CounterStore, limit int64, window time.Duration) *InquiryRateLimiter {
	if limit <= 0 {
		limit = DefaultInquiryLimit
	}
	if window <= 0 {
		window = DefaultInquiryWindow
	}
	return &InquiryRateLimiter{store: store, limit: limit, window: window}
}

// InquiryKey returns the counter key for a client
func InquiryKey(clientID string) string {
	return inquiryKeyPrefix + clientID
}

// Allow reports whether the client is still under the limit
func (l *InquiryRateLimiter) Allow(ctx context.Context, clientID string) (bool, error) {
	count, err := l.store.Get(ctx, InquiryKey(clientID))
	if err != nil {
		return false, err
	}
	return count < l.limit, nil
}

// Record counts one accepted inquiry. The window starts with the first one.
func (l *InquiryRateLimiter) Record(ctx context.Context, clientID string) (int64, error) {
	return l.store.Increment(ctx, InquiryKey(clientID), l.window)
}

// Limit returns the number of inquiries allowed per window
func (l *InquiryRateLimiter) Limit() int64 {
	return l.limit
}

// Window returns the window length
func (l *InquiryRateLimiter) Window() time.Duration {
	return l.window
}
