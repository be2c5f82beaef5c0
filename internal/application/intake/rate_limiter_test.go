package intake

import (
	"context"
	"testing"
	"time"

	"github.com/quinntest007-creator/QueueBlaze/internal/infrastructure/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInquiryKey(t *testing.T) {
	assert.Equal(t, "rate_limit_inquiry_203.0.113.7", InquiryKey("203.0.113.7"))
}

func TestNewInquiryRateLimiter_Defaults(t *testing.T) {
	l := NewInquiryRateLimiter(failingStore{}, 0, 0)
	assert.Equal(t, DefaultInquiryLimit, l.Limit())
	assert.Equal(t, DefaultInquiryWindow, l.Window())
}

func TestInquiryRateLimiter_FixedWindow(t *testing.T) {
	clock := newFakeClock()
	store := cache.NewInMemoryCounterStore(cache.WithClock(clock.Now))
	defer store.Close()

	l := NewInquiryRateLimiter(store, 3, time.Hour)
	ctx := context.Background()
	ip := "198.51.100.1"

	for i := 0; i < 3; i++ {
		allowed, err := l.Allow(ctx, ip)
		require.NoError(t, err)
		assert.True(t, allowed, "submission %d should be allowed", i+1)

		_, err = l.Record(ctx, ip)
		require.NoError(t, err)
		clock.Advance(10 * time.Minute)
	}

	allowed, err := l.Allow(ctx, ip)
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = l.Allow(ctx, "198.51.100.2")
	require.NoError(t, err)
	assert.True(t, allowed, "other clients are unaffected")

	// The window is anchored at the first submission, 30 minutes ago
	clock.Advance(30 * time.Minute)
	allowed, err = l.Allow(ctx, ip)
	require.NoError(t, err)
	assert.True(t, allowed)
}
