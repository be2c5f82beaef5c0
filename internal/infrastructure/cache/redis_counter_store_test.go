package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *RedisCounterStore) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewRedisCounterStoreWithClient(client, "test:")
}

func TestRedisCounterStore_Increment(t *testing.T) {
	mr, store := setupTestRedis(t)
	ctx := context.Background()

	v, err := store.Get(ctx, "rate_limit_inquiry_1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)

	for want := int64(1); want <= 3; want++ {
		v, err = store.Increment(ctx, "rate_limit_inquiry_1.2.3.4", time.Hour)
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}

	assert.True(t, mr.Exists("test:rate_limit_inquiry_1.2.3.4"))
	assert.Equal(t, time.Hour, mr.TTL("test:rate_limit_inquiry_1.2.3.4"))

	v, err = store.Get(ctx, "rate_limit_inquiry_1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)
}

func TestRedisCounterStore_FixedWindow(t *testing.T) {
	mr, store := setupTestRedis(t)
	ctx := context.Background()

	_, err := store.Increment(ctx, "k", time.Hour)
	require.NoError(t, err)

	mr.FastForward(30 * time.Minute)
	_, err = store.Increment(ctx, "k", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, mr.TTL("test:k"), "second increment keeps the original expiry")

	mr.FastForward(30 * time.Minute)
	v, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)
}

func TestRedisCounterStore_NonInteger(t *testing.T) {
	mr, store := setupTestRedis(t)
	require.NoError(t, mr.Set("test:bad", "abc"))

	_, err := store.Get(context.Background(), "bad")
	assert.Error(t, err)
}

func TestRedisCounterStore_ConnectionFailure(t *testing.T) {
	mr, store := setupTestRedis(t)
	mr.Close()

	_, err := store.Increment(context.Background(), "k", time.Hour)
	assert.Error(t, err)
}
