package rediscache_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/rediscache"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) (*miniredis.Miniredis, *rediscache.Cache) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })

	return mr, rediscache.NewCache(client, "logistics:")
}

func TestCache_SetAndGet_RoundTrips(t *testing.T) {
	_, cache := setupCache(t)
	ctx := context.Background()

	payload := []byte(`[{"name":"Kim Cheol-su"}]`)
	require.NoError(t, cache.Set(ctx, "drivers:all", payload, rediscache.DriverListTTL))

	got, err := cache.Get(ctx, "drivers:all")
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestCache_Get_MissingKey_ReturnsCacheMiss(t *testing.T) {
	_, cache := setupCache(t)

	got, err := cache.Get(context.Background(), "revenue:2025-06")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, rediscache.ErrCacheMiss)
}

func TestCache_Get_ExpiredKey_ReturnsCacheMiss(t *testing.T) {
	mr, cache := setupCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "drivers:all", []byte("payload"), time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := cache.Get(ctx, "drivers:all")
	assert.ErrorIs(t, err, rediscache.ErrCacheMiss)
}

func TestCache_Invalidate_RemovesKeys(t *testing.T) {
	_, cache := setupCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "drivers:all", []byte("a"), time.Minute))
	require.NoError(t, cache.Set(ctx, "revenue:2025-06", []byte("b"), time.Minute))

	require.NoError(t, cache.Invalidate(ctx, "drivers:all", "revenue:2025-06", "missing"))

	_, err := cache.Get(ctx, "drivers:all")
	assert.ErrorIs(t, err, rediscache.ErrCacheMiss)
	_, err = cache.Get(ctx, "revenue:2025-06")
	assert.ErrorIs(t, err, rediscache.ErrCacheMiss)
}

func TestCache_KeysAreNamespaced(t *testing.T) {
	mr, cache := setupCache(t)

	require.NoError(t, cache.Set(context.Background(), "drivers:all", []byte("a"), time.Minute))

	assert.True(t, mr.Exists("logistics:drivers:all"))
	assert.False(t, mr.Exists("drivers:all"))
}
