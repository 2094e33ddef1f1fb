package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanumantha123456/portfolio"
)

func TestMemoryCache_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()
	defer cache.Close()

	require.NoError(t, cache.Set(ctx, "pref:v1:theme", []byte(`{"value":"dark"}`), time.Minute))

	val, err := cache.Get(ctx, "pref:v1:theme")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"value":"dark"}`), val)

	_, err = cache.Get(ctx, "pref:v2:theme")
	assert.ErrorIs(t, err, portfolio.ErrNotFound)

	require.NoError(t, cache.Delete(ctx, "pref:v1:theme"))
	_, err = cache.Get(ctx, "pref:v1:theme")
	assert.ErrorIs(t, err, portfolio.ErrNotFound)
}

func TestMemoryCache_Expiration(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()
	defer cache.Close()

	require.NoError(t, cache.Set(ctx, "short", "v", 50*time.Millisecond))
	require.NoError(t, cache.Set(ctx, "forever", "v", 0))

	_, err := cache.Get(ctx, "short")
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)

	_, err = cache.Get(ctx, "short")
	assert.ErrorIs(t, err, portfolio.ErrNotFound, "expired keys read as misses before the sweeper runs")
	_, err = cache.Get(ctx, "forever")
	assert.NoError(t, err)
}

func TestMemoryCache_Sweep(t *testing.T) {
	cache := NewMemoryCache()
	defer cache.Close()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", "1", time.Second))
	require.NoError(t, cache.Set(ctx, "b", "2", 0))

	cache.sweep(time.Now().Add(2 * time.Second))

	cache.mu.RLock()
	_, hasA := cache.items["a"]
	_, hasB := cache.items["b"]
	cache.mu.RUnlock()
	assert.False(t, hasA)
	assert.True(t, hasB)
}

func TestMemoryCache_Close(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()
	require.NoError(t, cache.Set(ctx, "key", "value", time.Minute))

	require.NoError(t, cache.Close())
	require.NoError(t, cache.Close(), "Close is idempotent")

	_, err := cache.Get(ctx, "key")
	assert.ErrorIs(t, err, portfolio.ErrNotFound)
}
