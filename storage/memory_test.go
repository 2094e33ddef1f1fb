package storage

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanumantha123456/portfolio"
)

func TestMemoryStorage_SetGetDelete(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	_, err := s.Get(ctx, "v1", portfolio.ThemeStorageKey)
	assert.ErrorIs(t, err, portfolio.ErrNotFound)

	before := time.Now()
	pref := &portfolio.Preference{VisitorID: "v1", Key: portfolio.ThemeStorageKey, Value: "dark"}
	require.NoError(t, s.Set(ctx, pref))
	assert.True(t, pref.UpdatedAt.IsZero(), "Set must not modify the caller's value")

	got, err := s.Get(ctx, "v1", portfolio.ThemeStorageKey)
	require.NoError(t, err)
	assert.Equal(t, "dark", got.Value)
	assert.False(t, got.UpdatedAt.Before(before))

	got.Value = "mutated"
	again, err := s.Get(ctx, "v1", portfolio.ThemeStorageKey)
	require.NoError(t, err)
	assert.Equal(t, "dark", again.Value, "Get must return a copy")

	require.NoError(t, s.Delete(ctx, "v1", portfolio.ThemeStorageKey))
	_, err = s.Get(ctx, "v1", portfolio.ThemeStorageKey)
	assert.ErrorIs(t, err, portfolio.ErrNotFound)

	assert.NoError(t, s.Delete(ctx, "nobody", "theme"))
	assert.ErrorIs(t, s.Set(ctx, nil), portfolio.ErrInvalidInput)
}

func TestMemoryStorage_GetAll(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, &portfolio.Preference{VisitorID: "v1", Key: "theme", Value: "dark"}))
	require.NoError(t, s.Set(ctx, &portfolio.Preference{VisitorID: "v1", Key: "motion", Value: "reduced"}))
	require.NoError(t, s.Set(ctx, &portfolio.Preference{VisitorID: "v2", Key: "theme", Value: "light"}))

	all, err := s.GetAll(ctx, "v1")
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "reduced", all["motion"].Value)

	none, err := s.GetAll(ctx, "v3")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryStorage_Concurrent(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v := "light"
			if i%2 == 0 {
				v = "dark"
			}
			_ = s.Set(ctx, &portfolio.Preference{VisitorID: "v1", Key: "theme", Value: v})
			_, _ = s.Get(ctx, "v1", "theme")
		}(i)
	}
	wg.Wait()

	got, err := s.Get(ctx, "v1", "theme")
	require.NoError(t, err)
	assert.Contains(t, []string{"dark", "light"}, got.Value)
	assert.NoError(t, s.Close())
}
