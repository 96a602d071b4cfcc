package predcache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/surfapp/recommender/internal/domain/recommend"
)

func forecasts(names ...string) []recommend.SpotForecast {
	out := make([]recommend.SpotForecast, len(names))
	for i, name := range names {
		out[i] = recommend.SpotForecast{ID: name, Name: name}
	}
	return out
}

func TestMemoryCacheFreshWithinTTL(t *testing.T) {
	clock := time.Date(2025, time.July, 1, 7, 0, 0, 0, time.UTC)
	cache := NewMemoryCacheWithClock(5*time.Minute, func() time.Time { return clock })
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, forecasts("Weligama")))

	clock = clock.Add(4 * time.Minute)
	data, ok, err := cache.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, data, 1)
}

func TestMemoryCacheExpiresButStaysReadableAsStale(t *testing.T) {
	clock := time.Date(2025, time.July, 1, 7, 0, 0, 0, time.UTC)
	cache := NewMemoryCacheWithClock(5*time.Minute, func() time.Time { return clock })
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, forecasts("Weligama")))

	clock = clock.Add(6 * time.Minute)
	_, ok, err := cache.Get(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	data, ok, err := cache.GetStale(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Weligama", data[0].Name)
}

func TestMemoryCacheExpiresExactlyAtTTL(t *testing.T) {
	clock := time.Date(2025, time.July, 1, 7, 0, 0, 0, time.UTC)
	cache := NewMemoryCacheWithClock(5*time.Minute, func() time.Time { return clock })
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, forecasts("Weligama")))

	clock = clock.Add(5 * time.Minute)
	_, ok, err := cache.Get(ctx)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryCacheEmpty(t *testing.T) {
	cache := NewMemoryCache(0)
	ctx := context.Background()

	_, ok, err := cache.Get(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = cache.GetStale(ctx)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryCachePutReplacesSingleSlot(t *testing.T) {
	clock := time.Date(2025, time.July, 1, 7, 0, 0, 0, time.UTC)
	cache := NewMemoryCacheWithClock(5*time.Minute, func() time.Time { return clock })
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, forecasts("Weligama")))
	clock = clock.Add(10 * time.Minute)
	require.NoError(t, cache.Put(ctx, forecasts("Mirissa", "Okanda")))

	data, ok, err := cache.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, data, 2)
	require.Equal(t, "Mirissa", data[0].Name)

	stale, ok, err := cache.GetStale(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, data, stale)
}

func TestNewMemoryCacheDefaultsTTL(t *testing.T) {
	cache := NewMemoryCache(-1)
	require.Equal(t, DefaultTTL, cache.ttl)
}
