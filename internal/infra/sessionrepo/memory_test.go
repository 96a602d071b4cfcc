package sessionrepo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/surfapp/recommender/internal/domain/recommend"
)

func TestMemoryRepository(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	sessions, err := repo.RecentSessions(ctx, "u-1")
	require.NoError(t, err)
	require.Empty(t, sessions)

	surfed := time.Date(2025, time.June, 20, 6, 30, 0, 0, time.UTC)
	repo.Add("u-1",
		recommend.Session{Rating: 5, WaveHeight: 1.5, WindSpeed: 8, SpotName: "Weligama", SurfedAt: surfed},
		recommend.Session{Rating: 3, WaveHeight: 2.0, WindSpeed: 15, SpotName: "Mirissa", SurfedAt: surfed.Add(24 * time.Hour)},
	)

	sessions, err = repo.RecentSessions(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	require.Equal(t, "Weligama", sessions[0].SpotName)

	// Returned slices are copies, mutation does not leak back.
	sessions[0].SpotName = "changed"
	again, err := repo.RecentSessions(ctx, "u-1")
	require.NoError(t, err)
	require.Equal(t, "Weligama", again[0].SpotName)

	other, err := repo.RecentSessions(ctx, "u-2")
	require.NoError(t, err)
	require.Empty(t, other)
}
