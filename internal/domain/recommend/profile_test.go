package recommend

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeProfileDefaults(t *testing.T) {
	profile := normalizeProfile(Request{})

	require.Equal(t, SkillIntermediate, profile.SkillLevel)
	require.Equal(t, 1.5, profile.PreferredWaveHeight)
	require.Equal(t, 10.0, profile.PreferredWindSpeed)
	require.Equal(t, BoardFunboard, profile.BoardType)
	require.Equal(t, TideStatus(""), profile.TidePreference)
	require.Zero(t, profile.MinWaveHeight)
	require.Zero(t, profile.MaxWaveHeight)
}

func TestNormalizeProfileSkillDefaultsWaveHeight(t *testing.T) {
	require.Equal(t, 0.8, normalizeProfile(Request{SkillLevel: "beginner"}).PreferredWaveHeight)
	require.Equal(t, 2.5, normalizeProfile(Request{SkillLevel: "Advanced"}).PreferredWaveHeight)
}

func TestNormalizeProfileRejectsMalformedValues(t *testing.T) {
	profile := normalizeProfile(Request{
		SkillLevel:          "ninja",
		PreferredWaveHeight: math.NaN(),
		PreferredWindSpeed:  -3,
		BoardType:           "foamie",
		TidePreference:      "slack",
	})

	require.Equal(t, SkillIntermediate, profile.SkillLevel)
	require.Equal(t, 1.5, profile.PreferredWaveHeight)
	require.Equal(t, 10.0, profile.PreferredWindSpeed)
	require.Equal(t, BoardFunboard, profile.BoardType)
	require.Equal(t, TideStatus(""), profile.TidePreference)
}

func TestNormalizeProfileSwapsInvertedWaveWindow(t *testing.T) {
	profile := normalizeProfile(Request{MinWaveHeight: 2.0, MaxWaveHeight: 1.0})
	require.Equal(t, 1.0, profile.MinWaveHeight)
	require.Equal(t, 2.0, profile.MaxWaveHeight)
}

func TestPreferredWaveFavorsLearnedValue(t *testing.T) {
	learned := 1.8
	profile := UserProfile{PreferredWaveHeight: 1.0, LearnedWaveHeight: &learned}
	require.Equal(t, 1.8, profile.preferredWave())

	bad := math.NaN()
	profile.LearnedWaveHeight = &bad
	require.Equal(t, 1.0, profile.preferredWave())

	profile.LearnedWaveHeight = nil
	require.Equal(t, 1.0, profile.preferredWave())
}

func TestMatchesWaveWindow(t *testing.T) {
	profile := UserProfile{MinWaveHeight: 1.0, MaxWaveHeight: 2.0}
	require.True(t, profile.matchesWaveWindow(1.5))
	require.False(t, profile.matchesWaveWindow(0.5))
	require.False(t, profile.matchesWaveWindow(2.5))

	// Unset bounds always match.
	require.True(t, UserProfile{}.matchesWaveWindow(8.0))
}

func TestIsFavoriteIgnoresCase(t *testing.T) {
	profile := UserProfile{FavoriteSpots: []string{"Weligama", "Arugam Bay"}}
	require.True(t, profile.isFavorite("weligama"))
	require.False(t, profile.isFavorite("Okanda"))
}
