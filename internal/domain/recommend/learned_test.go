package recommend

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyLearnedPreferencesRequiresEnoughSessions(t *testing.T) {
	profile := UserProfile{PreferredWaveHeight: 1.5, PreferredWindSpeed: 10}
	sessions := []Session{
		{Rating: 5, WaveHeight: 2.0, WindSpeed: 8},
		{Rating: 4, WaveHeight: 1.8, WindSpeed: 12},
		{Rating: 3, WaveHeight: 1.2, WindSpeed: 15},
		{Rating: 5, WaveHeight: 2.2, WindSpeed: 10},
	}

	applyLearnedPreferences(&profile, sessions)

	require.Nil(t, profile.LearnedWaveHeight)
	require.Nil(t, profile.LearnedWindSpeed)
	require.Empty(t, profile.FavoriteSpots)
}

func TestApplyLearnedPreferencesMeansFromGoodSessions(t *testing.T) {
	profile := UserProfile{PreferredWaveHeight: 1.5, PreferredWindSpeed: 10}
	sessions := []Session{
		{Rating: 5, WaveHeight: 2.0, WindSpeed: 8, SpotName: "Weligama"},
		{Rating: 4, WaveHeight: 1.0, WindSpeed: 12, SpotName: "Weligama"},
		{Rating: 2, WaveHeight: 4.0, WindSpeed: 40, SpotName: "Mirissa"},
		{Rating: 1, WaveHeight: 0.2, WindSpeed: 2, SpotName: "Okanda"},
		{Rating: 5, WaveHeight: 1.5, WindSpeed: 10, SpotName: "Mirissa"},
	}

	applyLearnedPreferences(&profile, sessions)

	// Means come only from the three sessions rated >= 4.
	require.NotNil(t, profile.LearnedWaveHeight)
	require.InDelta(t, 1.5, *profile.LearnedWaveHeight, 1e-9)
	require.InDelta(t, 10.0, *profile.LearnedWindSpeed, 1e-9)
	require.Equal(t, []string{"Weligama", "Mirissa"}, profile.FavoriteSpots)
}

func TestApplyLearnedPreferencesSkipsUnratedAndBrokenSessions(t *testing.T) {
	profile := UserProfile{}
	sessions := []Session{
		{Rating: 0, WaveHeight: 2.0, WindSpeed: 8},
		{Rating: 5, WaveHeight: 2.0, WindSpeed: 8},
		{Rating: 5, WaveHeight: 2.0, WindSpeed: 8},
		{Rating: 5, WaveHeight: 2.0, WindSpeed: 8},
		{Rating: 5, WaveHeight: 2.0, WindSpeed: 8},
	}

	applyLearnedPreferences(&profile, sessions)

	// Only four sessions qualify, below the personalization gate.
	require.Nil(t, profile.LearnedWaveHeight)
}

func TestApplyLearnedPreferencesFallsBackToAllQualifying(t *testing.T) {
	profile := UserProfile{}
	sessions := []Session{
		{Rating: 2, WaveHeight: 1.0, WindSpeed: 10},
		{Rating: 3, WaveHeight: 1.0, WindSpeed: 10},
		{Rating: 2, WaveHeight: 1.0, WindSpeed: 10},
		{Rating: 3, WaveHeight: 1.0, WindSpeed: 10},
		{Rating: 2, WaveHeight: 1.0, WindSpeed: 10},
	}

	applyLearnedPreferences(&profile, sessions)

	// No session reaches the good-session rating, so all qualifying
	// sessions drive the means.
	require.NotNil(t, profile.LearnedWaveHeight)
	require.InDelta(t, 1.0, *profile.LearnedWaveHeight, 1e-9)
}

func TestFavoriteSpotsOrdering(t *testing.T) {
	sessions := []Session{
		{SpotName: "Mirissa"},
		{SpotName: "Weligama"},
		{SpotName: "Weligama"},
		{SpotName: "Okanda"},
		{SpotName: "Okanda"},
		{SpotName: "Arugam Bay"},
		{SpotName: ""},
	}

	favorites := favoriteSpots(sessions, 3)

	// Count first, then name to break ties deterministically.
	require.Equal(t, []string{"Okanda", "Weligama", "Arugam Bay"}, favorites)
}
