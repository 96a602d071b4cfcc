package recommend

import "sort"

// minQualifyingSessions gates personalization: with fewer rated sessions the
// learned preferences are too noisy to trust.
const minQualifyingSessions = 5

const goodSessionRating = 4

// applyLearnedPreferences derives learned wave/wind preferences and favorite
// spots from session history. Sessions rated >= 4 drive the learned means;
// when none qualify, all sessions do.
func applyLearnedPreferences(profile *UserProfile, sessions []Session) {
	qualifying := sessions[:0:0]
	for _, s := range sessions {
		if s.Rating >= 1 && isFinite(s.WaveHeight) && isFinite(s.WindSpeed) {
			qualifying = append(qualifying, s)
		}
	}
	if len(qualifying) < minQualifyingSessions {
		return
	}

	source := qualifying[:0:0]
	for _, s := range qualifying {
		if s.Rating >= goodSessionRating {
			source = append(source, s)
		}
	}
	if len(source) == 0 {
		source = qualifying
	}

	var waveSum, windSum float64
	for _, s := range source {
		waveSum += s.WaveHeight
		windSum += s.WindSpeed
	}
	wave := waveSum / float64(len(source))
	wind := windSum / float64(len(source))
	profile.LearnedWaveHeight = &wave
	profile.LearnedWindSpeed = &wind

	profile.FavoriteSpots = favoriteSpots(source, 3)
}

// favoriteSpots returns the most frequent spot names among good sessions.
func favoriteSpots(sessions []Session, limit int) []string {
	counts := make(map[string]int)
	for _, s := range sessions {
		if s.SpotName != "" {
			counts[s.SpotName]++
		}
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] == counts[names[j]] {
			return names[i] < names[j]
		}
		return counts[names[i]] > counts[names[j]]
	})
	if len(names) > limit {
		names = names[:limit]
	}
	return names
}
