package recommend

import (
	"math"
	"strings"
)

// Request mirrors the query-style payload accepted from the UI layer.
type Request struct {
	SkillLevel          string  `json:"skillLevel"`
	PreferredWaveHeight float64 `json:"preferredWaveHeight"`
	PreferredWindSpeed  float64 `json:"preferredWindSpeed"`
	PreferredRegion     string  `json:"preferredRegion"`
	MinWaveHeight       float64 `json:"minWaveHeight"`
	MaxWaveHeight       float64 `json:"maxWaveHeight"`
	BoardType           string  `json:"boardType"`
	TidePreference      string  `json:"tidePreference"`
	UserID              string  `json:"userId"`
}

// Default preferred wave heights per skill, used when the request omits one.
var defaultWaveHeight = map[SkillLevel]float64{
	SkillBeginner:     0.8,
	SkillIntermediate: 1.5,
	SkillAdvanced:     2.5,
}

const defaultWindSpeed = 10.0

// normalizeProfile converts a raw request into a validated profile.
// Every defaulting rule lives here; malformed values degrade to defaults
// rather than failing the request.
func normalizeProfile(req Request) UserProfile {
	profile := UserProfile{
		SkillLevel:      parseSkill(req.SkillLevel),
		PreferredRegion: strings.TrimSpace(req.PreferredRegion),
		BoardType:       parseBoard(req.BoardType),
		TidePreference:  parseTide(req.TidePreference),
	}

	profile.PreferredWaveHeight = sanitizePositive(req.PreferredWaveHeight, defaultWaveHeight[profile.SkillLevel])
	profile.PreferredWindSpeed = sanitizePositive(req.PreferredWindSpeed, defaultWindSpeed)

	if isFinite(req.MinWaveHeight) && req.MinWaveHeight > 0 {
		profile.MinWaveHeight = req.MinWaveHeight
	}
	if isFinite(req.MaxWaveHeight) && req.MaxWaveHeight > 0 {
		profile.MaxWaveHeight = req.MaxWaveHeight
	}
	if profile.MaxWaveHeight > 0 && profile.MinWaveHeight > profile.MaxWaveHeight {
		profile.MinWaveHeight, profile.MaxWaveHeight = profile.MaxWaveHeight, profile.MinWaveHeight
	}

	return profile
}

func parseSkill(raw string) SkillLevel {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "beginner":
		return SkillBeginner
	case "advanced":
		return SkillAdvanced
	default:
		return SkillIntermediate
	}
}

func parseBoard(raw string) BoardType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "shortboard":
		return BoardShortboard
	case "longboard":
		return BoardLongboard
	default:
		return BoardFunboard
	}
}

func parseTide(raw string) TideStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "low":
		return TideLow
	case "high":
		return TideHigh
	case "mid":
		return TideMid
	default:
		return ""
	}
}

// preferredWave resolves the wave preference, favoring the learned value.
func (p UserProfile) preferredWave() float64 {
	if p.LearnedWaveHeight != nil && isFinite(*p.LearnedWaveHeight) && *p.LearnedWaveHeight > 0 {
		return *p.LearnedWaveHeight
	}
	return p.PreferredWaveHeight
}

// preferredWind resolves the wind preference, favoring the learned value.
func (p UserProfile) preferredWind() float64 {
	if p.LearnedWindSpeed != nil && isFinite(*p.LearnedWindSpeed) && *p.LearnedWindSpeed >= 0 {
		return *p.LearnedWindSpeed
	}
	return p.PreferredWindSpeed
}

func (p UserProfile) isFavorite(spotName string) bool {
	for _, name := range p.FavoriteSpots {
		if strings.EqualFold(name, spotName) {
			return true
		}
	}
	return false
}

// matchesWaveWindow reports whether the forecast falls inside the requested
// min/max wave band. Unset bounds always match.
func (p UserProfile) matchesWaveWindow(waveHeight float64) bool {
	if p.MinWaveHeight > 0 && waveHeight < p.MinWaveHeight {
		return false
	}
	if p.MaxWaveHeight > 0 && waveHeight > p.MaxWaveHeight {
		return false
	}
	return true
}

func sanitizePositive(value, fallback float64) float64 {
	if !isFinite(value) || value <= 0 {
		return fallback
	}
	return value
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
