package recommend

import (
	"math"
	"time"
)

// windRelation classifies wind direction against a spot's offshore bearing.
type windRelation int

const (
	windOffshore windRelation = iota
	windSideshore
	windOnshore
)

// Offshore wind bearings by region: the direction wind blows FROM when it
// grooms the face. Sri Lankan coasts per the predictor's region set.
var offshoreBearings = map[string]float64{
	"East Coast":  270,
	"South Coast": 0,
	"West Coast":  90,
}

// scoreInput bundles everything the pure factor scorers see.
type scoreInput struct {
	spot     Spot
	forecast RawPrediction
	profile  UserProfile
	now      time.Time
	wind     windRelation
}

// factorScorers is the table composed by the weighted-sum combinator.
// Each entry is a pure function clamped to [0,100]. Safety joins the table
// result separately because it also yields warnings and the canSurf flag.
var factorScorers = map[Factor]func(scoreInput) float64{
	FactorWave:        scoreWave,
	FactorWind:        scoreWind,
	FactorTime:        scoreTiming,
	FactorCrowd:       scoreCrowd,
	FactorConsistency: scoreConsistency,
}

func classifyWind(region string, windDirection float64) windRelation {
	bearing, ok := offshoreBearings[region]
	if !ok {
		bearing = 0
	}
	diff := math.Abs(math.Mod(windDirection-bearing+540, 360) - 180)
	switch {
	case diff <= 45:
		return windOffshore
	case diff <= 90:
		return windSideshore
	default:
		return windOnshore
	}
}

// scoreWave penalizes distance from the preferred height, with a bonus close
// to preference and skill-based bonuses at the extremes.
func scoreWave(in scoreInput) float64 {
	height := in.forecast.WaveHeight
	pref := in.profile.preferredWave()

	diff := math.Abs(height - pref)
	score := 100 - 25*diff
	if pref > 0 && diff <= 0.20*pref {
		score += 15
	}
	if in.profile.SkillLevel == SkillBeginner && height < 1.0 {
		score += 10
	}
	if in.profile.SkillLevel == SkillAdvanced && height > 2.0 {
		score += 10
	}
	return clampScore(score)
}

// scoreWind rewards offshore direction and speeds near the preference.
func scoreWind(in scoreInput) float64 {
	speed := in.forecast.WindSpeed
	score := 100 - 3*math.Abs(speed-in.profile.preferredWind())

	switch in.wind {
	case windOffshore:
		score += 20
	case windSideshore:
		score += 5
	case windOnshore:
		score -= 15
	}

	if speed < 5 {
		score += 10
	}
	if speed > 30 {
		score -= 20
	}
	return clampScore(score)
}

// scoreTiming rates time-of-day and tide alignment. Base 50.
func scoreTiming(in scoreInput) float64 {
	hour := in.now.Hour()
	tide := in.forecast.Tide.Status
	score := 50.0

	if hour >= 5 && hour < 9 {
		score += 25
	}
	if in.wind == windOffshore && hour >= 6 && hour < 18 {
		score += 10
	}
	switch tide {
	case TideHigh:
		if (hour >= 5 && hour < 9) || (hour >= 16 && hour < 18) {
			score += 10
		}
	case TideMid:
		score += 5
	}
	if hour >= 11 && hour < 14 {
		score -= 15
	}
	if hour >= 16 && hour < 18 {
		score += 15
	}
	if tide == TideLow && hour < 9 && in.spot.BottomType == BottomReef {
		score -= 10
	}
	if in.profile.TidePreference != "" && in.profile.TidePreference == tide {
		score += 10
	}
	return clampScore(score)
}

// scoreConsistency rewards long-period swell, light wind and the 1.0-2.5m
// wave band. Base 50.
func scoreConsistency(in scoreInput) float64 {
	score := 50.0

	switch period := in.forecast.WavePeriod; {
	case period >= 14:
		score += 35
	case period >= 11:
		score += 20
	case period >= 8:
		score += 5
	default:
		score -= 20
	}

	switch speed := in.forecast.WindSpeed; {
	case speed >= 8 && speed <= 15:
		score += 10
	case speed > 25:
		score -= 15
	}

	switch height := in.forecast.WaveHeight; {
	case height >= 1.0 && height <= 2.5:
		score += 10
	case height < 0.5:
		score -= 15
	case height > 3.5:
		score -= 10
	}

	return clampScore(score)
}

func clampScore(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
