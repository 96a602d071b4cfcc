package recommend

import (
	"strings"
	"time"
)

const (
	regionBonus   = 5.0
	favoriteBonus = 2.0
)

// scoreSpot is a pure function of (spot, forecast, profile, now). It computes
// the six factor scores, combines them under the adaptive weights, applies
// the flat bonuses and the safety override, and derives the advice lists.
func scoreSpot(spot Spot, forecast RawPrediction, profile UserProfile, now time.Time) Evaluation {
	in := scoreInput{
		spot:     spot,
		forecast: forecast,
		profile:  profile,
		now:      now,
		wind:     classifyWind(spot.Region, forecast.WindDirection),
	}

	scores := make(map[Factor]float64, len(factorScorers)+1)
	for factor, score := range factorScorers {
		scores[factor] = score(in)
	}
	safety := evaluateSafety(in)
	scores[FactorSafety] = safety.score

	weights := weightsFor(profile)
	total := weightedSum(scores, weights)

	if profile.PreferredRegion != "" && strings.EqualFold(profile.PreferredRegion, spot.Region) {
		total += regionBonus
	}
	if profile.isFavorite(spot.Name) {
		total += favoriteBonus
	}

	total = clampScore(total)
	if !safety.canSurf && total > unsafeScoreCap {
		total = unsafeScoreCap
	}

	eval := Evaluation{
		Score:       total,
		Suitability: suitabilityLabel(total),
		CanSurf:     safety.canSurf,
		Breakdown: ScoreBreakdown{
			Wave:        scores[FactorWave],
			Wind:        scores[FactorWind],
			Time:        scores[FactorTime],
			Crowd:       scores[FactorCrowd],
			Safety:      scores[FactorSafety],
			Consistency: scores[FactorConsistency],
		},
		Weights:  weights,
		Warnings: safety.warnings,
	}
	eval.Recommendations = buildRecommendations(in, eval, estimateCrowd(spot, now))
	return eval
}
