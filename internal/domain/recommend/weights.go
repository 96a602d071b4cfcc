package recommend

// Base weight profiles keyed by skill level. Beginners lean on safety and
// crowd, advanced surfers on wave quality and consistency.
var baseWeights = map[SkillLevel]Weights{
	SkillBeginner: {
		FactorWave:        0.15,
		FactorWind:        0.10,
		FactorTime:        0.10,
		FactorCrowd:       0.20,
		FactorSafety:      0.35,
		FactorConsistency: 0.10,
	},
	SkillIntermediate: {
		FactorWave:        0.25,
		FactorWind:        0.15,
		FactorTime:        0.10,
		FactorCrowd:       0.15,
		FactorSafety:      0.20,
		FactorConsistency: 0.15,
	},
	SkillAdvanced: {
		FactorWave:        0.30,
		FactorWind:        0.15,
		FactorTime:        0.10,
		FactorCrowd:       0.05,
		FactorSafety:      0.10,
		FactorConsistency: 0.30,
	},
}

const (
	bigWavePreference  = 2.0
	calmWindPreference = 8.0

	waveWeightMax = 0.40
	waveWeightMin = 0.20
	weightFloor   = 0.05
	waveNudge     = 0.10
	windNudge     = 0.05
	boardNudge    = 0.05
)

// weightsFor derives the active weight profile: skill base, then bounded
// preference nudges, then renormalization so the weights sum to 1.0.
func weightsFor(profile UserProfile) Weights {
	weights := make(Weights, len(baseWeights[SkillIntermediate]))
	base, ok := baseWeights[profile.SkillLevel]
	if !ok {
		base = baseWeights[SkillIntermediate]
	}
	for factor, w := range base {
		weights[factor] = w
	}

	if profile.preferredWave() >= bigWavePreference {
		shiftBounded(weights, FactorSafety, FactorWave, waveNudge, waveWeightMin, waveWeightMax)
	}
	if profile.preferredWind() <= calmWindPreference {
		shiftBounded(weights, FactorTime, FactorWind, windNudge, 0, 1)
	}
	if profile.BoardType == BoardShortboard {
		shiftBounded(weights, FactorCrowd, FactorConsistency, boardNudge, 0, 1)
	}

	normalize(weights)
	return weights
}

// shiftBounded moves up to amount from one factor to another without pushing
// the receiver past max, the receiver below min, or the donor below the floor.
func shiftBounded(weights Weights, from, to Factor, amount, min, max float64) {
	if weights[to]+amount > max {
		amount = max - weights[to]
	}
	if weights[from]-amount < weightFloor {
		amount = weights[from] - weightFloor
	}
	if amount <= 0 {
		return
	}
	weights[to] += amount
	weights[from] -= amount
	if weights[to] < min {
		weights[to] = min
	}
}

// factorOrder fixes the float summation order. Ranging over the weight map
// would make repeated scoring of identical input drift in the last bits.
var factorOrder = [...]Factor{
	FactorWave,
	FactorWind,
	FactorTime,
	FactorCrowd,
	FactorSafety,
	FactorConsistency,
}

// normalize rescales the weights to sum to exactly 1.0.
func normalize(weights Weights) {
	var total float64
	for _, factor := range factorOrder {
		total += weights[factor]
	}
	if total <= 0 {
		uniform := 1.0 / float64(len(weights))
		for factor := range weights {
			weights[factor] = uniform
		}
		return
	}
	for _, factor := range factorOrder {
		weights[factor] = weights[factor] / total
	}
}

// weightedSum is the single combinator over per-factor scores.
func weightedSum(scores map[Factor]float64, weights Weights) float64 {
	var total float64
	for _, factor := range factorOrder {
		total += scores[factor] * weights[factor]
	}
	return total
}
