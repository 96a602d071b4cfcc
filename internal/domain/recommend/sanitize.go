package recommend

import (
	"math"
	"sort"
)

// sanitizeResults zeroes non-finite numeric artifacts in place. A scoring bug
// must never leak NaN or Infinity to the API response.
func sanitizeResults(results []SpotResult) {
	for i := range results {
		sanitizeResult(&results[i])
	}
}

func sanitizeResult(r *SpotResult) {
	r.Score = finiteOrZero(r.Score)

	r.Forecast.WaveHeight = finiteOrZero(r.Forecast.WaveHeight)
	r.Forecast.WavePeriod = finiteOrZero(r.Forecast.WavePeriod)
	r.Forecast.WindSpeed = finiteOrZero(r.Forecast.WindSpeed)
	r.Forecast.WindDirection = finiteOrZero(r.Forecast.WindDirection)

	r.Breakdown.Wave = finiteOrZero(r.Breakdown.Wave)
	r.Breakdown.Wind = finiteOrZero(r.Breakdown.Wind)
	r.Breakdown.Time = finiteOrZero(r.Breakdown.Time)
	r.Breakdown.Crowd = finiteOrZero(r.Breakdown.Crowd)
	r.Breakdown.Safety = finiteOrZero(r.Breakdown.Safety)
	r.Breakdown.Consistency = finiteOrZero(r.Breakdown.Consistency)

	for factor, w := range r.Weights {
		r.Weights[factor] = finiteOrZero(w)
	}

	for i, c := range r.Coords {
		r.Coords[i] = finiteOrZero(c)
	}
}

// rankResults orders by descending score. The sort is stable: spots with
// equal scores keep the predictor's arrival order, and callers may rely on
// that.
func rankResults(results []SpotResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
