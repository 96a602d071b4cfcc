package recommend

import "fmt"

const maxRecommendations = 5

// Suitability labels by fixed score thresholds.
func suitabilityLabel(score float64) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 65:
		return "Good"
	case score >= 50:
		return "Fair"
	case score >= 35:
		return "Poor"
	default:
		return "Unsuitable"
	}
}

var headlines = map[string]string{
	"Excellent":  "Excellent conditions, get out there",
	"Good":       "Good conditions for a solid session",
	"Fair":       "Workable conditions if you pick your waves",
	"Poor":       "Marginal conditions, keep expectations low",
	"Unsuitable": "Conditions are not worth the paddle today",
}

// buildRecommendations assembles the priority-ordered advice list:
// headline, top safety warning, crowd timing, time-of-day, consistency,
// wind quality. Truncated to the first five entries.
func buildRecommendations(in scoreInput, eval Evaluation, crowd crowdEstimate) []string {
	recs := make([]string, 0, maxRecommendations+1)

	recs = append(recs, headlines[eval.Suitability])

	if len(eval.Warnings) > 0 {
		recs = append(recs, eval.Warnings[0].Message)
	}

	recs = append(recs, crowdAdvice(crowd, in.now.Hour()))

	if tip := timeOfDayTip(in.now.Hour()); tip != "" {
		recs = append(recs, tip)
	}

	recs = append(recs, consistencyComment(eval.Breakdown.Consistency, in.forecast.WavePeriod))

	if tip := windTip(in); tip != "" {
		recs = append(recs, tip)
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

// crowdAdvice varies by whether the lineup is still empty, filling up, or
// already packed.
func crowdAdvice(crowd crowdEstimate, hour int) string {
	if crowd.level != crowdHigh {
		return crowd.description
	}
	switch {
	case hour < 7:
		return "Popular spot, you are ahead of the crowd, make the most of it"
	case hour < 11:
		return "Lineup is filling up fast, an earlier start pays off here"
	default:
		return "Already crowded, consider a lesser-known spot nearby"
	}
}

func timeOfDayTip(hour int) string {
	switch {
	case hour >= 5 && hour < 9:
		return "Dawn session, expect the cleanest faces of the day"
	case hour >= 11 && hour < 14:
		return "Midday sun is harsh, bring protection and hydrate"
	case hour >= 16 && hour < 18:
		return "Evening glass-off is a good window before dark"
	default:
		return ""
	}
}

func consistencyComment(score, period float64) string {
	switch {
	case score >= 75:
		return fmt.Sprintf("Long-period swell at %.0fs, sets will be well organized", period)
	case score >= 50:
		return "Mixed swell, wait for the better sets"
	default:
		return "Short-period wind swell, expect a disorganized lineup"
	}
}

func windTip(in scoreInput) string {
	switch {
	case in.wind == windOffshore && in.forecast.WindSpeed <= 20:
		return "Offshore breeze is grooming the faces nicely"
	case in.wind == windOnshore:
		return "Onshore wind will crumble the waves, earlier is usually cleaner"
	case in.forecast.WindSpeed > 25:
		return "Wind is up, look for a sheltered corner"
	default:
		return ""
	}
}
