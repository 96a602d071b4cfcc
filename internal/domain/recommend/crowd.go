package recommend

import "time"

// crowdLevel is the discrete bucket derived from the crowd factor.
type crowdLevel string

const (
	crowdLow    crowdLevel = "Low"
	crowdMedium crowdLevel = "Medium"
	crowdHigh   crowdLevel = "High"
)

// Spots that draw a crowd regardless of conditions.
var popularSpots = map[string]struct{}{
	"Weligama":   {},
	"Arugam Bay": {},
	"Hikkaduwa":  {},
	"Mirissa":    {},
}

// Seasons when each coast works; a region in season pulls more surfers.
var seasonMonths = map[string][2]time.Month{
	"East Coast":  {time.May, time.September},
	"South Coast": {time.October, time.April},
	"West Coast":  {time.October, time.April},
}

type crowdEstimate struct {
	factor      float64
	level       crowdLevel
	description string
}

// estimateCrowd produces a crowd factor in [0,1] from day-of-week, season,
// popularity, accessibility and region-season alignment.
func estimateCrowd(spot Spot, now time.Time) crowdEstimate {
	factor := 0.10

	switch now.Weekday() {
	case time.Saturday, time.Sunday:
		factor += 0.30
	}
	if inSeason(spot.Region, now.Month()) {
		factor += 0.20
	}
	if _, ok := popularSpots[spot.Name]; ok {
		factor += 0.20
	}
	switch spot.Accessibility {
	case AccessHigh:
		factor += 0.20
	case AccessMedium:
		factor += 0.10
	}
	if factor > 1 {
		factor = 1
	}

	switch {
	case factor < 0.4:
		return crowdEstimate{factor, crowdLow, "Should be quiet in the water"}
	case factor < 0.7:
		return crowdEstimate{factor, crowdMedium, "Expect a moderate lineup"}
	default:
		return crowdEstimate{factor, crowdHigh, "Likely packed, patience required"}
	}
}

// inSeason handles season windows that wrap the year boundary.
func inSeason(region string, month time.Month) bool {
	window, ok := seasonMonths[region]
	if !ok {
		return false
	}
	start, end := window[0], window[1]
	if start <= end {
		return month >= start && month <= end
	}
	return month >= start || month <= end
}

// crowdScores maps the discrete level to a factor score.
var crowdScores = map[crowdLevel]float64{
	crowdLow:    100,
	crowdMedium: 60,
	crowdHigh:   30,
}

func scoreCrowd(in scoreInput) float64 {
	estimate := estimateCrowd(in.spot, in.now)
	return crowdScores[estimate.level]
}
