package recommend

import "fmt"

// Maximum wave height each skill level can handle before penalties start.
var safeWaveMax = map[SkillLevel]float64{
	SkillBeginner:     1.5,
	SkillIntermediate: 2.5,
	SkillAdvanced:     4.0,
}

// Spots with known rip currents; extra hazard for beginners.
var ripCurrentSpots = map[string]struct{}{
	"Hikkaduwa":      {},
	"Mirissa":        {},
	"Pottuvil Point": {},
}

// A spot with a safety score below this floor is not surfable for the user.
const canSurfFloor = 40.0

// The final score cap applied when canSurf is false. Conditions that are not
// survivable must never look attractive on paper.
const unsafeScoreCap = 35.0

type safetyResult struct {
	score    float64
	canSurf  bool
	warnings []Warning
}

// evaluateSafety computes the safety score and the ordered warning list.
// Warnings append in trigger order; the first is the highest priority.
func evaluateSafety(in scoreInput) safetyResult {
	score := 100.0
	var warnings []Warning

	height := in.forecast.WaveHeight
	speed := in.forecast.WindSpeed
	skill := in.profile.SkillLevel

	if max, ok := safeWaveMax[skill]; ok && height > max {
		excess := height - max
		score -= 40 * excess
		severity := SeverityMedium
		if excess >= 0.5 {
			severity = SeverityHigh
		}
		warnings = append(warnings, Warning{
			Severity: severity,
			Message:  fmt.Sprintf("Waves of %.1fm exceed the safe range for your level", height),
			Icon:     "wave",
		})
	}

	if speed > 25 {
		score -= 30
		warnings = append(warnings, Warning{
			Severity: SeverityMedium,
			Message:  "Strong wind will make paddling and control difficult",
			Icon:     "wind",
		})
	}
	if speed > 35 {
		score -= 20
		warnings = append(warnings, Warning{
			Severity: SeverityHigh,
			Message:  "Dangerous wind speeds, consider staying on the beach",
			Icon:     "wind",
		})
	}

	if skill == SkillBeginner && in.wind == windOffshore && speed > 20 {
		score -= 15
		warnings = append(warnings, Warning{
			Severity: SeverityMedium,
			Message:  "Strong offshore wind can push you out to sea",
			Icon:     "offshore",
		})
	}

	if skill == SkillBeginner && (in.spot.BottomType == BottomReef || in.spot.BottomType == BottomRock) {
		score -= 20
		warnings = append(warnings, Warning{
			Severity: SeverityMedium,
			Message:  fmt.Sprintf("%s bottom is unforgiving for beginners", in.spot.BottomType),
			Icon:     "bottom",
		})
	}

	if in.forecast.Tide.Status == TideLow && in.spot.BottomType == BottomReef {
		score -= 10 + 5*height
		severity := SeverityMedium
		if skill == SkillBeginner {
			severity = SeverityHigh
		}
		warnings = append(warnings, Warning{
			Severity: severity,
			Message:  "Low tide exposes the reef, shallow water over sharp coral",
			Icon:     "reef",
		})
	}

	if _, ok := ripCurrentSpots[in.spot.Name]; ok && skill == SkillBeginner {
		score -= 25
		warnings = append(warnings, Warning{
			Severity: SeverityHigh,
			Message:  "Known rip currents at this spot, stay near the channel markers",
			Icon:     "rip",
		})
	}

	score = clampScore(score)
	return safetyResult{
		score:    score,
		canSurf:  score >= canSurfFloor,
		warnings: warnings,
	}
}
