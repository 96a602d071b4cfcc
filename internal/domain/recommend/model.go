package recommend

import "time"

// SkillLevel buckets surfers for safety limits and weight profiles.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "Beginner"
	SkillIntermediate SkillLevel = "Intermediate"
	SkillAdvanced     SkillLevel = "Advanced"
)

// BottomType describes what sits under the break.
type BottomType string

const (
	BottomSand    BottomType = "Sand"
	BottomReef    BottomType = "Reef"
	BottomRock    BottomType = "Rock"
	BottomUnknown BottomType = "Unknown"
)

// Accessibility grades how easy a spot is to reach from the road.
type Accessibility string

const (
	AccessLow    Accessibility = "Low"
	AccessMedium Accessibility = "Medium"
	AccessHigh   Accessibility = "High"
)

// TideStatus is the predictor's coarse tide classification.
type TideStatus string

const (
	TideLow  TideStatus = "Low"
	TideMid  TideStatus = "Mid"
	TideHigh TideStatus = "High"
)

// BoardType influences the consistency/crowd weight trade-off.
type BoardType string

const (
	BoardShortboard BoardType = "shortboard"
	BoardLongboard  BoardType = "longboard"
	BoardFunboard   BoardType = "funboard"
)

// Tide wraps the tide status the way the predictor emits it.
type Tide struct {
	Status TideStatus `json:"status"`
}

// RawPrediction is a per-spot forecast snapshot from the external predictor.
// Wind speed is km/h, wave height metres, period seconds, direction degrees.
type RawPrediction struct {
	WaveHeight    float64 `json:"waveHeight"`
	WavePeriod    float64 `json:"wavePeriod"`
	WindSpeed     float64 `json:"windSpeed"`
	WindDirection float64 `json:"windDirection"`
	Tide          Tide    `json:"tide"`
}

// SpotForecast couples a predictor spot record with its forecast.
// Coords arrive as [lng, lat].
type SpotForecast struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Region   string        `json:"region"`
	Coords   []float64     `json:"coords"`
	Forecast RawPrediction `json:"forecast"`
}

// SpotMetadata holds the static per-spot attributes merged in before scoring.
type SpotMetadata struct {
	BottomType    BottomType    `json:"bottomType"`
	Accessibility Accessibility `json:"accessibility"`
	Region        string        `json:"region"`
}

// Spot is an enriched, immutable reference record ready for scoring.
type Spot struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Region        string        `json:"region"`
	Coords        []float64     `json:"coords"`
	BottomType    BottomType    `json:"bottomType"`
	Accessibility Accessibility `json:"accessibility"`
}

// UserProfile carries the per-request preferences. Learned fields are
// populated from session history when enough rated sessions exist.
type UserProfile struct {
	SkillLevel          SkillLevel
	PreferredWaveHeight float64
	PreferredWindSpeed  float64
	PreferredRegion     string
	MinWaveHeight       float64
	MaxWaveHeight       float64
	BoardType           BoardType
	TidePreference      TideStatus
	LearnedWaveHeight   *float64
	LearnedWindSpeed    *float64
	FavoriteSpots       []string
}

// Factor names the six independent score components.
type Factor string

const (
	FactorWave        Factor = "wave"
	FactorWind        Factor = "wind"
	FactorTime        Factor = "time"
	FactorCrowd       Factor = "crowd"
	FactorSafety      Factor = "safety"
	FactorConsistency Factor = "consistency"
)

// ScoreBreakdown holds the six factor scores, each in [0,100].
type ScoreBreakdown struct {
	Wave        float64 `json:"wave"`
	Wind        float64 `json:"wind"`
	Time        float64 `json:"time"`
	Crowd       float64 `json:"crowd"`
	Safety      float64 `json:"safety"`
	Consistency float64 `json:"consistency"`
}

// Weights maps each factor to its share of the overall score.
// After normalization the values sum to exactly 1.0.
type Weights map[Factor]float64

// Warning is a structured safety notice, highest priority first.
type Warning struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Icon     string `json:"icon"`
}

const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Evaluation is the scorer output for a single spot.
type Evaluation struct {
	Score           float64        `json:"score"`
	Suitability     string         `json:"suitability"`
	CanSurf         bool           `json:"canSurf"`
	Breakdown       ScoreBreakdown `json:"breakdown"`
	Weights         Weights        `json:"weights"`
	Warnings        []Warning      `json:"warnings"`
	Recommendations []string       `json:"recommendations"`
}

// SpotResult is one entry of the ranked response list.
type SpotResult struct {
	Spot
	Forecast           RawPrediction `json:"forecast"`
	Evaluation
	MatchesPreferences bool `json:"matchesPreferences"`
}

// Session is one rated surf session from the history store.
type Session struct {
	Rating     int
	WaveHeight float64
	WindSpeed  float64
	SpotName   string
	SurfedAt   time.Time
}
