package recommend

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateSafetyCalmConditions(t *testing.T) {
	in := baseInput()
	result := evaluateSafety(in)

	require.Equal(t, 100.0, result.score)
	require.True(t, result.canSurf)
	require.Empty(t, result.warnings)
}

func TestEvaluateSafetyBeginnerInHeavyConditions(t *testing.T) {
	in := baseInput()
	in.profile.SkillLevel = SkillBeginner
	in.forecast.WaveHeight = 3.0
	in.forecast.WindSpeed = 40
	in.wind = windOnshore

	result := evaluateSafety(in)

	// 100 - 40*1.5 - 30 - 20 clamps to zero.
	require.Equal(t, 0.0, result.score)
	require.False(t, result.canSurf)
	require.Len(t, result.warnings, 3)

	// Warnings appear in trigger order; the wave hazard leads and its
	// 1.5m excess makes it high severity.
	require.Equal(t, SeverityHigh, result.warnings[0].Severity)
	require.Equal(t, "wave", result.warnings[0].Icon)
	require.Equal(t, SeverityMedium, result.warnings[1].Severity)
	require.Equal(t, SeverityHigh, result.warnings[2].Severity)
}

func TestEvaluateSafetyWaveExcessSeverity(t *testing.T) {
	in := baseInput()
	in.profile.SkillLevel = SkillIntermediate

	in.forecast.WaveHeight = 2.8 // 0.3 over the 2.5m limit
	result := evaluateSafety(in)
	require.InDelta(t, 88.0, result.score, 1e-9)
	require.Len(t, result.warnings, 1)
	require.Equal(t, SeverityMedium, result.warnings[0].Severity)

	in.forecast.WaveHeight = 3.0 // 0.5 over crosses into high severity
	result = evaluateSafety(in)
	require.InDelta(t, 80.0, result.score, 1e-9)
	require.Equal(t, SeverityHigh, result.warnings[0].Severity)
}

func TestEvaluateSafetyOffshoreBeginnerHazard(t *testing.T) {
	in := baseInput()
	in.profile.SkillLevel = SkillBeginner
	in.forecast.WaveHeight = 0.8
	in.forecast.WindSpeed = 22
	in.wind = windOffshore

	result := evaluateSafety(in)
	require.InDelta(t, 85.0, result.score, 1e-9)
	require.Len(t, result.warnings, 1)
	require.Equal(t, "offshore", result.warnings[0].Icon)
}

func TestEvaluateSafetyBeginnerOnReef(t *testing.T) {
	in := baseInput()
	in.profile.SkillLevel = SkillBeginner
	in.forecast.WaveHeight = 0.8
	in.spot.BottomType = BottomReef

	result := evaluateSafety(in)
	require.InDelta(t, 80.0, result.score, 1e-9)
	require.Len(t, result.warnings, 1)
	require.Equal(t, "bottom", result.warnings[0].Icon)
}

func TestEvaluateSafetyLowTideReefScalesWithHeight(t *testing.T) {
	in := baseInput()
	in.profile.SkillLevel = SkillIntermediate
	in.forecast.WaveHeight = 2.0
	in.spot.BottomType = BottomReef
	in.forecast.Tide.Status = TideLow

	result := evaluateSafety(in)
	// 100 - (10 + 5*2.0)
	require.InDelta(t, 80.0, result.score, 1e-9)
	require.Equal(t, SeverityMedium, result.warnings[0].Severity)

	in.profile.SkillLevel = SkillBeginner
	in.forecast.WaveHeight = 0.8
	result = evaluateSafety(in)
	// Same trigger turns high severity for beginners; a sand-only hazard
	// for the bottom type also fires here because of the reef bottom.
	var reefWarning *Warning
	for i := range result.warnings {
		if result.warnings[i].Icon == "reef" {
			reefWarning = &result.warnings[i]
		}
	}
	require.NotNil(t, reefWarning)
	require.Equal(t, SeverityHigh, reefWarning.Severity)
}

func TestEvaluateSafetyRipCurrentSpotForBeginners(t *testing.T) {
	in := baseInput()
	in.spot.Name = "Mirissa"
	in.forecast.WaveHeight = 0.8

	in.profile.SkillLevel = SkillIntermediate
	require.Empty(t, evaluateSafety(in).warnings)

	in.profile.SkillLevel = SkillBeginner
	result := evaluateSafety(in)
	require.InDelta(t, 75.0, result.score, 1e-9)
	require.Equal(t, "rip", result.warnings[0].Icon)
	require.Equal(t, SeverityHigh, result.warnings[0].Severity)
}

func TestEvaluateSafetyCanSurfFloor(t *testing.T) {
	in := baseInput()
	in.profile.SkillLevel = SkillIntermediate

	// 2.5 + 1.5 excess puts the score exactly at the floor.
	in.forecast.WaveHeight = 4.0
	result := evaluateSafety(in)
	require.InDelta(t, 40.0, result.score, 1e-9)
	require.True(t, result.canSurf)

	in.forecast.WaveHeight = 4.1
	result = evaluateSafety(in)
	require.False(t, result.canSurf)
}
