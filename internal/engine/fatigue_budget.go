package engine

import (
	"math"

	"github.com/claude/mesocoach/internal/models"
)

// FatigueBudget is the per-session fatigue ceiling for one trainee. Constant
// for the lifetime of one session build.
type FatigueBudget struct {
	SystemicLimit    int     `json:"systemic_limit"`
	LocalLimit       int     `json:"local_limit"` // per muscle
	MinSFRThreshold  float64 `json:"min_sfr_threshold"`
	WarningThreshold float64 `json:"warning_threshold"` // fraction of systemic limit
}

// NewFatigueBudget derives the session fatigue ceilings from the profile.
// Base values (100 systemic / 80 local / 0.6 SFR floor) are calibrated for a
// healthy intermediate trainee; age, experience, recovery markers, and a cut
// diet all shrink the budget.
func NewFatigueBudget(p *models.Profile) FatigueBudget {
	systemic := 100.0
	local := 80.0
	threshold := 0.6

	switch {
	case p.Age >= 55:
		systemic *= 0.7
		local *= 0.8
		threshold = 0.8
	case p.Age >= 45:
		systemic *= 0.85
		local *= 0.9
		threshold = 0.7
	}

	switch p.Experience {
	case models.ExperienceNovice:
		systemic *= 0.75
		local *= 0.8
		threshold = math.Max(threshold, 0.8)
	case models.ExperienceAdvanced:
		systemic *= 1.15
		local *= 1.1
		if p.Age < 45 {
			threshold = 0.5
		}
	}

	// Sleep and stress move the systemic ceiling together, bounded so that
	// perfect habits can't double the budget and terrible ones can't erase it.
	recoveryMult := clampFloat(1+0.1*float64(p.SleepQuality-3)-0.1*float64(p.StressLevel-3), 0.7, 1.3)
	systemic *= recoveryMult

	if p.Goal == models.GoalCut {
		systemic *= 0.85
		local *= 0.9
	}

	return FatigueBudget{
		SystemicLimit:    int(math.Round(systemic)),
		LocalLimit:       int(math.Round(local)),
		MinSFRThreshold:  threshold,
		WarningThreshold: 0.8,
	}
}

// CalculateExerciseFatigue estimates the fatigue footprint of one exercise
// at the given dose. position is 1-based order within the session.
func CalculateExerciseFatigue(ex *models.ExerciseEntry, sets, reps, rir, position int) models.ExerciseFatigueProfile {
	sets = max(sets, 1)
	position = max(position, 1)
	rir = clampInt(rir, 0, 4)

	volumeFactor := float64(sets) * (1 + float64(sets-1)*0.1) * 0.15
	intensityFactor := 1 + float64(3-rir)*0.15
	positionPenalty := 1 + float64(position-1)*0.05

	repMod := 1.0
	switch {
	case reps <= 5:
		repMod = 1.2
	case reps >= 15:
		repMod = 0.9
	}

	systemic := patternSystemicCost[ex.Pattern] * equipmentFatigueModifier[ex.Equipment] *
		volumeFactor * intensityFactor * positionPenalty * repMod

	local := map[models.Muscle]float64{
		ex.PrimaryMuscle: float64(sets) * 8 * intensityFactor,
	}
	for _, m := range ex.SecondaryMuscles {
		local[m] += float64(sets) * 4 * intensityFactor
	}

	return models.ExerciseFatigueProfile{
		SystemicCost:       roundTo(systemic, 2),
		LocalCost:          local,
		StimulusPerFatigue: EstimateSFR(ex, position),
		RecoveryDays:       recoveryDays(ex, reps, rir),
	}
}

// EstimateSFR is the stimulus-to-fatigue ratio of an exercise at a session
// position. Late placement erodes stimulus quality, floored at half value.
func EstimateSFR(ex *models.ExerciseEntry, position int) float64 {
	position = max(position, 1)
	base := patternBaseSFR[ex.Pattern] * equipmentSFRModifier[ex.Equipment]
	return roundTo(base*math.Max(0.5, 1-float64(position-1)*0.1), 3)
}

// recoveryDays estimates days until the primary muscle is trainable again,
// rounded to the nearest half day.
func recoveryDays(ex *models.ExerciseEntry, reps, rir int) float64 {
	days := 2.0
	if ex.Pattern == models.PatternSquat || ex.Pattern == models.PatternHinge {
		days++
	}
	if rir <= 1 {
		days += 0.5
	}
	if MuscleFiberDominance(ex.PrimaryMuscle) == FiberFast && reps <= 6 {
		days += 0.5
	}
	return math.Round(days*2) / 2
}
