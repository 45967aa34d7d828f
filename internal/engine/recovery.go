package engine

import (
	"math"

	"github.com/claude/mesocoach/internal/models"
)

// ageStage holds the recovery adjustments for one age band.
type ageStage struct {
	maxAge      int // exclusive upper bound; 0 means open-ended
	volume      float64
	frequency   float64
	deloadWeeks int
	warning     string
}

var ageStages = []ageStage{
	{maxAge: 25, volume: 1.05, frequency: 1.05, deloadWeeks: 6},
	{maxAge: 35, volume: 1.00, frequency: 1.00, deloadWeeks: 5},
	{maxAge: 45, volume: 0.95, frequency: 1.00, deloadWeeks: 5},
	{maxAge: 55, volume: 0.85, frequency: 0.90, deloadWeeks: 4,
		warning: "Age 45+: recovery capacity is reduced; volume and frequency have been scaled down."},
	{maxAge: 0, volume: 0.75, frequency: 0.80, deloadWeeks: 3,
		warning: "Age 55+: recovery capacity is substantially reduced; prioritize sleep and consider extra rest days."},
}

// Discrete lookups indexed by (quality - 1) / (level - 1).
var (
	sleepVolume    = [5]float64{0.70, 0.85, 0.95, 1.00, 1.05}
	sleepFrequency = [5]float64{0.85, 0.90, 1.00, 1.00, 1.05}
	sleepDeload    = [5]int{3, 4, 0, 0, 0} // 0 = no cadence pressure

	stressVolume    = [5]float64{1.05, 1.00, 0.95, 0.85, 0.70}
	stressFrequency = [5]float64{1.05, 1.00, 1.00, 0.90, 0.85}
	stressDeload    = [5]int{0, 0, 0, 4, 3}
)

// ComputeRecoveryFactors derives volume/frequency multipliers and deload
// cadence from the profile. Pure and deterministic; warnings are advisory
// and never block generation.
//
// Stages apply in fixed order: age band, sleep quality, stress level,
// training age. Goal is deliberately not adjusted here; it scales volume in
// the distributor instead.
func ComputeRecoveryFactors(p *models.Profile) models.RecoveryFactors {
	volume := 1.0
	frequency := 1.0
	deload := 5
	var warnings []string

	for _, stage := range ageStages {
		if stage.maxAge != 0 && p.Age >= stage.maxAge {
			continue
		}
		volume *= stage.volume
		frequency *= stage.frequency
		deload = min(deload, stage.deloadWeeks)
		if stage.warning != "" {
			warnings = append(warnings, stage.warning)
		}
		break
	}

	sleep := clampInt(p.SleepQuality, 1, 5) - 1
	volume *= sleepVolume[sleep]
	frequency *= sleepFrequency[sleep]
	if sleepDeload[sleep] != 0 {
		deload = min(deload, sleepDeload[sleep])
	}
	if p.SleepQuality <= 2 {
		warnings = append(warnings, "Poor sleep quality: recovery is compromised; training volume has been reduced.")
	}

	stress := clampInt(p.StressLevel, 1, 5) - 1
	volume *= stressVolume[stress]
	frequency *= stressFrequency[stress]
	if stressDeload[stress] != 0 {
		deload = min(deload, stressDeload[stress])
	}
	if p.StressLevel >= 4 {
		warnings = append(warnings, "High stress level: recovery is compromised; training volume has been reduced.")
	}

	if p.TrainingAge >= 5 {
		deload = min(deload, 4)
	}
	if p.TrainingAge < 1 {
		volume *= 0.90
		// First-year trainees accumulate fitness faster than fatigue, so the
		// cadence override beats the conservative minimum rule.
		deload = 8
	}

	return models.RecoveryFactors{
		VolumeMultiplier:     roundTo(clampFloat(volume, 0.5, 1.3), 2),
		FrequencyMultiplier:  roundTo(clampFloat(frequency, 0.7, 1.2), 2),
		DeloadFrequencyWeeks: max(deload, 3),
		Warnings:             warnings,
	}
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
