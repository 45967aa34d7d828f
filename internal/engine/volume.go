package engine

import (
	"math"
	"strings"

	"github.com/claude/mesocoach/internal/models"
)

// baseWeeklySets is the landmark weekly set count per muscle, indexed by
// experience. Intermediate trainees are the calibration anchor.
var baseWeeklySets = map[models.Muscle]map[models.Experience]int{
	models.MuscleBack:       {models.ExperienceNovice: 12, models.ExperienceIntermediate: 16, models.ExperienceAdvanced: 20},
	models.MuscleQuads:      {models.ExperienceNovice: 10, models.ExperienceIntermediate: 14, models.ExperienceAdvanced: 18},
	models.MuscleChest:      {models.ExperienceNovice: 10, models.ExperienceIntermediate: 14, models.ExperienceAdvanced: 18},
	models.MuscleHamstrings: {models.ExperienceNovice: 8, models.ExperienceIntermediate: 10, models.ExperienceAdvanced: 14},
	models.MuscleGlutes:     {models.ExperienceNovice: 8, models.ExperienceIntermediate: 10, models.ExperienceAdvanced: 12},
	models.MuscleSideDelts:  {models.ExperienceNovice: 8, models.ExperienceIntermediate: 12, models.ExperienceAdvanced: 16},
	models.MuscleRearDelts:  {models.ExperienceNovice: 6, models.ExperienceIntermediate: 10, models.ExperienceAdvanced: 12},
	models.MuscleFrontDelts: {models.ExperienceNovice: 4, models.ExperienceIntermediate: 6, models.ExperienceAdvanced: 8},
	models.MuscleBiceps:     {models.ExperienceNovice: 8, models.ExperienceIntermediate: 10, models.ExperienceAdvanced: 14},
	models.MuscleTriceps:    {models.ExperienceNovice: 8, models.ExperienceIntermediate: 10, models.ExperienceAdvanced: 14},
	models.MuscleCalves:     {models.ExperienceNovice: 6, models.ExperienceIntermediate: 8, models.ExperienceAdvanced: 12},
	models.MuscleForearms:   {models.ExperienceNovice: 2, models.ExperienceIntermediate: 4, models.ExperienceAdvanced: 6},
	models.MuscleCore:       {models.ExperienceNovice: 6, models.ExperienceIntermediate: 8, models.ExperienceAdvanced: 10},
}

// laggingRegions maps a general region hint to the muscles it boosts.
var laggingRegions = map[string][]models.Muscle{
	"arms":  {models.MuscleBiceps, models.MuscleTriceps, models.MuscleForearms},
	"legs":  {models.MuscleQuads, models.MuscleHamstrings, models.MuscleGlutes, models.MuscleCalves},
	"trunk": {models.MuscleChest, models.MuscleBack, models.MuscleCore},
	"torso": {models.MuscleChest, models.MuscleBack, models.MuscleCore},
}

// DistributeVolume allocates weekly sets and training frequency per muscle.
// Ordering follows models.AllMuscles so output is deterministic.
func DistributeVolume(split models.SplitType, daysPerWeek int, p *models.Profile, recovery models.RecoveryFactors, laggingAreas []string) []models.MuscleVolume {
	goalScale := 1.0
	switch p.Goal {
	case models.GoalCut:
		goalScale = 0.7
	case models.GoalBulk:
		goalScale = 1.1
	}

	lagging := laggingMuscles(laggingAreas)

	out := make([]models.MuscleVolume, 0, len(models.AllMuscles))
	for _, muscle := range models.AllMuscles {
		base := float64(baseWeeklySets[muscle][p.Experience]) * goalScale
		if lagging[muscle] {
			base *= 1.15
		}

		freq := splitFrequency(split, daysPerWeek, muscle)
		out = append(out, models.MuscleVolume{
			Muscle:    muscle,
			Sets:      max(int(math.Round(base*recovery.VolumeMultiplier)), 0),
			Frequency: max(int(math.Round(float64(freq)*recovery.FrequencyMultiplier)), 1),
		})
	}
	return out
}

// laggingMuscles resolves region hints and free-text muscle mentions into a
// muscle set.
func laggingMuscles(areas []string) map[models.Muscle]bool {
	matched := make(map[models.Muscle]bool)
	for _, area := range areas {
		lower := strings.ToLower(strings.TrimSpace(area))
		if lower == "" {
			continue
		}
		if muscles, ok := laggingRegions[lower]; ok {
			for _, m := range muscles {
				matched[m] = true
			}
			continue
		}
		for _, m := range models.AllMuscles {
			if strings.Contains(lower, strings.ReplaceAll(string(m), "_", " ")) ||
				strings.Contains(lower, string(m)) {
				matched[m] = true
			}
		}
	}
	return matched
}

// splitFrequency is the weekly exposure count a split gives each muscle
// before the recovery frequency multiplier applies.
func splitFrequency(split models.SplitType, daysPerWeek int, muscle models.Muscle) int {
	count := 0
	for _, tmpl := range SessionTemplates(split, daysPerWeek) {
		for _, m := range tmpl.Muscles {
			if m == muscle {
				count++
				break
			}
		}
	}
	if split == models.SplitFullBody {
		return min(count, 3)
	}
	return count
}
