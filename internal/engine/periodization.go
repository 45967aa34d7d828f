package engine

import "github.com/claude/mesocoach/internal/models"

// SelectPeriodizationModel applies the model decision table: trainees without
// a training base get linear progression, intermediates undulate, and only
// genuinely advanced trainees get block periodization.
func SelectPeriodizationModel(p *models.Profile) models.PeriodizationModel {
	if p.Experience == models.ExperienceNovice || p.TrainingAge < 1 {
		return models.ModelLinear
	}
	if p.Experience == models.ExperienceIntermediate || p.TrainingAge < 3 {
		if p.Goal == models.GoalBulk {
			return models.ModelDailyUndulating
		}
		return models.ModelWeeklyUndulating
	}
	return models.ModelBlock
}

// BuildPeriodizationPlan produces the week-by-week intensity and volume
// prescription: deloadFrequencyWeeks training weeks plus exactly one
// trailing deload week.
func BuildPeriodizationPlan(p *models.Profile, recovery models.RecoveryFactors) models.PeriodizationPlan {
	model := SelectPeriodizationModel(p)
	trainingWeeks := max(recovery.DeloadFrequencyWeeks, 3)

	var progressions []models.WeeklyProgression
	switch model {
	case models.ModelLinear:
		progressions = linearProgressions(trainingWeeks)
	case models.ModelDailyUndulating:
		progressions = dailyUndulatingProgressions(trainingWeeks)
	case models.ModelWeeklyUndulating:
		progressions = weeklyUndulatingProgressions(trainingWeeks)
	default:
		progressions = blockProgressions(trainingWeeks)
	}

	progressions = append(progressions, models.WeeklyProgression{
		Week:              trainingWeeks + 1,
		IntensityModifier: 0.60,
		VolumeModifier:    0.50,
		RPEMin:            5,
		RPEMax:            6,
		Focus:             "Deload: recovery and resensitization",
		IsDeload:          true,
	})

	strategy := models.DeloadProactive
	if p.Experience == models.ExperienceNovice {
		strategy = models.DeloadReactive
	}

	return models.PeriodizationPlan{
		Model:          model,
		TrainingWeeks:  trainingWeeks,
		MesocycleWeeks: trainingWeeks + 1,
		Progressions:   progressions,
		DeloadStrategy: strategy,
	}
}

// ramp interpolates from lo to hi across n steps, hitting both endpoints.
func ramp(lo, hi float64, step, n int) float64 {
	if n <= 1 {
		return hi
	}
	return roundTo(lo+(hi-lo)*float64(step)/float64(n-1), 3)
}

func linearProgressions(weeks int) []models.WeeklyProgression {
	out := make([]models.WeeklyProgression, 0, weeks)
	for w := 0; w < weeks; w++ {
		rpeMin, rpeMax := 7, 8
		if w >= weeks/2 {
			rpeMin, rpeMax = 8, 9
		}
		out = append(out, models.WeeklyProgression{
			Week:              w + 1,
			IntensityModifier: ramp(0.85, 1.00, w, weeks),
			VolumeModifier:    ramp(0.90, 1.00, w, weeks),
			RPEMin:            rpeMin,
			RPEMax:            rpeMax,
			Focus:             "Linear overload",
		})
	}
	return out
}

func dailyUndulatingProgressions(weeks int) []models.WeeklyProgression {
	out := make([]models.WeeklyProgression, 0, weeks)
	for w := 0; w < weeks; w++ {
		out = append(out, models.WeeklyProgression{
			Week:              w + 1,
			IntensityModifier: ramp(0.90, 1.00, w, weeks),
			VolumeModifier:    ramp(0.85, 1.00, w, weeks),
			RPEMin:            7,
			RPEMax:            9,
			Focus:             "Daily undulation: hypertrophy, strength, and power days rotate within the week",
		})
	}
	return out
}

func weeklyUndulatingProgressions(weeks int) []models.WeeklyProgression {
	out := make([]models.WeeklyProgression, 0, weeks)
	for w := 0; w < weeks; w++ {
		prog := models.WeeklyProgression{Week: w + 1}
		if w%2 == 0 {
			// Odd calendar weeks accumulate volume at a looser RIR.
			prog.IntensityModifier = 0.85
			prog.VolumeModifier = 1.15
			prog.RPEMin, prog.RPEMax = 7, 8
			prog.Focus = "Accumulation: extra volume, reps in the tank"
		} else {
			prog.IntensityModifier = 0.95
			prog.VolumeModifier = 0.70
			prog.RPEMin, prog.RPEMax = 8, 9
			prog.Focus = "Intensification: reduced volume, heavier loading"
		}
		out = append(out, prog)
	}
	return out
}

func blockProgressions(weeks int) []models.WeeklyProgression {
	hypertrophy := (weeks + 1) / 2
	strength := max((weeks*35+50)/100, 1)
	if hypertrophy+strength >= weeks {
		strength = max(weeks-hypertrophy, 1)
	}
	peaking := weeks - hypertrophy - strength

	out := make([]models.WeeklyProgression, 0, weeks)
	for w := 0; w < hypertrophy; w++ {
		out = append(out, models.WeeklyProgression{
			Week:              w + 1,
			IntensityModifier: ramp(0.70, 0.80, w, hypertrophy),
			VolumeModifier:    1.10,
			RPEMin:            7,
			RPEMax:            8,
			Focus:             "Hypertrophy block",
		})
	}
	for w := 0; w < strength; w++ {
		out = append(out, models.WeeklyProgression{
			Week:              hypertrophy + w + 1,
			IntensityModifier: ramp(0.85, 0.95, w, strength),
			VolumeModifier:    0.80,
			RPEMin:            8,
			RPEMax:            9,
			Focus:             "Strength block",
		})
	}
	for w := 0; w < peaking; w++ {
		out = append(out, models.WeeklyProgression{
			Week:              hypertrophy + strength + w + 1,
			IntensityModifier: ramp(0.95, 1.00, w, peaking),
			VolumeModifier:    0.60,
			RPEMin:            9,
			RPEMax:            10,
			Focus:             "Peaking block",
		})
	}
	return out
}
