package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/claude/mesocoach/internal/models"
)

// Per-set working time on top of rest, and the warm-up cost the first time a
// muscle appears in a session. Minutes.
const (
	setWorkMinutes = 0.75
	warmupMinutes  = 3.0
)

// restSeconds is the prescribed rest for an exercise given the day emphasis.
func restSeconds(pattern models.MovementPattern, dayType models.DayType) int {
	if pattern.IsCompound() {
		switch dayType {
		case models.DayStrength:
			return 210
		case models.DayPower:
			return 150
		}
		return 180
	}
	if dayType == models.DayStrength {
		return 120
	}
	return 90
}

// exerciseMinutes estimates the wall-clock cost of one exercise.
func exerciseMinutes(sets, rest int, needsWarmup bool) float64 {
	minutes := float64(sets) * (setWorkMinutes + float64(rest)/60)
	if needsWarmup {
		minutes += warmupMinutes
	}
	return minutes
}

// sessionParams is everything one session build needs.
type sessionParams struct {
	profile        *models.Profile
	selector       *Selector
	budget         FatigueBudget
	tracker        *WeeklyFatigueTracker
	template       models.SessionTemplate
	progression    models.WeeklyProgression
	model          models.PeriodizationModel
	progress       float64
	dayType        models.DayType
	day            int
	sessionMinutes int
	sessionSets    map[models.Muscle]int // planned sets per muscle for this session
}

// buildSession assembles one training day: orders target muscles, gates them
// through the weekly fatigue tracker, selects exercises against the session
// fatigue budget, prescribes reps, and trims to the wall-clock time budget.
// Returns the session plus advisory warnings for the generator to aggregate.
func buildSession(p sessionParams) (models.DetailedSession, []string) {
	muscles := append([]models.Muscle(nil), p.template.Muscles...)
	sort.SliceStable(muscles, func(i, j int) bool {
		return muscleSizeRank[muscles[i]] < muscleSizeRank[muscles[j]]
	})

	mgr := NewSessionFatigueManager(p.budget)
	var (
		exercises   []models.DetailedExercise
		warnings    []string
		usedMinutes float64
		position    = 1
		warmed      = map[models.Muscle]bool{}
		localTotals = map[models.Muscle]float64{}
		timeTrimmed bool
	)

	for _, muscle := range muscles {
		planned := plannedSessionSets(p, muscle)
		if planned <= 0 {
			continue
		}

		readiness := p.tracker.CanTrainMuscle(muscle, p.day, float64(planned)*8)
		if readiness.VolumeScale == 0 {
			warnings = append(warnings, fmt.Sprintf("%s skipped on %s: %s", muscle, p.template.DayLabel, readiness.Recommendation))
			continue
		}
		sets := int(math.Round(float64(planned) * readiness.VolumeScale))
		if sets <= 0 {
			continue
		}

		// Provisional dose for fatigue estimation during selection.
		provisional := ComputeRepPrescription(p.repRequest(muscle, models.PatternIsolation, position))
		repMid := (provisional.MinReps + provisional.MaxReps) / 2

		for _, sel := range p.selector.SelectForMuscle(muscle, sets, position, repMid, provisional.TargetRIR, mgr) {
			reps := ComputeRepPrescription(p.repRequest(muscle, sel.Exercise.Pattern, sel.Position))
			rest := restSeconds(sel.Exercise.Pattern, p.dayType)

			finalSets := sel.Sets
			needsWarmup := !warmed[muscle]
			for finalSets > 0 && usedMinutes+exerciseMinutes(finalSets, rest, needsWarmup) > float64(p.sessionMinutes) {
				finalSets--
				timeTrimmed = true
			}
			if finalSets == 0 {
				continue
			}

			fatigue := sel.Fatigue
			if finalSets != sel.Sets {
				// Display the trimmed dose; the session manager keeps the
				// pre-trim totals as a conservative ceiling.
				fatigue = CalculateExerciseFatigue(&sel.Exercise, finalSets, repMid, reps.TargetRIR, sel.Position)
			}

			usedMinutes += exerciseMinutes(finalSets, rest, needsWarmup)
			warmed[muscle] = true
			for m, cost := range fatigue.LocalCost {
				localTotals[m] += cost
			}

			exercises = append(exercises, models.DetailedExercise{
				Exercise:    sel.Exercise,
				Sets:        finalSets,
				Reps:        reps,
				RestSeconds: rest,
				Fatigue:     fatigue,
				Efficiency:  sel.Efficiency,
			})
			position = sel.Position + 1
		}
	}

	// Fold the session's local fatigue into the weekly tracker, one muscle
	// at a time in fixed order.
	for _, m := range models.AllMuscles {
		if cost := localTotals[m]; cost > 0 {
			p.tracker.RecordTraining(m, p.day, cost)
		}
	}

	if timeTrimmed {
		warnings = append(warnings, fmt.Sprintf("%s: planned work exceeded the %d-minute budget; sets were trimmed", p.template.DayLabel, p.sessionMinutes))
	}

	return models.DetailedSession{
		Day:              p.day,
		DayLabel:         p.template.DayLabel,
		Focus:            p.template.Focus,
		DayType:          p.dayType,
		Exercises:        exercises,
		EstimatedMinutes: int(math.Round(usedMinutes)),
		FatigueSummary:   mgr.Summary(),
	}, warnings
}

// plannedSessionSets scales the per-session allocation by the week's volume
// modifier.
func plannedSessionSets(p sessionParams, muscle models.Muscle) int {
	base := p.sessionSets[muscle]
	if base <= 0 {
		return 0
	}
	return max(int(math.Round(float64(base)*p.progression.VolumeModifier)), 1)
}

// repRequest builds the rep calculator input for one slot.
func (p sessionParams) repRequest(muscle models.Muscle, pattern models.MovementPattern, position int) RepRequest {
	return RepRequest{
		Goal:           p.profile.Goal,
		Experience:     p.profile.Experience,
		Pattern:        pattern,
		Muscle:         muscle,
		Position:       position,
		Model:          p.model,
		Progress:       p.progress,
		DayType:        p.dayType,
		VolumeModifier: p.progression.VolumeModifier,
		IsDeload:       p.progression.IsDeload,
	}
}
