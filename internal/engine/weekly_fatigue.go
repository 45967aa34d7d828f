package engine

import (
	"math"

	"github.com/claude/mesocoach/internal/models"
)

// readyThreshold is the residual local fatigue below which a muscle is
// considered trainable again.
const readyThreshold = 25.0

// TrainReadiness is the tracker's verdict for one muscle on one day.
type TrainReadiness struct {
	Ready          bool
	Residual       float64
	Recommendation string
	VolumeScale    float64 // multiplier the session builder applies to planned sets
	DaysUntilReady float64
}

// muscleRecoveryState tracks residual fatigue for one muscle.
type muscleRecoveryState struct {
	lastTrainedDay int
	fatigueLevel   float64
	recoveryRate   float64 // fatigue points recovered per day
}

// WeeklyFatigueTracker tracks per-muscle residual fatigue with time decay
// across one mesocycle week. A fresh instance is created per week and
// mutated by each session in chronological day order.
type WeeklyFatigueTracker struct {
	muscles map[models.Muscle]*muscleRecoveryState
}

// NewWeeklyFatigueTracker starts every muscle fully recovered: zero fatigue,
// last trained a week before day zero.
func NewWeeklyFatigueTracker(p *models.Profile) *WeeklyFatigueTracker {
	t := &WeeklyFatigueTracker{muscles: make(map[models.Muscle]*muscleRecoveryState, len(models.AllMuscles))}
	for _, m := range models.AllMuscles {
		t.muscles[m] = &muscleRecoveryState{
			lastTrainedDay: -7,
			recoveryRate:   muscleRecoveryRate(p, m),
		}
	}
	return t
}

// muscleRecoveryRate is how many fatigue points a muscle recovers per day.
// Older trainees and fast-twitch-dominant muscles recover slower; good sleep
// and slow-twitch dominance recover faster.
func muscleRecoveryRate(p *models.Profile, m models.Muscle) float64 {
	rate := 30.0
	switch {
	case p.Age >= 55:
		rate -= 8
	case p.Age >= 45:
		rate -= 5
	}
	rate *= 0.85 + 0.05*float64(clampInt(p.SleepQuality, 1, 5))
	switch MuscleFiberDominance(m) {
	case FiberFast:
		rate *= 0.9
	case FiberSlow:
		rate *= 1.1
	}
	return rate
}

// residualOn returns the decayed fatigue level for a muscle on the given day.
func (s *muscleRecoveryState) residualOn(day int) float64 {
	elapsed := float64(day - s.lastTrainedDay)
	if elapsed < 0 {
		elapsed = 0
	}
	return math.Max(0, s.fatigueLevel-elapsed*s.recoveryRate)
}

// CanTrainMuscle reports whether the muscle can absorb plannedFatigue on the
// given day, with a graded recommendation and an estimate of when it will be
// ready if it is not.
func (t *WeeklyFatigueTracker) CanTrainMuscle(muscle models.Muscle, day int, plannedFatigue float64) TrainReadiness {
	state, ok := t.muscles[muscle]
	if !ok {
		return TrainReadiness{Ready: true, Recommendation: "fully recovered", VolumeScale: 1.0}
	}

	residual := state.residualOn(day)
	r := TrainReadiness{
		Ready:    residual < readyThreshold,
		Residual: roundTo(residual, 2),
	}
	switch {
	case residual == 0:
		r.Recommendation = "fully recovered"
		r.VolumeScale = 1.0
	case residual < 10:
		r.Recommendation = "well recovered"
		r.VolumeScale = 1.0
	case residual < readyThreshold:
		r.Recommendation = "moderate residual fatigue: train with slightly reduced volume"
		r.VolumeScale = 0.75
	case residual < 40:
		r.Recommendation = "high residual fatigue: reduce volume markedly"
		r.VolumeScale = 0.5
	default:
		r.Recommendation = "skip: muscle has not recovered from earlier training"
		r.VolumeScale = 0
	}

	if state.recoveryRate > 0 {
		// When not ready: time until the muscle drops under the threshold.
		// When ready: projected time to recover from the planned load, which
		// callers use to place the next exposure. Half-day resolution.
		projected := residual - readyThreshold
		if r.Ready {
			projected = residual + math.Max(0, plannedFatigue) - readyThreshold
		}
		if projected > 0 {
			r.DaysUntilReady = math.Ceil(projected/state.recoveryRate*2) / 2
		} else if !r.Ready {
			r.DaysUntilReady = 0.5
		}
	}
	return r
}

// RecordTraining folds newly added fatigue onto the decayed residual and
// marks the muscle as trained on the given day.
func (t *WeeklyFatigueTracker) RecordTraining(muscle models.Muscle, day int, addedFatigue float64) {
	state, ok := t.muscles[muscle]
	if !ok {
		return
	}
	state.fatigueLevel = state.residualOn(day) + math.Max(0, addedFatigue)
	state.lastTrainedDay = day
}
