package engine

import (
	"fmt"
	"math"

	"github.com/claude/mesocoach/internal/models"
)

// RepRequest carries everything the rep range calculator needs for one
// exercise slot.
type RepRequest struct {
	Goal       models.Goal
	Experience models.Experience
	Pattern    models.MovementPattern
	Muscle     models.Muscle
	Position   int // 1-based order within the session
	Model      models.PeriodizationModel
	Progress   float64 // fraction of the mesocycle completed, 0..1
	DayType    models.DayType
	// VolumeModifier of the current week; weekly undulation reads rep
	// emphasis off it (accumulation weeks sit above 1.0).
	VolumeModifier float64
	IsDeload       bool
}

// repRangeBase is the starting rep range per goal, split by compound and
// isolation work.
var repRangeBase = map[models.Goal]struct{ compoundMin, compoundMax, isoMin, isoMax int }{
	models.GoalBulk:     {6, 10, 8, 12},
	models.GoalMaintain: {6, 12, 10, 15},
	models.GoalCut:      {8, 12, 10, 15},
}

// modelStartRIR is where target RIR begins for each periodization model; it
// tightens toward 0 as the mesocycle progresses.
var modelStartRIR = map[models.PeriodizationModel]int{
	models.ModelLinear:           3,
	models.ModelDailyUndulating:  2,
	models.ModelWeeklyUndulating: 3,
	models.ModelBlock:            3,
}

// ComputeRepPrescription combines goal, fiber type, session position, and
// periodization phase into a rep range, target RIR, and tempo. Pure function.
func ComputeRepPrescription(req RepRequest) models.RepPrescription {
	base := repRangeBase[req.Goal]
	minReps, maxReps := base.compoundMin, base.compoundMax
	if !req.Pattern.IsCompound() {
		minReps, maxReps = base.isoMin, base.isoMax
	}

	var notes []string

	fiber := MuscleFiberDominance(req.Muscle)
	switch fiber {
	case FiberFast:
		minReps--
		maxReps--
		notes = append(notes, fmt.Sprintf("%s is fast-twitch dominant: biased toward heavier, lower-rep work", req.Muscle))
	case FiberSlow:
		minReps += 2
		maxReps += 3
		notes = append(notes, fmt.Sprintf("%s is slow-twitch dominant: responds to higher reps and longer time under tension", req.Muscle))
	}

	switch {
	case req.Position <= 1:
		minReps--
		notes = append(notes, "first slot: fresh enough for the heaviest loading of the session")
	case req.Position <= 3:
		minReps++
		maxReps++
	default:
		minReps += 2
		maxReps += 2
		notes = append(notes, "late slot: accumulated fatigue favors lighter loads for the same stimulus")
	}

	dMin, dMax := phaseShift(req)
	minReps += dMin
	maxReps += dMax

	if req.Experience == models.ExperienceNovice {
		// Novices stay out of very low rep ranges while technique develops.
		minReps = max(minReps, 6)
		maxReps = max(maxReps, 8)
	}

	minReps = clampInt(minReps, 1, 20)
	maxReps = clampInt(maxReps, minReps+2, 30)

	rir := targetRIR(req)
	switch {
	case req.IsDeload:
		notes = append(notes, "deload: every set stays far from failure")
	case rir == 0:
		notes = append(notes, "final push: sets taken to technical failure")
	}

	return models.RepPrescription{
		MinReps:   minReps,
		MaxReps:   maxReps,
		TargetRIR: rir,
		Tempo:     tempoFor(fiber),
		Notes:     notes,
	}
}

// phaseShift is the rep adjustment the periodization phase applies.
func phaseShift(req RepRequest) (int, int) {
	if req.IsDeload {
		return 0, 0
	}
	switch req.Model {
	case models.ModelLinear:
		switch {
		case req.Progress >= 0.67:
			return -2, -2
		case req.Progress >= 0.33:
			return -1, -1
		}
	case models.ModelDailyUndulating:
		switch req.DayType {
		case models.DayStrength:
			return -3, -3
		case models.DayPower:
			return -4, -4
		default:
			return 2, 3
		}
	case models.ModelWeeklyUndulating:
		if req.VolumeModifier > 1.0 {
			return 1, 2
		}
		return -2, -2
	case models.ModelBlock:
		switch {
		case req.Progress < 0.5:
			return 1, 2
		case req.Progress < 0.85:
			return -2, -2
		default:
			return -3, -3
		}
	}
	return 0, 0
}

// targetRIR tightens from the model's starting value toward 0 as the
// mesocycle progresses. Deload weeks pin it at 4.
func targetRIR(req RepRequest) int {
	if req.IsDeload {
		return 4
	}
	start := modelStartRIR[req.Model]
	if req.Model == models.ModelWeeklyUndulating && req.VolumeModifier <= 1.0 {
		start-- // intensification weeks run tighter
	}
	rir := int(math.Round(float64(start) * (1 - req.Progress)))
	return clampInt(rir, 0, 4)
}

// tempoFor returns the lifting tempo string for a fiber dominance:
// eccentric-pause-concentric-pause, X meaning explosive intent.
func tempoFor(fiber FiberDominance) string {
	switch fiber {
	case FiberFast:
		return "2-0-X-0"
	case FiberSlow:
		return "3-1-2-0"
	}
	return "2-0-2-0"
}
