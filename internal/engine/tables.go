// Package engine generates periodized resistance-training programs from a
// trainee profile and an exercise catalog. All state is local to one
// generation call: given identical inputs the output is identical.
package engine

import "github.com/claude/mesocoach/internal/models"

// FiberDominance classifies a muscle's dominant fiber type. It shifts rep
// ranges, tempo, and recovery rates.
type FiberDominance int

const (
	FiberMixed FiberDominance = iota
	FiberFast
	FiberSlow
)

// fiberDominance maps each muscle to its dominant fiber type.
var fiberDominance = map[models.Muscle]FiberDominance{
	models.MuscleChest:      FiberFast,
	models.MuscleBack:       FiberMixed,
	models.MuscleFrontDelts: FiberMixed,
	models.MuscleSideDelts:  FiberFast,
	models.MuscleRearDelts:  FiberSlow,
	models.MuscleBiceps:     FiberMixed,
	models.MuscleTriceps:    FiberFast,
	models.MuscleForearms:   FiberSlow,
	models.MuscleQuads:      FiberMixed,
	models.MuscleHamstrings: FiberFast,
	models.MuscleGlutes:     FiberMixed,
	models.MuscleCalves:     FiberSlow,
	models.MuscleCore:       FiberSlow,
}

// MuscleFiberDominance returns the dominant fiber type for m, defaulting to
// mixed for anything unknown.
func MuscleFiberDominance(m models.Muscle) FiberDominance {
	if d, ok := fiberDominance[m]; ok {
		return d
	}
	return FiberMixed
}

// patternSystemicCost is the base whole-body fatigue cost per movement pattern,
// before volume, intensity, and position scaling.
var patternSystemicCost = map[models.MovementPattern]float64{
	models.PatternSquat:          9.0,
	models.PatternHinge:          10.0,
	models.PatternLunge:          7.0,
	models.PatternHorizontalPush: 6.0,
	models.PatternVerticalPush:   6.5,
	models.PatternHorizontalPull: 6.0,
	models.PatternVerticalPull:   7.0,
	models.PatternCarry:          8.0,
	models.PatternIsolation:      3.0,
}

// equipmentFatigueModifier scales systemic cost by equipment stability:
// free weights demand more stabilization than guided machines.
var equipmentFatigueModifier = map[models.Equipment]float64{
	models.EquipmentBarbell:    1.2,
	models.EquipmentDumbbell:   1.0,
	models.EquipmentKettlebell: 1.0,
	models.EquipmentBodyweight: 0.9,
	models.EquipmentMachine:    0.85,
	models.EquipmentCable:      0.8,
	models.EquipmentBand:       0.7,
}

// patternBaseSFR is the base stimulus-to-fatigue ratio per movement pattern.
var patternBaseSFR = map[models.MovementPattern]float64{
	models.PatternIsolation:      1.3,
	models.PatternHorizontalPull: 1.1,
	models.PatternLunge:          1.0,
	models.PatternVerticalPull:   1.0,
	models.PatternHorizontalPush: 1.0,
	models.PatternVerticalPush:   0.9,
	models.PatternSquat:          0.9,
	models.PatternHinge:          0.7,
	models.PatternCarry:          0.6,
}

// equipmentSFRModifier scales SFR: guided equipment keeps tension on the
// target muscle with less systemic cost.
var equipmentSFRModifier = map[models.Equipment]float64{
	models.EquipmentCable:      1.15,
	models.EquipmentMachine:    1.1,
	models.EquipmentDumbbell:   1.0,
	models.EquipmentBarbell:    0.95,
	models.EquipmentBodyweight: 0.9,
	models.EquipmentKettlebell: 0.9,
	models.EquipmentBand:       0.85,
}

// muscleSizeRank orders muscles for in-session sequencing; lower rank trains
// earlier. Larger muscles and heavier compounds come first.
var muscleSizeRank = map[models.Muscle]int{
	models.MuscleQuads:      0,
	models.MuscleBack:       1,
	models.MuscleGlutes:     2,
	models.MuscleHamstrings: 3,
	models.MuscleChest:      4,
	models.MuscleFrontDelts: 5,
	models.MuscleSideDelts:  6,
	models.MuscleRearDelts:  7,
	models.MuscleTriceps:    8,
	models.MuscleBiceps:     9,
	models.MuscleCalves:     10,
	models.MuscleForearms:   11,
	models.MuscleCore:       12,
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
