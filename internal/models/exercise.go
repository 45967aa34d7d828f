package models

// Muscle identifies a trainable muscle group.
type Muscle string

const (
	MuscleChest      Muscle = "chest"
	MuscleBack       Muscle = "back"
	MuscleFrontDelts Muscle = "front_delts"
	MuscleSideDelts  Muscle = "side_delts"
	MuscleRearDelts  Muscle = "rear_delts"
	MuscleBiceps     Muscle = "biceps"
	MuscleTriceps    Muscle = "triceps"
	MuscleForearms   Muscle = "forearms"
	MuscleQuads      Muscle = "quads"
	MuscleHamstrings Muscle = "hamstrings"
	MuscleGlutes     Muscle = "glutes"
	MuscleCalves     Muscle = "calves"
	MuscleCore       Muscle = "core"
)

// AllMuscles lists every muscle group in a fixed, deterministic order.
var AllMuscles = []Muscle{
	MuscleChest, MuscleBack, MuscleFrontDelts, MuscleSideDelts, MuscleRearDelts,
	MuscleBiceps, MuscleTriceps, MuscleForearms,
	MuscleQuads, MuscleHamstrings, MuscleGlutes, MuscleCalves, MuscleCore,
}

// Valid reports whether m is a known muscle group.
func (m Muscle) Valid() bool {
	for _, known := range AllMuscles {
		if m == known {
			return true
		}
	}
	return false
}

// MovementPattern classifies how an exercise loads the body.
type MovementPattern string

const (
	PatternSquat          MovementPattern = "squat"
	PatternHinge          MovementPattern = "hinge"
	PatternLunge          MovementPattern = "lunge"
	PatternHorizontalPush MovementPattern = "horizontal_push"
	PatternVerticalPush   MovementPattern = "vertical_push"
	PatternHorizontalPull MovementPattern = "horizontal_pull"
	PatternVerticalPull   MovementPattern = "vertical_pull"
	PatternIsolation      MovementPattern = "isolation"
	PatternCarry          MovementPattern = "carry"
)

// IsCompound reports whether the pattern involves multiple joints.
func (p MovementPattern) IsCompound() bool {
	return p != PatternIsolation
}

// Valid reports whether p is a known movement pattern.
func (p MovementPattern) Valid() bool {
	switch p {
	case PatternSquat, PatternHinge, PatternLunge,
		PatternHorizontalPush, PatternVerticalPush,
		PatternHorizontalPull, PatternVerticalPull,
		PatternIsolation, PatternCarry:
		return true
	}
	return false
}

// Equipment identifies a class of training equipment.
type Equipment string

const (
	EquipmentBarbell    Equipment = "barbell"
	EquipmentDumbbell   Equipment = "dumbbell"
	EquipmentMachine    Equipment = "machine"
	EquipmentCable      Equipment = "cable"
	EquipmentBodyweight Equipment = "bodyweight"
	EquipmentKettlebell Equipment = "kettlebell"
	EquipmentBand       Equipment = "band"
)

// Valid reports whether e is a known equipment kind.
func (e Equipment) Valid() bool {
	switch e {
	case EquipmentBarbell, EquipmentDumbbell, EquipmentMachine, EquipmentCable,
		EquipmentBodyweight, EquipmentKettlebell, EquipmentBand:
		return true
	}
	return false
}

// Difficulty is the skill level an exercise demands.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// HypertrophyTier ranks an exercise's muscle-building efficiency, S (best)
// through F, independent of its fatigue cost.
type HypertrophyTier string

const (
	TierS HypertrophyTier = "S"
	TierA HypertrophyTier = "A"
	TierB HypertrophyTier = "B"
	TierC HypertrophyTier = "C"
	TierD HypertrophyTier = "D"
	TierF HypertrophyTier = "F"
)

// Rank returns the tier as a sortable integer, 0 for S through 5 for F.
// Unknown tiers sort last.
func (t HypertrophyTier) Rank() int {
	switch t {
	case TierS:
		return 0
	case TierA:
		return 1
	case TierB:
		return 2
	case TierC:
		return 3
	case TierD:
		return 4
	case TierF:
		return 5
	}
	return 6
}

// TierScores are the 1-5 sub-scores behind a hypertrophy tier.
type TierScores struct {
	Stimulus    int `json:"stimulus" yaml:"stimulus"`
	TechDemand  int `json:"tech_demand" yaml:"tech_demand"` // lower is easier
	Progression int `json:"progression" yaml:"progression"`
}

// ExerciseEntry is one read-only record from the exercise catalog.
type ExerciseEntry struct {
	ID               string          `json:"id" yaml:"id"`
	Name             string          `json:"name" yaml:"name"`
	PrimaryMuscle    Muscle          `json:"primary_muscle" yaml:"primary_muscle"`
	SecondaryMuscles []Muscle        `json:"secondary_muscles,omitempty" yaml:"secondary_muscles,omitempty"`
	Pattern          MovementPattern `json:"pattern" yaml:"pattern"`
	Equipment        Equipment       `json:"equipment" yaml:"equipment"`
	Difficulty       Difficulty      `json:"difficulty" yaml:"difficulty"`
	FatigueRating    int             `json:"fatigue_rating" yaml:"fatigue_rating"` // 1-5
	Tier             HypertrophyTier `json:"tier" yaml:"tier"`
	TierScores       TierScores      `json:"tier_scores" yaml:"tier_scores"`
}
