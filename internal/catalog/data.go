package catalog

import "github.com/claude/mesocoach/internal/models"

// bundled is the default exercise catalog compiled into the binary. It is
// intentionally small but covers every muscle group with at least one
// beginner-accessible option, so the selector's fallback chain always
// terminates.
var bundled = []models.ExerciseEntry{
	// Chest
	{ID: "barbell-bench-press", Name: "Barbell Bench Press", PrimaryMuscle: models.MuscleChest,
		SecondaryMuscles: []models.Muscle{models.MuscleTriceps, models.MuscleFrontDelts},
		Pattern:          models.PatternHorizontalPush, Equipment: models.EquipmentBarbell,
		Difficulty: models.DifficultyIntermediate, FatigueRating: 4, Tier: models.TierA,
		TierScores: models.TierScores{Stimulus: 4, TechDemand: 3, Progression: 5}},
	{ID: "dumbbell-bench-press", Name: "Dumbbell Bench Press", PrimaryMuscle: models.MuscleChest,
		SecondaryMuscles: []models.Muscle{models.MuscleTriceps, models.MuscleFrontDelts},
		Pattern:          models.PatternHorizontalPush, Equipment: models.EquipmentDumbbell,
		Difficulty: models.DifficultyBeginner, FatigueRating: 3, Tier: models.TierS,
		TierScores: models.TierScores{Stimulus: 5, TechDemand: 2, Progression: 4}},
	{ID: "machine-chest-press", Name: "Machine Chest Press", PrimaryMuscle: models.MuscleChest,
		SecondaryMuscles: []models.Muscle{models.MuscleTriceps},
		Pattern:          models.PatternHorizontalPush, Equipment: models.EquipmentMachine,
		Difficulty: models.DifficultyBeginner, FatigueRating: 2, Tier: models.TierA,
		TierScores: models.TierScores{Stimulus: 4, TechDemand: 1, Progression: 4}},
	{ID: "cable-fly", Name: "Cable Fly", PrimaryMuscle: models.MuscleChest,
		Pattern: models.PatternIsolation, Equipment: models.EquipmentCable,
		Difficulty: models.DifficultyBeginner, FatigueRating: 1, Tier: models.TierB,
		TierScores: models.TierScores{Stimulus: 3, TechDemand: 1, Progression: 3}},
	{ID: "push-up", Name: "Push-Up", PrimaryMuscle: models.MuscleChest,
		SecondaryMuscles: []models.Muscle{models.MuscleTriceps, models.MuscleFrontDelts, models.MuscleCore},
		Pattern:          models.PatternHorizontalPush, Equipment: models.EquipmentBodyweight,
		Difficulty: models.DifficultyBeginner, FatigueRating: 2, Tier: models.TierB,
		TierScores: models.TierScores{Stimulus: 3, TechDemand: 1, Progression: 2}},

	// Back
	{ID: "barbell-row", Name: "Barbell Row", PrimaryMuscle: models.MuscleBack,
		SecondaryMuscles: []models.Muscle{models.MuscleBiceps, models.MuscleRearDelts},
		Pattern:          models.PatternHorizontalPull, Equipment: models.EquipmentBarbell,
		Difficulty: models.DifficultyIntermediate, FatigueRating: 4, Tier: models.TierA,
		TierScores: models.TierScores{Stimulus: 4, TechDemand: 3, Progression: 4}},
	{ID: "lat-pulldown", Name: "Lat Pulldown", PrimaryMuscle: models.MuscleBack,
		SecondaryMuscles: []models.Muscle{models.MuscleBiceps},
		Pattern:          models.PatternVerticalPull, Equipment: models.EquipmentCable,
		Difficulty: models.DifficultyBeginner, FatigueRating: 2, Tier: models.TierS,
		TierScores: models.TierScores{Stimulus: 5, TechDemand: 1, Progression: 4}},
	{ID: "pull-up", Name: "Pull-Up", PrimaryMuscle: models.MuscleBack,
		SecondaryMuscles: []models.Muscle{models.MuscleBiceps, models.MuscleForearms},
		Pattern:          models.PatternVerticalPull, Equipment: models.EquipmentBodyweight,
		Difficulty: models.DifficultyIntermediate, FatigueRating: 3, Tier: models.TierA,
		TierScores: models.TierScores{Stimulus: 4, TechDemand: 3, Progression: 3}},
	{ID: "seated-cable-row", Name: "Seated Cable Row", PrimaryMuscle: models.MuscleBack,
		SecondaryMuscles: []models.Muscle{models.MuscleBiceps, models.MuscleRearDelts},
		Pattern:          models.PatternHorizontalPull, Equipment: models.EquipmentCable,
		Difficulty: models.DifficultyBeginner, FatigueRating: 2, Tier: models.TierA,
		TierScores: models.TierScores{Stimulus: 4, TechDemand: 1, Progression: 4}},
	{ID: "machine-row", Name: "Chest-Supported Machine Row", PrimaryMuscle: models.MuscleBack,
		SecondaryMuscles: []models.Muscle{models.MuscleBiceps, models.MuscleRearDelts},
		Pattern:          models.PatternHorizontalPull, Equipment: models.EquipmentMachine,
		Difficulty: models.DifficultyBeginner, FatigueRating: 2, Tier: models.TierS,
		TierScores: models.TierScores{Stimulus: 5, TechDemand: 1, Progression: 4}},

	// Shoulders
	{ID: "overhead-press", Name: "Overhead Press", PrimaryMuscle: models.MuscleFrontDelts,
		SecondaryMuscles: []models.Muscle{models.MuscleTriceps, models.MuscleSideDelts, models.MuscleCore},
		Pattern:          models.PatternVerticalPush, Equipment: models.EquipmentBarbell,
		Difficulty: models.DifficultyIntermediate, FatigueRating: 3, Tier: models.TierB,
		TierScores: models.TierScores{Stimulus: 3, TechDemand: 3, Progression: 4}},
	{ID: "dumbbell-shoulder-press", Name: "Dumbbell Shoulder Press", PrimaryMuscle: models.MuscleFrontDelts,
		SecondaryMuscles: []models.Muscle{models.MuscleTriceps, models.MuscleSideDelts},
		Pattern:          models.PatternVerticalPush, Equipment: models.EquipmentDumbbell,
		Difficulty: models.DifficultyBeginner, FatigueRating: 3, Tier: models.TierA,
		TierScores: models.TierScores{Stimulus: 4, TechDemand: 2, Progression: 4}},
	{ID: "dumbbell-lateral-raise", Name: "Dumbbell Lateral Raise", PrimaryMuscle: models.MuscleSideDelts,
		Pattern: models.PatternIsolation, Equipment: models.EquipmentDumbbell,
		Difficulty: models.DifficultyBeginner, FatigueRating: 1, Tier: models.TierS,
		TierScores: models.TierScores{Stimulus: 5, TechDemand: 1, Progression: 3}},
	{ID: "cable-lateral-raise", Name: "Cable Lateral Raise", PrimaryMuscle: models.MuscleSideDelts,
		Pattern: models.PatternIsolation, Equipment: models.EquipmentCable,
		Difficulty: models.DifficultyBeginner, FatigueRating: 1, Tier: models.TierA,
		TierScores: models.TierScores{Stimulus: 4, TechDemand: 1, Progression: 3}},
	{ID: "reverse-fly", Name: "Reverse Fly", PrimaryMuscle: models.MuscleRearDelts,
		Pattern: models.PatternIsolation, Equipment: models.EquipmentDumbbell,
		Difficulty: models.DifficultyBeginner, FatigueRating: 1, Tier: models.TierA,
		TierScores: models.TierScores{Stimulus: 4, TechDemand: 1, Progression: 2}},
	{ID: "face-pull", Name: "Face Pull", PrimaryMuscle: models.MuscleRearDelts,
		SecondaryMuscles: []models.Muscle{models.MuscleSideDelts},
		Pattern:          models.PatternIsolation, Equipment: models.EquipmentCable,
		Difficulty: models.DifficultyBeginner, FatigueRating: 1, Tier: models.TierS,
		TierScores: models.TierScores{Stimulus: 4, TechDemand: 2, Progression: 3}},

	// Arms
	{ID: "dumbbell-curl", Name: "Dumbbell Curl", PrimaryMuscle: models.MuscleBiceps,
		SecondaryMuscles: []models.Muscle{models.MuscleForearms},
		Pattern:          models.PatternIsolation, Equipment: models.EquipmentDumbbell,
		Difficulty: models.DifficultyBeginner, FatigueRating: 1, Tier: models.TierA,
		TierScores: models.TierScores{Stimulus: 4, TechDemand: 1, Progression: 3}},
	{ID: "cable-curl", Name: "Cable Curl", PrimaryMuscle: models.MuscleBiceps,
		Pattern: models.PatternIsolation, Equipment: models.EquipmentCable,
		Difficulty: models.DifficultyBeginner, FatigueRating: 1, Tier: models.TierS,
		TierScores: models.TierScores{Stimulus: 5, TechDemand: 1, Progression: 3}},
	{ID: "barbell-curl", Name: "Barbell Curl", PrimaryMuscle: models.MuscleBiceps,
		SecondaryMuscles: []models.Muscle{models.MuscleForearms},
		Pattern:          models.PatternIsolation, Equipment: models.EquipmentBarbell,
		Difficulty: models.DifficultyBeginner, FatigueRating: 2, Tier: models.TierB,
		TierScores: models.TierScores{Stimulus: 3, TechDemand: 2, Progression: 4}},
	{ID: "cable-pushdown", Name: "Cable Pushdown", PrimaryMuscle: models.MuscleTriceps,
		Pattern: models.PatternIsolation, Equipment: models.EquipmentCable,
		Difficulty: models.DifficultyBeginner, FatigueRating: 1, Tier: models.TierS,
		TierScores: models.TierScores{Stimulus: 5, TechDemand: 1, Progression: 3}},
	{ID: "overhead-triceps-extension", Name: "Overhead Triceps Extension", PrimaryMuscle: models.MuscleTriceps,
		Pattern: models.PatternIsolation, Equipment: models.EquipmentDumbbell,
		Difficulty: models.DifficultyBeginner, FatigueRating: 1, Tier: models.TierA,
		TierScores: models.TierScores{Stimulus: 4, TechDemand: 2, Progression: 3}},
	{ID: "close-grip-bench-press", Name: "Close-Grip Bench Press", PrimaryMuscle: models.MuscleTriceps,
		SecondaryMuscles: []models.Muscle{models.MuscleChest, models.MuscleFrontDelts},
		Pattern:          models.PatternHorizontalPush, Equipment: models.EquipmentBarbell,
		Difficulty: models.DifficultyIntermediate, FatigueRating: 3, Tier: models.TierB,
		TierScores: models.TierScores{Stimulus: 3, TechDemand: 3, Progression: 4}},
	{ID: "wrist-curl", Name: "Wrist Curl", PrimaryMuscle: models.MuscleForearms,
		Pattern: models.PatternIsolation, Equipment: models.EquipmentDumbbell,
		Difficulty: models.DifficultyBeginner, FatigueRating: 1, Tier: models.TierC,
		TierScores: models.TierScores{Stimulus: 2, TechDemand: 1, Progression: 2}},
	{ID: "farmers-carry", Name: "Farmer's Carry", PrimaryMuscle: models.MuscleForearms,
		SecondaryMuscles: []models.Muscle{models.MuscleCore},
		Pattern:          models.PatternCarry, Equipment: models.EquipmentKettlebell,
		Difficulty: models.DifficultyBeginner, FatigueRating: 3, Tier: models.TierC,
		TierScores: models.TierScores{Stimulus: 2, TechDemand: 1, Progression: 3}},

	// Legs
	{ID: "barbell-back-squat", Name: "Barbell Back Squat", PrimaryMuscle: models.MuscleQuads,
		SecondaryMuscles: []models.Muscle{models.MuscleGlutes, models.MuscleCore},
		Pattern:          models.PatternSquat, Equipment: models.EquipmentBarbell,
		Difficulty: models.DifficultyIntermediate, FatigueRating: 5, Tier: models.TierA,
		TierScores: models.TierScores{Stimulus: 5, TechDemand: 4, Progression: 5}},
	{ID: "leg-press", Name: "Leg Press", PrimaryMuscle: models.MuscleQuads,
		SecondaryMuscles: []models.Muscle{models.MuscleGlutes},
		Pattern:          models.PatternSquat, Equipment: models.EquipmentMachine,
		Difficulty: models.DifficultyBeginner, FatigueRating: 3, Tier: models.TierS,
		TierScores: models.TierScores{Stimulus: 5, TechDemand: 1, Progression: 4}},
	{ID: "leg-extension", Name: "Leg Extension", PrimaryMuscle: models.MuscleQuads,
		Pattern: models.PatternIsolation, Equipment: models.EquipmentMachine,
		Difficulty: models.DifficultyBeginner, FatigueRating: 1, Tier: models.TierA,
		TierScores: models.TierScores{Stimulus: 4, TechDemand: 1, Progression: 3}},
	{ID: "goblet-squat", Name: "Goblet Squat", PrimaryMuscle: models.MuscleQuads,
		SecondaryMuscles: []models.Muscle{models.MuscleGlutes, models.MuscleCore},
		Pattern:          models.PatternSquat, Equipment: models.EquipmentKettlebell,
		Difficulty: models.DifficultyBeginner, FatigueRating: 3, Tier: models.TierB,
		TierScores: models.TierScores{Stimulus: 3, TechDemand: 2, Progression: 2}},
	{ID: "walking-lunge", Name: "Walking Lunge", PrimaryMuscle: models.MuscleQuads,
		SecondaryMuscles: []models.Muscle{models.MuscleGlutes, models.MuscleHamstrings},
		Pattern:          models.PatternLunge, Equipment: models.EquipmentDumbbell,
		Difficulty: models.DifficultyBeginner, FatigueRating: 3, Tier: models.TierB,
		TierScores: models.TierScores{Stimulus: 4, TechDemand: 2, Progression: 3}},
	{ID: "romanian-deadlift", Name: "Romanian Deadlift", PrimaryMuscle: models.MuscleHamstrings,
		SecondaryMuscles: []models.Muscle{models.MuscleGlutes, models.MuscleBack},
		Pattern:          models.PatternHinge, Equipment: models.EquipmentBarbell,
		Difficulty: models.DifficultyIntermediate, FatigueRating: 4, Tier: models.TierS,
		TierScores: models.TierScores{Stimulus: 5, TechDemand: 3, Progression: 5}},
	{ID: "seated-leg-curl", Name: "Seated Leg Curl", PrimaryMuscle: models.MuscleHamstrings,
		Pattern: models.PatternIsolation, Equipment: models.EquipmentMachine,
		Difficulty: models.DifficultyBeginner, FatigueRating: 1, Tier: models.TierS,
		TierScores: models.TierScores{Stimulus: 5, TechDemand: 1, Progression: 4}},
	{ID: "dumbbell-rdl", Name: "Dumbbell Romanian Deadlift", PrimaryMuscle: models.MuscleHamstrings,
		SecondaryMuscles: []models.Muscle{models.MuscleGlutes},
		Pattern:          models.PatternHinge, Equipment: models.EquipmentDumbbell,
		Difficulty: models.DifficultyBeginner, FatigueRating: 3, Tier: models.TierA,
		TierScores: models.TierScores{Stimulus: 4, TechDemand: 2, Progression: 3}},
	{ID: "hip-thrust", Name: "Barbell Hip Thrust", PrimaryMuscle: models.MuscleGlutes,
		SecondaryMuscles: []models.Muscle{models.MuscleHamstrings},
		Pattern:          models.PatternHinge, Equipment: models.EquipmentBarbell,
		Difficulty: models.DifficultyBeginner, FatigueRating: 3, Tier: models.TierS,
		TierScores: models.TierScores{Stimulus: 5, TechDemand: 2, Progression: 5}},
	{ID: "cable-kickback", Name: "Cable Glute Kickback", PrimaryMuscle: models.MuscleGlutes,
		Pattern: models.PatternIsolation, Equipment: models.EquipmentCable,
		Difficulty: models.DifficultyBeginner, FatigueRating: 1, Tier: models.TierB,
		TierScores: models.TierScores{Stimulus: 3, TechDemand: 1, Progression: 2}},
	{ID: "standing-calf-raise", Name: "Standing Calf Raise", PrimaryMuscle: models.MuscleCalves,
		Pattern: models.PatternIsolation, Equipment: models.EquipmentMachine,
		Difficulty: models.DifficultyBeginner, FatigueRating: 1, Tier: models.TierA,
		TierScores: models.TierScores{Stimulus: 4, TechDemand: 1, Progression: 3}},
	{ID: "single-leg-calf-raise", Name: "Single-Leg Calf Raise", PrimaryMuscle: models.MuscleCalves,
		Pattern: models.PatternIsolation, Equipment: models.EquipmentBodyweight,
		Difficulty: models.DifficultyBeginner, FatigueRating: 1, Tier: models.TierB,
		TierScores: models.TierScores{Stimulus: 3, TechDemand: 1, Progression: 2}},

	// Core
	{ID: "cable-crunch", Name: "Cable Crunch", PrimaryMuscle: models.MuscleCore,
		Pattern: models.PatternIsolation, Equipment: models.EquipmentCable,
		Difficulty: models.DifficultyBeginner, FatigueRating: 1, Tier: models.TierA,
		TierScores: models.TierScores{Stimulus: 4, TechDemand: 1, Progression: 3}},
	{ID: "plank", Name: "Plank", PrimaryMuscle: models.MuscleCore,
		Pattern: models.PatternIsolation, Equipment: models.EquipmentBodyweight,
		Difficulty: models.DifficultyBeginner, FatigueRating: 1, Tier: models.TierC,
		TierScores: models.TierScores{Stimulus: 2, TechDemand: 1, Progression: 1}},
	{ID: "hanging-leg-raise", Name: "Hanging Leg Raise", PrimaryMuscle: models.MuscleCore,
		SecondaryMuscles: []models.Muscle{models.MuscleForearms},
		Pattern:          models.PatternIsolation, Equipment: models.EquipmentBodyweight,
		Difficulty: models.DifficultyIntermediate, FatigueRating: 2, Tier: models.TierB,
		TierScores: models.TierScores{Stimulus: 3, TechDemand: 2, Progression: 2}},
}
