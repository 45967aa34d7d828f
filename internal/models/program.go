package models

// SplitType identifies a weekly training split.
type SplitType string

const (
	SplitFullBody     SplitType = "full_body"
	SplitUpperLower   SplitType = "upper_lower"
	SplitPushPullLegs SplitType = "push_pull_legs"
	SplitHybrid       SplitType = "upper_lower_push_pull_legs"
	SplitBodyPart     SplitType = "body_part"
)

// PeriodizationModel identifies how intensity and volume move across a mesocycle.
type PeriodizationModel string

const (
	ModelLinear           PeriodizationModel = "linear"
	ModelDailyUndulating  PeriodizationModel = "daily_undulating"
	ModelWeeklyUndulating PeriodizationModel = "weekly_undulating"
	ModelBlock            PeriodizationModel = "block"
)

// DayType is the daily-undulating rotation of session emphasis.
type DayType string

const (
	DayHypertrophy DayType = "hypertrophy"
	DayStrength    DayType = "strength"
	DayPower       DayType = "power"
)

// DeloadStrategy says whether deloads are scheduled up front or triggered
// by fatigue signals.
type DeloadStrategy string

const (
	DeloadProactive DeloadStrategy = "proactive"
	DeloadReactive  DeloadStrategy = "reactive"
)

// RecoveryFactors scale prescribed volume and frequency to what the trainee
// can actually recover from. Derived per generation call, never mutated.
type RecoveryFactors struct {
	VolumeMultiplier     float64  `json:"volume_multiplier"`      // clamped to [0.5, 1.3]
	FrequencyMultiplier  float64  `json:"frequency_multiplier"`   // clamped to [0.7, 1.2]
	DeloadFrequencyWeeks int      `json:"deload_frequency_weeks"` // >= 3
	Warnings             []string `json:"warnings,omitempty"`
}

// WeeklyProgression is one week's intensity/volume prescription.
type WeeklyProgression struct {
	Week              int     `json:"week"`
	IntensityModifier float64 `json:"intensity_modifier"`
	VolumeModifier    float64 `json:"volume_modifier"`
	RPEMin            int     `json:"rpe_min"`
	RPEMax            int     `json:"rpe_max"`
	Focus             string  `json:"focus"`
	IsDeload          bool    `json:"is_deload"`
}

// PeriodizationPlan lays out a full mesocycle: training weeks followed by
// exactly one deload week.
type PeriodizationPlan struct {
	Model          PeriodizationModel  `json:"model"`
	TrainingWeeks  int                 `json:"training_weeks"`
	MesocycleWeeks int                 `json:"mesocycle_weeks"` // always TrainingWeeks + 1
	Progressions   []WeeklyProgression `json:"progressions"`
	DeloadStrategy DeloadStrategy      `json:"deload_strategy"`
}

// SessionTemplate names one training day and the muscles it targets, in order.
type SessionTemplate struct {
	DayLabel string   `json:"day_label"`
	Focus    string   `json:"focus"`
	Muscles  []Muscle `json:"muscles"`
}

// SplitRecommendation is the outcome of split selection.
type SplitRecommendation struct {
	Split        SplitType   `json:"split"`
	Schedule     []string    `json:"schedule"`
	Alternatives []SplitType `json:"alternatives,omitempty"`
	Rationale    string      `json:"rationale"`
}

// MuscleVolume is the weekly set and frequency target for one muscle.
type MuscleVolume struct {
	Muscle    Muscle `json:"muscle"`
	Sets      int    `json:"sets"`
	Frequency int    `json:"frequency"`
}

// RepPrescription is the output of the rep range calculator for one exercise slot.
type RepPrescription struct {
	MinReps   int      `json:"min_reps"`
	MaxReps   int      `json:"max_reps"`
	TargetRIR int      `json:"target_rir"` // 0-4
	Tempo     string   `json:"tempo"`
	Notes     []string `json:"notes,omitempty"`
}

// ExerciseFatigueProfile is the estimated fatigue footprint of one prescribed
// exercise at a given dose.
type ExerciseFatigueProfile struct {
	SystemicCost       float64            `json:"systemic_cost"`
	LocalCost          map[Muscle]float64 `json:"local_cost"`
	StimulusPerFatigue float64            `json:"stimulus_per_fatigue"`
	RecoveryDays       float64            `json:"recovery_days"`
}

// DetailedExercise is one fully prescribed exercise in a generated session.
type DetailedExercise struct {
	Exercise    ExerciseEntry          `json:"exercise"`
	Sets        int                    `json:"sets"`
	Reps        RepPrescription        `json:"reps"`
	RestSeconds int                    `json:"rest_seconds"`
	Fatigue     ExerciseFatigueProfile `json:"fatigue"`
	Efficiency  string                 `json:"efficiency"` // optimal / acceptable / suboptimal
}

// SessionFatigueSummary reports how hard a built session is relative to the
// trainee's per-session fatigue budget. Advisory only.
type SessionFatigueSummary struct {
	SystemicUsed    float64  `json:"systemic_used"`
	SystemicLimit   float64  `json:"systemic_limit"`
	CapacityUsedPct float64  `json:"capacity_used_pct"`
	AverageSFR      float64  `json:"average_sfr"`
	ExerciseCount   int      `json:"exercise_count"`
	Band            string   `json:"band"` // too_light / sustainable / high_intensity / maximal
	Recommendation  string   `json:"recommendation"`
	Warnings        []string `json:"warnings,omitempty"`
}

// DetailedSession is one generated training day.
type DetailedSession struct {
	Day              int                   `json:"day"` // 0-based day-of-week offset
	DayLabel         string                `json:"day_label"`
	Focus            string                `json:"focus"`
	DayType          DayType               `json:"day_type"`
	Exercises        []DetailedExercise    `json:"exercises"`
	EstimatedMinutes int                   `json:"estimated_minutes"`
	FatigueSummary   SessionFatigueSummary `json:"fatigue_summary"`
}

// MesocycleWeek is one generated week of the program.
type MesocycleWeek struct {
	Week        int               `json:"week"`
	Progression WeeklyProgression `json:"progression"`
	Sessions    []DetailedSession `json:"sessions"`
}

// FullProgramRecommendation is the engine's complete output. This record
// shape is the wire format: there is no other protocol.
type FullProgramRecommendation struct {
	Split          SplitType         `json:"split"`
	WeeklySchedule []string          `json:"weekly_schedule"`
	Plan           PeriodizationPlan `json:"plan"`
	Recovery       RecoveryFactors   `json:"recovery"`
	Volume         []MuscleVolume    `json:"volume"`
	Weeks          []MesocycleWeek   `json:"weeks"`
	Warnings       []string          `json:"warnings,omitempty"`
	Notes          []string          `json:"notes,omitempty"`
}
