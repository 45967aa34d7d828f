package models

import "fmt"

// Goal is the trainee's current training goal.
type Goal string

const (
	GoalCut      Goal = "cut"
	GoalBulk     Goal = "bulk"
	GoalMaintain Goal = "maintain"
)

// Valid reports whether g is a known goal.
func (g Goal) Valid() bool {
	switch g {
	case GoalCut, GoalBulk, GoalMaintain:
		return true
	}
	return false
}

// Experience is the trainee's training experience bracket.
type Experience string

const (
	ExperienceNovice       Experience = "novice"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

// Valid reports whether e is a known experience level.
func (e Experience) Valid() bool {
	switch e {
	case ExperienceNovice, ExperienceIntermediate, ExperienceAdvanced:
		return true
	}
	return false
}

// BodyComposition is an optional snapshot from a DEXA scan or similar.
type BodyComposition struct {
	WeightKg    float64 `json:"weight_kg" yaml:"weight_kg"`
	BodyFatPct  float64 `json:"body_fat_pct" yaml:"body_fat_pct"`
	LeanMassKg  float64 `json:"lean_mass_kg" yaml:"lean_mass_kg"`
	MeasuredISO string  `json:"measured_iso,omitempty" yaml:"measured_iso,omitempty"`
}

// Profile is the immutable trainee input to program generation.
type Profile struct {
	Goal            Goal             `json:"goal" yaml:"goal"`
	Experience      Experience       `json:"experience" yaml:"experience"`
	Age             int              `json:"age" yaml:"age"`
	SleepQuality    int              `json:"sleep_quality" yaml:"sleep_quality"` // 1-5
	StressLevel     int              `json:"stress_level" yaml:"stress_level"`   // 1-5
	TrainingAge     float64          `json:"training_age_years" yaml:"training_age_years"`
	HeightCm        float64          `json:"height_cm,omitempty" yaml:"height_cm,omitempty"`
	Equipment       []Equipment      `json:"equipment" yaml:"equipment"`
	InjuryHistory   []Muscle         `json:"injury_history,omitempty" yaml:"injury_history,omitempty"`
	BodyComposition *BodyComposition `json:"body_composition,omitempty" yaml:"body_composition,omitempty"`
}

// HasEquipment reports whether eq is available to the trainee.
// An empty equipment list means "anything goes".
func (p *Profile) HasEquipment(eq Equipment) bool {
	if len(p.Equipment) == 0 {
		return true
	}
	for _, e := range p.Equipment {
		if e == eq {
			return true
		}
	}
	return false
}

// IsInjured reports whether m appears in the trainee's injury history.
func (p *Profile) IsInjured(m Muscle) bool {
	for _, im := range p.InjuryHistory {
		if im == m {
			return true
		}
	}
	return false
}

// Validate rejects malformed profiles before they reach the engine.
// This is the only eager failure surface: everything downstream clamps
// rather than errors.
func (p *Profile) Validate() error {
	if !p.Goal.Valid() {
		return fmt.Errorf("unknown goal %q", p.Goal)
	}
	if !p.Experience.Valid() {
		return fmt.Errorf("unknown experience %q", p.Experience)
	}
	if p.Age <= 0 || p.Age > 120 {
		return fmt.Errorf("age %d out of range", p.Age)
	}
	if p.SleepQuality < 1 || p.SleepQuality > 5 {
		return fmt.Errorf("sleep quality %d out of range 1-5", p.SleepQuality)
	}
	if p.StressLevel < 1 || p.StressLevel > 5 {
		return fmt.Errorf("stress level %d out of range 1-5", p.StressLevel)
	}
	if p.TrainingAge < 0 {
		return fmt.Errorf("training age %.1f is negative", p.TrainingAge)
	}
	for _, e := range p.Equipment {
		if !e.Valid() {
			return fmt.Errorf("unknown equipment %q", e)
		}
	}
	for _, m := range p.InjuryHistory {
		if !m.Valid() {
			return fmt.Errorf("unknown muscle %q in injury history", m)
		}
	}
	return nil
}

// GenerationRequest bundles a profile with scheduling constraints and
// optional hints for one generation call.
type GenerationRequest struct {
	Profile        Profile  `json:"profile" yaml:"profile"`
	DaysPerWeek    int      `json:"days_per_week" yaml:"days_per_week"`
	SessionMinutes int      `json:"session_minutes" yaml:"session_minutes"`
	LaggingAreas   []string `json:"lagging_areas,omitempty" yaml:"lagging_areas,omitempty"`
}

// Validate checks the request envelope and the embedded profile.
func (r *GenerationRequest) Validate() error {
	if err := r.Profile.Validate(); err != nil {
		return err
	}
	if r.DaysPerWeek < 1 || r.DaysPerWeek > 7 {
		return fmt.Errorf("days per week %d out of range 1-7", r.DaysPerWeek)
	}
	if r.SessionMinutes < 20 {
		return fmt.Errorf("session minutes %d below minimum 20", r.SessionMinutes)
	}
	return nil
}
