package engine

import (
	"fmt"

	"github.com/claude/mesocoach/internal/models"
)

// Efficiency labels assigned when an exercise passes the budget check.
const (
	EfficiencyOptimal    = "optimal"
	EfficiencyAcceptable = "acceptable"
	EfficiencySuboptimal = "suboptimal"
)

// Rejection reasons returned by CanAddExercise.
const (
	RejectSystemicLimit = "systemic-limit"
	RejectLocalLimit    = "local-limit"
	RejectLowSFR        = "sfr-below-threshold"
)

// AddCheck is the outcome of a budget check for one candidate exercise.
type AddCheck struct {
	Allowed    bool
	Reason     string // set when rejected
	Efficiency string // set when allowed
	Warning    string // set once when the session nears its systemic limit
}

// SessionFatigueManager accumulates fatigue across one session build. It is
// created at session-build start, mutated only through AddExercise, and
// discarded when the session is done. Not safe for concurrent use; each
// generation call owns its own instance.
type SessionFatigueManager struct {
	budget   FatigueBudget
	systemic float64
	local    map[models.Muscle]float64
	count    int
	avgSFR   float64
	warned   bool
	warnings []string
}

// NewSessionFatigueManager creates an empty manager for one session.
func NewSessionFatigueManager(budget FatigueBudget) *SessionFatigueManager {
	return &SessionFatigueManager{
		budget: budget,
		local:  make(map[models.Muscle]float64),
	}
}

// CanAddExercise checks a candidate against the remaining budget without
// mutating any state. Rejections name the binding constraint.
func (m *SessionFatigueManager) CanAddExercise(fp models.ExerciseFatigueProfile) AddCheck {
	if m.systemic+fp.SystemicCost > float64(m.budget.SystemicLimit) {
		return AddCheck{Reason: RejectSystemicLimit}
	}
	// Iterate in fixed muscle order so the reported muscle is deterministic.
	for _, muscle := range models.AllMuscles {
		cost, ok := fp.LocalCost[muscle]
		if !ok {
			continue
		}
		if m.local[muscle]+cost > float64(m.budget.LocalLimit) {
			return AddCheck{Reason: fmt.Sprintf("%s:%s", RejectLocalLimit, muscle)}
		}
	}
	if fp.StimulusPerFatigue < m.budget.MinSFRThreshold {
		return AddCheck{Reason: RejectLowSFR}
	}

	check := AddCheck{Allowed: true, Efficiency: EfficiencySuboptimal}
	switch {
	case fp.StimulusPerFatigue >= 1.0:
		check.Efficiency = EfficiencyOptimal
	case fp.StimulusPerFatigue >= 0.8:
		check.Efficiency = EfficiencyAcceptable
	}

	if !m.warned && m.systemic+fp.SystemicCost > float64(m.budget.SystemicLimit)*m.budget.WarningThreshold {
		m.warned = true
		check.Warning = "Session is approaching its systemic fatigue limit; remaining work should favor low-fatigue exercises."
		m.warnings = append(m.warnings, check.Warning)
	}
	return check
}

// AddExercise folds an accepted exercise into the running totals. Callers
// must only invoke it after CanAddExercise allowed the same profile.
func (m *SessionFatigueManager) AddExercise(fp models.ExerciseFatigueProfile) {
	m.systemic += fp.SystemicCost
	for muscle, cost := range fp.LocalCost {
		m.local[muscle] += cost
	}
	m.count++
	// Incremental mean keeps the average exact without storing history.
	m.avgSFR += (fp.StimulusPerFatigue - m.avgSFR) / float64(m.count)
}

// AddSets folds a set-count increase for an already-accepted exercise into
// the totals. The exercise count and SFR mean stay put: the session holds
// the same exercises, just with more sets on one of them.
func (m *SessionFatigueManager) AddSets(delta models.ExerciseFatigueProfile) {
	m.systemic += delta.SystemicCost
	for muscle, cost := range delta.LocalCost {
		m.local[muscle] += cost
	}
}

// SystemicUsed returns the accumulated systemic cost.
func (m *SessionFatigueManager) SystemicUsed() float64 { return m.systemic }

// AverageSFR returns the running mean SFR of accepted exercises.
func (m *SessionFatigueManager) AverageSFR() float64 { return m.avgSFR }

// ExerciseCount returns how many exercises have been accepted.
func (m *SessionFatigueManager) ExerciseCount() int { return m.count }

// Summary classifies total capacity usage into advisory bands. It never
// gates anything; the caller renders it.
func (m *SessionFatigueManager) Summary() models.SessionFatigueSummary {
	usedPct := 0.0
	if m.budget.SystemicLimit > 0 {
		usedPct = m.systemic / float64(m.budget.SystemicLimit) * 100
	}

	band, rec := "maximal", "Session is at the edge of the fatigue budget; do not add work and monitor recovery closely."
	switch {
	case usedPct < 60:
		band, rec = "too_light", "Session leaves substantial capacity unused; consider adding a set or an exercise."
	case usedPct < 80:
		band, rec = "sustainable", "Session load is sustainable week over week."
	case usedPct < 95:
		band, rec = "high_intensity", "Session is demanding; keep an eye on sleep and soreness before repeating."
	}

	return models.SessionFatigueSummary{
		SystemicUsed:    roundTo(m.systemic, 2),
		SystemicLimit:   float64(m.budget.SystemicLimit),
		CapacityUsedPct: roundTo(usedPct, 1),
		AverageSFR:      roundTo(m.avgSFR, 3),
		ExerciseCount:   m.count,
		Band:            band,
		Recommendation:  rec,
		Warnings:        m.warnings,
	}
}
