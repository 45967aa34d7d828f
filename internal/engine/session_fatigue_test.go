package engine

import (
	"strings"
	"testing"

	"github.com/claude/mesocoach/internal/models"
)

func testBudget() FatigueBudget {
	return FatigueBudget{SystemicLimit: 20, LocalLimit: 30, MinSFRThreshold: 0.6, WarningThreshold: 0.8}
}

func fatigueOf(systemic float64, muscle models.Muscle, local, sfr float64) models.ExerciseFatigueProfile {
	return models.ExerciseFatigueProfile{
		SystemicCost:       systemic,
		LocalCost:          map[models.Muscle]float64{muscle: local},
		StimulusPerFatigue: sfr,
	}
}

// TestSessionFatigueSystemicLimit verifies exercises are accepted up to the
// systemic ceiling and rejected once the next addition would cross it.
func TestSessionFatigueSystemicLimit(t *testing.T) {
	mgr := NewSessionFatigueManager(testBudget())
	fp := fatigueOf(10, models.MuscleChest, 5, 1.0)

	for i := 0; i < 2; i++ {
		check := mgr.CanAddExercise(fp)
		if !check.Allowed {
			t.Fatalf("addition %d rejected: %s", i+1, check.Reason)
		}
		mgr.AddExercise(fp)
	}

	check := mgr.CanAddExercise(fp)
	if check.Allowed {
		t.Fatal("third addition should exceed the systemic limit")
	}
	if check.Reason != RejectSystemicLimit {
		t.Errorf("reason = %q, want %q", check.Reason, RejectSystemicLimit)
	}
}

// TestSessionFatigueLocalLimit verifies the per-muscle ceiling binds
// independently of the systemic one and names the offending muscle.
func TestSessionFatigueLocalLimit(t *testing.T) {
	mgr := NewSessionFatigueManager(testBudget())
	fp := fatigueOf(1, models.MuscleChest, 20, 1.0)

	mgr.AddExercise(fp)
	check := mgr.CanAddExercise(fp)
	if check.Allowed {
		t.Fatal("second addition should exceed the chest local limit")
	}
	if !strings.HasPrefix(check.Reason, RejectLocalLimit) || !strings.Contains(check.Reason, "chest") {
		t.Errorf("reason = %q, want %s:chest", check.Reason, RejectLocalLimit)
	}
}

// TestSessionFatigueSFRThreshold verifies inefficient exercises are rejected
// even with budget to spare.
func TestSessionFatigueSFRThreshold(t *testing.T) {
	mgr := NewSessionFatigueManager(testBudget())
	check := mgr.CanAddExercise(fatigueOf(1, models.MuscleChest, 5, 0.5))
	if check.Allowed {
		t.Fatal("SFR 0.5 should be rejected below threshold 0.6")
	}
	if check.Reason != RejectLowSFR {
		t.Errorf("reason = %q, want %q", check.Reason, RejectLowSFR)
	}
}

// TestSessionFatigueEfficiencyBands verifies the efficiency label assigned
// to accepted exercises.
func TestSessionFatigueEfficiencyBands(t *testing.T) {
	mgr := NewSessionFatigueManager(testBudget())
	tests := []struct {
		sfr  float64
		want string
	}{
		{1.2, EfficiencyOptimal},
		{0.9, EfficiencyAcceptable},
		{0.65, EfficiencySuboptimal},
	}
	for _, tt := range tests {
		check := mgr.CanAddExercise(fatigueOf(0.1, models.MuscleChest, 0.1, tt.sfr))
		if !check.Allowed {
			t.Fatalf("SFR %v unexpectedly rejected: %s", tt.sfr, check.Reason)
		}
		if check.Efficiency != tt.want {
			t.Errorf("SFR %v efficiency = %q, want %q", tt.sfr, check.Efficiency, tt.want)
		}
	}
}

// TestSessionFatigueWarningOnce verifies the near-limit warning fires exactly
// once per session.
func TestSessionFatigueWarningOnce(t *testing.T) {
	mgr := NewSessionFatigueManager(testBudget())
	mgr.AddExercise(fatigueOf(15, models.MuscleChest, 5, 1.0))

	// 15 + 2 = 17 > 16 (80% of 20): warning fires.
	first := mgr.CanAddExercise(fatigueOf(2, models.MuscleBack, 5, 1.0))
	if first.Warning == "" {
		t.Error("expected a near-limit warning on the first crossing")
	}
	second := mgr.CanAddExercise(fatigueOf(2, models.MuscleBack, 5, 1.0))
	if second.Warning != "" {
		t.Error("warning should not repeat within one session")
	}
}

// TestSessionFatigueAverageSFR verifies the running mean over accepted
// exercises.
func TestSessionFatigueAverageSFR(t *testing.T) {
	mgr := NewSessionFatigueManager(testBudget())
	mgr.AddExercise(fatigueOf(1, models.MuscleChest, 1, 1.0))
	mgr.AddExercise(fatigueOf(1, models.MuscleBack, 1, 0.5))

	if got := mgr.AverageSFR(); got != 0.75 {
		t.Errorf("average SFR = %v, want 0.75", got)
	}
	if mgr.ExerciseCount() != 2 {
		t.Errorf("exercise count = %d, want 2", mgr.ExerciseCount())
	}
}

// TestSessionFatigueSummaryBands verifies capacity usage maps to the right
// advisory band.
func TestSessionFatigueSummaryBands(t *testing.T) {
	tests := []struct {
		systemic float64
		want     string
	}{
		{5, "too_light"},
		{14, "sustainable"},
		{17, "high_intensity"},
		{19.5, "maximal"},
	}
	for _, tt := range tests {
		mgr := NewSessionFatigueManager(testBudget())
		mgr.AddExercise(fatigueOf(tt.systemic, models.MuscleChest, 1, 1.0))
		if s := mgr.Summary(); s.Band != tt.want {
			t.Errorf("systemic %v: band = %q, want %q", tt.systemic, s.Band, tt.want)
		}
	}
}

// TestAddSetsLeavesExerciseStatsAlone verifies a set increment consumes
// budget without inflating the exercise count or the SFR mean.
func TestAddSetsLeavesExerciseStatsAlone(t *testing.T) {
	mgr := NewSessionFatigueManager(testBudget())
	mgr.AddExercise(fatigueOf(10, models.MuscleChest, 5, 1.0))
	mgr.AddSets(fatigueOf(3, models.MuscleChest, 2, 1.0))

	if mgr.SystemicUsed() != 13 {
		t.Errorf("systemic = %v, want 13", mgr.SystemicUsed())
	}
	if mgr.ExerciseCount() != 1 {
		t.Errorf("ExerciseCount = %d, want 1", mgr.ExerciseCount())
	}
	if mgr.AverageSFR() != 1.0 {
		t.Errorf("AverageSFR = %v, want 1.0", mgr.AverageSFR())
	}

	// The added sets still count against the local limit (30): one more
	// increment of 24 on chest must be rejected.
	check := mgr.CanAddExercise(fatigueOf(1, models.MuscleChest, 24, 1.0))
	if check.Allowed {
		t.Error("local limit should account for redistributed sets")
	}
}
