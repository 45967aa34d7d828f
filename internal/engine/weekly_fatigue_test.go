package engine

import (
	"testing"

	"github.com/claude/mesocoach/internal/models"
)

func trackerProfile() *models.Profile {
	return &models.Profile{
		Goal: models.GoalMaintain, Experience: models.ExperienceIntermediate,
		Age: 30, SleepQuality: 3, StressLevel: 3, TrainingAge: 2,
	}
}

// TestTrackerFreshStart verifies every muscle starts fully recovered with no
// residual fatigue.
func TestTrackerFreshStart(t *testing.T) {
	tracker := NewWeeklyFatigueTracker(trackerProfile())
	for _, m := range models.AllMuscles {
		r := tracker.CanTrainMuscle(m, 0, 0)
		if !r.Ready {
			t.Errorf("%s not ready on a fresh tracker", m)
		}
		if r.Residual != 0 {
			t.Errorf("%s residual = %v, want 0", m, r.Residual)
		}
		if r.VolumeScale != 1.0 {
			t.Errorf("%s volume scale = %v, want 1.0", m, r.VolumeScale)
		}
	}
}

// TestMuscleRecoveryRateModifiers verifies fiber dominance and age shift the
// daily recovery rate in the expected directions.
func TestMuscleRecoveryRateModifiers(t *testing.T) {
	p := trackerProfile()

	// Baseline at age 30 / sleep 3: 30 points per day for mixed-fiber muscles.
	if rate := muscleRecoveryRate(p, models.MuscleQuads); !approxEqual(rate, 30) {
		t.Errorf("quads rate = %v, want 30", rate)
	}
	// Fast-twitch muscles recover slower, slow-twitch faster.
	if rate := muscleRecoveryRate(p, models.MuscleChest); !approxEqual(rate, 27) {
		t.Errorf("chest rate = %v, want 27", rate)
	}
	if rate := muscleRecoveryRate(p, models.MuscleCalves); !approxEqual(rate, 33) {
		t.Errorf("calves rate = %v, want 33", rate)
	}

	older := trackerProfile()
	older.Age = 60
	if rate := muscleRecoveryRate(older, models.MuscleQuads); !approxEqual(rate, 22) {
		t.Errorf("age 60 quads rate = %v, want 22", rate)
	}
}

// TestTrackerRecordThenDecay verifies a heavily trained muscle is blocked the
// same day, restricted the next, and recovered after two days of decay.
func TestTrackerRecordThenDecay(t *testing.T) {
	tracker := NewWeeklyFatigueTracker(trackerProfile())
	tracker.RecordTraining(models.MuscleChest, 0, 60)

	sameDay := tracker.CanTrainMuscle(models.MuscleChest, 0, 20)
	if sameDay.Ready {
		t.Error("chest should not be ready the same day after 60 fatigue points")
	}
	if sameDay.VolumeScale != 0 {
		t.Errorf("same-day volume scale = %v, want 0 (skip)", sameDay.VolumeScale)
	}

	// Chest recovers 27/day: residual 33 after one day.
	nextDay := tracker.CanTrainMuscle(models.MuscleChest, 1, 20)
	if nextDay.Ready {
		t.Error("chest should still be above the ready threshold after one day")
	}
	if nextDay.Residual != 33 {
		t.Errorf("next-day residual = %v, want 33", nextDay.Residual)
	}
	if nextDay.VolumeScale != 0.5 {
		t.Errorf("next-day volume scale = %v, want 0.5", nextDay.VolumeScale)
	}
	if nextDay.DaysUntilReady != 0.5 {
		t.Errorf("days until ready = %v, want 0.5", nextDay.DaysUntilReady)
	}

	// Residual 6 after two days: trainable at full volume.
	twoDays := tracker.CanTrainMuscle(models.MuscleChest, 2, 20)
	if !twoDays.Ready {
		t.Error("chest should be ready after two days")
	}
	if twoDays.VolumeScale != 1.0 {
		t.Errorf("two-day volume scale = %v, want 1.0", twoDays.VolumeScale)
	}
}

// TestTrackerProjectionWhenReady verifies a ready muscle projects the
// recovery time of the planned load so callers can place the next exposure.
func TestTrackerProjectionWhenReady(t *testing.T) {
	tracker := NewWeeklyFatigueTracker(trackerProfile())
	r := tracker.CanTrainMuscle(models.MuscleChest, 0, 60)
	if !r.Ready {
		t.Fatal("fresh chest should be ready")
	}
	// (0 + 60 - 25) / 27 per day = 1.30 days, ceiled to half days.
	if r.DaysUntilReady != 1.5 {
		t.Errorf("projected days until ready = %v, want 1.5", r.DaysUntilReady)
	}
}

// TestTrackerAccumulation verifies training again before full recovery
// stacks new fatigue on top of the decayed residual.
func TestTrackerAccumulation(t *testing.T) {
	tracker := NewWeeklyFatigueTracker(trackerProfile())
	tracker.RecordTraining(models.MuscleQuads, 0, 40)
	tracker.RecordTraining(models.MuscleQuads, 1, 40) // residual 10 + 40 = 50

	r := tracker.CanTrainMuscle(models.MuscleQuads, 1, 0)
	if r.Residual != 50 {
		t.Errorf("stacked residual = %v, want 50", r.Residual)
	}
	if r.VolumeScale != 0 {
		t.Errorf("volume scale = %v, want 0 at residual 50", r.VolumeScale)
	}
}
