package catalog

import (
	"context"
	"reflect"
	"testing"

	"github.com/claude/mesocoach/internal/models"
)

func openCache(t *testing.T) *SQLiteCache {
	t.Helper()
	cache, err := OpenSQLiteCache(t.TempDir())
	if err != nil {
		t.Fatalf("opening cache: %v", err)
	}
	t.Cleanup(func() { cache.Close() })
	return cache
}

// TestSQLiteCacheEmptyFallsBack verifies an empty cache serves the bundled
// catalog instead of nothing.
func TestSQLiteCacheEmptyFallsBack(t *testing.T) {
	ctx := context.Background()
	cache := openCache(t)

	entries, err := cache.All(ctx)
	if err != nil {
		t.Fatalf("reading empty cache: %v", err)
	}
	bundled, _ := Bundled{}.All(ctx)
	if len(entries) != len(bundled) {
		t.Errorf("empty cache returned %d entries, want bundled %d", len(entries), len(bundled))
	}
}

// TestSQLiteCacheRoundTrip verifies Refresh then All returns the same
// entries, sorted by id, with secondary muscles intact.
func TestSQLiteCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	cache := openCache(t)

	in := []models.ExerciseEntry{
		{
			ID: "db-curl", Name: "Dumbbell Curl",
			PrimaryMuscle: models.MuscleBiceps,
			Pattern:       models.PatternIsolation, Equipment: models.EquipmentDumbbell,
			Difficulty: models.DifficultyBeginner, FatigueRating: 1, Tier: models.TierB,
			TierScores: models.TierScores{Stimulus: 3, TechDemand: 1, Progression: 3},
		},
		{
			ID: "bb-bench-press", Name: "Barbell Bench Press",
			PrimaryMuscle:    models.MuscleChest,
			SecondaryMuscles: []models.Muscle{models.MuscleTriceps, models.MuscleFrontDelts},
			Pattern:          models.PatternHorizontalPush, Equipment: models.EquipmentBarbell,
			Difficulty: models.DifficultyIntermediate, FatigueRating: 4, Tier: models.TierS,
			TierScores: models.TierScores{Stimulus: 5, TechDemand: 3, Progression: 5},
		},
	}
	if err := cache.Refresh(ctx, in); err != nil {
		t.Fatalf("refreshing cache: %v", err)
	}

	out, err := cache.All(ctx)
	if err != nil {
		t.Fatalf("reading cache: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("cache returned %d entries, want 2", len(out))
	}
	if out[0].ID != "bb-bench-press" || out[1].ID != "db-curl" {
		t.Errorf("entries not sorted by id: %s, %s", out[0].ID, out[1].ID)
	}
	if !reflect.DeepEqual(out[0], in[1]) {
		t.Errorf("bench entry changed in round trip:\n got %+v\nwant %+v", out[0], in[1])
	}
	if out[1].SecondaryMuscles != nil {
		t.Errorf("curl secondaries = %v, want none", out[1].SecondaryMuscles)
	}
}

// TestSQLiteCacheRefreshReplaces verifies a second Refresh drops entries from
// the first.
func TestSQLiteCacheRefreshReplaces(t *testing.T) {
	ctx := context.Background()
	cache := openCache(t)

	old := models.ExerciseEntry{
		ID: "stale", Name: "Stale Exercise",
		PrimaryMuscle: models.MuscleCore,
		Pattern:       models.PatternIsolation, Equipment: models.EquipmentBodyweight,
		Difficulty: models.DifficultyBeginner, FatigueRating: 1, Tier: models.TierC,
	}
	fresh := models.ExerciseEntry{
		ID: "fresh", Name: "Fresh Exercise",
		PrimaryMuscle: models.MuscleCore,
		Pattern:       models.PatternIsolation, Equipment: models.EquipmentBodyweight,
		Difficulty: models.DifficultyBeginner, FatigueRating: 1, Tier: models.TierC,
	}

	if err := cache.Refresh(ctx, []models.ExerciseEntry{old}); err != nil {
		t.Fatal(err)
	}
	if err := cache.Refresh(ctx, []models.ExerciseEntry{fresh}); err != nil {
		t.Fatal(err)
	}

	out, err := cache.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].ID != "fresh" {
		t.Errorf("cache = %+v, want only the fresh entry", out)
	}
}
