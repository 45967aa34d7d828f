package engine

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/claude/mesocoach/internal/catalog"
	"github.com/claude/mesocoach/internal/models"
)

func fullCatalog(t *testing.T) []models.ExerciseEntry {
	t.Helper()
	entries, err := catalog.Bundled{}.All(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	return entries
}

func validRequest() models.GenerationRequest {
	return models.GenerationRequest{
		Profile: models.Profile{
			Goal: models.GoalBulk, Experience: models.ExperienceIntermediate,
			Age: 30, SleepQuality: 4, StressLevel: 2, TrainingAge: 2,
			Equipment: []models.Equipment{
				models.EquipmentBarbell, models.EquipmentDumbbell,
				models.EquipmentCable, models.EquipmentMachine, models.EquipmentBodyweight,
			},
		},
		DaysPerWeek:    4,
		SessionMinutes: 60,
	}
}

// TestGenerateStructure verifies the overall shape of a generated program:
// one block of weeks matching the plan, sessions matching the schedule, and
// a trailing deload week.
func TestGenerateStructure(t *testing.T) {
	program, err := Generate(validRequest(), fullCatalog(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if program.Split != models.SplitUpperLower {
		t.Errorf("split = %s, want upper_lower for 4 days", program.Split)
	}
	if len(program.Weeks) != program.Plan.MesocycleWeeks {
		t.Fatalf("weeks = %d, want %d", len(program.Weeks), program.Plan.MesocycleWeeks)
	}

	last := program.Weeks[len(program.Weeks)-1]
	if !last.Progression.IsDeload {
		t.Error("final week should be the deload")
	}
	for _, week := range program.Weeks {
		if len(week.Sessions) != 4 {
			t.Errorf("week %d has %d sessions, want 4", week.Week, len(week.Sessions))
		}
	}
	if len(program.Volume) != len(models.AllMuscles) {
		t.Errorf("volume entries = %d, want %d", len(program.Volume), len(models.AllMuscles))
	}
	if len(program.Notes) == 0 {
		t.Error("program should carry explanatory notes")
	}
}

// TestGenerateSessionsWithinTimeBudget verifies no session's estimate
// exceeds the requested session length.
func TestGenerateSessionsWithinTimeBudget(t *testing.T) {
	req := validRequest()
	req.SessionMinutes = 45
	program, err := Generate(req, fullCatalog(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, week := range program.Weeks {
		for _, session := range week.Sessions {
			if session.EstimatedMinutes > req.SessionMinutes {
				t.Errorf("week %d %s: %d minutes exceeds budget %d",
					week.Week, session.DayLabel, session.EstimatedMinutes, req.SessionMinutes)
			}
		}
	}
}

// TestGenerateFirstWeekHasWork verifies the opening week actually prescribes
// exercises with positive sets and sane rep ranges.
func TestGenerateFirstWeekHasWork(t *testing.T) {
	program, err := Generate(validRequest(), fullCatalog(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, session := range program.Weeks[0].Sessions {
		if len(session.Exercises) == 0 {
			t.Errorf("%s has no exercises in week 1", session.DayLabel)
			continue
		}
		for _, ex := range session.Exercises {
			if ex.Sets < 1 {
				t.Errorf("%s: %s has %d sets", session.DayLabel, ex.Exercise.Name, ex.Sets)
			}
			if ex.Reps.MinReps < 1 || ex.Reps.MaxReps <= ex.Reps.MinReps {
				t.Errorf("%s: %s rep range %d-%d invalid", session.DayLabel, ex.Exercise.Name, ex.Reps.MinReps, ex.Reps.MaxReps)
			}
			if ex.RestSeconds <= 0 {
				t.Errorf("%s: %s has no rest prescription", session.DayLabel, ex.Exercise.Name)
			}
		}
	}
}

// TestGenerateDeterministic verifies two generations from the same request
// are byte-for-byte identical.
func TestGenerateDeterministic(t *testing.T) {
	cat := fullCatalog(t)
	a, err := Generate(validRequest(), cat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Generate(validRequest(), cat)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("identical requests produced different programs")
	}
}

// TestGenerateInvalidRequest verifies malformed requests are the one eager
// error path.
func TestGenerateInvalidRequest(t *testing.T) {
	req := validRequest()
	req.DaysPerWeek = 0
	if _, err := Generate(req, fullCatalog(t)); err == nil {
		t.Error("expected error for 0 days per week")
	}

	req = validRequest()
	req.Profile.SleepQuality = 9
	if _, err := Generate(req, fullCatalog(t)); err == nil {
		t.Error("expected error for out-of-range sleep quality")
	}
}

// TestGenerateEquipmentWarnings verifies a trainee with only bands gets
// coverage warnings instead of a failure.
func TestGenerateEquipmentWarnings(t *testing.T) {
	req := validRequest()
	req.Profile.Equipment = []models.Equipment{models.EquipmentBand}
	program, err := Generate(req, fullCatalog(t))
	if err != nil {
		t.Fatalf("generation should degrade, not fail: %v", err)
	}

	found := false
	for _, w := range program.Warnings {
		if strings.Contains(w, "equipment") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected equipment coverage warnings, got %v", program.Warnings)
	}
}

// TestGenerateDUPRotation verifies daily-undulating weeks rotate day types
// while the deload week stays hypertrophy-flavored.
func TestGenerateDUPRotation(t *testing.T) {
	program, err := Generate(validRequest(), fullCatalog(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if program.Plan.Model != models.ModelDailyUndulating {
		t.Fatalf("model = %s, want daily_undulating for an intermediate bulk", program.Plan.Model)
	}

	week := program.Weeks[0]
	wantTypes := []models.DayType{models.DayHypertrophy, models.DayStrength, models.DayPower, models.DayHypertrophy}
	for i, session := range week.Sessions {
		if session.DayType != wantTypes[i] {
			t.Errorf("session %d day type = %s, want %s", i, session.DayType, wantTypes[i])
		}
	}

	deload := program.Weeks[len(program.Weeks)-1]
	for _, session := range deload.Sessions {
		if session.DayType != models.DayHypertrophy {
			t.Errorf("deload session %s day type = %s, want hypertrophy", session.DayLabel, session.DayType)
		}
	}
}

// TestWarningListDeduplicates verifies repeated warnings surface once in
// insertion order.
func TestWarningListDeduplicates(t *testing.T) {
	w := newWarningList()
	w.add("first")
	w.add("second")
	w.add("first")
	w.addAll([]string{"second", "third", ""})

	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(w.items, want) {
		t.Errorf("items = %v, want %v", w.items, want)
	}
}
