package catalog

import (
	"context"
	"sort"
	"testing"

	"github.com/claude/mesocoach/internal/models"
)

// TestBundledCoversEveryMuscle verifies the compiled-in catalog has at least
// one primary exercise for every muscle, so the selector's last-resort
// fallback always has something to pick.
func TestBundledCoversEveryMuscle(t *testing.T) {
	entries, err := Bundled{}.All(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	byPrimary := map[models.Muscle]int{}
	for _, e := range entries {
		byPrimary[e.PrimaryMuscle]++
	}
	for _, m := range models.AllMuscles {
		if byPrimary[m] == 0 {
			t.Errorf("no bundled exercise trains %s as primary", m)
		}
	}
}

// TestBundledEntriesWellFormed verifies IDs are unique and every entry uses
// known enum values.
func TestBundledEntriesWellFormed(t *testing.T) {
	entries, err := Bundled{}.All(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	seen := map[string]bool{}
	for _, e := range entries {
		if e.ID == "" || e.Name == "" {
			t.Errorf("entry %+v missing id or name", e)
		}
		if seen[e.ID] {
			t.Errorf("duplicate id %s", e.ID)
		}
		seen[e.ID] = true

		if !e.PrimaryMuscle.Valid() {
			t.Errorf("%s: unknown primary muscle %q", e.ID, e.PrimaryMuscle)
		}
		for _, m := range e.SecondaryMuscles {
			if !m.Valid() {
				t.Errorf("%s: unknown secondary muscle %q", e.ID, m)
			}
		}
		if !e.Pattern.Valid() {
			t.Errorf("%s: unknown pattern %q", e.ID, e.Pattern)
		}
		if !e.Equipment.Valid() {
			t.Errorf("%s: unknown equipment %q", e.ID, e.Equipment)
		}
		if e.FatigueRating < 1 || e.FatigueRating > 5 {
			t.Errorf("%s: fatigue rating %d out of range", e.ID, e.FatigueRating)
		}
		if e.Tier.Rank() > models.TierF.Rank() {
			t.Errorf("%s: unknown tier %q", e.ID, e.Tier)
		}
	}
}

// TestBundledSortedAndCopied verifies All returns entries sorted by ID and
// that mutating the result does not leak into later calls.
func TestBundledSortedAndCopied(t *testing.T) {
	ctx := context.Background()
	first, _ := Bundled{}.All(ctx)
	if !sort.SliceIsSorted(first, func(i, j int) bool { return first[i].ID < first[j].ID }) {
		t.Error("entries not sorted by id")
	}

	first[0].Name = "mutated"
	second, _ := Bundled{}.All(ctx)
	if second[0].Name == "mutated" {
		t.Error("All returned a shared slice; callers can corrupt the catalog")
	}
}
