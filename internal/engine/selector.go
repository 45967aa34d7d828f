package engine

import (
	"sort"

	"github.com/claude/mesocoach/internal/models"
)

// Per-exercise set caps during greedy allocation.
const (
	maxSetsCompound  = 4
	maxSetsIsolation = 3
)

// Selection is one exercise chosen for a session with its allocated sets.
type Selection struct {
	Exercise   models.ExerciseEntry
	Sets       int
	Fatigue    models.ExerciseFatigueProfile
	Efficiency string
	Position   int
}

// Selector picks exercises for a target muscle against a running session
// fatigue budget.
type Selector struct {
	catalog []models.ExerciseEntry
	profile *models.Profile
}

// NewSelector creates a selector over a catalog snapshot. The catalog is
// read-only for the lifetime of the generation call.
func NewSelector(catalog []models.ExerciseEntry, profile *models.Profile) *Selector {
	return &Selector{catalog: catalog, profile: profile}
}

// SelectForMuscle picks exercises for the muscle and greedily allocates
// setsNeeded across them while the fatigue manager keeps accepting work.
// reps and rir are the representative dose used for fatigue estimation;
// startPosition is the 1-based slot of the first pick.
//
// The candidate filter relaxes progressively (difficulty, then equipment,
// then everything but the muscle), so the result is never empty for a
// muscle the catalog covers, though sets may go unallocated when the
// budget is spent.
func (s *Selector) SelectForMuscle(muscle models.Muscle, setsNeeded, startPosition, reps, rir int, mgr *SessionFatigueManager) []Selection {
	candidates := s.candidates(muscle)
	if len(candidates) == 0 || setsNeeded <= 0 {
		return nil
	}
	s.rank(candidates, startPosition)

	var chosen []Selection
	remaining := setsNeeded
	position := startPosition

	for i := range candidates {
		if remaining <= 0 {
			break
		}
		ex := candidates[i]
		setCap := maxSetsIsolation
		if ex.Pattern.IsCompound() {
			setCap = maxSetsCompound
		}

		// Try the full allocation first, shrinking until the budget accepts.
		for sets := min(setCap, remaining); sets >= 1; sets-- {
			fp := CalculateExerciseFatigue(&ex, sets, reps, rir, position)
			check := mgr.CanAddExercise(fp)
			if !check.Allowed {
				continue
			}
			mgr.AddExercise(fp)
			chosen = append(chosen, Selection{
				Exercise:   ex,
				Sets:       sets,
				Fatigue:    fp,
				Efficiency: check.Efficiency,
				Position:   position,
			})
			remaining -= sets
			position++
			break
		}
	}

	remaining = s.redistribute(chosen, remaining, reps, rir, mgr)
	return chosen
}

// redistribute hands leftover sets round-robin to already-chosen exercises,
// one at a time, still checking each increment against the budget. Returns
// the sets that could not be placed.
func (s *Selector) redistribute(chosen []Selection, remaining, reps, rir int, mgr *SessionFatigueManager) int {
	for remaining > 0 {
		placed := false
		for i := range chosen {
			if remaining <= 0 {
				break
			}
			sel := &chosen[i]
			grown := CalculateExerciseFatigue(&sel.Exercise, sel.Sets+1, reps, rir, sel.Position)
			delta := models.ExerciseFatigueProfile{
				SystemicCost:       grown.SystemicCost - sel.Fatigue.SystemicCost,
				LocalCost:          make(map[models.Muscle]float64, len(grown.LocalCost)),
				StimulusPerFatigue: grown.StimulusPerFatigue,
				RecoveryDays:       grown.RecoveryDays,
			}
			for m, c := range grown.LocalCost {
				delta.LocalCost[m] = c - sel.Fatigue.LocalCost[m]
			}
			if !mgr.CanAddExercise(delta).Allowed {
				continue
			}
			mgr.AddSets(delta)
			sel.Sets++
			sel.Fatigue = grown
			remaining--
			placed = true
		}
		if !placed {
			break
		}
	}
	return remaining
}

// candidates filters the catalog for the muscle with cascading fallbacks.
func (s *Selector) candidates(muscle models.Muscle) []models.ExerciseEntry {
	strict := s.filter(muscle, true, true)
	if len(strict) > 0 {
		return strict
	}
	noDifficulty := s.filter(muscle, false, true)
	if len(noDifficulty) > 0 {
		return noDifficulty
	}
	noEquipment := s.filter(muscle, false, false)
	if len(noEquipment) > 0 {
		return noEquipment
	}
	// Last resort: anything that trains the muscle at all.
	var any []models.ExerciseEntry
	for _, ex := range s.catalog {
		if ex.PrimaryMuscle == muscle {
			any = append(any, ex)
		}
	}
	return any
}

func (s *Selector) filter(muscle models.Muscle, applyDifficulty, applyEquipment bool) []models.ExerciseEntry {
	var out []models.ExerciseEntry
	for _, ex := range s.catalog {
		if ex.PrimaryMuscle != muscle {
			continue
		}
		if s.hitsInjury(&ex) {
			continue
		}
		if applyEquipment && !s.profile.HasEquipment(ex.Equipment) {
			continue
		}
		// Top-tier exercises are worth learning, so S and A bypass the
		// difficulty gate.
		if applyDifficulty && !s.difficultyOK(ex.Difficulty) && ex.Tier.Rank() > models.TierA.Rank() {
			continue
		}
		out = append(out, ex)
	}
	return out
}

func (s *Selector) hitsInjury(ex *models.ExerciseEntry) bool {
	if s.profile.IsInjured(ex.PrimaryMuscle) {
		return true
	}
	for _, m := range ex.SecondaryMuscles {
		if s.profile.IsInjured(m) {
			return true
		}
	}
	return false
}

func (s *Selector) difficultyOK(d models.Difficulty) bool {
	switch s.profile.Experience {
	case models.ExperienceNovice:
		return d == models.DifficultyBeginner
	case models.ExperienceIntermediate:
		return d != models.DifficultyAdvanced
	}
	return true
}

// rank orders candidates: hypertrophy tier first, compounds before isolation
// near the session start, then higher SFR. Name breaks ties so the order is
// stable across runs.
func (s *Selector) rank(candidates []models.ExerciseEntry, startPosition int) {
	earlySession := startPosition <= 2
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Tier.Rank() != b.Tier.Rank() {
			return a.Tier.Rank() < b.Tier.Rank()
		}
		if earlySession && a.Pattern.IsCompound() != b.Pattern.IsCompound() {
			return a.Pattern.IsCompound()
		}
		sfrA, sfrB := EstimateSFR(&a, startPosition), EstimateSFR(&b, startPosition)
		if sfrA != sfrB {
			return sfrA > sfrB
		}
		return a.Name < b.Name
	})
}
