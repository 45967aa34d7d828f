package engine

import (
	"fmt"
	"math"

	"github.com/claude/mesocoach/internal/models"
)

// dupRotation is the day-type cycle for daily-undulating weeks.
var dupRotation = []models.DayType{models.DayHypertrophy, models.DayStrength, models.DayPower}

// Generate produces a full periodized program from one request and a catalog
// snapshot. It is the only entry point callers need: pure, synchronous, and
// deterministic for identical inputs. The single returned error class is a
// malformed request; everything else resolves to clamps, fallbacks, and
// advisory warnings on the output.
func Generate(req models.GenerationRequest, catalog []models.ExerciseEntry) (*models.FullProgramRecommendation, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generation request: %w", err)
	}
	profile := &req.Profile

	recovery := ComputeRecoveryFactors(profile)
	split := RecommendSplit(req.DaysPerWeek, profile.Goal, profile.Experience, req.SessionMinutes)
	plan := BuildPeriodizationPlan(profile, recovery)
	volume := DistributeVolume(split.Split, req.DaysPerWeek, profile, recovery, req.LaggingAreas)

	sessionSets := perSessionSets(volume)
	templates := SessionTemplates(split.Split, req.DaysPerWeek)
	offsets := TrainingDayOffsets(req.DaysPerWeek)
	budget := NewFatigueBudget(profile)
	selector := NewSelector(catalog, profile)

	warnings := newWarningList()
	warnings.addAll(recovery.Warnings)
	warnings.addAll(equipmentCoverageWarnings(profile, catalog, templates))

	var (
		weeks      []models.MesocycleWeek
		sfrSum     float64
		sfrSamples int
	)
	for _, prog := range plan.Progressions {
		tracker := NewWeeklyFatigueTracker(profile)
		weekBudget := budget
		if prog.IsDeload {
			// Deload weeks run on half the fatigue budget on top of the
			// reduced volume prescription.
			weekBudget.SystemicLimit /= 2
			weekBudget.LocalLimit /= 2
		}

		week := models.MesocycleWeek{Week: prog.Week, Progression: prog}
		for i, tmpl := range templates {
			dayType := models.DayHypertrophy
			if plan.Model == models.ModelDailyUndulating && !prog.IsDeload {
				dayType = dupRotation[i%len(dupRotation)]
			}

			session, sessionWarnings := buildSession(sessionParams{
				profile:        profile,
				selector:       selector,
				budget:         weekBudget,
				tracker:        tracker,
				template:       tmpl,
				progression:    prog,
				model:          plan.Model,
				progress:       mesocycleProgress(prog.Week, plan.TrainingWeeks),
				dayType:        dayType,
				day:            offsets[i%len(offsets)],
				sessionMinutes: req.SessionMinutes,
				sessionSets:    sessionSets,
			})
			warnings.addAll(sessionWarnings)
			if session.FatigueSummary.ExerciseCount > 0 {
				sfrSum += session.FatigueSummary.AverageSFR
				sfrSamples++
			}
			week.Sessions = append(week.Sessions, session)
		}
		weeks = append(weeks, week)
	}

	if sfrSamples > 0 && sfrSum/float64(sfrSamples) < 0.8 {
		warnings.add("Average stimulus-to-fatigue ratio is below 0.8: the available exercise pool is inefficient for this profile; consider expanding equipment access.")
	}

	notes := []string{
		split.Rationale,
		modelNote(plan),
		fmt.Sprintf("Week %d is a scheduled deload: roughly half volume at RPE 5-6 to dissipate accumulated fatigue.", plan.MesocycleWeeks),
	}
	if len(req.LaggingAreas) > 0 {
		notes = append(notes, fmt.Sprintf("Lagging areas %v received a 15%% volume boost before recovery scaling.", req.LaggingAreas))
	}

	return &models.FullProgramRecommendation{
		Split:          split.Split,
		WeeklySchedule: split.Schedule,
		Plan:           plan,
		Recovery:       recovery,
		Volume:         volume,
		Weeks:          weeks,
		Warnings:       warnings.items,
		Notes:          notes,
	}, nil
}

// mesocycleProgress is the fraction of training weeks completed entering the
// given week; deload weeks report 1.
func mesocycleProgress(week, trainingWeeks int) float64 {
	if week > trainingWeeks {
		return 1
	}
	if trainingWeeks <= 1 {
		return 1
	}
	return float64(week-1) / float64(trainingWeeks-1)
}

// perSessionSets converts weekly volume targets into a per-session
// allocation by dividing by training frequency, rounding up so weekly
// volume is met rather than undershot.
func perSessionSets(volume []models.MuscleVolume) map[models.Muscle]int {
	out := make(map[models.Muscle]int, len(volume))
	for _, v := range volume {
		if v.Sets <= 0 || v.Frequency <= 0 {
			continue
		}
		out[v.Muscle] = int(math.Ceil(float64(v.Sets) / float64(v.Frequency)))
	}
	return out
}

// equipmentCoverageWarnings reports target muscles the catalog cannot serve
// with the trainee's equipment; the selector will fall back, but the trainee
// should know the program is compromised.
func equipmentCoverageWarnings(p *models.Profile, catalog []models.ExerciseEntry, templates []models.SessionTemplate) []string {
	targeted := map[models.Muscle]bool{}
	for _, tmpl := range templates {
		for _, m := range tmpl.Muscles {
			targeted[m] = true
		}
	}

	var out []string
	for _, muscle := range models.AllMuscles {
		if !targeted[muscle] || p.IsInjured(muscle) {
			continue
		}
		covered := false
		for _, ex := range catalog {
			if ex.PrimaryMuscle == muscle && p.HasEquipment(ex.Equipment) {
				covered = true
				break
			}
		}
		if !covered {
			out = append(out, fmt.Sprintf("No available equipment matches any %s exercise; substitutions will ignore the equipment filter.", muscle))
		}
	}
	return out
}

func modelNote(plan models.PeriodizationPlan) string {
	switch plan.Model {
	case models.ModelLinear:
		return "Linear periodization: intensity and volume ramp steadily; ideal while newcomer gains last."
	case models.ModelDailyUndulating:
		return "Daily undulating periodization: hypertrophy, strength, and power days rotate within each week."
	case models.ModelWeeklyUndulating:
		return "Weekly undulating periodization: accumulation and intensification weeks alternate."
	default:
		return "Block periodization: hypertrophy, strength, and peaking blocks in sequence."
	}
}

// warningList keeps insertion order while dropping duplicates, so repeated
// per-week warnings surface once.
type warningList struct {
	items []string
	seen  map[string]bool
}

func newWarningList() *warningList {
	return &warningList{seen: map[string]bool{}}
}

func (w *warningList) add(s string) {
	if s == "" || w.seen[s] {
		return
	}
	w.seen[s] = true
	w.items = append(w.items, s)
}

func (w *warningList) addAll(ss []string) {
	for _, s := range ss {
		w.add(s)
	}
}
