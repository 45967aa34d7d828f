package engine

import (
	"fmt"

	"github.com/claude/mesocoach/internal/models"
)

// trainingDayOffsets spreads n sessions across a 7-day week, leaving rest
// days where the split expects them. Indexed by daysPerWeek.
var trainingDayOffsets = map[int][]int{
	1: {0},
	2: {0, 3},
	3: {0, 2, 4},
	4: {0, 1, 3, 4},
	5: {0, 1, 2, 4, 5},
	6: {0, 1, 2, 3, 4, 5},
	7: {0, 1, 2, 3, 4, 5, 6},
}

// TrainingDayOffsets returns the day-of-week offsets for daysPerWeek sessions.
func TrainingDayOffsets(daysPerWeek int) []int {
	if offsets, ok := trainingDayOffsets[clampInt(daysPerWeek, 1, 7)]; ok {
		return offsets
	}
	return trainingDayOffsets[3]
}

// RecommendSplit picks a weekly split for the given schedule. Short sessions
// favor full-body training because per-session warmup overhead is amortized
// over more muscles.
func RecommendSplit(daysPerWeek int, goal models.Goal, experience models.Experience, sessionMinutes int) models.SplitRecommendation {
	daysPerWeek = clampInt(daysPerWeek, 1, 7)

	var rec models.SplitRecommendation
	switch {
	case daysPerWeek <= 2:
		rec = models.SplitRecommendation{
			Split:     models.SplitFullBody,
			Rationale: fmt.Sprintf("%d days/week: full-body sessions hit every muscle with the highest practical frequency.", daysPerWeek),
		}
	case daysPerWeek == 3:
		rec = models.SplitRecommendation{
			Split:     models.SplitFullBody,
			Rationale: "3 days/week: full-body training gives each muscle 3 weekly exposures.",
		}
		if experience != models.ExperienceNovice {
			rec.Alternatives = append(rec.Alternatives, models.SplitPushPullLegs)
		}
	case daysPerWeek == 4:
		rec = models.SplitRecommendation{
			Split:     models.SplitUpperLower,
			Rationale: "4 days/week: upper/lower trains every muscle twice with a clean 2-on pattern.",
		}
	case daysPerWeek == 5:
		rec = models.SplitRecommendation{
			Split:     models.SplitHybrid,
			Rationale: "5 days/week: upper/lower plus push/pull/legs keeps big muscles at 2x frequency without redundant days.",
		}
	default:
		rec = models.SplitRecommendation{
			Split:     models.SplitPushPullLegs,
			Rationale: fmt.Sprintf("%d days/week: push/pull/legs run twice covers every muscle at 2x frequency.", daysPerWeek),
		}
	}

	if sessionMinutes < 45 && rec.Split != models.SplitFullBody {
		rec.Alternatives = append(rec.Alternatives, models.SplitFullBody)
		rec.Rationale += " Sessions under 45 minutes fit a full-body layout better; consider the alternative."
	}
	if daysPerWeek >= 6 && experience == models.ExperienceNovice {
		rec.Rationale += " Six or more weekly sessions is ambitious for a novice; adherence usually beats frequency."
	}

	for _, tmpl := range SessionTemplates(rec.Split, daysPerWeek) {
		rec.Schedule = append(rec.Schedule, tmpl.DayLabel)
	}
	return rec
}

// SessionTemplates returns the ordered day templates for a split at the
// given weekly frequency. Static data: the same split and day count always
// produce the same templates.
func SessionTemplates(split models.SplitType, daysPerWeek int) []models.SessionTemplate {
	daysPerWeek = clampInt(daysPerWeek, 1, 7)

	fullBody := []models.SessionTemplate{
		{DayLabel: "Full Body A", Focus: "Squat-led full body", Muscles: []models.Muscle{
			models.MuscleQuads, models.MuscleChest, models.MuscleBack,
			models.MuscleSideDelts, models.MuscleBiceps, models.MuscleCore,
		}},
		{DayLabel: "Full Body B", Focus: "Hinge-led full body", Muscles: []models.Muscle{
			models.MuscleHamstrings, models.MuscleBack, models.MuscleChest,
			models.MuscleGlutes, models.MuscleTriceps, models.MuscleCore,
		}},
		{DayLabel: "Full Body C", Focus: "Balanced full body", Muscles: []models.Muscle{
			models.MuscleQuads, models.MuscleChest, models.MuscleBack,
			models.MuscleRearDelts, models.MuscleCalves, models.MuscleCore,
		}},
	}
	upper := models.SessionTemplate{DayLabel: "Upper A", Focus: "Horizontal push/pull emphasis", Muscles: []models.Muscle{
		models.MuscleChest, models.MuscleBack, models.MuscleSideDelts,
		models.MuscleTriceps, models.MuscleBiceps,
	}}
	lower := models.SessionTemplate{DayLabel: "Lower A", Focus: "Squat emphasis", Muscles: []models.Muscle{
		models.MuscleQuads, models.MuscleHamstrings, models.MuscleGlutes,
		models.MuscleCalves, models.MuscleCore,
	}}
	upperB := models.SessionTemplate{DayLabel: "Upper B", Focus: "Vertical push/pull emphasis", Muscles: []models.Muscle{
		models.MuscleBack, models.MuscleChest, models.MuscleRearDelts,
		models.MuscleBiceps, models.MuscleTriceps,
	}}
	lowerB := models.SessionTemplate{DayLabel: "Lower B", Focus: "Hinge emphasis", Muscles: []models.Muscle{
		models.MuscleHamstrings, models.MuscleQuads, models.MuscleGlutes,
		models.MuscleCalves, models.MuscleCore,
	}}
	push := models.SessionTemplate{DayLabel: "Push", Focus: "Chest, shoulders, triceps", Muscles: []models.Muscle{
		models.MuscleChest, models.MuscleFrontDelts, models.MuscleSideDelts,
		models.MuscleTriceps,
	}}
	pull := models.SessionTemplate{DayLabel: "Pull", Focus: "Back, rear delts, biceps", Muscles: []models.Muscle{
		models.MuscleBack, models.MuscleRearDelts, models.MuscleBiceps,
		models.MuscleForearms,
	}}
	legs := models.SessionTemplate{DayLabel: "Legs", Focus: "Quads, hamstrings, glutes", Muscles: []models.Muscle{
		models.MuscleQuads, models.MuscleHamstrings, models.MuscleGlutes,
		models.MuscleCalves, models.MuscleCore,
	}}

	switch split {
	case models.SplitUpperLower:
		return pickTemplates([]models.SessionTemplate{upper, lower, upperB, lowerB}, daysPerWeek)
	case models.SplitPushPullLegs:
		return pickTemplates([]models.SessionTemplate{push, pull, legs,
			relabel(push, "Push B"), relabel(pull, "Pull B"), relabel(legs, "Legs B")}, daysPerWeek)
	case models.SplitHybrid:
		return pickTemplates([]models.SessionTemplate{upper, lower, push, pull, legs}, daysPerWeek)
	case models.SplitBodyPart:
		return pickTemplates([]models.SessionTemplate{
			relabel(push, "Chest & Shoulders"), relabel(pull, "Back"), relabel(legs, "Legs"),
			{DayLabel: "Arms", Focus: "Biceps, triceps, forearms", Muscles: []models.Muscle{
				models.MuscleBiceps, models.MuscleTriceps, models.MuscleForearms,
			}},
			{DayLabel: "Delts & Core", Focus: "Shoulders and trunk", Muscles: []models.Muscle{
				models.MuscleSideDelts, models.MuscleRearDelts, models.MuscleCore,
			}},
		}, daysPerWeek)
	default:
		return pickTemplates(fullBody, daysPerWeek)
	}
}

// pickTemplates cycles base templates until daysPerWeek sessions exist.
func pickTemplates(base []models.SessionTemplate, daysPerWeek int) []models.SessionTemplate {
	out := make([]models.SessionTemplate, 0, daysPerWeek)
	for i := 0; i < daysPerWeek; i++ {
		tmpl := base[i%len(base)]
		if i >= len(base) {
			tmpl.DayLabel = fmt.Sprintf("%s (2)", tmpl.DayLabel)
		}
		out = append(out, tmpl)
	}
	return out
}

func relabel(t models.SessionTemplate, label string) models.SessionTemplate {
	t.DayLabel = label
	return t
}
