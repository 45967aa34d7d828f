package storage

import (
	"context"
	"fmt"

	"github.com/claude/mesocoach/internal/models"
)

// UpsertExercises inserts or updates catalog entries. Returns the number of
// rows written.
func (db *DB) UpsertExercises(ctx context.Context, entries []models.ExerciseEntry) (int64, error) {
	var written int64
	for _, e := range entries {
		secondaries := make([]string, len(e.SecondaryMuscles))
		for i, m := range e.SecondaryMuscles {
			secondaries[i] = string(m)
		}
		tag, err := db.Pool.Exec(ctx,
			`INSERT INTO exercises (id, name, primary_muscle, secondary_muscles, pattern, equipment,
			 difficulty, fatigue_rating, tier, score_stimulus, score_tech, score_progression)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
			 ON CONFLICT (id) DO UPDATE SET
			 name = EXCLUDED.name, primary_muscle = EXCLUDED.primary_muscle,
			 secondary_muscles = EXCLUDED.secondary_muscles, pattern = EXCLUDED.pattern,
			 equipment = EXCLUDED.equipment, difficulty = EXCLUDED.difficulty,
			 fatigue_rating = EXCLUDED.fatigue_rating, tier = EXCLUDED.tier,
			 score_stimulus = EXCLUDED.score_stimulus, score_tech = EXCLUDED.score_tech,
			 score_progression = EXCLUDED.score_progression`,
			e.ID, e.Name, e.PrimaryMuscle, secondaries, e.Pattern, e.Equipment,
			e.Difficulty, e.FatigueRating, e.Tier,
			e.TierScores.Stimulus, e.TierScores.TechDemand, e.TierScores.Progression)
		if err != nil {
			return written, fmt.Errorf("upserting exercise %s: %w", e.ID, err)
		}
		written += tag.RowsAffected()
	}
	return written, nil
}

// All retrieves the full exercise catalog ordered by ID. Implements
// catalog.Repository.
func (db *DB) All(ctx context.Context) ([]models.ExerciseEntry, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, name, primary_muscle, secondary_muscles, pattern, equipment,
		 difficulty, fatigue_rating, tier, score_stimulus, score_tech, score_progression
		 FROM exercises
		 ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying exercises: %w", err)
	}
	defer rows.Close()

	var result []models.ExerciseEntry
	for rows.Next() {
		var e models.ExerciseEntry
		var secondaries []string
		if err := rows.Scan(&e.ID, &e.Name, &e.PrimaryMuscle, &secondaries, &e.Pattern,
			&e.Equipment, &e.Difficulty, &e.FatigueRating, &e.Tier,
			&e.TierScores.Stimulus, &e.TierScores.TechDemand, &e.TierScores.Progression); err != nil {
			return nil, fmt.Errorf("scanning exercise: %w", err)
		}
		for _, s := range secondaries {
			e.SecondaryMuscles = append(e.SecondaryMuscles, models.Muscle(s))
		}
		result = append(result, e)
	}
	return result, rows.Err()
}
