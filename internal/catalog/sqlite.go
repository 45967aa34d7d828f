package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/claude/mesocoach/internal/models"
)

// SQLiteCache is a local exercise catalog cache for offline use. When the
// cache is empty it falls back to the bundled catalog, so callers always get
// a usable exercise pool.
type SQLiteCache struct {
	db *sql.DB
}

// OpenSQLiteCache opens (or creates) the catalog cache at dir/catalog.db.
func OpenSQLiteCache(dir string) (*SQLiteCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "catalog.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening catalog cache: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS exercises (
		id                TEXT PRIMARY KEY,
		name              TEXT NOT NULL,
		primary_muscle    TEXT NOT NULL,
		secondary_muscles TEXT NOT NULL DEFAULT '',
		pattern           TEXT NOT NULL,
		equipment         TEXT NOT NULL,
		difficulty        TEXT NOT NULL,
		fatigue_rating    INTEGER NOT NULL,
		tier              TEXT NOT NULL,
		score_stimulus    INTEGER NOT NULL,
		score_tech        INTEGER NOT NULL,
		score_progression INTEGER NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating exercises table: %w", err)
	}

	return &SQLiteCache{db: db}, nil
}

// All returns the cached catalog ordered by ID, or the bundled catalog when
// the cache holds nothing.
func (c *SQLiteCache) All(ctx context.Context) ([]models.ExerciseEntry, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, name, primary_muscle, secondary_muscles, pattern, equipment,
		 difficulty, fatigue_rating, tier, score_stimulus, score_tech, score_progression
		 FROM exercises ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying cached exercises: %w", err)
	}
	defer rows.Close()

	var out []models.ExerciseEntry
	for rows.Next() {
		var e models.ExerciseEntry
		var secondaries string
		if err := rows.Scan(&e.ID, &e.Name, &e.PrimaryMuscle, &secondaries, &e.Pattern,
			&e.Equipment, &e.Difficulty, &e.FatigueRating, &e.Tier,
			&e.TierScores.Stimulus, &e.TierScores.TechDemand, &e.TierScores.Progression); err != nil {
			return nil, fmt.Errorf("scanning cached exercise: %w", err)
		}
		e.SecondaryMuscles = splitMuscles(secondaries)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(out) == 0 {
		return Bundled{}.All(ctx)
	}
	return out, nil
}

// Refresh replaces the cached catalog with the given entries.
func (c *SQLiteCache) Refresh(ctx context.Context, entries []models.ExerciseEntry) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting cache refresh: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM exercises`); err != nil {
		return fmt.Errorf("clearing cached exercises: %w", err)
	}
	for _, e := range entries {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO exercises (id, name, primary_muscle, secondary_muscles, pattern,
			 equipment, difficulty, fatigue_rating, tier, score_stimulus, score_tech, score_progression)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.Name, e.PrimaryMuscle, joinMuscles(e.SecondaryMuscles), e.Pattern,
			e.Equipment, e.Difficulty, e.FatigueRating, e.Tier,
			e.TierScores.Stimulus, e.TierScores.TechDemand, e.TierScores.Progression)
		if err != nil {
			return fmt.Errorf("caching exercise %s: %w", e.ID, err)
		}
	}
	return tx.Commit()
}

// Close closes the cache database.
func (c *SQLiteCache) Close() error {
	return c.db.Close()
}

func joinMuscles(muscles []models.Muscle) string {
	parts := make([]string, len(muscles))
	for i, m := range muscles {
		parts[i] = string(m)
	}
	return strings.Join(parts, ",")
}

func splitMuscles(s string) []models.Muscle {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]models.Muscle, len(parts))
	for i, p := range parts {
		out[i] = models.Muscle(p)
	}
	return out
}
