// Package importer loads exercise catalog files from disk into storage.
// Files are YAML or JSON lists of exercise entries, optionally gzipped.
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/claude/mesocoach/internal/models"
	"gopkg.in/yaml.v3"
)

// Store is the storage slice the importer writes through.
type Store interface {
	UpsertExercises(ctx context.Context, entries []models.ExerciseEntry) (int64, error)
}

// Stats tracks import progress.
type Stats struct {
	FilesProcessed int
	FilesSkipped   int
	FilesErrored   int

	ExercisesParsed   int
	ExercisesRejected int
	ExercisesUpserted int64

	RejectedIDs []string
}

// Importer reads catalog files from a directory and upserts entries into the DB.
type Importer struct {
	db     Store
	log    *slog.Logger
	dryRun bool
	stats  Stats
}

// New creates a new Importer.
func New(db Store, log *slog.Logger, dryRun bool) *Importer {
	return &Importer{db: db, log: log, dryRun: dryRun}
}

// Import processes every catalog file under dir. Entries sharing an id are
// collapsed to the last occurrence so re-exported files win over stale ones.
func (imp *Importer) Import(ctx context.Context, dir string) (*Stats, error) {
	paths, err := catalogFiles(dir)
	if err != nil {
		return &imp.stats, err
	}

	byID := map[string]models.ExerciseEntry{}
	var order []string

	for _, path := range paths {
		entries, err := parseFile(path)
		if err != nil {
			imp.stats.FilesErrored++
			imp.log.Warn("skipping unreadable catalog file", "path", path, "error", err)
			continue
		}
		imp.stats.FilesProcessed++

		for _, e := range entries {
			imp.stats.ExercisesParsed++
			if err := validateEntry(e); err != nil {
				imp.stats.ExercisesRejected++
				imp.stats.RejectedIDs = append(imp.stats.RejectedIDs, e.ID)
				imp.log.Warn("rejecting catalog entry", "id", e.ID, "path", path, "error", err)
				continue
			}
			if _, seen := byID[e.ID]; !seen {
				order = append(order, e.ID)
			}
			byID[e.ID] = e
		}
	}

	if len(byID) == 0 {
		return &imp.stats, fmt.Errorf("no valid exercise entries found under %s", dir)
	}

	sort.Strings(order)
	final := make([]models.ExerciseEntry, 0, len(order))
	for _, id := range order {
		final = append(final, byID[id])
	}

	if imp.dryRun {
		imp.log.Info("dry run: skipping upsert", "exercises", len(final))
		return &imp.stats, nil
	}

	n, err := imp.db.UpsertExercises(ctx, final)
	if err != nil {
		return &imp.stats, fmt.Errorf("upserting exercises: %w", err)
	}
	imp.stats.ExercisesUpserted = n

	return &imp.stats, nil
}

// catalogFiles returns the importable files under dir, sorted by path so
// later files (lexicographically) override earlier ones deterministically.
func catalogFiles(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if importable(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}

func importable(path string) bool {
	name := strings.ToLower(strings.TrimSuffix(path, ".gz"))
	switch filepath.Ext(name) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// parseFile reads one catalog file, decompressing if needed, and decodes it
// as a list of exercise entries.
func parseFile(path string) ([]models.ExerciseEntry, error) {
	data, err := readMaybeGzip(path)
	if err != nil {
		return nil, err
	}

	var entries []models.ExerciseEntry
	name := strings.ToLower(strings.TrimSuffix(path, ".gz"))
	if filepath.Ext(name) == ".json" {
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		return entries, nil
	}
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return entries, nil
}

func validateEntry(e models.ExerciseEntry) error {
	if e.ID == "" {
		return fmt.Errorf("missing id")
	}
	if e.Name == "" {
		return fmt.Errorf("missing name")
	}
	if !e.PrimaryMuscle.Valid() {
		return fmt.Errorf("unknown primary muscle %q", e.PrimaryMuscle)
	}
	for _, m := range e.SecondaryMuscles {
		if !m.Valid() {
			return fmt.Errorf("unknown secondary muscle %q", m)
		}
	}
	if !e.Pattern.Valid() {
		return fmt.Errorf("unknown movement pattern %q", e.Pattern)
	}
	if !e.Equipment.Valid() {
		return fmt.Errorf("unknown equipment %q", e.Equipment)
	}
	if e.FatigueRating < 1 || e.FatigueRating > 5 {
		return fmt.Errorf("fatigue rating %d out of range 1-5", e.FatigueRating)
	}
	return nil
}
