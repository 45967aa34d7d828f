// Package catalog supplies exercise records to the engine. Caching and
// fallback policy live here; the engine just consumes a snapshot.
package catalog

import (
	"context"
	"sort"

	"github.com/claude/mesocoach/internal/models"
)

// Repository fetches the full exercise catalog. Implementations must return
// entries in a stable order so generation stays deterministic.
type Repository interface {
	All(ctx context.Context) ([]models.ExerciseEntry, error)
}

// Bundled serves the compiled-in default catalog. It is the fallback of
// last resort and never fails.
type Bundled struct{}

// All returns a copy of the bundled catalog sorted by ID.
func (Bundled) All(_ context.Context) ([]models.ExerciseEntry, error) {
	out := make([]models.ExerciseEntry, len(bundled))
	copy(out, bundled)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
