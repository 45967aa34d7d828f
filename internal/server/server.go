// Package server exposes program generation over HTTP.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/claude/mesocoach/internal/catalog"
	"github.com/claude/mesocoach/internal/models"
	"github.com/claude/mesocoach/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ProgramStore is the slice of storage the HTTP layer needs. *storage.DB
// implements it; tests substitute an in-memory version.
type ProgramStore interface {
	InsertProgram(ctx context.Context, req models.GenerationRequest, program *models.FullProgramRecommendation) (uuid.UUID, error)
	GetProgram(ctx context.Context, id uuid.UUID) (*storage.ProgramRecord, error)
	ListPrograms(ctx context.Context, limit int) ([]storage.ProgramSummary, error)
}

// Defaults fill the scheduling fields a generation request leaves empty,
// sourced from the engine section of the config.
type Defaults struct {
	DaysPerWeek    int
	SessionMinutes int
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	programs ProgramStore
	catalog  catalog.Repository
	log      *slog.Logger
	apiKey   string
	defaults Defaults
	router   chi.Router
}

// New creates a new Server with all routes configured.
func New(programs ProgramStore, cat catalog.Repository, apiKey string, defaults Defaults, log *slog.Logger) *Server {
	s := &Server{
		programs: programs,
		catalog:  cat,
		log:      log,
		apiKey:   apiKey,
		defaults: defaults,
		router:   chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Generation endpoints (API key required — they write to storage)
	s.router.Group(func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/api/v1/programs", s.handleGenerateProgram)
	})

	// Read-only endpoints
	s.router.Get("/api/v1/programs", s.handleListPrograms)
	s.router.Get("/api/v1/programs/{id}", s.handleGetProgram)
	s.router.Get("/api/v1/exercises", s.handleListExercises)
	s.router.Get("/api/v1/split", s.handleRecommendSplit)
	s.router.Post("/api/v1/recovery", s.handlePreviewRecovery)
}
