// Package mcp exposes program generation to LLM clients over the
// Model Context Protocol.
package mcp

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/claude/mesocoach/internal/catalog"
	"github.com/claude/mesocoach/internal/models"
	"github.com/claude/mesocoach/internal/storage"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ProgramStore is the slice of storage MCP tools need. *storage.DB
// implements it; tests substitute an in-memory version.
type ProgramStore interface {
	InsertProgram(ctx context.Context, req models.GenerationRequest, program *models.FullProgramRecommendation) (uuid.UUID, error)
	GetProgram(ctx context.Context, id uuid.UUID) (*storage.ProgramRecord, error)
	ListPrograms(ctx context.Context, limit int) ([]storage.ProgramSummary, error)
}

// Compile-time check: *storage.DB satisfies ProgramStore.
var _ ProgramStore = (*storage.DB)(nil)

// New creates an MCP server with all tools and resources registered.
func New(programs ProgramStore, cat catalog.Repository, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("MesoCoach", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("MesoCoach mesocycle planning server. Generate multi-week resistance training programs from a trainee profile, preview recovery factors, and browse the exercise catalog. Generation is deterministic: the same profile always yields the same program."),
	)

	h := &handlers{programs: programs, catalog: cat, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGenerateProgram, Handler: h.generateProgram},
		server.ServerTool{Tool: toolRecommendSplit, Handler: h.recommendSplit},
		server.ServerTool{Tool: toolPreviewRecovery, Handler: h.previewRecovery},
		server.ServerTool{Tool: toolListExercises, Handler: h.listExercises},
		server.ServerTool{Tool: toolGetProgram, Handler: h.getProgram},
		server.ServerTool{Tool: toolListPrograms, Handler: h.listPrograms},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resExerciseCatalog, Handler: h.exerciseCatalog},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	programs ProgramStore
	catalog  catalog.Repository
	log      *slog.Logger
}

// --- Resource definitions ---

var resExerciseCatalog = mcp.NewResource(
	"mesocoach://exercise_catalog",
	"Exercise Catalog",
	mcp.WithResourceDescription("All exercises available to the generator, with muscle targets, equipment, difficulty, and hypertrophy tier"),
	mcp.WithMIMEType("application/json"),
)

func (h *handlers) exerciseCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	entries, err := h.catalog.All(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
