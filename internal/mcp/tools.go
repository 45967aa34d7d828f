package mcp

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/claude/mesocoach/internal/engine"
	"github.com/claude/mesocoach/internal/models"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

// exampleProfile documents the profile argument for LLM clients. It must
// unmarshal cleanly into models.Profile; a key the decoder drops would make
// equipment and injury constraints silently disappear from generated
// programs.
const exampleProfile = `{"age":30,"training_age_years":2,"goal":"bulk","experience":"intermediate","sleep_quality":4,"stress_level":2,"equipment":["barbell","dumbbell"],"injury_history":[]}`

var toolGenerateProgram = mcp.NewTool("generate_program",
	mcp.WithDescription("Generate a complete multi-week mesocycle from a trainee profile. Returns the split, periodization plan, weekly volume targets, and fully detailed sessions (exercises, sets, reps, RIR, rest, fatigue accounting). The generated program is stored and the result includes its id."),
	mcp.WithString("profile", mcp.Required(), mcp.Description("JSON-encoded trainee profile, e.g. "+exampleProfile)),
	mcp.WithNumber("days_per_week", mcp.Description("Training days per week (1-7). Defaults to 4.")),
	mcp.WithNumber("session_minutes", mcp.Description("Minutes available per session. Defaults to 60.")),
	mcp.WithString("lagging_areas", mcp.Description("Comma-separated muscles or regions to prioritize (e.g. 'arms,upper chest')")),
)

var toolRecommendSplit = mcp.NewTool("recommend_split",
	mcp.WithDescription("Recommend a training split for a given weekly schedule. Returns the primary split with rationale plus viable alternatives."),
	mcp.WithNumber("days", mcp.Required(), mcp.Description("Training days per week (1-7)")),
	mcp.WithString("goal", mcp.Required(), mcp.Description("Training goal"), mcp.Enum("bulk", "cut", "maintain")),
	mcp.WithString("experience", mcp.Required(), mcp.Description("Training experience level"), mcp.Enum("novice", "intermediate", "advanced")),
	mcp.WithNumber("minutes", mcp.Description("Minutes available per session. Defaults to 60.")),
)

var toolPreviewRecovery = mcp.NewTool("preview_recovery_factors",
	mcp.WithDescription("Compute recovery factors (volume tolerance, frequency tolerance, deload cadence) for a trainee profile without generating a program. Useful for explaining why a program looks the way it does."),
	mcp.WithString("profile", mcp.Required(), mcp.Description("JSON-encoded trainee profile (same shape as generate_program)")),
)

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("List exercises in the catalog, optionally filtered by primary muscle."),
	mcp.WithString("muscle", mcp.Description("Filter by primary muscle (e.g. 'chest', 'quads', 'rear_delts')")),
)

var toolGetProgram = mcp.NewTool("get_program",
	mcp.WithDescription("Retrieve a previously generated program by id, including the request it was generated from."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Program UUID returned by generate_program")),
)

var toolListPrograms = mcp.NewTool("list_programs",
	mcp.WithDescription("List recently generated programs (newest first)."),
	mcp.WithNumber("limit", mcp.Description("Maximum number of programs to return. Defaults to 20.")),
)

// --- Tool handlers ---

func (h *handlers) generateProgram(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profileJSON, err := req.RequireString("profile")
	if err != nil {
		return mcp.NewToolResultError("profile parameter is required"), nil
	}

	var profile models.Profile
	if err := json.Unmarshal([]byte(profileJSON), &profile); err != nil {
		return mcp.NewToolResultError("invalid profile JSON: " + err.Error()), nil
	}

	genReq := models.GenerationRequest{
		Profile:        profile,
		DaysPerWeek:    req.GetInt("days_per_week", 4),
		SessionMinutes: req.GetInt("session_minutes", 60),
		LaggingAreas:   splitCSV(req.GetString("lagging_areas", "")),
	}

	snapshot, err := h.catalog.All(ctx)
	if err != nil {
		h.log.Error("mcp generate_program: catalog fetch", "error", err)
		return mcp.NewToolResultError("catalog unavailable: " + err.Error()), nil
	}

	program, err := engine.Generate(genReq, snapshot)
	if err != nil {
		return mcp.NewToolResultError("generation failed: " + err.Error()), nil
	}

	id, err := h.programs.InsertProgram(ctx, genReq, program)
	if err != nil {
		h.log.Error("mcp generate_program: insert", "error", err)
		return mcp.NewToolResultError("storing program failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"id":      id,
		"program": program,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) recommendSplit(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	days, err := req.RequireInt("days")
	if err != nil {
		return mcp.NewToolResultError("days parameter is required"), nil
	}

	goal := models.Goal(req.GetString("goal", ""))
	experience := models.Experience(req.GetString("experience", ""))
	if !goal.Valid() || !experience.Valid() {
		return mcp.NewToolResultError("valid goal and experience parameters are required"), nil
	}
	if days < 1 || days > 7 {
		return mcp.NewToolResultError("days must be between 1 and 7"), nil
	}

	minutes := req.GetInt("minutes", 60)

	result, err := mcp.NewToolResultJSON(engine.RecommendSplit(days, goal, experience, minutes))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) previewRecovery(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profileJSON, err := req.RequireString("profile")
	if err != nil {
		return mcp.NewToolResultError("profile parameter is required"), nil
	}

	var profile models.Profile
	if err := json.Unmarshal([]byte(profileJSON), &profile); err != nil {
		return mcp.NewToolResultError("invalid profile JSON: " + err.Error()), nil
	}
	if err := profile.Validate(); err != nil {
		return mcp.NewToolResultError("invalid profile: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(engine.ComputeRecoveryFactors(&profile))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entries, err := h.catalog.All(ctx)
	if err != nil {
		h.log.Error("mcp list_exercises", "error", err)
		return mcp.NewToolResultError("catalog unavailable: " + err.Error()), nil
	}

	if muscle := req.GetString("muscle", ""); muscle != "" {
		filtered := entries[:0]
		for _, e := range entries {
			if e.PrimaryMuscle == models.Muscle(muscle) {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	result, err := mcp.NewToolResultJSON(entries)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getProgram(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return mcp.NewToolResultError("invalid program id"), nil
	}

	rec, err := h.programs.GetProgram(ctx, id)
	if err != nil {
		return mcp.NewToolResultError("program not found"), nil
	}

	result, err := mcp.NewToolResultJSON(rec)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listPrograms(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := req.GetInt("limit", 20)

	summaries, err := h.programs.ListPrograms(ctx, limit)
	if err != nil {
		h.log.Error("mcp list_programs", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(summaries)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
