package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/claude/mesocoach/internal/engine"
	"github.com/claude/mesocoach/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (s *Server) handleGenerateProgram(w http.ResponseWriter, r *http.Request) {
	var req models.GenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	// Configured defaults fill omitted scheduling fields before validation.
	if req.DaysPerWeek == 0 {
		req.DaysPerWeek = s.defaults.DaysPerWeek
	}
	if req.SessionMinutes == 0 {
		req.SessionMinutes = s.defaults.SessionMinutes
	}

	snapshot, err := s.catalog.All(r.Context())
	if err != nil {
		s.log.Error("catalog fetch failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	program, err := engine.Generate(req, snapshot)
	if err != nil {
		// The engine only errors on malformed requests; everything else
		// resolves to warnings on the output.
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	id, err := s.programs.InsertProgram(r.Context(), req, program)
	if err != nil {
		s.log.Error("program insert failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":      id,
		"program": program,
	})
}

func (s *Server) handleListPrograms(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	summaries, err := s.programs.ListPrograms(r.Context(), limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleGetProgram(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid program id"})
		return
	}

	rec, err := s.programs.GetProgram(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "program not found"})
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	entries, err := s.catalog.All(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if muscle := r.URL.Query().Get("muscle"); muscle != "" {
		filtered := entries[:0]
		for _, e := range entries {
			if e.PrimaryMuscle == models.Muscle(muscle) {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleRecommendSplit(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	days, err := strconv.Atoi(q.Get("days"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "days parameter required"})
		return
	}
	minutes, err := strconv.Atoi(q.Get("minutes"))
	if err != nil {
		minutes = 60
	}

	goal := models.Goal(q.Get("goal"))
	experience := models.Experience(q.Get("experience"))
	if !goal.Valid() || !experience.Valid() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "valid goal and experience parameters required"})
		return
	}

	writeJSON(w, http.StatusOK, engine.RecommendSplit(days, goal, experience, minutes))
}

func (s *Server) handlePreviewRecovery(w http.ResponseWriter, r *http.Request) {
	var profile models.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if err := profile.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, engine.ComputeRecoveryFactors(&profile))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
