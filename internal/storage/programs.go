package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/claude/mesocoach/internal/models"
	"github.com/google/uuid"
)

// ProgramRecord is a stored program with its originating request.
type ProgramRecord struct {
	ID        uuid.UUID                        `json:"id"`
	CreatedAt time.Time                        `json:"created_at"`
	Request   models.GenerationRequest         `json:"request"`
	Program   models.FullProgramRecommendation `json:"program"`
}

// ProgramSummary is a listing row: enough to render an index without
// deserializing full programs.
type ProgramSummary struct {
	ID        uuid.UUID        `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Goal      models.Goal      `json:"goal"`
	Split     models.SplitType `json:"split"`
	Weeks     int              `json:"weeks"`
}

// InsertProgram stores a generated program with its request and returns the
// new record ID.
func (db *DB) InsertProgram(ctx context.Context, req models.GenerationRequest, program *models.FullProgramRecommendation) (uuid.UUID, error) {
	reqJSON, err := json.Marshal(req)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encoding request: %w", err)
	}
	programJSON, err := json.Marshal(program)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encoding program: %w", err)
	}

	id := uuid.New()
	_, err = db.Pool.Exec(ctx,
		`INSERT INTO programs (id, goal, split, weeks, request, program)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id, req.Profile.Goal, program.Split, program.Plan.MesocycleWeeks, reqJSON, programJSON)
	if err != nil {
		return uuid.Nil, fmt.Errorf("inserting program: %w", err)
	}
	return id, nil
}

// GetProgram retrieves one stored program by ID.
func (db *DB) GetProgram(ctx context.Context, id uuid.UUID) (*ProgramRecord, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT id, created_at, request, program FROM programs WHERE id = $1`, id)

	var rec ProgramRecord
	var reqJSON, programJSON []byte
	if err := row.Scan(&rec.ID, &rec.CreatedAt, &reqJSON, &programJSON); err != nil {
		return nil, fmt.Errorf("querying program: %w", err)
	}
	if err := json.Unmarshal(reqJSON, &rec.Request); err != nil {
		return nil, fmt.Errorf("decoding request: %w", err)
	}
	if err := json.Unmarshal(programJSON, &rec.Program); err != nil {
		return nil, fmt.Errorf("decoding program: %w", err)
	}
	return &rec, nil
}

// ListPrograms retrieves program summaries, newest first.
func (db *DB) ListPrograms(ctx context.Context, limit int) ([]ProgramSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Pool.Query(ctx,
		`SELECT id, created_at, goal, split, weeks
		 FROM programs
		 ORDER BY created_at DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying programs: %w", err)
	}
	defer rows.Close()

	var result []ProgramSummary
	for rows.Next() {
		var s ProgramSummary
		if err := rows.Scan(&s.ID, &s.CreatedAt, &s.Goal, &s.Split, &s.Weeks); err != nil {
			return nil, fmt.Errorf("scanning program summary: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}
