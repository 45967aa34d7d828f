// Package client is a small HTTP client for the MesoCoach API. It lets
// offline tooling delegate generation to a running server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/claude/mesocoach/internal/models"
)

// GenerateResult is the server's response to a generation request.
type GenerateResult struct {
	ID      string                            `json:"id"`
	Program *models.FullProgramRecommendation `json:"program"`
}

// ProgramSummary mirrors storage.ProgramSummary without importing the storage
// package (which would pull in pgx and other server-side dependencies).
type ProgramSummary struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Goal      string    `json:"goal"`
	Split     string    `json:"split"`
	Weeks     int       `json:"weeks"`
}

// Client talks to a MesoCoach server over HTTP.
type Client struct {
	serverURL  string
	apiKey     string
	httpClient *http.Client
}

// New creates a client for the server at serverURL. The API key is only
// needed for generation; read endpoints ignore it.
func New(serverURL, apiKey string) *Client {
	return &Client{
		serverURL: serverURL,
		apiKey:    apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// GenerateProgram POSTs a generation request to the server.
// Retries up to 3 times with exponential backoff on transport failure.
func (c *Client) GenerateProgram(ctx context.Context, genReq models.GenerationRequest) (*GenerateResult, error) {
	data, err := json.Marshal(genReq)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	var lastErr error
	for attempt := range 3 {
		if attempt > 0 {
			time.Sleep(time.Duration(1<<uint(attempt-1)) * time.Second)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			c.serverURL+"/api/v1/programs", bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("building request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-API-Key", c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusCreated {
			var result GenerateResult
			if err := json.Unmarshal(body, &result); err != nil {
				return nil, fmt.Errorf("decoding response: %w", err)
			}
			return &result, nil
		}
		// 4xx means the request itself is bad; retrying won't help.
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return nil, fmt.Errorf("generation rejected (status %d): %s", resp.StatusCode, body)
		}
		lastErr = fmt.Errorf("generation failed (status %d): %s", resp.StatusCode, body)
	}

	return nil, fmt.Errorf("after 3 attempts: %w", lastErr)
}

// GetProgram fetches a stored program by id. The result keeps the server's
// envelope (request plus program) as raw JSON.
func (c *Client) GetProgram(ctx context.Context, id string) (json.RawMessage, error) {
	return c.getJSON(ctx, "/api/v1/programs/"+id)
}

// ListPrograms fetches recent program summaries.
func (c *Client) ListPrograms(ctx context.Context, limit int) ([]ProgramSummary, error) {
	raw, err := c.getJSON(ctx, fmt.Sprintf("/api/v1/programs?limit=%d", limit))
	if err != nil {
		return nil, err
	}
	var summaries []ProgramSummary
	if err := json.Unmarshal(raw, &summaries); err != nil {
		return nil, fmt.Errorf("decoding summaries: %w", err)
	}
	return summaries, nil
}

// ListExercises fetches the server's exercise catalog, optionally filtered
// by primary muscle.
func (c *Client) ListExercises(ctx context.Context, muscle string) ([]models.ExerciseEntry, error) {
	path := "/api/v1/exercises"
	if muscle != "" {
		path += "?muscle=" + muscle
	}
	raw, err := c.getJSON(ctx, path)
	if err != nil {
		return nil, err
	}
	var entries []models.ExerciseEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decoding exercises: %w", err)
	}
	return entries, nil
}

func (c *Client) getJSON(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.serverURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request %s failed (status %d): %s", path, resp.StatusCode, body)
	}
	return body, nil
}
