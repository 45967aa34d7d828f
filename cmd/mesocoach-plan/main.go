// mesocoach-plan generates a mesocycle offline from a YAML request file,
// without a database or server. The exercise catalog comes from a local
// SQLite cache when one exists, falling back to the bundled set.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/claude/mesocoach/internal/catalog"
	"github.com/claude/mesocoach/internal/client"
	"github.com/claude/mesocoach/internal/engine"
	"github.com/claude/mesocoach/internal/models"
	"gopkg.in/yaml.v3"
)

func main() {
	requestPath := flag.String("request", "", "path to YAML request file (required)")
	days := flag.Int("days", 0, "override training days per week")
	minutes := flag.Int("minutes", 0, "override session minutes")
	lagging := flag.String("lagging", "", "override lagging areas (comma-separated)")
	outPath := flag.String("out", "", "write the program JSON here instead of stdout")
	cacheDir := flag.String("cache-dir", "", "catalog cache directory (default: user cache dir)")
	serverURL := flag.String("server", "", "generate via a running server instead of locally (e.g. http://localhost:8080)")
	apiKey := flag.String("api-key", os.Getenv("MESOCOACH_AUTH_API_KEY"), "API key for -server mode")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *requestPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: mesocoach-plan -request request.yaml [-days N] [-minutes N] [-lagging arms,calves] [-out program.json]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	data, err := os.ReadFile(*requestPath)
	if err != nil {
		log.Error("failed to read request file", "error", err)
		os.Exit(1)
	}

	var req models.GenerationRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		log.Error("failed to parse request file", "error", err)
		os.Exit(1)
	}

	// Flag overrides and defaults
	if *days > 0 {
		req.DaysPerWeek = *days
	}
	if *minutes > 0 {
		req.SessionMinutes = *minutes
	}
	if *lagging != "" {
		var areas []string
		for _, a := range strings.Split(*lagging, ",") {
			if a = strings.TrimSpace(a); a != "" {
				areas = append(areas, a)
			}
		}
		req.LaggingAreas = areas
	}
	if req.DaysPerWeek == 0 {
		req.DaysPerWeek = 4
	}
	if req.SessionMinutes == 0 {
		req.SessionMinutes = 60
	}

	ctx := context.Background()

	var program *models.FullProgramRecommendation
	if *serverURL != "" {
		result, err := client.New(*serverURL, *apiKey).GenerateProgram(ctx, req)
		if err != nil {
			log.Error("remote generation failed", "error", err)
			os.Exit(1)
		}
		log.Info("program generated remotely", "id", result.ID)
		program = result.Program
	} else {
		snapshot, err := loadCatalog(ctx, *cacheDir, log)
		if err != nil {
			log.Error("failed to load catalog", "error", err)
			os.Exit(1)
		}
		log.Info("catalog loaded", "exercises", len(snapshot))

		program, err = engine.Generate(req, snapshot)
		if err != nil {
			log.Error("generation failed", "error", err)
			os.Exit(1)
		}
	}

	out, err := json.MarshalIndent(program, "", "  ")
	if err != nil {
		log.Error("failed to encode program", "error", err)
		os.Exit(1)
	}
	out = append(out, '\n')

	if *outPath == "" {
		os.Stdout.Write(out)
		return
	}
	if err := os.WriteFile(*outPath, out, 0o644); err != nil {
		log.Error("failed to write output file", "error", err)
		os.Exit(1)
	}
	log.Info("program written", "path", *outPath, "weeks", len(program.Weeks))
}

// loadCatalog opens the local SQLite cache when possible. Any cache failure
// degrades to the bundled catalog rather than aborting the run.
func loadCatalog(ctx context.Context, dir string, log *slog.Logger) ([]models.ExerciseEntry, error) {
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			log.Warn("no user cache dir, using bundled catalog", "error", err)
			return catalog.Bundled{}.All(ctx)
		}
		dir = filepath.Join(base, "mesocoach")
	}

	cache, err := catalog.OpenSQLiteCache(dir)
	if err != nil {
		log.Warn("catalog cache unavailable, using bundled catalog", "error", err)
		return catalog.Bundled{}.All(ctx)
	}
	defer cache.Close()

	return cache.All(ctx)
}
