package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/mesocoach/internal/catalog"
	"github.com/claude/mesocoach/internal/config"
	"github.com/claude/mesocoach/internal/importer"
	"github.com/claude/mesocoach/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	dirPath := flag.String("path", "", "path to catalog directory (required)")
	dryRun := flag.Bool("dry-run", false, "report counts without inserting into database")
	cacheDir := flag.String("cache-dir", "", "refresh the local SQLite catalog cache at this directory after import")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *dirPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: mesocoach-catalog -config config.yaml -path /path/to/catalog [-dry-run] [-cache-dir DIR]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Verify catalog directory exists
	info, err := os.Stat(*dirPath)
	if err != nil || !info.IsDir() {
		log.Error("catalog path does not exist or is not a directory", "path", *dirPath)
		os.Exit(1)
	}

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	dsn := cfg.Database.DSN()

	// Run migrations
	if err := storage.RunMigrations(dsn, "migrations"); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
	log.Info("migrations applied")

	ctx := context.Background()

	if *dryRun {
		log.Info("DRY RUN mode — no data will be written to the database")
	}

	// Connect database
	db, err := storage.New(ctx, dsn)
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	imp := importer.New(db, log, *dryRun)
	stats, err := imp.Import(ctx, *dirPath)
	if err != nil {
		log.Error("import failed", "error", err)
		os.Exit(1)
	}

	log.Info("import complete",
		"files_processed", stats.FilesProcessed,
		"files_errored", stats.FilesErrored,
		"exercises_parsed", stats.ExercisesParsed,
		"exercises_rejected", stats.ExercisesRejected,
		"exercises_upserted", stats.ExercisesUpserted,
	)

	if *cacheDir == "" || *dryRun {
		return
	}

	// Mirror the merged catalog into the offline cache used by mesocoach-plan.
	entries, err := db.All(ctx)
	if err != nil {
		log.Error("failed to read catalog back", "error", err)
		os.Exit(1)
	}
	cache, err := catalog.OpenSQLiteCache(*cacheDir)
	if err != nil {
		log.Error("failed to open catalog cache", "error", err)
		os.Exit(1)
	}
	defer cache.Close()
	if err := cache.Refresh(ctx, entries); err != nil {
		log.Error("failed to refresh catalog cache", "error", err)
		os.Exit(1)
	}
	log.Info("catalog cache refreshed", "dir", *cacheDir, "exercises", len(entries))
}
