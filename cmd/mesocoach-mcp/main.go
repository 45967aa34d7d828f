// mesocoach-mcp serves the MesoCoach MCP tools over stdio for LLM clients.
// Logs go to stderr so stdout stays clean for the protocol stream.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/claude/mesocoach/internal/config"
	"github.com/claude/mesocoach/internal/mcp"
	"github.com/claude/mesocoach/internal/storage"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	db, err := storage.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	s := mcp.New(db, db, Version, log)

	log.Info("MCP server starting", "transport", "stdio", "version", Version)
	if err := server.ServeStdio(s); err != nil {
		log.Error("MCP server error", "error", err)
		os.Exit(1)
	}
}
