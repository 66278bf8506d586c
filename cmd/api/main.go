package main

import (
	"context"
	"fmt"
	"os"

	"github-event-tracker/config"
	_ "github-event-tracker/docs" // Swagger docs
	"github-event-tracker/internal/event/repository/sqlite"
	"github-event-tracker/internal/httpserver"
	"github-event-tracker/pkg/log"
)

// @title       GitHub Event Tracker API
// @description Receives GitHub webhooks, normalizes push / PR-opened / PR-merged into canonical events, and serves the latest events.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration — an invalid config stops the process here.
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting GitHub Event Tracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage: %s", cfg.Storage.Path)

	// 3. Event store — opened exactly once for the process lifetime.
	// An unreachable store is fatal at startup, never a per-request fault.
	db, err := sqlite.Open(cfg.Storage.Path)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open event store: %v", err)
	}
	defer db.Close()

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		DB:              db,
		RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize HTTP server: %v", err)
	}

	// 5. Run
	if err := httpServer.Run(); err != nil {
		logger.Fatalf(ctx, "Failed to run server: %v", err)
	}
}
