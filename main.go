// Package main is the entry point for the BoardShelf API server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"log"
	"os"

	"boardshelf/src/app/server"
	"boardshelf/src/infra/config"
	"boardshelf/src/infra/db"
	"boardshelf/src/infra/logger"
	"boardshelf/src/infra/repo"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
	)

	// Initialize database connection
	ctx := context.Background()
	pg, err := db.New(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer pg.Close()

	// Create tables if absent; a broken schema is not survivable.
	if err := pg.EnsureSchema(ctx); err != nil {
		return err
	}

	// Install reference data. A seed failure is logged and swallowed: the
	// server still serves whatever state the previous seed left behind.
	if cfg.Database.Seed {
		if err := pg.Seed(ctx); err != nil {
			log.Warn("seeding failed, continuing with existing data", "error", err)
		}
	}

	// Initialize repositories
	categoryRepo := repo.NewCategoryRepository(pg, log)
	gameRepo := repo.NewGameRepository(pg, log)

	// Create and run HTTP server
	srv := server.New(cfg, log, categoryRepo, gameRepo)

	// Run blocks until shutdown signal is received
	return srv.Run()
}
