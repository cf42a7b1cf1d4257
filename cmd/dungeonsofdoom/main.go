// Package main is the entry point for Dungeons of Doom.
package main

import (
	"context"
	"io"
	"log"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/dungeonsofdoom/internal/config"
	"github.com/samdwyer/dungeonsofdoom/internal/game"
	"github.com/samdwyer/dungeonsofdoom/internal/gamedata"
	"github.com/samdwyer/dungeonsofdoom/internal/logger"
	"github.com/samdwyer/dungeonsofdoom/internal/telemetry"
	"github.com/samdwyer/dungeonsofdoom/internal/ui"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logr, closer, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer closer.Close()
	if cfg.Log.File == "" {
		// The screen belongs to tcell once the game starts
		logr.SetOutput(io.Discard)
	}
	entry := logrus.NewEntry(logr)

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
		telemetry.Disable()
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				entry.WithError(err).Error("Error shutting down telemetry.")
			}
		}()
	}

	items, err := gamedata.LoadItemRegistry()
	if err != nil {
		log.Fatalf("Failed to load item data: %v", err)
	}
	entry.WithField("item_kinds", items.Count()).Debug("Item data loaded.")

	g, err := game.New(ctx, game.Config{Seed: cfg.Game.Seed},
		game.WithItems(items),
		game.WithLogger(entry),
	)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		log.Fatalf("Failed to open terminal: %v", err)
	}

	app := ui.NewApp(g, screen, items, entry)
	runErr := app.Run(ctx)
	screen.Close()
	if runErr != nil {
		log.Fatalf("Game error: %v", runErr)
	}
}
