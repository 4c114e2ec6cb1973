// Package main is the entry point for Careers.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/samdwyer/careers/internal/game"
	"github.com/samdwyer/careers/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

func run() error {
	// Load .env file for local development
	// This makes HONEYCOMB_CAREERS_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	g, err := game.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}

	return g.Run(ctx)
}
