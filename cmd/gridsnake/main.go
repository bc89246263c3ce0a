// Package main is the entry point for gridsnake.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/gridsnake/internal/engine"
	"github.com/samdwyer/gridsnake/internal/game"
	"github.com/samdwyer/gridsnake/internal/telemetry"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_GRIDSNAKE_API_KEY and the SNAKE_* knobs available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
		// Continue without telemetry - game still works
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	cfg, err := engine.FromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if os.Getenv("SNAKE_RENDERER") == "console" {
		if err := game.RunConsole(ctx, cfg, os.Stdin, os.Stdout); err != nil {
			log.Fatalf("Game error: %v", err)
		}
		return
	}

	g, err := game.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	// Restore the terminal before any fatal log write.
	runErr := g.Run(ctx)
	g.Close()
	if runErr != nil {
		log.Fatalf("Game error: %v", runErr)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Construct the headers here - the .env file may carry an unexpanded
	// variable reference that doesn't work
	apiKey := os.Getenv("HONEYCOMB_GRIDSNAKE_API_KEY")
	dataset := os.Getenv("HONEYCOMB_GRIDSNAKE_DATASET")
	if dataset == "" {
		dataset = "gridsnake" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
