// Package main is the entry point for FogMaze.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/samdwyer/fogmaze/internal/game"
	"github.com/samdwyer/fogmaze/internal/logging"
	"github.com/samdwyer/fogmaze/internal/telemetry"
)

const honeycombEndpoint = "https://api.honeycomb.io"

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "world seed, 0 for random")
	flag.IntVar(&cfg.Rows, "rows", cfg.Rows, "grid rows")
	flag.IntVar(&cfg.Cols, "cols", cfg.Cols, "grid columns")
	flag.StringVar(&cfg.Generator, "generator", cfg.Generator, "layout generator: maze or rooms")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, closer, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx, telemetryOptions(cfg))
		if err != nil {
			// Game still works without observability
			logger.WithError(err).Warn("Telemetry setup failed")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.WithError(err).Error("Telemetry shutdown failed")
				}
			}()
		}
	}

	g, err := game.New(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		logger.WithError(err).Error("Game error")
	}
	logger.WithField("money", g.Session().Player().Money).Info("Game over")
}

// telemetryOptions points the exporter at Honeycomb when an API key is
// set. Otherwise the standard OTEL_EXPORTER_OTLP_* variables apply.
func telemetryOptions(cfg game.Config) telemetry.Options {
	if cfg.HoneycombAPIKey == "" {
		return telemetry.Options{}
	}
	return telemetry.Options{
		EndpointURL: honeycombEndpoint,
		Headers: map[string]string{
			"x-honeycomb-team":    cfg.HoneycombAPIKey,
			"x-honeycomb-dataset": cfg.HoneycombDataset,
		},
	}
}
