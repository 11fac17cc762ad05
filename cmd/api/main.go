package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethanbaker/notes-summarizer/internal/api"
	"github.com/ethanbaker/notes-summarizer/internal/config"
	"github.com/ethanbaker/notes-summarizer/internal/logger"
)

// Start the API server
func main() {
	// Load global config
	cfg, cfgErr := config.Load(config.EnvFile())

	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	if cfgErr != nil {
		log.Warn().Err(cfgErr).Msg("some configuration files were skipped")
	}

	deps, err := api.NewDependencies(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize dependencies")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := api.Start(ctx, deps); err != nil {
		log.Fatal().Err(err).Msg("API server stopped")
	}
}
