package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/consolebird/internal/config"
	"github.com/vovakirdan/consolebird/internal/engine"
	"github.com/vovakirdan/consolebird/internal/registry"
)

func runPlay(cmd *cobra.Command, args []string) {
	if !registry.Exists(flagBackend) {
		fmt.Fprintf(os.Stderr, "Error: unknown backend %q\n", flagBackend)
		fmt.Fprintln(os.Stderr, "Run 'consolebird backends' to see available backends.")
		os.Exit(1)
	}

	if err := play(cmd.Context()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play loads configuration, opens the log and runs one session.
func play(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	backend, err := registry.Create(flagBackend)
	if err != nil {
		return err
	}

	logger.Debug("starting", "backend", backend.ID(), "config", flagConfig)
	res, err := backend.Play(ctx, engine.Session{
		Config: cfg,
		Seed:   flagSeed,
		Logger: logger,
	})
	if err != nil {
		logger.Error("session failed", "err", err)
		return err
	}

	logger.Info("session ended", "score", res.Score, "reason", res.Reason, "quit", res.Quit)
	return nil
}

// loadConfig loads the config file and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	if flagFPS != 0 {
		cfg.Timing.TargetFPS = flagFPS
		if err := cfg.Validate(); err != nil {
			return config.Config{}, err
		}
	}
	return cfg, nil
}
