package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/vovakirdan/space-survivor/internal/config"
	"github.com/vovakirdan/space-survivor/internal/storage"
)

// loadGameConfig loads the gameplay tuning and applies --difficulty.
func loadGameConfig() (config.SurvivorConfig, error) {
	cfg, err := config.Load(viper.GetString("config"))
	if err != nil {
		return cfg, err
	}

	if name := viper.GetString("difficulty"); name != "" {
		d, err := config.ParseDifficulty(name)
		if err != nil {
			return cfg, err
		}
		cfg.Round.DefaultLevel = d.String()
	}
	return cfg, nil
}

// newFileLogger opens a logger writing to path, creating its directory.
// The terminal game logs to a file so the alternate screen stays clean.
func newFileLogger(path string) (*log.Logger, *os.File, error) {
	path, err := storage.ExpandPath(path)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "survivor",
	})
	return logger, f, nil
}

// newStderrLogger returns the logger used by the server and CLI commands.
func newStderrLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}
