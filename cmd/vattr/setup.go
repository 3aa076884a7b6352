package main

import (
	"io"
	"log/slog"

	"github.com/vango-dev/vattr/internal/config"
)

// loadConfig reads vattr.json from the config directory, falling back to
// the defaults, and applies flag overrides.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(flags.configDir)
	if err != nil {
		return nil, err
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// newLogger builds the process logger from the log section of cfg.
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel()}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
