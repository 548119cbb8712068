package app

import (
	"log/slog"
	"os"
)

// NewLogger builds the process-wide slog logger. Production deploys set
// LOG_FORMAT=json for the log pipeline; the default "pretty" format keeps
// local output readable.
func NewLogger(cfg *Config) *slog.Logger {
	if cfg != nil && cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{AddSource: true}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
