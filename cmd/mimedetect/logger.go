package main

import (
	"io"
	"log/slog"
)

// LoggerConfig describes the diagnostic logger
type LoggerConfig struct {
	Level  slog.Level
	Format string // "json" or "text"
}

// DefaultLoggerConfig returns the logger settings used without flags
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:  slog.LevelWarn,
		Format: "text",
	}
}

// newLogger creates a logger writing to w
func newLogger(cfg LoggerConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.Level,
	}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default: // "text"
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
