// SPDX-License-Identifier: MIT

// Package logging builds the *slog.Logger used by the relax command line.
//
// Text output goes through tint (coloured, short timestamps); JSON output
// uses the standard slog.JSONHandler for machine consumption.
//
//	log := logging.New(logging.Config{Level: slog.LevelDebug})
//	log.Info("solve started", "n", 200)
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

// TimeFormat is the timestamp layout of the text handler.
const TimeFormat = "15:04:05"

// Config selects the handler and minimum level.
// The zero value logs Info and above as coloured text to stderr.
type Config struct {
	Level   slog.Level
	JSON    bool
	NoColor bool
	Writer  io.Writer // nil means os.Stderr
}

// New returns a logger configured by cfg.
func New(cfg Config) *slog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	if cfg.JSON {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: cfg.Level}))
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      cfg.Level,
		TimeFormat: TimeFormat,
		NoColor:    cfg.NoColor,
	}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel accepts debug, info, warn (or warning) and error, case-insensitive.
// The empty string is Info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
}
