// Package logging builds the structured logger used for diagnostics.
// Styled pipeline output goes to stdout; everything here goes to stderr
// unless redirected.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Config selects the handler, level, and destination.
type Config struct {
	// Verbose enables debug-level records
	Verbose bool

	// JSON switches from the text handler to the JSON handler
	JSON bool

	// Writer overrides the destination (defaults to os.Stderr)
	Writer io.Writer
}

// New constructs a logger from cfg.
func New(cfg Config) *slog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
