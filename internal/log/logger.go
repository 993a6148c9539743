package log

import (
	"io"
	"log/slog"
)

// NewLogger creates a structured text logger based on the verbosity
// setting. When verbose is false only warnings and errors are emitted;
// when true the level drops to Debug.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
