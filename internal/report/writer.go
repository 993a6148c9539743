package report

import (
	"io"

	"github.com/smtchahal/wikipedia-philosophy/internal/model"
)

// Writer defines the interface for outcome output.
// Implementations render a finished walk in various formats.
//
// Design decision: We use an interface to allow different output formats
// and destinations. This enables writing to files, stdout, or network
// connections with the same API.
type Writer interface {
	// Write outputs the whole outcome, including the visited path.
	// Returns the number of bytes written and any error encountered.
	Write(outcome *model.Outcome) (int, error)

	// WriteSummary outputs only the closing portion of the outcome.
	// This is used when the titles have already been streamed to the
	// terminal as the walk visited them.
	WriteSummary(outcome *model.Outcome) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
