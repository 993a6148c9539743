package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/smtchahal/wikipedia-philosophy/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// The format mirrors what the command prints while a walk streams: one
// visited title per line, a separator, and a closing status line.
//
// Design decision: We use plain text without ANSI colors because:
// 1. It works in all terminals without compatibility issues
// 2. It's easy to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the visited path followed by the closing lines.
func (w *SimpleWriter) Write(outcome *model.Outcome) (int, error) {
	var sb strings.Builder

	for _, title := range outcome.Path {
		sb.WriteString(title)
		sb.WriteString("\n")
	}
	w.writeTail(&sb, outcome)

	return w.output.Write([]byte(sb.String()))
}

// WriteSummary outputs only the closing lines. The caller is expected to
// have printed the titles already, as the walk visited them.
func (w *SimpleWriter) WriteSummary(outcome *model.Outcome) (int, error) {
	var sb strings.Builder
	w.writeTail(&sb, outcome)
	return w.output.Write([]byte(sb.String()))
}

// writeTail writes the separator and the status lines for the outcome.
func (w *SimpleWriter) writeTail(sb *strings.Builder, outcome *model.Outcome) {
	links := outcome.Links()
	seconds := outcome.Elapsed.Seconds()

	sb.WriteString("---\n")

	switch outcome.Status {
	case model.StatusReachedTarget:
		sb.WriteString(fmt.Sprintf("Took %d link(s) and %.2f seconds\n", links, seconds))
	case model.StatusCycleDetected:
		sb.WriteString(fmt.Sprintf("Loop detected at %q, quitting...\n", outcome.Repeated))
		sb.WriteString(fmt.Sprintf("Visited %d link(s), got a loop, taking %.2f seconds\n", links, seconds))
	case model.StatusLinkExhausted:
		sb.WriteString("No link found, quitting...\n")
		sb.WriteString(fmt.Sprintf("Visited %d link(s), could not find appropriate link, taking %.2f seconds\n", links, seconds))
	case model.StatusFailed:
		if outcome.Err != nil {
			sb.WriteString(fmt.Sprintf("Error: %v\n", outcome.Err))
		}
		sb.WriteString(fmt.Sprintf("Visited %d link(s), taking %.2f seconds\n", links, seconds))
	default:
		sb.WriteString(fmt.Sprintf("Visited %d link(s), taking %.2f seconds\n", links, seconds))
	}
}
