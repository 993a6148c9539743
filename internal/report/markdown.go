package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/smtchahal/wikipedia-philosophy/internal/model"
)

// MarkdownWriter outputs outcomes in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the outcome in Markdown format, including the visited path.
func (w *MarkdownWriter) Write(outcome *model.Outcome) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, outcome)
	w.writeAlert(md, outcome)
	w.writePath(md, outcome)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// WriteSummary outputs the outcome in Markdown format without the path.
func (w *MarkdownWriter) WriteSummary(outcome *model.Outcome) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, outcome)
	w.writeAlert(md, outcome)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with walk information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, outcome *model.Outcome) {
	md.H1("Wikipedia Philosophy Walk")
	md.PlainText("")

	start := "-"
	if len(outcome.Path) > 0 {
		start = outcome.Path[0]
	}

	target := outcome.Target
	if outcome.Unbounded {
		target = "(unbounded)"
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Start", start},
			{"Target", target},
			{"Status", w.getStatusText(outcome)},
			{"Links followed", strconv.Itoa(outcome.Links())},
			{"Elapsed", fmt.Sprintf("%.2fs", outcome.Elapsed.Seconds())},
		},
	})
	md.PlainText("")
}

// getStatusText returns the status text for the summary table.
func (w *MarkdownWriter) getStatusText(outcome *model.Outcome) string {
	switch outcome.Status {
	case model.StatusReachedTarget:
		return "✅ Reached target"
	case model.StatusCycleDetected:
		return "🔄 Loop detected"
	case model.StatusLinkExhausted:
		return "⚠️ No qualifying link"
	case model.StatusFailed:
		return "❌ Failed"
	default:
		return outcome.Status.String()
	}
}

// writeAlert writes an appropriate alert based on the outcome status.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, outcome *model.Outcome) {
	switch outcome.Status {
	case model.StatusReachedTarget:
		md.Tip(fmt.Sprintf("Reached %q after following %d link(s).",
			outcome.Target, outcome.Links()))
	case model.StatusCycleDetected:
		md.Note(fmt.Sprintf("The walk looped back to %q after %d link(s).",
			outcome.Repeated, outcome.Links()))
	case model.StatusLinkExhausted:
		md.Warningf("No qualifying link was found after %d link(s).", outcome.Links())
	case model.StatusFailed:
		md.Cautionf("The walk failed after %d link(s): %v", outcome.Links(), outcome.Err)
	}
	md.PlainText("")
}

// writePath writes the visited path as a numbered table. Step 0 is the
// start page; step N is the article reached after following N links.
func (w *MarkdownWriter) writePath(md *markdown.Markdown, outcome *model.Outcome) {
	md.H2("Path")
	md.PlainText("")

	if len(outcome.Path) == 0 {
		md.PlainText("No articles were visited.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(outcome.Path)+1)
	for i, title := range outcome.Path {
		rows = append(rows, []string{strconv.Itoa(i), title})
	}
	if outcome.Repeated != "" {
		rows = append(rows, []string{strconv.Itoa(len(outcome.Path)), outcome.Repeated + " (loop)"})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Step", "Article"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [wikipedia-philosophy](https://github.com/smtchahal/wikipedia-philosophy)*")
}
