package report

import (
	"encoding/json"
	"io"

	"github.com/smtchahal/wikipedia-philosophy/internal/model"
)

// JSONWriter outputs outcomes in JSON format.
// This format is designed for tool integration and programmatic processing.
//
// Design decision: We use standard encoding/json rather than a third-party
// JSON library because:
// 1. It's part of the standard library (no extra dependencies)
// 2. It's sufficient for our needs
// 3. It provides consistent behavior across Go versions
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = ""
		w.indentString = "  "
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter:   newBaseWriter(output),
		indent:       false,
		indentPrefix: "",
		indentString: "",
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// JSONOutcome is the JSON view of a finished walk.
//
// Design decision: We marshal a dedicated view struct rather than adding
// JSON tags to model.Outcome because the error needs flattening to a
// string and the wire shape should not constrain the engine's types.
type JSONOutcome struct {
	// Status is the machine token for how the walk ended.
	Status string `json:"status"`

	// Path holds every visited canonical title in visit order.
	Path []string `json:"path,omitempty"`

	// Links is the number of links followed.
	Links int `json:"links"`

	// Repeated is the title that closed the loop, for cycle outcomes.
	Repeated string `json:"repeated,omitempty"`

	// Target is the canonical target title the walk was configured with.
	Target string `json:"target,omitempty"`

	// Unbounded records whether the walk ignored the target.
	Unbounded bool `json:"unbounded"`

	// Error is the failure message, for failed and exhausted outcomes.
	Error string `json:"error,omitempty"`

	// ElapsedSeconds is the wall-clock duration of the walk in seconds.
	ElapsedSeconds float64 `json:"elapsed_seconds"`
}

// NewJSONOutcome creates the JSON view of an outcome.
func NewJSONOutcome(outcome *model.Outcome) *JSONOutcome {
	view := &JSONOutcome{
		Status:         outcome.Status.String(),
		Path:           outcome.Path,
		Links:          outcome.Links(),
		Repeated:       outcome.Repeated,
		Target:         outcome.Target,
		Unbounded:      outcome.Unbounded,
		ElapsedSeconds: outcome.Elapsed.Seconds(),
	}

	if outcome.Err != nil {
		view.Error = outcome.Err.Error()
	}

	return view
}

// Write outputs the outcome in JSON format, including the visited path.
func (w *JSONWriter) Write(outcome *model.Outcome) (int, error) {
	return w.writeJSON(NewJSONOutcome(outcome))
}

// WriteSummary outputs the outcome in JSON format without the path.
func (w *JSONWriter) WriteSummary(outcome *model.Outcome) (int, error) {
	view := NewJSONOutcome(outcome)
	view.Path = nil

	return w.writeJSON(view)
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v interface{}) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
