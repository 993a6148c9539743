// Package report provides report generation and output functionality.
//
// This package contains writers for different output formats:
//   - SimpleWriter: Human-readable text output for terminal display
//   - JSONWriter: Structured JSON output for tool integration
//   - MarkdownWriter: Markdown output for documentation and sharing
//
// Design decision: We separate report writing from the outcome data
// structure (which lives in the model package) to follow the single
// responsibility principle. This allows adding new output formats without
// modifying the traversal engine.
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably. Write renders the whole outcome including the visited
// path; WriteSummary renders only the closing portion, for the streaming
// command path where titles are printed as they are visited.
package report
