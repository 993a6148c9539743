// Package log builds the structured logger shared by the CLI commands,
// on top of the standard slog package.
//
// The logger writes human-readable text to the given writer (stderr in
// the commands). The default level is Warn so ordinary runs keep the
// terminal clean for the traversal output on stdout; verbose mode drops
// the level to Debug, which traces every fetch, extraction, and fallback.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
package log
