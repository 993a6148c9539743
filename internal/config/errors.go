package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrEmptyTarget is returned when a bounded traversal has no target
	// article. Use --dont-stop for a traversal without a target.
	ErrEmptyTarget = errors.New("no target article: provide --end or use --dont-stop")

	// ErrEmptyStartPage is returned when there is neither a starting
	// article nor --random to draw one.
	ErrEmptyStartPage = errors.New("no starting article: provide a page or use --random")

	// ErrEmptyAPIURL is returned when the MediaWiki endpoint is empty.
	ErrEmptyAPIURL = errors.New("no API endpoint: provide --api-url")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	// A timeout of zero or negative would cause immediate request failures.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidRuns is returned when the run count is not positive.
	ErrInvalidRuns = errors.New("invalid runs: must be at least 1")

	// ErrInvalidConcurrency is returned when the concurrency is not
	// positive. Use 1 for sequential runs.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be at least 1")

	// ErrInvalidDelay is returned when the politeness delay is negative.
	// Use 0 for no delay between requests.
	ErrInvalidDelay = errors.New("invalid delay: must be non-negative")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at a
	// time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrConflictingStart is returned when both a positional page and
	// --random are specified. A run starts from one or the other.
	ErrConflictingStart = errors.New("conflicting start: a page argument and --random cannot be used together")
)
