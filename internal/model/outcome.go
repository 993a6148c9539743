package model

import "time"

// Status tags the terminal state of one traversal.
//
// Design decision: We use iota-based constants rather than string constants
// so callers and report writers can switch exhaustively instead of matching
// strings. The String() method provides the machine token used in reports.
type Status int

const (
	// StatusReachedTarget means the walk arrived at the configured target.
	StatusReachedTarget Status = iota

	// StatusCycleDetected means a previously visited title came up again.
	// Not an error: it is the expected end of an unbounded walk.
	StatusCycleDetected

	// StatusLinkExhausted means no qualifying link existed in the last
	// article, even after falling back to the full body.
	StatusLinkExhausted

	// StatusFailed means a fetch failed. Outcome.Err carries the cause.
	StatusFailed
)

// String returns the machine token for the status.
func (s Status) String() string {
	switch s {
	case StatusReachedTarget:
		return "reached_target"
	case StatusCycleDetected:
		return "cycle_detected"
	case StatusLinkExhausted:
		return "link_exhausted"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the terminal result of one traversal. Once produced, the path
// is immutable history; writers and callers only read it.
type Outcome struct {
	// Status tags how the walk ended.
	Status Status

	// Path holds every visited canonical title in visit order, start page
	// first. No title appears twice.
	Path []string

	// Repeated is the title that would have been visited a second time.
	// Set only for StatusCycleDetected.
	Repeated string

	// Target is the canonical target title the walk was configured with.
	Target string

	// Unbounded records whether the walk ignored the target.
	Unbounded bool

	// Err carries the fatal error for StatusFailed and StatusLinkExhausted.
	Err error

	// Elapsed is the wall-clock duration of the walk.
	Elapsed time.Duration
}

// Links returns the number of links followed: edges, not visited pages.
func (o *Outcome) Links() int {
	if len(o.Path) == 0 {
		return 0
	}
	return len(o.Path) - 1
}

// Reached reports whether the walk ended at the target.
func (o *Outcome) Reached() bool {
	return o.Status == StatusReachedTarget
}
