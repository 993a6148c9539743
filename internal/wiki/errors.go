package wiki

import (
	"errors"
	"fmt"
)

// Content service errors.
//
// Design decision: We define sentinels for the two kinds callers branch on
// (page identity problems vs transport problems) and a structured type for
// service-reported failures, which carry a diagnostic code worth surfacing
// verbatim.
var (
	// ErrInvalidPage is returned when a title does not resolve to any
	// existing article: a namespace-prefixed name, an empty name, or a
	// title the service reports as missing or malformed.
	ErrInvalidPage = errors.New("invalid or nonexistent page")

	// ErrConnection is returned when the content service cannot be reached
	// or its response cannot be read. Fatal to the current run; the caller
	// may retry a whole new traversal.
	ErrConnection = errors.New("cannot reach content service")

	// ErrInvalidProxyAddress is returned when the proxy address format is
	// invalid. Expected format is "host:port".
	ErrInvalidProxyAddress = errors.New("invalid proxy address format: expected host:port")
)

// APIError is an application-level failure reported by the content service:
// the request arrived and was answered, but with an error object instead of
// a result.
type APIError struct {
	// Code is the service's machine-readable error code.
	Code string

	// Info is the service's human-readable diagnostic.
	Info string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Info == "" {
		return fmt.Sprintf("content service error: %s", e.Code)
	}
	return fmt.Sprintf("content service error: %s: %s", e.Code, e.Info)
}
