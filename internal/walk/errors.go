package walk

import "fmt"

// NoLinkError reports that an article contains no qualifying link even
// after falling back to its full markup. Walks that end this way carry it
// on their outcome so callers can tell exhaustion apart from transport
// failures.
type NoLinkError struct {
	// Title is the canonical title of the article that had no link.
	Title string
}

// Error implements the error interface.
func (e *NoLinkError) Error() string {
	return fmt.Sprintf("no valid link found in page %q", e.Title)
}
