// Package walk implements the "first link" traversal over wiki articles.
//
// # Architecture
//
// The package is designed around two types. Extractor scans an article's
// rendered markup and picks the first link that qualifies under the
// traversal rules. Walker chains extractions into a traversal: it starts
// from an article, hops to the first qualifying link of each page, and
// stops when it reaches the target, revisits an article, runs out of
// links, or hits an error.
//
// Design decision: We expose the traversal as a pull iterator (Walk) rather
// than returning the finished path because:
//  1. Callers can render each hop as soon as it is known
//  2. A traversal can be abandoned early without fetching further pages
//  3. The terminal outcome stays attached to the path that produced it
//
// # Components
//
//   - Extractor: picks the first qualifying link out of a parsed article
//   - Walker: traversal settings shared by every walk it starts
//   - Walk: one in-flight traversal, advanced article by article with Next
//   - Runner: executes several walks concurrently with a shared limit
//
// # Link qualification
//
// A candidate link qualifies only when all of the following hold:
//   - it is not inside excluded markup (tables, nested divs, spans,
//     italics, reference superscripts, redlinks, the coordinates block)
//   - it is not inside parentheses, even when the parentheses open and
//     close in different text nodes
//   - its target is an ordinary article: a /wiki/ path without a
//     namespace prefix such as "File:" or "Help:"
//   - it does not point back to the article being scanned
//
// # Politeness
//
// Walks issue one request at a time and can pause between requests
// (configurable via WithDelay) so that long traversals do not hammer the
// content service.
//
// # Usage
//
//	walker, err := walk.NewWalker(client, walk.WithTarget("Philosophy"))
//	if err != nil {
//		return err
//	}
//	w := walker.Walk(ctx, "Rubber duck")
//	for w.Next() {
//		fmt.Println(w.Title())
//	}
//	outcome := w.Outcome()
package walk
