package walk

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/smtchahal/wikipedia-philosophy/internal/model"
	"golang.org/x/net/html"
)

// DefaultExcludeSelector matches the markup that is never scanned for
// candidate links: reference superscripts, span and div furniture
// (hatnotes, thumbnails, navboxes), tables and infoboxes, redlinks,
// italicized or emphasized text, and the coordinates block.
const DefaultExcludeSelector = ".reference, span, div, .thumb, table, a.new, i, em, #coordinates"

// wikiPathPrefix is the path prefix of internal article links.
const wikiPathPrefix = "/wiki/"

// Extractor picks the first qualifying link out of a parsed article.
// A zero-configured Extractor applies DefaultExcludeSelector. Extractors
// are stateless after construction and safe for concurrent use.
type Extractor struct {
	// excludeSelector is the CSS selector group for markup to skip.
	excludeSelector string

	// exclude is the compiled form of excludeSelector.
	exclude cascadia.Selector

	// logger is used for extraction-level logging.
	logger *slog.Logger
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithExcludeSelector overrides the CSS selector group for markup that is
// skipped during extraction.
func WithExcludeSelector(selector string) ExtractorOption {
	return func(e *Extractor) {
		e.excludeSelector = selector
	}
}

// WithExtractorLogger sets a custom logger for extraction debugging.
func WithExtractorLogger(logger *slog.Logger) ExtractorOption {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// NewExtractor creates an Extractor. It returns an error when the exclude
// selector does not compile.
//
// Design decision: We walk the parsed node tree and skip excluded markup
// rather than deleting it from the document because:
//  1. The document stays intact for callers that render or inspect it
//  2. Skipping keeps extraction read-only, so one parse serves many scans
//  3. Parenthesis depth must be counted across the markup in document
//     order, which a mutating pass would have to redo anyway
func NewExtractor(opts ...ExtractorOption) (*Extractor, error) {
	e := &Extractor{
		excludeSelector: DefaultExcludeSelector,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = slog.Default()
	}

	exclude, err := cascadia.Compile(e.excludeSelector)
	if err != nil {
		return nil, fmt.Errorf("compile exclude selector %q: %w", e.excludeSelector, err)
	}
	e.exclude = exclude

	return e, nil
}

// First returns the canonical title of the first qualifying link in the
// document's article content, in document order. It reports false when no
// link qualifies.
func (e *Extractor) First(doc *model.Document) (string, bool) {
	var (
		found string
		depth int // open parentheses carried across text nodes
	)

	var visit func(n *html.Node) bool
	visit = func(n *html.Node) bool {
		switch n.Type {
		case html.ElementNode:
			if e.exclude.Match(n) {
				return false
			}
			if n.Data == "a" && depth == 0 {
				if title, ok := e.candidate(n, doc.Title); ok {
					found = title
					return true
				}
			}
		case html.TextNode:
			depth = parenDepth(depth, n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if visit(c) {
				return true
			}
		}
		return false
	}

	for _, root := range doc.Content().Nodes {
		// The content container itself is never excluded, only what
		// it contains.
		for c := root.FirstChild; c != nil; c = c.NextSibling {
			if visit(c) {
				e.logger.Debug("extracted first link",
					"from", doc.Title,
					"to", found,
					"detail", doc.Level.String(),
				)
				return found, true
			}
		}
	}

	return "", false
}

// candidate decides whether an anchor qualifies and returns its canonical
// title when it does.
func (e *Extractor) candidate(n *html.Node, docTitle string) (string, bool) {
	href := strings.TrimSpace(getAttr(n, "href"))
	if !strings.HasPrefix(href, wikiPathPrefix) {
		return "", false
	}

	rest := strings.TrimPrefix(href, wikiPathPrefix)
	if unescaped, err := url.PathUnescape(rest); err == nil {
		rest = unescaped
	}
	if i := strings.IndexByte(rest, '#'); i >= 0 {
		rest = rest[:i]
	}

	title := model.NormalizeTitle(rest)
	if title == "" {
		// Anchor-only link, or a bare /wiki/ path.
		return "", false
	}
	if !model.IsMainspace(title) {
		return "", false
	}
	if model.SameTitle(title, docTitle) {
		return "", false
	}

	return title, true
}

// parenDepth advances the open-parenthesis count over one text segment.
// The count never drops below zero so that a stray closer in body text
// cannot mask every link after it.
func parenDepth(depth int, text string) int {
	for _, r := range text {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		}
	}
	return depth
}

// getAttr returns the value of the named attribute, or an empty string.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
