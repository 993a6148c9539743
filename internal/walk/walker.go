package walk

import (
	"context"
	"log/slog"
	"time"

	"github.com/smtchahal/wikipedia-philosophy/internal/model"
)

// Fetcher retrieves one article's rendered markup at the given detail
// level. Implementations resolve redirects and report the canonical title
// on the returned document.
type Fetcher interface {
	Fetch(ctx context.Context, title string, level model.Level) (*model.Document, error)
}

// Walker holds the traversal settings shared by every walk it starts.
// A Walker is safe for concurrent use; each call to Walk returns an
// independent traversal.
type Walker struct {
	// fetcher retrieves article markup.
	fetcher Fetcher

	// extractor picks the first qualifying link out of each article.
	extractor *Extractor

	// target is the canonical title that ends a bounded walk.
	target string

	// unbounded disables the target check; the walk runs until a cycle,
	// exhaustion, or an error ends it.
	unbounded bool

	// delay is the pause before every fetch after the first.
	delay time.Duration

	// logger is used for walk-level logging.
	logger *slog.Logger
}

// WalkerOption configures a Walker.
type WalkerOption func(*Walker)

// WithTarget sets the article that ends a bounded walk. The title is
// normalized, so any surface form of the target works. A bounded walker
// without a target never reaches one.
func WithTarget(title string) WalkerOption {
	return func(w *Walker) {
		w.target = title
	}
}

// WithUnbounded controls whether walks ignore the target and keep going
// until a cycle, exhaustion, or an error stops them.
func WithUnbounded(unbounded bool) WalkerOption {
	return func(w *Walker) {
		w.unbounded = unbounded
	}
}

// WithExtractor sets a custom link extractor.
func WithExtractor(extractor *Extractor) WalkerOption {
	return func(w *Walker) {
		w.extractor = extractor
	}
}

// WithDelay sets the pause inserted before every fetch after the first.
// Zero disables pacing.
func WithDelay(delay time.Duration) WalkerOption {
	return func(w *Walker) {
		w.delay = delay
	}
}

// WithLogger sets a custom logger for walk-level logging.
func WithLogger(logger *slog.Logger) WalkerOption {
	return func(w *Walker) {
		w.logger = logger
	}
}

// NewWalker creates a Walker that fetches articles through fetcher.
func NewWalker(fetcher Fetcher, opts ...WalkerOption) (*Walker, error) {
	w := &Walker{
		fetcher: fetcher,
	}

	for _, opt := range opts {
		opt(w)
	}

	if w.logger == nil {
		w.logger = slog.Default()
	}
	w.target = model.NormalizeTitle(w.target)

	if w.extractor == nil {
		extractor, err := NewExtractor(WithExtractorLogger(w.logger))
		if err != nil {
			return nil, err
		}
		w.extractor = extractor
	}

	return w, nil
}

// reached reports whether title ends a bounded walk.
func (w *Walker) reached(title string) bool {
	return !w.unbounded && w.target != "" && title == w.target
}

// Walk starts a traversal from the given article. Nothing is fetched
// until the first call to Next, and an ended walk cannot be restarted.
//
// Design decision: Walk keeps the lead document of the newest article
// between pulls. Extraction for the following pull runs against that
// document, so each article is fetched exactly once on the common path
// and a second time only when its lead section has no qualifying link.
type Walk struct {
	walker *Walker
	ctx    context.Context
	start  string

	path    []string
	seen    map[string]bool
	doc     *model.Document
	title   string
	outcome *model.Outcome
	began   time.Time
	fetched bool
}

// Walk starts a lazy traversal from start. The title may be any surface
// form; the first pull resolves it to a canonical title.
func (w *Walker) Walk(ctx context.Context, start string) *Walk {
	return &Walk{
		walker: w,
		ctx:    ctx,
		start:  start,
		seen:   make(map[string]bool),
	}
}

// Next advances the traversal by one article. It returns true when a new
// title is available via Title, and false once the walk has ended.
// Outcome reports how it ended.
func (w *Walk) Next() bool {
	if w.outcome != nil {
		return false
	}
	if err := w.ctx.Err(); err != nil {
		w.fail(err)
		return false
	}
	if w.path == nil {
		return w.first()
	}
	return w.step()
}

// first fetches the starting article and emits its canonical title.
func (w *Walk) first() bool {
	w.began = time.Now()

	doc, err := w.fetch(w.start, model.LevelLead)
	if err != nil {
		w.fail(err)
		return false
	}

	w.walker.logger.Debug("starting walk",
		"start", doc.Title,
		"target", w.walker.target,
		"unbounded", w.walker.unbounded,
	)

	w.path = []string{doc.Title}
	w.seen[doc.Title] = true
	w.doc = doc
	w.title = doc.Title
	if w.walker.reached(doc.Title) {
		w.finish(model.StatusReachedTarget)
	}
	return true
}

// step extracts the next hop from the stashed document and moves to it.
func (w *Walk) step() bool {
	current := w.path[len(w.path)-1]

	next, ok := w.walker.extractor.First(w.doc)
	if !ok && w.doc.Level == model.LevelLead {
		// The lead had no qualifying link; retry once against the
		// whole article.
		w.walker.logger.Debug("no link in lead, retrying with full article", "title", current)
		full, err := w.fetch(current, model.LevelFull)
		if err != nil {
			w.fail(err)
			return false
		}
		next, ok = w.walker.extractor.First(full)
	}
	if !ok {
		w.finish(model.StatusLinkExhausted)
		w.outcome.Err = &NoLinkError{Title: current}
		return false
	}

	doc, err := w.fetch(next, model.LevelLead)
	if err != nil {
		w.fail(err)
		return false
	}

	// Cycle identity is decided on canonical titles, after redirects.
	if w.seen[doc.Title] {
		w.finish(model.StatusCycleDetected)
		w.outcome.Repeated = doc.Title
		return false
	}

	w.path = append(w.path, doc.Title)
	w.seen[doc.Title] = true
	w.doc = doc
	w.title = doc.Title
	if w.walker.reached(doc.Title) {
		w.finish(model.StatusReachedTarget)
	}
	return true
}

// fetch retrieves one article, pacing every request after the first.
func (w *Walk) fetch(title string, level model.Level) (*model.Document, error) {
	if w.fetched && w.walker.delay > 0 {
		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		case <-time.After(w.walker.delay):
		}
	}
	w.fetched = true
	return w.walker.fetcher.Fetch(w.ctx, title, level)
}

// finish records the terminal outcome and releases the stashed document.
func (w *Walk) finish(status model.Status) {
	var elapsed time.Duration
	if !w.began.IsZero() {
		elapsed = time.Since(w.began)
	}
	w.outcome = &model.Outcome{
		Status:    status,
		Path:      w.path,
		Target:    w.walker.target,
		Unbounded: w.walker.unbounded,
		Elapsed:   elapsed,
	}
	w.doc = nil

	w.walker.logger.Debug("walk finished",
		"status", status.String(),
		"links", w.outcome.Links(),
		"elapsed", w.outcome.Elapsed,
	)
}

// fail ends the walk with an error.
func (w *Walk) fail(err error) {
	w.finish(model.StatusFailed)
	w.outcome.Err = err
}

// Title returns the article emitted by the most recent successful Next.
func (w *Walk) Title() string {
	return w.title
}

// Path returns the canonical titles visited so far, in order. The slice
// is owned by the walk; callers must not modify it.
func (w *Walk) Path() []string {
	return w.path
}

// Outcome returns the terminal result, or nil while the walk can still
// advance.
func (w *Walk) Outcome() *model.Outcome {
	return w.outcome
}

// Err returns the error that ended the walk, if any. Exhausted walks
// report a *NoLinkError.
func (w *Walk) Err() error {
	if w.outcome == nil {
		return nil
	}
	return w.outcome.Err
}
