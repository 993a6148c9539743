package walk

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/smtchahal/wikipedia-philosophy/internal/model"
	"golang.org/x/sync/errgroup"
)

// StartFunc produces the starting article for one run. A Runner calls it
// once per walk, so random modes draw a fresh article every time.
type StartFunc func(ctx context.Context) (string, error)

// FixedStart returns a StartFunc that always starts from title.
func FixedStart(title string) StartFunc {
	return func(context.Context) (string, error) {
		return title, nil
	}
}

// Runner executes several walks with a shared concurrency limit.
//
// Design decision: We use a separate Runner rather than adding batch
// methods to Walker because:
//  1. It keeps Walker focused on a single traversal
//  2. Each walk stays strictly sequential; only whole walks run in
//     parallel, so per-walk pacing guarantees still hold
//  3. It provides one place for collecting and ordering outcomes
type Runner struct {
	// walker starts the individual traversals. Walkers are safe for
	// concurrent use, so every run shares this one.
	walker *Walker

	// concurrency is the maximum number of walks in flight.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger

	// results stores completed outcomes, indexed by run.
	// Access is synchronized via mutex.
	results []*model.Outcome
	mu      sync.Mutex
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithRunnerLogger sets a custom logger for batch-level logging.
func WithRunnerLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithConcurrency sets the maximum number of walks in flight.
// Default is 1, which runs the walks one after another.
func WithConcurrency(n int) RunnerOption {
	return func(r *Runner) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// NewRunner creates a Runner that starts its walks through walker.
func NewRunner(walker *Walker, opts ...RunnerOption) *Runner {
	r := &Runner{
		walker:      walker,
		concurrency: 1,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = slog.Default()
	}

	return r
}

// Run executes count walks, each starting from the article produced by
// start, and returns their outcomes indexed by run.
//
// A failed walk does not abort the batch; its failure is recorded on its
// outcome. The error return reports cancellation only.
func (r *Runner) Run(ctx context.Context, count int, start StartFunc) ([]*model.Outcome, error) {
	r.logger.Info("starting batch",
		"runs", count,
		"concurrency", r.concurrency,
	)

	startTime := time.Now()

	// Pre-allocate to keep outcomes in run order.
	r.results = make([]*model.Outcome, count)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i := range count {
		g.Go(func() error {
			// Check for cancellation before starting
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			outcome := r.runOne(ctx, start, i, count)

			r.mu.Lock()
			r.results[i] = outcome
			r.mu.Unlock()

			return nil
		})
	}

	err := g.Wait()

	r.logger.Info("batch complete",
		"runs", count,
		"elapsed", time.Since(startTime),
	)

	return r.results, err
}

// RunWithCallback executes count walks and calls the callback once per
// completed walk. This is useful for rendering results as they arrive.
//
// The callback receives the outcome and the run index. It is called from
// the goroutine that finished the walk, so it must be safe for concurrent
// use when it touches shared state.
func (r *Runner) RunWithCallback(
	ctx context.Context,
	count int,
	start StartFunc,
	callback func(outcome *model.Outcome, index int),
) error {
	r.logger.Info("starting batch with callback",
		"runs", count,
		"concurrency", r.concurrency,
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i := range count {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			callback(r.runOne(ctx, start, i, count), i)
			return nil
		})
	}

	return g.Wait()
}

// runOne drives a single walk to its end. Walk failures are captured on
// the returned outcome rather than escaping, so one bad run never stops
// the others.
func (r *Runner) runOne(ctx context.Context, start StartFunc, index, total int) *model.Outcome {
	title, err := start(ctx)
	if err != nil {
		r.logger.Warn("could not pick a starting article",
			"run", index+1,
			"error", err,
		)
		return &model.Outcome{
			Status:    model.StatusFailed,
			Target:    r.walker.target,
			Unbounded: r.walker.unbounded,
			Err:       err,
		}
	}

	r.logger.Info("starting walk",
		"start", title,
		"run", index+1,
		"total", total,
	)

	w := r.walker.Walk(ctx, title)
	for w.Next() {
	}

	return w.Outcome()
}
