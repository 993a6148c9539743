package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/smtchahal/wikipedia-philosophy/internal/config"
	"github.com/smtchahal/wikipedia-philosophy/internal/log"
	"github.com/smtchahal/wikipedia-philosophy/internal/model"
	"github.com/smtchahal/wikipedia-philosophy/internal/report"
	"github.com/smtchahal/wikipedia-philosophy/internal/walk"
	"github.com/smtchahal/wikipedia-philosophy/internal/wiki"
	"github.com/spf13/cobra"
)

// NewTraceCmd creates the trace command.
func NewTraceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace [page]",
		Short: "Walk first links from a page until Philosophy",
		Long: `Trace starts at a Wikipedia article and repeatedly follows the first
qualifying link of each page until the walk reaches the target article,
loops back to a visited article, or finds no link to follow.

A link qualifies when it points to an ordinary article, sits outside
parentheses, and is not rendered in italics, as a reference, or inside
infoboxes and other page chrome.

Examples:
  # Walk from a specific page to Philosophy
  wikipedia-philosophy trace "Rubber duck"

  # Walk from a random article
  wikipedia-philosophy trace --random

  # Keep walking until the first loop, ignoring the target
  wikipedia-philosophy trace --dont-stop "Rubber duck"

  # Ten walks from random pages, four at a time
  wikipedia-philosophy trace --random --runs 10 --concurrency 4

  # JSON report written to a file
  wikipedia-philosophy trace --json -o walk.json "Rubber duck"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runTraceCmd,
	}

	// Walk shape flags
	cmd.Flags().StringP("end", "e", config.DefaultTarget,
		"Target article that ends the walk")
	cmd.Flags().Bool("dont-stop", false,
		"Ignore the target and walk until a loop or a dead end")
	cmd.Flags().Bool("random", false,
		"Start from a random article (mutually exclusive with [page])")

	// Batch flags
	cmd.Flags().IntP("runs", "n", config.DefaultRuns,
		"Number of independent walks")
	cmd.Flags().Int("concurrency", config.DefaultConcurrency,
		"Number of walks running at the same time")

	// Service flags
	cmd.Flags().Duration("delay", 0,
		"Pause between article fetches within one walk")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"HTTP timeout for a single request")
	cmd.Flags().String("api-url", config.DefaultAPIURL,
		"MediaWiki API endpoint")
	cmd.Flags().String("user-agent", config.DefaultUserAgent,
		"User-Agent header sent with every request")
	cmd.Flags().String("proxy", "",
		"SOCKS5 proxy address (e.g., 127.0.0.1:9050)")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: wikipedia-philosophy.yml in current or XDG config directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write the report to the specified file path (creates directories if needed)")

	return cmd
}

// runTraceCmd executes the trace command.
func runTraceCmd(cmd *cobra.Command, args []string) error {
	// Build config from file, environment, and flags
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	verbose := getVerboseFlag(cmd)
	logger := log.NewLogger(os.Stderr, verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runTrace(ctx, cmd, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from the config file, the environment, and
// cobra command flags. Precedence, lowest to highest: defaults, config
// file, environment, explicit flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load service settings from the config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently skip when no file is discovered.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := file.Apply(cfg); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		// User explicitly specified a config file that doesn't exist
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	// Environment overrides file values.
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	// Service flags are applied only when set, so their cobra defaults do
	// not mask file or environment values.
	if cmd.Flags().Changed("api-url") {
		cfg.APIURL, err = cmd.Flags().GetString("api-url")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("user-agent") {
		cfg.UserAgent, err = cmd.Flags().GetString("user-agent")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("timeout") {
		cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("delay") {
		cfg.Delay, err = cmd.Flags().GetDuration("delay")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("proxy") {
		cfg.ProxyAddress, err = cmd.Flags().GetString("proxy")
		if err != nil {
			return nil, err
		}
	}

	// Walk shape is flag-only.
	cfg.Target, err = cmd.Flags().GetString("end")
	if err != nil {
		return nil, err
	}

	cfg.DontStop, err = cmd.Flags().GetBool("dont-stop")
	if err != nil {
		return nil, err
	}

	cfg.Random, err = cmd.Flags().GetBool("random")
	if err != nil {
		return nil, err
	}

	cfg.Runs, err = cmd.Flags().GetInt("runs")
	if err != nil {
		return nil, err
	}

	cfg.Concurrency, err = cmd.Flags().GetInt("concurrency")
	if err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	// Positional argument is the start page.
	if len(args) > 0 {
		if cfg.Random {
			return nil, config.ErrConflictingStart
		}
		cfg.StartPage = args[0]
	}

	return cfg, nil
}

// runTrace executes the walks described by the configuration.
func runTrace(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	client, err := newWikiClient(cfg, logger)
	if err != nil {
		return err
	}

	walker, err := newWalker(cfg, client, logger)
	if err != nil {
		return err
	}

	start := walk.FixedStart(cfg.StartPage)
	if cfg.Random {
		start = client.Random
	}

	output, cleanup, err := openOutput(cmd, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	writer := newReportWriter(cfg, output)

	// A single plain-text walk to the terminal streams each title as it is
	// visited. Everything else renders finished outcomes.
	if cfg.Runs == 1 && !cfg.JSONReport && !cfg.MarkdownReport && cfg.ReportFile == "" {
		return streamWalk(ctx, cfg, walker, start, output, writer)
	}

	runner := walk.NewRunner(walker,
		walk.WithConcurrency(cfg.Concurrency),
		walk.WithRunnerLogger(logger),
	)

	outcomes, err := runner.Run(ctx, cfg.Runs, start)
	if err != nil {
		return err
	}

	for i, outcome := range outcomes {
		if i > 0 && !cfg.JSONReport && !cfg.MarkdownReport {
			fmt.Fprintln(output)
		}
		if _, err := writer.Write(outcome); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	return batchError(cfg, outcomes)
}

// streamWalk runs a single walk, printing each title as it is visited.
func streamWalk(ctx context.Context, cfg *config.Config, walker *walk.Walker, start walk.StartFunc, output io.Writer, writer report.Writer) error {
	title, err := start(ctx)
	if err != nil {
		return err
	}

	w := walker.Walk(ctx, title)
	for w.Next() {
		fmt.Fprintln(output, w.Title())
	}

	outcome := w.Outcome()
	if _, err := writer.WriteSummary(outcome); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return outcomeError(cfg, outcome)
}

// newWikiClient creates the MediaWiki client from the configuration.
func newWikiClient(cfg *config.Config, logger *slog.Logger) (*wiki.Client, error) {
	opts := []wiki.Option{
		wiki.WithBaseURL(cfg.APIURL),
		wiki.WithUserAgent(cfg.UserAgent),
		wiki.WithTimeout(cfg.Timeout),
		wiki.WithLogger(logger),
	}
	if cfg.ProxyAddress != "" {
		opts = append(opts, wiki.WithProxyAddress(cfg.ProxyAddress))
	}

	client, err := wiki.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return client, nil
}

// newWalker creates the walker from the configuration.
func newWalker(cfg *config.Config, client *wiki.Client, logger *slog.Logger) (*walk.Walker, error) {
	opts := []walk.WalkerOption{
		walk.WithTarget(cfg.Target),
		walk.WithUnbounded(cfg.DontStop),
		walk.WithDelay(cfg.Delay),
		walk.WithLogger(logger),
	}

	if cfg.ExcludeSelector != "" {
		extractor, err := walk.NewExtractor(
			walk.WithExcludeSelector(cfg.ExcludeSelector),
			walk.WithExtractorLogger(logger),
		)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude selector: %w", err)
		}
		opts = append(opts, walk.WithExtractor(extractor))
	}

	walker, err := walk.NewWalker(client, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create walker: %w", err)
	}
	return walker, nil
}

// openOutput returns the report destination and a cleanup function.
func openOutput(cmd *cobra.Command, cfg *config.Config) (io.Writer, func(), error) {
	if cfg.ReportFile == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}

	// Create directories if they don't exist
	dir := filepath.Dir(cfg.ReportFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// newReportWriter picks the report writer for the configured format.
func newReportWriter(cfg *config.Config, output io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		if cfg.Runs > 1 {
			// One compact object per line keeps batch output parseable.
			return report.NewJSONWriter(output)
		}
		return report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewSimpleWriter(output)
	}
}

// succeeded reports whether a walk counts as success: reaching the target
// for bounded walks, closing a loop for unbounded ones.
func succeeded(cfg *config.Config, outcome *model.Outcome) bool {
	if cfg.DontStop {
		return outcome.Status == model.StatusCycleDetected
	}
	return outcome.Status == model.StatusReachedTarget
}

// outcomeError converts an unsuccessful outcome into the error returned to
// the user. The report is already written; this decides the exit code and
// the stderr line.
func outcomeError(cfg *config.Config, outcome *model.Outcome) error {
	if succeeded(cfg, outcome) {
		return nil
	}

	switch outcome.Status {
	case model.StatusFailed, model.StatusLinkExhausted:
		return outcome.Err
	case model.StatusCycleDetected:
		return fmt.Errorf("walk looped before reaching %q", cfg.Target)
	default:
		return fmt.Errorf("walk did not reach %q", cfg.Target)
	}
}

// batchError summarizes the unsuccessful runs of a batch.
func batchError(cfg *config.Config, outcomes []*model.Outcome) error {
	failed := 0
	var firstErr error
	for _, outcome := range outcomes {
		if succeeded(cfg, outcome) {
			continue
		}
		failed++
		if firstErr == nil {
			firstErr = outcomeError(cfg, outcome)
		}
	}

	if failed == 0 {
		return nil
	}
	if len(outcomes) == 1 {
		return firstErr
	}
	return fmt.Errorf("%d of %d walks did not finish as requested: %w", failed, len(outcomes), firstErr)
}
