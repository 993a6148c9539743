package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// These values mirror the behavior of the original command-line game where
// applicable and stay polite toward the public MediaWiki API.
const (
	// DefaultStartPage is the article a trace starts from when neither a
	// positional page nor --random is given. A programming language is the
	// classic demonstration of the "first link leads to Philosophy" folklore.
	DefaultStartPage = "Python (programming language)"

	// DefaultTarget is the article that ends a bounded traversal.
	DefaultTarget = "Philosophy"

	// DefaultAPIURL is the English-language MediaWiki action API endpoint.
	// Other languages or private wikis can be used via --api-url, as long
	// as they expose action=parse and action=query.
	DefaultAPIURL = "https://en.wikipedia.org/w/api.php"

	// DefaultTimeout is generous for a public API: a single article fetch
	// normally completes in well under a second, but the API occasionally
	// lags under load and a short timeout would abort whole traversals.
	DefaultTimeout = 30 * time.Second

	// DefaultRuns is the number of independent traversals per invocation.
	DefaultRuns = 1

	// DefaultConcurrency keeps multi-run invocations sequential unless the
	// user raises it. Each traversal is itself strictly sequential, so this
	// is the only source of request parallelism.
	DefaultConcurrency = 1

	// DefaultUserAgent identifies the tool in HTTP requests, as the API
	// etiquette guidelines ask of automated clients.
	DefaultUserAgent = "wikipedia-philosophy (+https://github.com/smtchahal/wikipedia-philosophy)"

	// AppName is the application name used for XDG directory paths.
	AppName = "wikipedia-philosophy"
)

// Config holds all configuration options for a trace invocation.
// This struct is populated from defaults, the config file, environment
// variables, and CLI flags (in that order of precedence), then passed
// through the application via dependency injection rather than global
// state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., WalkConfig, ReportConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant
// benefit.
type Config struct {
	// StartPage is the title the traversal starts from. Any surface form
	// is accepted; the first fetch resolves it to a canonical title.
	StartPage string

	// Target is the title that ends a bounded traversal. Ignored when
	// DontStop is set.
	Target string

	// DontStop runs the traversal without a target until a cycle,
	// exhaustion, or an error ends it.
	DontStop bool

	// Random asks the API for a random mainspace article to start from
	// instead of StartPage. Each run draws its own article.
	Random bool

	// Runs is the number of independent traversals to execute.
	Runs int

	// Concurrency is the number of traversals in flight when Runs > 1.
	// Each traversal remains strictly sequential internally.
	Concurrency int

	// Delay is the politeness pause before every HTTP request after the
	// first within one traversal. Zero disables pacing.
	Delay time.Duration

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration

	// APIURL is the MediaWiki action API endpoint.
	APIURL string

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string

	// ProxyAddress is an optional SOCKS5 proxy in "host:port" format.
	// Empty means a direct connection.
	ProxyAddress string

	// ExcludeSelector overrides the CSS selector group for markup skipped
	// during link extraction. Empty means the extractor's default.
	ExcludeSelector string

	// JSONReport renders the outcome as JSON instead of plain text.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport renders the outcome as Markdown instead of plain
	// text. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report. When set, the
	// report is written to this file instead of stdout.
	ReportFile string

	// ConfigFilePath is the explicit path to the configuration file. If
	// empty, the tool searches the current directory and then the XDG
	// config directory.
	ConfigFilePath string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because most defaults are non-zero (target, endpoint,
// timeout). This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		StartPage:   DefaultStartPage,
		Target:      DefaultTarget,
		Runs:        DefaultRuns,
		Concurrency: DefaultConcurrency,
		Timeout:     DefaultTimeout,
		APIURL:      DefaultAPIURL,
		UserAgent:   DefaultUserAgent,
	}
}

// XDGConfigDir returns the XDG config directory for the tool.
// On Linux: ~/.config/wikipedia-philosophy
// On macOS: ~/Library/Application Support/wikipedia-philosophy
// On Windows: %APPDATA%\wikipedia-philosophy
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any traversal begins.
// The first error found is returned rather than collecting all errors,
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	// A bounded traversal needs somewhere to stop.
	if !c.DontStop && c.Target == "" {
		return ErrEmptyTarget
	}

	if !c.Random && c.StartPage == "" {
		return ErrEmptyStartPage
	}

	if c.APIURL == "" {
		return ErrEmptyAPIURL
	}

	// Timeout must be positive; zero would fail every request.
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.Runs < 1 {
		return ErrInvalidRuns
	}

	if c.Concurrency < 1 {
		return ErrInvalidConcurrency
	}

	// Delay may be zero (no pacing) but never negative.
	if c.Delay < 0 {
		return ErrInvalidDelay
	}

	// JSONReport and MarkdownReport are mutually exclusive.
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}
