package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected
// default values. This test serves as living documentation of the defaults;
// it fails when a default changes unintentionally.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default start page is the example topic", func(t *testing.T) {
		t.Parallel()
		if cfg.StartPage != "Python (programming language)" {
			t.Errorf("expected StartPage to be 'Python (programming language)', got %q", cfg.StartPage)
		}
	})

	t.Run("default target is Philosophy", func(t *testing.T) {
		t.Parallel()
		if cfg.Target != "Philosophy" {
			t.Errorf("expected Target to be 'Philosophy', got %q", cfg.Target)
		}
	})

	t.Run("default API URL is the English endpoint", func(t *testing.T) {
		t.Parallel()
		if cfg.APIURL != "https://en.wikipedia.org/w/api.php" {
			t.Errorf("expected APIURL to be the en.wikipedia.org endpoint, got %q", cfg.APIURL)
		}
	})

	t.Run("default Timeout is 30 seconds", func(t *testing.T) {
		t.Parallel()
		if cfg.Timeout != 30*time.Second {
			t.Errorf("expected Timeout to be 30s, got %v", cfg.Timeout)
		}
	})

	t.Run("default Runs is 1", func(t *testing.T) {
		t.Parallel()
		if cfg.Runs != 1 {
			t.Errorf("expected Runs to be 1, got %d", cfg.Runs)
		}
	})

	t.Run("default Concurrency is 1", func(t *testing.T) {
		t.Parallel()
		if cfg.Concurrency != 1 {
			t.Errorf("expected Concurrency to be 1, got %d", cfg.Concurrency)
		}
	})

	t.Run("default Delay is zero", func(t *testing.T) {
		t.Parallel()
		if cfg.Delay != 0 {
			t.Errorf("expected Delay to be 0, got %v", cfg.Delay)
		}
	})

	t.Run("default UserAgent identifies the tool", func(t *testing.T) {
		t.Parallel()
		if cfg.UserAgent == "" {
			t.Error("expected non-empty UserAgent")
		}
	})

	t.Run("default modes are off", func(t *testing.T) {
		t.Parallel()
		if cfg.DontStop || cfg.Random || cfg.Verbose || cfg.JSONReport || cfg.MarkdownReport {
			t.Error("expected DontStop, Random, Verbose, JSONReport, MarkdownReport to default to false")
		}
	})
}

// TestConfigValidate tests the Validate method with various configurations.
// Each test case is designed to test one specific validation rule.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	t.Run("default config is valid", func(t *testing.T) {
		t.Parallel()
		if err := NewConfig().Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("empty target returns ErrEmptyTarget", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Target = ""

		if err := cfg.Validate(); !errors.Is(err, ErrEmptyTarget) {
			t.Errorf("expected ErrEmptyTarget, got %v", err)
		}
	})

	t.Run("empty target is valid when unbounded", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Target = ""
		cfg.DontStop = true

		if err := cfg.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("empty start page returns ErrEmptyStartPage", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.StartPage = ""

		if err := cfg.Validate(); !errors.Is(err, ErrEmptyStartPage) {
			t.Errorf("expected ErrEmptyStartPage, got %v", err)
		}
	})

	t.Run("empty start page is valid with random", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.StartPage = ""
		cfg.Random = true

		if err := cfg.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("empty API URL returns ErrEmptyAPIURL", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.APIURL = ""

		if err := cfg.Validate(); !errors.Is(err, ErrEmptyAPIURL) {
			t.Errorf("expected ErrEmptyAPIURL, got %v", err)
		}
	})

	t.Run("zero timeout returns ErrInvalidTimeout", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Timeout = 0

		if err := cfg.Validate(); !errors.Is(err, ErrInvalidTimeout) {
			t.Errorf("expected ErrInvalidTimeout, got %v", err)
		}
	})

	t.Run("negative timeout returns ErrInvalidTimeout", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Timeout = -1 * time.Second

		if err := cfg.Validate(); !errors.Is(err, ErrInvalidTimeout) {
			t.Errorf("expected ErrInvalidTimeout, got %v", err)
		}
	})

	t.Run("zero runs returns ErrInvalidRuns", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Runs = 0

		if err := cfg.Validate(); !errors.Is(err, ErrInvalidRuns) {
			t.Errorf("expected ErrInvalidRuns, got %v", err)
		}
	})

	t.Run("zero concurrency returns ErrInvalidConcurrency", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Concurrency = 0

		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConcurrency) {
			t.Errorf("expected ErrInvalidConcurrency, got %v", err)
		}
	})

	t.Run("negative delay returns ErrInvalidDelay", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Delay = -1 * time.Second

		if err := cfg.Validate(); !errors.Is(err, ErrInvalidDelay) {
			t.Errorf("expected ErrInvalidDelay, got %v", err)
		}
	})

	t.Run("json and markdown both enabled returns ErrConflictingReportFormats", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.JSONReport = true
		cfg.MarkdownReport = true

		if err := cfg.Validate(); !errors.Is(err, ErrConflictingReportFormats) {
			t.Errorf("expected ErrConflictingReportFormats, got %v", err)
		}
	})

	t.Run("json only is valid", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.JSONReport = true

		if err := cfg.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("markdown only is valid", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.MarkdownReport = true

		if err := cfg.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})
}

// TestFileApply tests merging a config file onto defaults.
func TestFileApply(t *testing.T) {
	t.Parallel()

	t.Run("all values apply", func(t *testing.T) {
		t.Parallel()

		f := &File{
			APIURL:          "https://de.wikipedia.org/w/api.php",
			UserAgent:       "custom-agent/1.0",
			Timeout:         "45s",
			Delay:           "500ms",
			Proxy:           "127.0.0.1:9050",
			ExcludeSelector: "table, i",
		}
		cfg := NewConfig()
		if err := f.Apply(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.APIURL != "https://de.wikipedia.org/w/api.php" {
			t.Errorf("expected APIURL from file, got %q", cfg.APIURL)
		}
		if cfg.UserAgent != "custom-agent/1.0" {
			t.Errorf("expected UserAgent from file, got %q", cfg.UserAgent)
		}
		if cfg.Timeout != 45*time.Second {
			t.Errorf("expected Timeout 45s, got %v", cfg.Timeout)
		}
		if cfg.Delay != 500*time.Millisecond {
			t.Errorf("expected Delay 500ms, got %v", cfg.Delay)
		}
		if cfg.ProxyAddress != "127.0.0.1:9050" {
			t.Errorf("expected ProxyAddress from file, got %q", cfg.ProxyAddress)
		}
		if cfg.ExcludeSelector != "table, i" {
			t.Errorf("expected ExcludeSelector from file, got %q", cfg.ExcludeSelector)
		}
	})

	t.Run("sparse file keeps defaults", func(t *testing.T) {
		t.Parallel()

		f := &File{UserAgent: "custom-agent/1.0"}
		cfg := NewConfig()
		if err := f.Apply(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.UserAgent != "custom-agent/1.0" {
			t.Errorf("expected UserAgent from file, got %q", cfg.UserAgent)
		}
		if cfg.APIURL != DefaultAPIURL {
			t.Errorf("expected default APIURL, got %q", cfg.APIURL)
		}
		if cfg.Timeout != DefaultTimeout {
			t.Errorf("expected default Timeout, got %v", cfg.Timeout)
		}
	})

	t.Run("unparsable timeout is an error", func(t *testing.T) {
		t.Parallel()

		f := &File{Timeout: "eventually"}
		if err := f.Apply(NewConfig()); err == nil {
			t.Error("expected error for unparsable timeout")
		}
	})

	t.Run("unparsable delay is an error", func(t *testing.T) {
		t.Parallel()

		f := &File{Delay: "soonish"}
		if err := f.Apply(NewConfig()); err == nil {
			t.Error("expected error for unparsable delay")
		}
	})
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrConfigNotFound for non-existent file", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfigFile("/nonexistent/path/wikipedia-philosophy.yml")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("expected ErrConfigNotFound, got: %v", err)
		}
		if cfg != nil {
			t.Error("expected nil config when file not found")
		}
	})

	t.Run("loads valid YAML config", func(t *testing.T) {
		t.Parallel()

		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, DefaultConfigFile)

		content := `api_url: https://simple.wikipedia.org/w/api.php
user_agent: "test-agent/0.1"
timeout: 10s
delay: 250ms
proxy: "127.0.0.1:9050"
`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		f, err := LoadConfigFile(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if f.APIURL != "https://simple.wikipedia.org/w/api.php" {
			t.Errorf("expected api_url from file, got %q", f.APIURL)
		}
		if f.UserAgent != "test-agent/0.1" {
			t.Errorf("expected user_agent from file, got %q", f.UserAgent)
		}
		if f.Timeout != "10s" {
			t.Errorf("expected timeout '10s', got %q", f.Timeout)
		}
		if f.Delay != "250ms" {
			t.Errorf("expected delay '250ms', got %q", f.Delay)
		}
		if f.Proxy != "127.0.0.1:9050" {
			t.Errorf("expected proxy from file, got %q", f.Proxy)
		}
	})

	t.Run("returns error for invalid YAML", func(t *testing.T) {
		t.Parallel()

		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, DefaultConfigFile)

		content := `invalid: yaml: content: [}`
		if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := LoadConfigFile(configPath); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})
}

func TestFindConfigFile(t *testing.T) {
	t.Run("returns explicit path if exists", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "custom.yml")

		if err := os.WriteFile(configPath, []byte("timeout: 10s"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		result := FindConfigFile(configPath)
		if result != configPath {
			t.Errorf("expected %q, got %q", configPath, result)
		}
	})

	t.Run("returns empty for non-existent explicit path", func(t *testing.T) {
		result := FindConfigFile("/nonexistent/path/config.yml")
		if result != "" {
			t.Errorf("expected empty string, got %q", result)
		}
	})

	t.Run("finds the file in the current directory", func(t *testing.T) {
		tmpDir := t.TempDir()
		if err := os.WriteFile(filepath.Join(tmpDir, DefaultConfigFile), []byte("timeout: 10s"), 0600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}
		t.Chdir(tmpDir)

		// The search joins os.Getwd() with the file name; resolve the
		// working directory the same way so symlinked temp dirs compare
		// equal.
		wd, err := os.Getwd()
		if err != nil {
			t.Fatalf("failed to get working directory: %v", err)
		}

		result := FindConfigFile("")
		if want := filepath.Join(wd, DefaultConfigFile); result != want {
			t.Errorf("expected %q, got %q", want, result)
		}
	})
}

func TestApplyEnv(t *testing.T) {
	t.Run("environment overrides config", func(t *testing.T) {
		t.Setenv(EnvAPIURL, "https://fr.wikipedia.org/w/api.php")
		t.Setenv(EnvUserAgent, "env-agent/2.0")
		t.Setenv(EnvProxy, "127.0.0.1:1080")
		t.Setenv(EnvTimeout, "12s")
		t.Setenv(EnvDelay, "2s")

		cfg := NewConfig()
		if err := cfg.ApplyEnv(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.APIURL != "https://fr.wikipedia.org/w/api.php" {
			t.Errorf("expected APIURL from env, got %q", cfg.APIURL)
		}
		if cfg.UserAgent != "env-agent/2.0" {
			t.Errorf("expected UserAgent from env, got %q", cfg.UserAgent)
		}
		if cfg.ProxyAddress != "127.0.0.1:1080" {
			t.Errorf("expected ProxyAddress from env, got %q", cfg.ProxyAddress)
		}
		if cfg.Timeout != 12*time.Second {
			t.Errorf("expected Timeout 12s, got %v", cfg.Timeout)
		}
		if cfg.Delay != 2*time.Second {
			t.Errorf("expected Delay 2s, got %v", cfg.Delay)
		}
	})

	t.Run("unset environment leaves config untouched", func(t *testing.T) {
		t.Setenv(EnvAPIURL, "")

		cfg := NewConfig()
		if err := cfg.ApplyEnv(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.APIURL != DefaultAPIURL {
			t.Errorf("expected default APIURL, got %q", cfg.APIURL)
		}
	})

	t.Run("unparsable duration is an error", func(t *testing.T) {
		t.Setenv(EnvTimeout, "whenever")

		if err := NewConfig().ApplyEnv(); err == nil {
			t.Error("expected error for unparsable PHILOSOPHY_TIMEOUT")
		}
	})
}

func TestXDGConfigDir(t *testing.T) {
	t.Parallel()

	dir := XDGConfigDir()
	if dir == "" {
		t.Error("expected non-empty XDG config dir")
	}
	if filepath.Base(dir) != AppName {
		t.Errorf("expected dir to end in %q, got %q", AppName, dir)
	}
}
