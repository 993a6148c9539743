package config

import (
	"fmt"
	"time"
)

// File represents the structure of the wikipedia-philosophy.yml
// configuration file. It carries service settings only; the shape of a
// run (start page, target, run count) is controlled by flags.
//
// Durations are written in Go syntax ("30s", "500ms") and parsed when the
// file is applied.
type File struct {
	// APIURL is the MediaWiki action API endpoint.
	APIURL string `yaml:"api_url,omitempty"`

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string `yaml:"user_agent,omitempty"`

	// Timeout is the per-request HTTP timeout.
	Timeout string `yaml:"timeout,omitempty"`

	// Delay is the politeness pause between HTTP requests.
	Delay string `yaml:"delay,omitempty"`

	// Proxy is a SOCKS5 proxy address in "host:port" format.
	Proxy string `yaml:"proxy,omitempty"`

	// ExcludeSelector overrides the CSS selector group for markup skipped
	// during link extraction.
	ExcludeSelector string `yaml:"exclude_selector,omitempty"`
}

// Apply copies the file's set values onto c. Values absent from the file
// leave c untouched, so defaults survive a sparse config file.
func (f *File) Apply(c *Config) error {
	if f.APIURL != "" {
		c.APIURL = f.APIURL
	}
	if f.UserAgent != "" {
		c.UserAgent = f.UserAgent
	}
	if f.Proxy != "" {
		c.ProxyAddress = f.Proxy
	}
	if f.ExcludeSelector != "" {
		c.ExcludeSelector = f.ExcludeSelector
	}
	if f.Timeout != "" {
		d, err := time.ParseDuration(f.Timeout)
		if err != nil {
			return fmt.Errorf("config timeout: %w", err)
		}
		c.Timeout = d
	}
	if f.Delay != "" {
		d, err := time.ParseDuration(f.Delay)
		if err != nil {
			return fmt.Errorf("config delay: %w", err)
		}
		c.Delay = d
	}
	return nil
}
