// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags.
type Config struct {
	BaseURL   string `json:"base_url,omitempty"`   // Application under test
	PagesFile string `json:"pages_file,omitempty"` // Path to the pages JSON file
	OutDir    string `json:"out_dir,omitempty"`    // Report and screenshot directory

	// Viewport
	ViewportName   string `json:"viewport_name,omitempty"`
	ViewportWidth  int64  `json:"viewport_width,omitempty"`
	ViewportHeight int64  `json:"viewport_height,omitempty"`
	Mobile         bool   `json:"mobile,omitempty"`

	// Probe behavior
	SampleLimit          int `json:"sample_limit,omitempty"` // Per-category element cap
	NavigationTimeoutSec int `json:"navigation_timeout_sec,omitempty"`
	Parallelism          int `json:"parallelism,omitempty"` // Concurrent page audits

	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed audit boxes
	DatabaseURL string `json:"database_url,omitempty"` // Optional PostgreSQL audit history
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Required fields are
// handled by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.ViewportWidth < 0 || c.ViewportHeight < 0 {
		return fmt.Errorf("config error: viewport dimensions must be non-negative")
	}
	if c.SampleLimit < 0 {
		return fmt.Errorf("config error: 'sample_limit' must be non-negative")
	}
	if c.NavigationTimeoutSec < 0 {
		return fmt.Errorf("config error: 'navigation_timeout_sec' must be non-negative")
	}
	if c.Parallelism < 0 {
		return fmt.Errorf("config error: 'parallelism' must be non-negative")
	}

	if c.PagesFile != "" {
		if _, err := os.Stat(c.PagesFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: pages file not found: %s", c.PagesFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.PagesFile == "" {
		result.PagesFile = defaults.PagesFile
	}
	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.ViewportName == "" {
		result.ViewportName = defaults.ViewportName
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.ViewportWidth == 0 {
		result.ViewportWidth = defaults.ViewportWidth
	}
	if result.ViewportHeight == 0 {
		result.ViewportHeight = defaults.ViewportHeight
	}
	if result.SampleLimit == 0 {
		result.SampleLimit = defaults.SampleLimit
	}
	if result.NavigationTimeoutSec == 0 {
		result.NavigationTimeoutSec = defaults.NavigationTimeoutSec
	}
	if result.Parallelism == 0 {
		result.Parallelism = defaults.Parallelism
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
