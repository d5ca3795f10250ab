// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/brand-styleguide/internal/types"
)

// Defaults applied by MergeWithDefaults when a field is unset
const (
	DefaultMaxRepairAttempts = 2
	DefaultQualityThreshold  = 80
	DefaultOutput            = "styleguide.html"
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Input
	URL      string `json:"url,omitempty"`       // Brand site to fetch
	HTMLFile string `json:"html_file,omitempty"` // Saved page markup to read instead of fetching
	Domain   string `json:"domain,omitempty"`    // Domain to report when reading a file

	// Output
	Out string `json:"out,omitempty"` // Path for the assembled HTML document

	// Repair
	MaxRepairAttempts int `json:"max_repair_attempts,omitempty"`
	QualityThreshold  int `json:"quality_threshold,omitempty"`

	// Behavior
	UseBrowser bool   `json:"use_browser,omitempty"` // Allow headless rendering for script-built sites
	Verbose    bool   `json:"verbose,omitempty"`     // Print detailed debug information
	APIKey     string `json:"api_key,omitempty"`     // Gemini API key; AI sections are skipped without one

	// Storage
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	RedisURL    string `json:"redis_url,omitempty"`    // Redis URL for the fetch cache

	Personality *types.PersonalityOverride `json:"personality,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
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

// FromEnv reads the connection settings and API key from the environment
func FromEnv() Config {
	return Config{
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
	}
}

// Validate checks that the configuration has valid values.
// Required inputs are checked by the CLI after merging flags.
func (c *Config) Validate() error {
	if c.URL != "" && c.HTMLFile != "" {
		return fmt.Errorf("config error: 'url' and 'html_file' are mutually exclusive")
	}
	if c.MaxRepairAttempts < 0 {
		return fmt.Errorf("config error: 'max_repair_attempts' must be non-negative")
	}
	if c.QualityThreshold < 0 || c.QualityThreshold > 100 {
		return fmt.Errorf("config error: 'quality_threshold' must be between 0 and 100")
	}
	if c.HTMLFile != "" {
		if _, err := os.Stat(c.HTMLFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: html file not found: %s", c.HTMLFile)
		}
	}
	if c.Personality != nil {
		if err := c.Personality.Validate(); err != nil {
			return fmt.Errorf("config error: invalid personality: %w", err)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults, then from the package defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.URL == "" {
		result.URL = defaults.URL
	}
	if result.HTMLFile == "" {
		result.HTMLFile = defaults.HTMLFile
	}
	if result.Domain == "" {
		result.Domain = defaults.Domain
	}
	if result.Out == "" {
		result.Out = defaults.Out
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.RedisURL == "" {
		result.RedisURL = defaults.RedisURL
	}
	if result.Personality == nil {
		result.Personality = defaults.Personality
	}

	if result.MaxRepairAttempts == 0 {
		result.MaxRepairAttempts = defaults.MaxRepairAttempts
	}
	if result.QualityThreshold == 0 {
		result.QualityThreshold = defaults.QualityThreshold
	}

	if result.Out == "" {
		result.Out = DefaultOutput
	}
	if result.MaxRepairAttempts == 0 {
		result.MaxRepairAttempts = DefaultMaxRepairAttempts
	}
	if result.QualityThreshold == 0 {
		result.QualityThreshold = DefaultQualityThreshold
	}

	// Bools cannot tell unset from false; CLI flags win for those.
	return result
}
