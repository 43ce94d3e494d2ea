// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the analyzer configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or can be
// provided via CLI flags and environment variables.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Lexicon
	LexiconPath string `json:"lexicon,omitempty"` // Path to a custom skills database JSON, empty for built-in

	// Extraction tunables
	EntityLabels  []string `json:"entity_labels,omitempty"`  // Annotator labels the entity filter accepts
	ContextWindow int      `json:"context_window,omitempty"` // Chars scanned after an introducer phrase
	ContextTokens int      `json:"context_tokens,omitempty"` // Tokens inspected per context window

	// Batch
	Parallelism int `json:"parallelism,omitempty"` // Concurrent document analyses per batch

	// Rate limiting
	RateLimitRPS   float64 `json:"rate_limit_rps,omitempty"`   // Requests per second per client
	RateLimitBurst int     `json:"rate_limit_burst,omitempty"` // Burst capacity per client

	// Logging
	LogJSON bool `json:"log_json,omitempty"` // JSON log encoding instead of console
	Verbose bool `json:"verbose,omitempty"`  // Debug-level logging / detailed CLI output
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

// FromEnv fills unset fields from environment variables. Values already set
// (from file or flags) win over the environment.
func (c *Config) FromEnv() {
	if c.Port == 0 {
		if v, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
			c.Port = v
		}
	}
	if c.LexiconPath == "" {
		c.LexiconPath = os.Getenv("LEXICON_PATH")
	}
	if c.Parallelism == 0 {
		if v, err := strconv.Atoi(os.Getenv("BATCH_PARALLELISM")); err == nil {
			c.Parallelism = v
		}
	}
	if c.RateLimitRPS == 0 {
		if v, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64); err == nil {
			c.RateLimitRPS = v
		}
	}
	if c.RateLimitBurst == 0 {
		if v, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST")); err == nil {
			c.RateLimitBurst = v
		}
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.ContextWindow < 0 {
		return fmt.Errorf("config error: 'context_window' must be non-negative")
	}
	if c.ContextTokens < 0 {
		return fmt.Errorf("config error: 'context_tokens' must be non-negative")
	}
	if c.Parallelism < 0 {
		return fmt.Errorf("config error: 'parallelism' must be non-negative")
	}
	if c.RateLimitRPS < 0 {
		return fmt.Errorf("config error: 'rate_limit_rps' must be non-negative")
	}
	if c.RateLimitBurst < 0 {
		return fmt.Errorf("config error: 'rate_limit_burst' must be non-negative")
	}

	if c.LexiconPath != "" {
		if _, err := os.Stat(c.LexiconPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: lexicon file not found: %s", c.LexiconPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.LexiconPath == "" {
		result.LexiconPath = defaults.LexiconPath
	}
	if len(result.EntityLabels) == 0 {
		result.EntityLabels = defaults.EntityLabels
	}
	if result.ContextWindow == 0 {
		result.ContextWindow = defaults.ContextWindow
	}
	if result.ContextTokens == 0 {
		result.ContextTokens = defaults.ContextTokens
	}
	if result.Parallelism == 0 {
		result.Parallelism = defaults.Parallelism
	}
	if result.RateLimitRPS == 0 {
		result.RateLimitRPS = defaults.RateLimitRPS
	}
	if result.RateLimitBurst == 0 {
		result.RateLimitBurst = defaults.RateLimitBurst
	}
	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
