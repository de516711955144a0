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
// CLI flags or environment variables.
type Config struct {
	// Server
	Port    int    `json:"port,omitempty"`     // HTTP listen port
	DataDir string `json:"data_dir,omitempty"` // Directory for file-backed snapshots

	// Storage
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL; empty selects file storage

	// External collaborators
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key; empty selects the static optimizer
	GitHubToken string `json:"github_token,omitempty"` // GitHub token for imports; optional for public repos
	GitHubUser  string `json:"github_user,omitempty"`  // Default GitHub username for imports

	// Sharing
	ShareBaseURL    string `json:"share_base_url,omitempty"`    // Public base URL share links are built under
	ShareSigningKey string `json:"share_signing_key,omitempty"` // HMAC key for share tokens

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// DefaultConfig returns the values used when nothing else is configured.
func DefaultConfig() Config {
	return Config{
		Port:         8080,
		DataDir:      "data",
		ShareBaseURL: "http://localhost:8080",
	}
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

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535]")
	}
	if c.ShareSigningKey != "" && len(c.ShareSigningKey) < 16 {
		return fmt.Errorf("config error: 'share_signing_key' must be at least 16 characters")
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. This is used to apply config file values on top of the built-in
// defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.GitHubToken == "" {
		result.GitHubToken = defaults.GitHubToken
	}
	if result.GitHubUser == "" {
		result.GitHubUser = defaults.GitHubUser
	}
	if result.ShareBaseURL == "" {
		result.ShareBaseURL = defaults.ShareBaseURL
	}
	if result.ShareSigningKey == "" {
		result.ShareSigningKey = defaults.ShareSigningKey
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
