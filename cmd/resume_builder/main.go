// Package main provides the entry point for the resume builder CLI and HTTP
// API server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/storage"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "resume_builder",
	Short: "Resume builder HTTP API server and CLI",
	Long:  "Resume builder maintains a structured resume document, scores it for ATS compatibility, renders it through interchangeable layouts, and exports it to PDF.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadSettings resolves configuration: built-in defaults, then the config
// file, then environment variables.
func loadSettings() (config.Config, error) {
	cfg := config.DefaultConfig()

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("GITHUB_TOKEN"); v != "" {
		cfg.GitHubToken = v
	}
	if v := os.Getenv("GITHUB_USER"); v != "" {
		cfg.GitHubUser = v
	}
	if v := os.Getenv("SHARE_BASE_URL"); v != "" {
		cfg.ShareBaseURL = v
	}
	if v := os.Getenv("SHARE_SIGNING_KEY"); v != "" {
		cfg.ShareSigningKey = v
	}
	if v := os.Getenv("RESUME_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// openStore selects PostgreSQL when a database URL is configured, the file
// store otherwise.
func openStore(ctx context.Context, cfg config.Config) (storage.Store, error) {
	if cfg.DatabaseURL != "" {
		return storage.ConnectPostgres(ctx, cfg.DatabaseURL)
	}
	return storage.NewFileStore(cfg.DataDir)
}

// openSession opens the store and rehydrates the last editing session.
func openSession(ctx context.Context, cfg config.Config) (*session.Session, storage.Store, error) {
	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	sess := session.New(store)
	if _, err := sess.RestoreLast(ctx); err != nil {
		store.Close()
		return nil, nil, err
	}
	return sess, store, nil
}
