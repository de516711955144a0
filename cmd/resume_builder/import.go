package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/imports"
)

var importUser string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import entries from external sources",
}

var importGitHubCmd = &cobra.Command{
	Use:   "github",
	Short: "Import GitHub repositories as project entries",
	Long:  `Fetch the user's public repositories and merge them into the projects section, skipping titles already present.`,
	RunE:  runImportGitHub,
}

func init() {
	importGitHubCmd.Flags().StringVar(&importUser, "user", "", "GitHub username (overrides config)")
	importCmd.AddCommand(importGitHubCmd)
	rootCmd.AddCommand(importCmd)
}

func runImportGitHub(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	username := importUser
	if username == "" {
		username = cfg.GitHubUser
	}
	if username == "" {
		return fmt.Errorf("a GitHub username is required (--user or config)")
	}

	ctx := cmd.Context()
	sess, store, err := openSession(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	client := imports.NewGitHubClient("", cfg.GitHubToken)
	fetched, err := client.FetchProjects(ctx, username)
	if err != nil {
		return err
	}

	existing := sess.Document().Projects
	merged := imports.Merge(existing, fetched)
	sess.UpdateProjects(ctx, merged)

	fmt.Printf("Imported %d project(s) from github.com/%s\n", len(merged)-len(existing), username)
	return nil
}
