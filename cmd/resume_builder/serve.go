package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server exposing the resume document, scoring, preview, export, import, share, and snapshot endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	srv, err := server.New(server.Config{
		Port:            cfg.Port,
		DataDir:         cfg.DataDir,
		DatabaseURL:     cfg.DatabaseURL,
		APIKey:          cfg.APIKey,
		GitHubToken:     cfg.GitHubToken,
		GitHubUser:      cfg.GitHubUser,
		ShareBaseURL:    cfg.ShareBaseURL,
		ShareSigningKey: cfg.ShareSigningKey,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
