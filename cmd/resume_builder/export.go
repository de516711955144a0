package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/types"
)

var (
	exportTemplate string
	exportOut      string
	exportPagesDir string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the current resume to PDF",
	Long:  `Render the last editing session and print it to an A4 PDF through headless Chrome. Optionally also write per-page PNG images.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportTemplate, "template", "", "Layout to render (defaults to the session's)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output PDF path (defaults to the resume holder's name)")
	exportCmd.Flags().StringVar(&exportPagesDir, "pages", "", "Also write per-page PNG images into this directory")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	sess, store, err := openSession(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if exportTemplate != "" {
		if err := sess.SetTemplate(ctx, types.Template(exportTemplate)); err != nil {
			return err
		}
	}

	html, err := sess.RenderHTML()
	if err != nil {
		return err
	}

	pdf, err := export.PDF(ctx, html)
	if err != nil {
		return err
	}

	out := exportOut
	if out == "" {
		out = export.FileName(sess.Document().PersonalDetails.Name)
	}
	if err := os.WriteFile(out, pdf, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	fmt.Printf("Wrote %s\n", out)

	if exportPagesDir != "" {
		if err := writePageImages(ctx, html); err != nil {
			return err
		}
	}
	return nil
}

func writePageImages(ctx context.Context, html string) error {
	if err := os.MkdirAll(exportPagesDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", exportPagesDir, err)
	}

	pages, err := export.PageImages(ctx, html)
	if err != nil {
		return err
	}
	for i, page := range pages {
		path := filepath.Join(exportPagesDir, fmt.Sprintf("page-%02d.png", i+1))
		if err := os.WriteFile(path, page, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	fmt.Printf("Wrote %d page image(s) to %s\n", len(pages), exportPagesDir)
	return nil
}
