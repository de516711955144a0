package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

var (
	previewTemplate string
	previewOut      string
	previewCheck    bool
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the current resume as HTML",
	Long:  `Render the last editing session through a layout and write the HTML to stdout or a file.`,
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&previewTemplate, "template", "", "Layout to render (clean-minimalist, modern-tech, academic-focus)")
	previewCmd.Flags().StringVar(&previewOut, "out", "", "Write HTML to this file instead of stdout")
	previewCmd.Flags().BoolVar(&previewCheck, "check", false, "Verify all layouts surface the same sections")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, _ []string) error {
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

	if previewTemplate != "" {
		if err := sess.SetTemplate(ctx, types.Template(previewTemplate)); err != nil {
			return err
		}
	}

	html, err := sess.RenderHTML()
	if err != nil {
		return err
	}

	if previewCheck {
		if err := checkLayoutConsistency(sess.Document(), sess.State().ColorScheme); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "All layouts surface the same sections")
	}

	if previewOut == "" {
		fmt.Println(html)
		return nil
	}
	if err := os.WriteFile(previewOut, []byte(html), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", previewOut, err)
	}
	fmt.Printf("Wrote %s\n", previewOut)
	return nil
}

// checkLayoutConsistency renders every layout and compares the section label
// sets they surface for the same document.
func checkLayoutConsistency(doc types.ResumeDocument, scheme types.ColorScheme) error {
	labelSets := make([][]string, len(types.Templates))

	var group errgroup.Group
	for i, layout := range rendering.All() {
		i, layout := i, layout
		group.Go(func() error {
			html, err := layout.Render(doc, scheme)
			if err != nil {
				return err
			}
			labels, err := rendering.SectionLabels(html)
			if err != nil {
				return err
			}
			sort.Strings(labels)
			labelSets[i] = labels
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	for i := 1; i < len(labelSets); i++ {
		if fmt.Sprint(labelSets[i]) != fmt.Sprint(labelSets[0]) {
			return fmt.Errorf("layout %s surfaces %v, but %s surfaces %v",
				types.Templates[i], labelSets[i], types.Templates[0], labelSets[0])
		}
	}
	return nil
}
