package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Print the ATS score and section completion",
	RunE:  runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	sess, store, err := openSession(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	doc := sess.Document()
	score := scoring.ATSScore(doc)
	fmt.Printf("ATS score: %d/%d\n", score, scoring.MaxScore)
	fmt.Println(scoring.ScoreMessage(score))
	fmt.Println()

	status := scoring.CompletionStatus(doc)
	for _, section := range scoring.Sections {
		mark := " "
		if status[section] {
			mark = "x"
		}
		fmt.Printf("  [%s] %s\n", mark, section)
	}
	fmt.Printf("Completion: %.1f%%\n", scoring.CompletionPercent(doc))
	return nil
}
