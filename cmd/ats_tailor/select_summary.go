package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-tailor/internal/types"
)

var selectSummaryCmd = &cobra.Command{
	Use:   "select-summary",
	Short: "Select the profile summary that best matches a job",
	Long:  "Score each summary variant in the master profile against a job's keyword set and output the best one. Ties go to the earliest declared summary.",
	RunE:  runSelectSummary,
}

var (
	summaryJob     jobInput
	summaryProfile string
	summaryKey     string
	summaryOutput  string
)

func init() {
	summaryJob.bind(selectSummaryCmd, true)
	selectSummaryCmd.Flags().StringVarP(&summaryProfile, "profile", "p", "", "Path to master profile JSON (defaults to config profile)")
	selectSummaryCmd.Flags().StringVar(&summaryKey, "type", "", "Use this summary type instead of selecting by score")
	selectSummaryCmd.Flags().StringVarP(&summaryOutput, "out", "o", "", "Path to output JSON file (defaults to stdout)")

	rootCmd.AddCommand(selectSummaryCmd)
}

func runSelectSummary(cmd *cobra.Command, _ []string) error {
	engine, cfg, err := newEngine()
	if err != nil {
		return err
	}
	p, err := loadProfile(summaryProfile, cfg)
	if err != nil {
		return err
	}
	ks, err := summaryJob.keywordSet(engine)
	if err != nil {
		return err
	}

	var sel types.SummarySelection
	if summaryKey != "" {
		sel, err = engine.SummaryByKey(p.Summaries, summaryKey, ks)
	} else {
		sel, err = engine.SelectSummary(p.Summaries, ks)
	}
	if err != nil {
		return fmt.Errorf("failed to select summary: %w", err)
	}

	if cfg.Verbose {
		printer(cmd).PrintSummarySelection(sel)
	}
	logger.Info("selected summary", "key", sel.Key, "score", sel.Score)

	return writeOutput(cmd, summaryOutput, sel)
}
