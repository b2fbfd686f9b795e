package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-tailor/internal/ranking"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score candidate text against a job description",
	Long:  "Compute the weighted keyword match score in [0, 1] between a job's keyword set and one or more candidate texts.",
	RunE:  runScore,
}

var (
	scoreJob        jobInput
	scoreCandidates []string
	scoreFile       string
	scoreOutput     string
)

// ScoreOutput is written by the score command
type ScoreOutput struct {
	ranking.Result
	Notes string `json:"notes"`
}

func init() {
	scoreJob.bind(scoreCmd, true)
	scoreCmd.Flags().StringArrayVarP(&scoreCandidates, "candidate", "c", nil, "Candidate text (repeatable)")
	scoreCmd.Flags().StringVarP(&scoreFile, "in", "i", "", "Path to a candidate text file")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output JSON file (defaults to stdout)")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	engine, _, err := newEngine()
	if err != nil {
		return err
	}

	candidates := append([]string{}, scoreCandidates...)
	if scoreFile != "" {
		content, err := os.ReadFile(scoreFile)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		candidates = append(candidates, string(content))
	}
	if len(candidates) == 0 {
		return fmt.Errorf("must provide --candidate or --in")
	}

	ks, err := scoreJob.keywordSet(engine)
	if err != nil {
		return err
	}

	result := engine.Explain(ks, candidates...)
	logger.Info("scored candidates", "candidates", len(candidates), "score", result.Score)

	return writeOutput(cmd, scoreOutput, ScoreOutput{Result: result, Notes: ranking.Notes(result)})
}
