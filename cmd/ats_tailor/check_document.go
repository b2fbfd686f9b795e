package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-tailor/internal/validation"
)

var checkDocumentCmd = &cobra.Command{
	Use:   "check-document",
	Short: "Check a generated document for keyword stuffing and coverage",
	Long: `Check a Markdown resume or cover letter against a job's keyword set. Reports keyword density,
covered and missing keywords, overlong lines and weak phrases. Exits non-zero when violations are found.`,
	RunE: runCheckDocument,
}

var (
	checkJob         jobInput
	checkInput       string
	checkMaxDensity  float64
	checkMaxChars    int
	checkWeakPhrases []string
	checkOutput      string
)

func init() {
	checkJob.bind(checkDocumentCmd, true)
	checkDocumentCmd.Flags().StringVarP(&checkInput, "in", "i", "", "Path to the document to check (required)")
	checkDocumentCmd.Flags().Float64Var(&checkMaxDensity, "max-density", validation.DefaultMaxDensity, "Maximum keyword share of the document's words")
	checkDocumentCmd.Flags().IntVar(&checkMaxChars, "max-chars", validation.DefaultMaxLineChars, "Maximum characters per line")
	checkDocumentCmd.Flags().StringArrayVar(&checkWeakPhrases, "weak-phrase", nil, "Phrase to flag when found (repeatable)")
	checkDocumentCmd.Flags().StringVarP(&checkOutput, "out", "o", "", "Path to output report JSON (defaults to stdout)")

	if err := checkDocumentCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(checkDocumentCmd)
}

func runCheckDocument(cmd *cobra.Command, _ []string) error {
	engine, cfg, err := newEngine()
	if err != nil {
		return err
	}
	ks, err := checkJob.keywordSet(engine)
	if err != nil {
		return err
	}

	report, err := validation.ValidateFile(checkInput, ks, validation.Options{
		MaxDensity:   checkMaxDensity,
		MaxLineChars: checkMaxChars,
		WeakPhrases:  checkWeakPhrases,
	})
	if err != nil {
		var fileErr *validation.FileReadError
		if errors.As(err, &fileErr) {
			return fmt.Errorf("check failed: %w", err)
		}
		return err
	}

	if cfg.Verbose {
		printer(cmd).PrintValidation(report)
	}
	if err := writeOutput(cmd, checkOutput, report); err != nil {
		return err
	}

	if report.Clean() {
		logger.Info("document check passed", "path", checkInput)
		return nil
	}
	return fmt.Errorf("document check found %d violation(s)", len(report.Violations))
}
