package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-tailor/internal/ingestion"
	"github.com/jonathan/ats-tailor/internal/schemas"
)

var extractKeywordsCmd = &cobra.Command{
	Use:   "extract-keywords",
	Short: "Extract categorized keywords from a job description",
	Long:  "Extract tool, concept, framework and custom keywords from a job description into a keyword set JSON that validates against the keyword_set schema.",
	RunE:  runExtractKeywords,
}

var (
	extractJob      jobInput
	extractOutput   string
	extractSaveText string
)

func init() {
	extractJob.bind(extractKeywordsCmd, false)
	extractKeywordsCmd.Flags().StringVarP(&extractOutput, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	extractKeywordsCmd.Flags().StringVar(&extractSaveText, "save-text", "", "Directory to save the cleaned job text and its metadata")

	rootCmd.AddCommand(extractKeywordsCmd)
}

func runExtractKeywords(cmd *cobra.Command, _ []string) error {
	engine, cfg, err := newEngine()
	if err != nil {
		return err
	}

	text, meta, err := extractJob.load()
	if err != nil {
		return err
	}
	if extractSaveText != "" {
		if err := ingestion.WriteOutput(extractSaveText, text, meta); err != nil {
			return err
		}
		logger.Debug("saved cleaned job text", "dir", extractSaveText, "hash", meta.Hash)
	}

	ks := engine.ExtractKeywords(text)
	logger.Info("extracted keywords", "count", ks.Len())
	if cfg.Verbose {
		printer(cmd).PrintKeywordSet(ks)
	}

	jsonBytes, err := json.Marshal(ks)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := checkOutputSchema(schemas.KeywordSet, jsonBytes); err != nil {
		return err
	}

	return writeOutput(cmd, extractOutput, ks)
}
