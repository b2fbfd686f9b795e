package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-tailor/internal/config"
	"github.com/jonathan/ats-tailor/internal/ingestion"
	"github.com/jonathan/ats-tailor/internal/logging"
	"github.com/jonathan/ats-tailor/internal/observability"
	"github.com/jonathan/ats-tailor/internal/profile"
	"github.com/jonathan/ats-tailor/internal/schemas"
	"github.com/jonathan/ats-tailor/internal/tailor"
	"github.com/jonathan/ats-tailor/internal/types"
)

// loadConfig reads --config when given, validates it and fills the remaining defaults
func loadConfig() (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
		if loaded.LogLevel != "" && logLevel == "" && os.Getenv("LOG_LEVEL") == "" {
			logger = logging.New(loaded.LogLevel)
		}
		logger.Debug("loaded config", "path", configPath)
	}

	merged := cfg.MergeWithDefaults(config.Defaults())
	if verbose {
		merged.Verbose = true
	}
	return merged, nil
}

// newEngine builds the engine from the merged configuration
func newEngine() (*tailor.Engine, config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, config.Config{}, err
	}
	engine, err := tailor.NewEngineFromConfig(cfg)
	if err != nil {
		return nil, config.Config{}, err
	}
	return engine, cfg, nil
}

// loadProfile loads the profile named by flag, else the configured one
func loadProfile(flagValue string, cfg config.Config) (*types.Profile, error) {
	path := flagValue
	if path == "" {
		path = cfg.Profile
	}
	p, err := profile.LoadProfile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	logger.Debug("loaded profile", "path", path)
	return p, nil
}

// jobInput is the job description source shared by the scoring commands
type jobInput struct {
	path         string
	text         string
	keywordsPath string
}

func (j *jobInput) bind(cmd *cobra.Command, withKeywords bool) {
	cmd.Flags().StringVarP(&j.path, "job", "j", "", "Path to job description (.txt, .md, .html, .pdf, .docx)")
	cmd.Flags().StringVar(&j.text, "text", "", "Job description text (mutually exclusive with --job)")
	if withKeywords {
		cmd.Flags().StringVarP(&j.keywordsPath, "keywords", "k", "", "Path to a keyword set JSON file from extract-keywords")
	}
}

// jobText returns the cleaned job description. Exactly one source must be set.
func (j *jobInput) jobText() (string, error) {
	text, _, err := j.load()
	return text, err
}

// load returns the cleaned job description with its ingestion metadata
func (j *jobInput) load() (string, *ingestion.Metadata, error) {
	switch {
	case j.path != "" && j.text != "":
		return "", nil, fmt.Errorf("cannot use --job with --text")
	case j.path != "":
		text, meta, err := ingestion.LoadJobDescription(j.path)
		if err != nil {
			return "", nil, err
		}
		logger.Debug("loaded job description", "path", j.path, "format", meta.Format, "chars", meta.Chars)
		return text, meta, nil
	case j.text != "":
		text := ingestion.CleanText(ingestion.StripHTML(j.text))
		meta := ingestion.NewMetadata(text, "")
		meta.Format = ingestion.FormatText
		return text, meta, nil
	default:
		return "", nil, fmt.Errorf("must provide either --job or --text")
	}
}

// keywordSet reads --keywords when given, else extracts keywords from the job description
func (j *jobInput) keywordSet(engine *tailor.Engine) (types.KeywordSet, error) {
	if j.keywordsPath == "" {
		text, err := j.jobText()
		if err != nil {
			if j.path == "" && j.text == "" {
				return types.KeywordSet{}, fmt.Errorf("must provide one of --job, --text or --keywords")
			}
			return types.KeywordSet{}, err
		}
		return engine.ExtractKeywords(text), nil
	}
	if j.path != "" || j.text != "" {
		return types.KeywordSet{}, fmt.Errorf("cannot use --keywords with --job or --text")
	}

	data, err := os.ReadFile(j.keywordsPath)
	if err != nil {
		return types.KeywordSet{}, fmt.Errorf("failed to read keywords file: %w", err)
	}
	if err := schemas.Validate(schemas.KeywordSet, data); err != nil {
		return types.KeywordSet{}, fmt.Errorf("invalid keywords file %s: %w", j.keywordsPath, err)
	}
	var ks types.KeywordSet
	if err := json.Unmarshal(data, &ks); err != nil {
		return types.KeywordSet{}, fmt.Errorf("failed to parse keywords file: %w", err)
	}
	return ks, nil
}

// writeOutput writes indented JSON to path, or to the command's output when path is empty
func writeOutput(cmd *cobra.Command, path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	jsonBytes = append(jsonBytes, '\n')

	if path == "" {
		_, err := cmd.OutOrStdout().Write(jsonBytes)
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Output: %s\n", path)
	return nil
}

// checkOutputSchema validates written JSON. A mismatch is an error; a schema that cannot be
// loaded only warns.
func checkOutputSchema(name schemas.Schema, data []byte) error {
	err := schemas.Validate(name, data)
	if err == nil {
		return nil
	}

	var validationErr *schemas.ValidationError
	var schemaLoadErr *schemas.SchemaLoadError
	if errors.As(err, &validationErr) {
		return fmt.Errorf("generated JSON does not validate against schema: %w", err)
	} else if errors.As(err, &schemaLoadErr) {
		logger.Warn("could not validate output against schema", "schema", name, "error", err)
		return nil
	}
	logger.Warn("could not validate output against schema", "error", err)
	return nil
}

func printer(cmd *cobra.Command) *observability.Printer {
	return observability.NewPrinter(cmd.ErrOrStderr())
}
