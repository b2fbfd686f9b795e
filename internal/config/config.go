// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Default values applied by Defaults
const (
	DefaultProfile            = "data/master_profile.json"
	DefaultRolesDir           = "data/roles"
	DefaultOutputDir          = "output"
	DefaultMinProofConfidence = 0.1
	DefaultMaxProofs          = 2
	DefaultWorkers            = 4
	DefaultPandocPath         = "pandoc"
	DefaultLogLevel           = "info"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Profile        string `json:"profile,omitempty"`         // Master profile JSON
	RolesDir       string `json:"roles_dir,omitempty"`       // Directory of role configs
	OutputDir      string `json:"output_dir,omitempty"`      // Where generated documents go
	TemplateDir    string `json:"template_dir,omitempty"`    // Overrides for the embedded Markdown templates
	VocabularyFile string `json:"vocabulary_file,omitempty"` // Overrides for the built-in vocabulary
	LetterTemplate string `json:"letter_template,omitempty"` // Overrides for cover letter paragraphs

	// Limits
	MaxSkills          int      `json:"max_skills,omitempty"`           // Skills kept after reordering, 0 keeps all
	MinProofConfidence float64  `json:"min_proof_confidence,omitempty"` // Proof pairs at or below this score are dropped
	MaxProofs          int      `json:"max_proofs,omitempty"`           // Proof paragraphs per cover letter, 0 keeps all
	Styles             []string `json:"styles,omitempty"`               // Cover letter styles to generate

	// Behavior
	ConvertPDF bool   `json:"convert_pdf,omitempty"` // Convert Markdown output with pandoc
	PandocPath string `json:"pandoc_path,omitempty"` // pandoc executable
	Workers    int    `json:"workers,omitempty"`     // Role configs processed in parallel
	LogLevel   string `json:"log_level,omitempty"`   // debug, info, warn, error
	Verbose    bool   `json:"verbose,omitempty"`     // Print detailed debug information
}

// Defaults returns the configuration used when neither a config file nor flags set a value
func Defaults() Config {
	return Config{
		Profile:            DefaultProfile,
		RolesDir:           DefaultRolesDir,
		OutputDir:          DefaultOutputDir,
		MinProofConfidence: DefaultMinProofConfidence,
		MaxProofs:          DefaultMaxProofs,
		PandocPath:         DefaultPandocPath,
		Workers:            DefaultWorkers,
		LogLevel:           DefaultLogLevel,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are checked by the CLI after merging.
func (c *Config) Validate() error {
	if c.MaxSkills < 0 {
		return fmt.Errorf("config error: 'max_skills' must be non-negative")
	}
	if c.MaxProofs < 0 {
		return fmt.Errorf("config error: 'max_proofs' must be non-negative")
	}
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}
	if c.MinProofConfidence < 0 || c.MinProofConfidence >= 1 {
		return fmt.Errorf("config error: 'min_proof_confidence' must be in [0, 1)")
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config error: unknown log level %q", c.LogLevel)
	}

	for _, f := range []struct {
		name string
		path string
	}{
		{"profile", c.Profile},
		{"vocabulary", c.VocabularyFile},
		{"letter template", c.LetterTemplate},
	} {
		if f.path == "" {
			continue
		}
		if _, err := os.Stat(f.path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", f.name, f.path)
		}
	}

	if c.TemplateDir != "" {
		info, err := os.Stat(c.TemplateDir)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("config error: template directory not found: %s", c.TemplateDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.RolesDir == "" {
		result.RolesDir = defaults.RolesDir
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.TemplateDir == "" {
		result.TemplateDir = defaults.TemplateDir
	}
	if result.VocabularyFile == "" {
		result.VocabularyFile = defaults.VocabularyFile
	}
	if result.LetterTemplate == "" {
		result.LetterTemplate = defaults.LetterTemplate
	}
	if result.PandocPath == "" {
		result.PandocPath = defaults.PandocPath
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}

	// Numeric fields: use default if zero
	if result.MaxSkills == 0 {
		result.MaxSkills = defaults.MaxSkills
	}
	if result.MaxProofs == 0 {
		result.MaxProofs = defaults.MaxProofs
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if result.MinProofConfidence == 0 {
		result.MinProofConfidence = defaults.MinProofConfidence
	}

	if len(result.Styles) == 0 && len(defaults.Styles) > 0 {
		result.Styles = append([]string(nil), defaults.Styles...)
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
