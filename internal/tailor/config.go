package tailor

import (
	"fmt"

	"github.com/jonathan/ats-tailor/internal/config"
	"github.com/jonathan/ats-tailor/internal/letters"
	"github.com/jonathan/ats-tailor/internal/vocab"
)

// NewEngineFromConfig builds an engine using the configured vocabulary and letter template
// overrides, falling back to the built-in data for either
func NewEngineFromConfig(cfg config.Config) (*Engine, error) {
	v := vocab.Default()
	if cfg.VocabularyFile != "" {
		loaded, err := vocab.Load(cfg.VocabularyFile)
		if err != nil {
			return nil, fmt.Errorf("loading vocabulary failed: %w", err)
		}
		v = loaded
	}

	var (
		t   letters.Templates
		err error
	)
	if cfg.LetterTemplate != "" {
		t, err = letters.LoadTemplates(cfg.LetterTemplate)
	} else {
		t, err = letters.DefaultTemplates()
	}
	if err != nil {
		return nil, fmt.Errorf("loading letter templates failed: %w", err)
	}

	return NewEngine(v, t, OptionsFromConfig(cfg))
}
