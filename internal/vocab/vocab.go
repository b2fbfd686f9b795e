// Package vocab holds the reference vocabularies used by keyword extraction, impact
// generation and company detection. Vocabularies are plain data passed to constructors
// so that tests and users can substitute their own.
package vocab

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/ats-tailor/internal/types"
)

// Vocabulary is the full set of reference terms
type Vocabulary struct {
	Tools          []string `json:"tools"`
	Concepts       []string `json:"concepts"`
	Frameworks     []string `json:"frameworks"`
	Certifications []string `json:"certifications"`
	StopWords      []string `json:"stop_words"`

	// ActionVerbs are leading verbs kept as-is when reframing a bullet
	ActionVerbs []string `json:"action_verbs"`
	// WeakOpeners are leading phrases replaced by an angle's lead verb
	WeakOpeners []string    `json:"weak_openers"`
	Angles      []AngleTerm `json:"angles"`

	Company CompanyVocabulary `json:"company"`
}

// AngleTerm is the vocabulary of one impact angle
type AngleTerm struct {
	Angle    types.Angle `json:"angle"`
	Verbs    []string    `json:"verbs"`
	Keywords []string    `json:"keywords"`
}

// NamedTerms is a label with the terms that signal it
type NamedTerms struct {
	Name  string   `json:"name"`
	Terms []string `json:"terms"`
}

// CompanyVocabulary drives company-info detection
type CompanyVocabulary struct {
	PrefixTriggers  []string     `json:"prefix_triggers"`
	SuffixTriggers  []string     `json:"suffix_triggers"`
	GenericNames    []string     `json:"generic_names"`
	StartupTerms    []string     `json:"startup_terms"`
	EnterpriseTerms []string     `json:"enterprise_terms"`
	Industries      []NamedTerms `json:"industries"`
	Values          []NamedTerms `json:"values"`
	RemoteTerms     []string     `json:"remote_terms"`
	Cities          []string     `json:"cities"`
}

// Angle returns the vocabulary for an angle
func (v Vocabulary) Angle(a types.Angle) (AngleTerm, bool) {
	for _, at := range v.Angles {
		if at.Angle == a {
			return at, true
		}
	}
	return AngleTerm{}, false
}

// Validate checks that every impact angle is described and has at least one verb
func (v Vocabulary) Validate() error {
	for _, a := range types.Angles {
		at, ok := v.Angle(a)
		if !ok {
			return fmt.Errorf("vocabulary error: missing angle %q", a)
		}
		if len(at.Verbs) == 0 {
			return fmt.Errorf("vocabulary error: angle %q has no verbs", a)
		}
	}
	return nil
}

// Load reads a vocabulary JSON file. Sections missing from the file keep their default values.
func Load(path string) (Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	v := Default()
	if err := json.Unmarshal(data, &v); err != nil {
		return Vocabulary{}, fmt.Errorf("failed to parse vocabulary JSON: %w", err)
	}

	if err := v.Validate(); err != nil {
		return Vocabulary{}, err
	}
	return v, nil
}
