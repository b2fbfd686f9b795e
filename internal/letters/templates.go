package letters

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

//go:embed templates.json
var defaultTemplates []byte

// DefaultStyles are the styles generated when none are requested
var DefaultStyles = []string{"enthusiastic", "professional", "achievement"}

// StyleTemplates holds the style-specific paragraphs
type StyleTemplates struct {
	Opening string `json:"opening"`
	Closing string `json:"closing"`
}

// Templates is a full set of cover letter templates. Placeholders use the {{.Key}} form.
type Templates struct {
	Styles    map[string]StyleTemplates `json:"styles"`
	Proof     string                    `json:"proof"`
	Highlight string                    `json:"highlight"`
	Fallback  string                    `json:"fallback"`
	Letter    string                    `json:"letter"`
}

// DefaultTemplates returns the embedded templates
func DefaultTemplates() (Templates, error) {
	var t Templates
	if err := json.Unmarshal(defaultTemplates, &t); err != nil {
		return Templates{}, &Error{Message: "failed to parse embedded templates", Cause: err}
	}
	return t, nil
}

// ParseTemplates decodes templates from JSON. Fields missing from data keep their default
// values, and styles are merged over the default styles.
func ParseTemplates(data []byte) (Templates, error) {
	t, err := DefaultTemplates()
	if err != nil {
		return Templates{}, err
	}

	var override Templates
	if err := json.Unmarshal(data, &override); err != nil {
		return Templates{}, &Error{Message: "failed to parse templates", Cause: err}
	}

	for name, st := range override.Styles {
		base := t.Styles[name]
		if st.Opening != "" {
			base.Opening = st.Opening
		}
		if st.Closing != "" {
			base.Closing = st.Closing
		}
		t.Styles[name] = base
	}
	if override.Proof != "" {
		t.Proof = override.Proof
	}
	if override.Highlight != "" {
		t.Highlight = override.Highlight
	}
	if override.Fallback != "" {
		t.Fallback = override.Fallback
	}
	if override.Letter != "" {
		t.Letter = override.Letter
	}

	if err := t.Validate(); err != nil {
		return Templates{}, err
	}
	return t, nil
}

// LoadTemplates reads a templates JSON file and merges it over the defaults
func LoadTemplates(path string) (Templates, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Templates{}, &Error{Message: fmt.Sprintf("failed to read templates file %s", path), Cause: err}
	}
	return ParseTemplates(data)
}

// Validate checks that every style has both paragraphs and the shared templates are present
func (t Templates) Validate() error {
	if len(t.Styles) == 0 {
		return &Error{Message: "templates define no styles"}
	}
	for name, st := range t.Styles {
		if strings.TrimSpace(st.Opening) == "" || strings.TrimSpace(st.Closing) == "" {
			return &Error{Message: fmt.Sprintf("style %q needs an opening and a closing", name)}
		}
	}
	if strings.TrimSpace(t.Fallback) == "" {
		return &Error{Message: "templates need a fallback body"}
	}
	if strings.TrimSpace(t.Letter) == "" {
		return &Error{Message: "templates need a letter layout"}
	}
	return nil
}

// StyleNames lists the styles: default styles first, then the rest alphabetically
func (t Templates) StyleNames() []string {
	names := make([]string, 0, len(t.Styles))
	for _, s := range DefaultStyles {
		if _, ok := t.Styles[s]; ok {
			names = append(names, s)
		}
	}

	var extra []string
	for name := range t.Styles {
		if !contains(DefaultStyles, name) {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}

// Format replaces placeholders in the form {{.Key}} with values from data in a single pass,
// so inserted values are never expanded again. Unknown placeholders are left untouched.
func Format(template string, data map[string]string) string {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, 2*len(keys))
	for _, key := range keys {
		pairs = append(pairs, fmt.Sprintf("{{.%s}}", key), data[key])
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
