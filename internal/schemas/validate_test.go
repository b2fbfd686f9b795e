package schemas

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitions_ValidJSON(t *testing.T) {
	for _, name := range []Schema{Profile, RoleConfig, KeywordSet} {
		t.Run(string(name), func(t *testing.T) {
			data, err := Definition(name)
			require.NoError(t, err)

			var v map[string]any
			assert.NoError(t, json.Unmarshal(data, &v))
		})
	}
}

func TestDefinition_Unknown(t *testing.T) {
	_, err := Definition("missing")

	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "missing", loadErr.Path)
}

func TestValidate_Profile(t *testing.T) {
	valid := `{
		"basics": {"name": "Violet Figueroa", "years_experience": 3},
		"summaries": {"soc": "SOC analyst"},
		"skills": {"siem": ["Splunk"]},
		"projects": {"cyber": [{"id": "p1", "name": "Sigma Rules"}]},
		"achievements": [{"description": "Implemented SIEM", "metrics": {"incidents_reduced": "75%", "endpoints": 30}}]
	}`
	assert.NoError(t, Validate(Profile, []byte(valid)))

	invalid := `{
		"basics": {"years_experience": -1},
		"skills": {"siem": "Splunk"},
		"achievements": [{"id": "a1"}]
	}`
	err := Validate(Profile, []byte(invalid))

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.GreaterOrEqual(t, len(validationErr.Errors), 4)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_RoleConfig(t *testing.T) {
	assert.NoError(t, Validate(RoleConfig, []byte(`{"role_title": "SOC Analyst", "styles": ["professional"]}`)))

	err := Validate(RoleConfig, []byte(`{"role_title": "", "styles": ["casual"], "max_skills": -2}`))
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Len(t, validationErr.Errors, 3)
}

func TestValidate_KeywordSet(t *testing.T) {
	assert.NoError(t, Validate(KeywordSet, []byte(`{"tool": ["splunk"], "concept": [], "framework": [], "custom": []}`)))

	tests := map[string]string{
		"missing category": `{"tool": [], "concept": [], "framework": []}`,
		"duplicates":       `{"tool": ["splunk", "splunk"], "concept": [], "framework": [], "custom": []}`,
		"uppercase":        `{"tool": ["Splunk"], "concept": [], "framework": [], "custom": []}`,
		"extra category":   `{"tool": [], "concept": [], "framework": [], "custom": [], "other": []}`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			var validationErr *ValidationError
			assert.True(t, errors.As(Validate(KeywordSet, []byte(doc)), &validationErr))
		})
	}
}

func TestValidate_MalformedDocument(t *testing.T) {
	err := Validate(KeywordSet, []byte(`{"tool": `))

	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "role.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"role_title": "Cloud Security Engineer"}`), 0644))

	assert.NoError(t, ValidateFile(RoleConfig, path))

	err := ValidateFile(RoleConfig, filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
