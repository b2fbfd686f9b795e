package profile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/ats-tailor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validProfile = `{
	"basics": {"name": "Violet Figueroa", "email": "violet@example.com", "years_experience": 4},
	"summaries": {"general": "Security analyst.", "soc": "SOC analyst focused on SIEM."},
	"skills": {
		"siem": ["Splunk", " QRadar ", "splunk", ""],
		"network": ["Wireshark   pcap", "Zeek"]
	},
	"projects": {"cyber": [{"id": "p1", "name": "Sigma Rules"}]},
	"achievements": [
		{"description": "Implemented Splunk SIEM", "metrics": {"incidents_reduced": 75}},
		{"id": "training", "description": "Trained analysts"},
		{"description": "Automated triage"}
	]
}`

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadProfile_ValidFile(t *testing.T) {
	p, err := LoadProfile(writeProfile(t, validProfile))
	require.NoError(t, err)

	assert.Equal(t, "Violet Figueroa", p.Basics.Name)
	assert.Equal(t, "general", p.Summaries[0].Key)

	require.Len(t, p.Skills, 2)
	assert.Equal(t, []string{"Splunk", "QRadar"}, p.Skills[0].Skills)
	assert.Equal(t, []string{"Wireshark pcap", "Zeek"}, p.Skills[1].Skills)

	require.Len(t, p.Achievements, 3)
	assert.Equal(t, "achievement_001", p.Achievements[0].ID)
	assert.Equal(t, "training", p.Achievements[1].ID)
	assert.Equal(t, "achievement_003", p.Achievements[2].ID)
	assert.Equal(t, types.MetricPercentage, p.Achievements[0].Metrics["incidents_reduced"].Kind)
}

func TestLoadProfile_FileNotFound(t *testing.T) {
	_, err := LoadProfile("nonexistent_file.json")
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, loadErr.Error(), "failed to read file")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadProfile_InvalidJSON(t *testing.T) {
	_, err := LoadProfile(writeProfile(t, "{ invalid json }"))

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, loadErr.Error(), "failed to unmarshal JSON")
}

func TestParseProfile_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"missing name", `{"basics": {}}`, "Name"},
		{"bad email", `{"basics": {"name": "X", "email": "not-an-email"}}`, "Email"},
		{"negative years", `{"basics": {"name": "X", "years_experience": -2}}`, "YearsExperience"},
		{"achievement without description", `{"basics": {"name": "X"}, "achievements": [{"id": "a"}]}`, "Description"},
		{"duplicate project", `{"basics": {"name": "X"}, "projects": {"a": [{"id": "p1", "name": "A"}], "b": [{"id": "p1", "name": "B"}]}}`, "duplicate project id 'p1'"},
		{"project without id", `{"basics": {"name": "X"}, "projects": {"a": [{"name": "A"}]}}`, "has no id"},
		{"duplicate achievement", `{"basics": {"name": "X"}, "achievements": [{"id": "a", "description": "x"}, {"id": "a", "description": "y"}]}`, "duplicate achievement id 'a'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProfile([]byte(tt.content))
			require.Error(t, err)

			var normErr *NormalizationError
			require.True(t, errors.As(err, &normErr))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNormalizeSkills_KeepsOrder(t *testing.T) {
	p := &types.Profile{Skills: types.SkillCollection{
		{Name: "b", Skills: []string{"Zeek", "zeek", "Nmap"}},
		{Name: "a", Skills: []string{"nmap"}},
	}}

	NormalizeSkills(p)

	assert.Equal(t, "b", p.Skills[0].Name)
	assert.Equal(t, []string{"Zeek", "Nmap"}, p.Skills[0].Skills)
	assert.Equal(t, []string{"nmap"}, p.Skills[1].Skills)
}
