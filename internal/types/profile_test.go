package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProfileJSON = `{
	"basics": {"name": "Violet Figueroa", "label": "SOC Analyst", "years_experience": 3},
	"summaries": {
		"soc": "SOC analyst focused on SIEM.",
		"appsec": "Application security engineer.",
		"cloud": "Cloud security engineer."
	},
	"skills": {
		"siem": ["Splunk", "QRadar"],
		"network": ["Wireshark", "Zeek"],
		"cloud": ["AWS"]
	},
	"projects": {
		"detection": [{"id": "p1", "name": "Sigma Rules"}, {"id": "p2", "name": "Honeypot"}],
		"cloud": [{"id": "p3", "name": "CSPM Scanner", "technologies": ["Python", "AWS"]}]
	},
	"achievements": [
		{"id": "a1", "description": "Implemented Splunk SIEM", "metrics": {"incidents_reduced": 75, "endpoints": 30}}
	]
}`

func TestProfile_PreservesDeclarationOrder(t *testing.T) {
	var p Profile
	require.NoError(t, json.Unmarshal([]byte(testProfileJSON), &p))

	require.Len(t, p.Summaries, 3)
	assert.Equal(t, "soc", p.Summaries[0].Key)
	assert.Equal(t, "appsec", p.Summaries[1].Key)
	assert.Equal(t, "cloud", p.Summaries[2].Key)

	require.Len(t, p.Skills, 3)
	assert.Equal(t, "siem", p.Skills[0].Name)
	assert.Equal(t, "network", p.Skills[1].Name)
	assert.Equal(t, []string{"Splunk", "QRadar", "Wireshark", "Zeek", "AWS"}, p.Skills.Flatten())

	all := p.Projects.All()
	require.Len(t, all, 3)
	assert.Equal(t, "p1", all[0].ID)
	assert.Equal(t, "p3", all[2].ID)
	assert.Equal(t, []string{"Python", "AWS"}, all[2].Technologies)

	require.Len(t, p.Achievements, 1)
	assert.Equal(t, MetricPercentage, p.Achievements[0].Metrics["incidents_reduced"].Kind)
	assert.Equal(t, MetricCount, p.Achievements[0].Metrics["endpoints"].Kind)
}

func TestProfile_MarshalKeepsOrder(t *testing.T) {
	s := Summaries{{Key: "z", Text: "last"}, {Key: "a", Text: "first"}}

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `{"z":"last","a":"first"}`, string(data))

	var back Summaries
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, s, back)
}

func TestSkillCollection_MarshalKeepsOrder(t *testing.T) {
	c := SkillCollection{
		{Name: "tools", Skills: []string{"Splunk"}},
		{Name: "languages", Skills: []string{"Python", "Bash"}},
	}

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, `{"tools":["Splunk"],"languages":["Python","Bash"]}`, string(data))
}

func TestSummaries_Get(t *testing.T) {
	s := Summaries{{Key: "soc", Text: "SOC"}, {Key: "cloud", Text: "Cloud"}}

	v, ok := s.Get("cloud")
	require.True(t, ok)
	assert.Equal(t, "Cloud", v.Text)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestOrdered_Errors(t *testing.T) {
	var s Summaries
	assert.Error(t, json.Unmarshal([]byte(`["not", "an", "object"]`), &s))
	assert.Error(t, json.Unmarshal([]byte(`{"soc": 42}`), &s))

	var c SkillCollection
	assert.Error(t, json.Unmarshal([]byte(`{"siem": "Splunk"}`), &c))

	var p ProjectCollection
	assert.Error(t, json.Unmarshal([]byte(`{"detection": {"id": "p1"}}`), &p))
}

func TestOrdered_Null(t *testing.T) {
	var p Profile
	require.NoError(t, json.Unmarshal([]byte(`{"basics": {"name": "X"}, "summaries": null}`), &p))
	assert.Empty(t, p.Summaries)
	assert.Empty(t, p.Skills)
}
