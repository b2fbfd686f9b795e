package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMetric(t *testing.T) {
	tests := []struct {
		name string
		key  string
		raw  any
		want Metric
	}{
		{name: "percentage key", key: "incidents_reduced", raw: 75.0, want: Metric{Kind: MetricPercentage, Value: 75}},
		{name: "fraction ratio", key: "automation_percent", raw: 0.4, want: Metric{Kind: MetricPercentage, Value: 40}},
		{name: "count", key: "endpoints", raw: 30.0, want: Metric{Kind: MetricCount, Value: 30}},
		{name: "currency key", key: "cost_savings", raw: 50000.0, want: Metric{Kind: MetricCurrency, Value: 50000}},
		{name: "duration key", key: "time_saved", raw: 10.0, want: Metric{Kind: MetricDuration, Value: 10}},
		{name: "percent string", key: "anything", raw: "35%", want: Metric{Kind: MetricPercentage, Value: 35}},
		{name: "currency string", key: "anything", raw: "$1.5M", want: Metric{Kind: MetricCurrency, Value: 1500000}},
		{name: "currency thousands", key: "anything", raw: "$40k", want: Metric{Kind: MetricCurrency, Value: 40000}},
		{name: "duration string", key: "anything", raw: "12 hours", want: Metric{Kind: MetricDuration, Text: "12 hours"}},
		{name: "numeric string", key: "team_size", raw: "8", want: Metric{Kind: MetricCount, Value: 8}},
		{name: "free text", key: "scope", raw: "three regions", want: Metric{Kind: MetricText, Text: "three regions"}},
		{name: "null", key: "scope", raw: nil, want: Metric{Kind: MetricText}},
		{name: "bool", key: "flag", raw: true, want: Metric{Kind: MetricText, Text: "true"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMetric(tt.key, tt.raw))
		})
	}
}

func TestMetric_String(t *testing.T) {
	assert.Equal(t, "75%", Metric{Kind: MetricPercentage, Value: 75}.String())
	assert.Equal(t, "12.5%", Metric{Kind: MetricPercentage, Value: 12.5}.String())
	assert.Equal(t, "30", Metric{Kind: MetricCount, Value: 30}.String())
	assert.Equal(t, "$1,200,000", Metric{Kind: MetricCurrency, Value: 1200000}.String())
	assert.Equal(t, "$950", Metric{Kind: MetricCurrency, Value: 950}.String())
	assert.Equal(t, "8 hours", Metric{Kind: MetricDuration, Value: 8}.String())
	assert.Equal(t, "2 weeks", Metric{Kind: MetricDuration, Text: "2 weeks"}.String())
	assert.Equal(t, "all regions", Metric{Kind: MetricText, Text: "all regions"}.String())
	assert.True(t, Metric{Kind: MetricText}.IsZero())
	assert.False(t, Metric{Kind: MetricCount}.IsZero())
}

func TestMetrics_UnmarshalJSON(t *testing.T) {
	data := `{
		"incidents_reduced": "75%",
		"endpoints": 30,
		"cost_savings": {"kind": "currency", "value": 25000},
		"outcome": "passing the audit"
	}`

	var m Metrics
	require.NoError(t, json.Unmarshal([]byte(data), &m))

	assert.Equal(t, "75%", m["incidents_reduced"].String())
	assert.Equal(t, "30", m["endpoints"].String())
	assert.Equal(t, "$25,000", m["cost_savings"].String())
	assert.Equal(t, "passing the audit", m["outcome"].String())
}

func TestMetrics_UnmarshalJSONError(t *testing.T) {
	var m Metrics
	assert.Error(t, json.Unmarshal([]byte(`[1, 2]`), &m))
}
