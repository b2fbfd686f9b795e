package impact

import (
	"testing"

	"github.com/jonathan/ats-tailor/internal/ranking"
	"github.com/jonathan/ats-tailor/internal/types"
	"github.com/jonathan/ats-tailor/internal/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator() *Generator {
	return NewGenerator(vocab.Default(), ranking.NewDefaultScorer())
}

func keywordSet(cat types.Category, keywords ...string) types.KeywordSet {
	ks := types.NewKeywordSet()
	for _, k := range keywords {
		ks.Add(cat, k)
	}
	return ks
}

func TestGenerate_AlwaysFourVariants(t *testing.T) {
	g := newTestGenerator()
	cases := []struct {
		name    string
		text    string
		metrics types.Metrics
	}{
		{name: "no metrics", text: "Configured EDR on all laptops", metrics: nil},
		{name: "unknown metrics", text: "Configured EDR", metrics: types.Metrics{"bogus": {Kind: types.MetricCount, Value: 3}}},
		{name: "empty text", text: "", metrics: nil},
		{name: "every metric", text: "Ran the SOC", metrics: types.Metrics{
			"incidents_reduced":  {Kind: types.MetricPercentage, Value: 40},
			"endpoints":          {Kind: types.MetricCount, Value: 500},
			"time_saved":         {Kind: types.MetricDuration, Value: 12},
			"automation_percent": {Kind: types.MetricPercentage, Value: 60},
			"team_size":          {Kind: types.MetricCount, Value: 6},
			"people_trained":     {Kind: types.MetricCount, Value: 40},
			"cost_savings":       {Kind: types.MetricCurrency, Value: 120000},
			"roi":                {Kind: types.MetricPercentage, Value: 300},
			"scope":              {Kind: types.MetricText, Text: "three regions"},
			"outcome":            {Kind: types.MetricText, Text: "passing the annual audit"},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := g.Generate(tc.text, tc.metrics, types.NewKeywordSet())

			require.Len(t, result.Variants, 4)
			for i, angle := range types.Angles {
				assert.Equal(t, angle, result.Variants[i].Angle)
				assert.NotEmpty(t, result.Variants[i].Text)
			}
			assert.Len(t, result.Texts(), 4)
			assert.Len(t, result.Scores(), 4)
		})
	}
}

func TestGenerate_FillsMetricSlots(t *testing.T) {
	metrics := types.Metrics{
		"incidents_reduced": {Kind: types.MetricPercentage, Value: 100},
		"endpoints":         {Kind: types.MetricCount, Value: 30},
	}

	result := newTestGenerator().Generate("Configured firewall and MFA across 30 endpoints", metrics, types.NewKeywordSet())
	texts := result.Texts()

	assert.Equal(t,
		"Configured firewall and MFA across 30 endpoints, reducing security incidents by 100% and protecting 30 endpoints.",
		texts[types.AngleSecurity])
	assert.Equal(t,
		"Configured firewall and MFA across 30 endpoints, streamlining security operations and reducing manual effort.",
		texts[types.AngleEfficiency])
}

func TestGenerate_ClausesJoinedWithSerialComma(t *testing.T) {
	metrics := types.Metrics{
		"time_saved":         {Kind: types.MetricDuration, Value: 10},
		"automation_percent": {Kind: types.MetricPercentage, Value: 80},
		"mttr_reduction":     {Kind: types.MetricPercentage, Value: 35},
	}

	result := newTestGenerator().Generate("Automated alert enrichment", metrics, types.NewKeywordSet())

	assert.Equal(t,
		"Automated alert enrichment, saving 10 hours of manual work per week, automating 80% of routine tasks, and cutting mean time to respond by 35%.",
		result.Texts()[types.AngleEfficiency])
}

func TestGenerate_WeakOpenerReplaced(t *testing.T) {
	result := newTestGenerator().Generate("Responsible for phishing triage.", nil, types.NewKeywordSet())
	texts := result.Texts()

	assert.Equal(t, "Implemented phishing triage, strengthening the organization's security posture.", texts[types.AngleSecurity])
	assert.Equal(t, "Automated phishing triage, streamlining security operations and reducing manual effort.", texts[types.AngleEfficiency])
}

func TestGenerate_LeadVerbPrepended(t *testing.T) {
	g := newTestGenerator()

	texts := g.Generate("Network segmentation for PCI systems", nil, types.NewKeywordSet()).Texts()
	assert.Equal(t, "Implemented network segmentation for PCI systems, strengthening the organization's security posture.", texts[types.AngleSecurity])

	texts = g.Generate("Splunk deployment for the SOC", nil, types.NewKeywordSet()).Texts()
	assert.Equal(t, "Implemented Splunk deployment for the SOC, strengthening the organization's security posture.", texts[types.AngleSecurity])

	texts = g.Generate("EDR rollout", nil, types.NewKeywordSet()).Texts()
	assert.Equal(t, "Delivered EDR rollout, reducing organizational risk and supporting business objectives.", texts[types.AngleBusiness])
}

func TestGenerate_ScopeAndOutcome(t *testing.T) {
	metrics := types.Metrics{
		"scope":   {Kind: types.MetricText, Text: "the enterprise network"},
		"outcome": {Kind: types.MetricText, Text: "passing the SOC 2 audit."},
	}

	result := newTestGenerator().Generate("Deployed EDR", metrics, types.NewKeywordSet())

	assert.Equal(t,
		"Deployed EDR across the enterprise network, strengthening the organization's security posture and passing the SOC 2 audit.",
		result.Texts()[types.AngleSecurity])
}

func TestGenerate_ScopeAlreadyMentioned(t *testing.T) {
	metrics := types.Metrics{"scope": {Kind: types.MetricText, Text: "all endpoints"}}

	result := newTestGenerator().Generate("Deployed EDR to all endpoints", metrics, types.NewKeywordSet())
	assert.Contains(t, result.Texts()[types.AngleSecurity], "Deployed EDR to all endpoints, ")
}

func TestGenerate_UnknownMetricIgnored(t *testing.T) {
	metrics := types.Metrics{"incidnets_reduced": {Kind: types.MetricPercentage, Value: 50}}

	result := newTestGenerator().Generate("Tuned IDS signatures", metrics, types.NewKeywordSet())
	assert.Equal(t, "Tuned IDS signatures, strengthening the organization's security posture.", result.Texts()[types.AngleSecurity])
}

func TestGenerate_EmptyResponsibility(t *testing.T) {
	result := newTestGenerator().Generate("  ", nil, types.NewKeywordSet())
	assert.Equal(t, "Strengthening the organization's security posture.", result.Texts()[types.AngleSecurity])
}

func TestGenerate_EmptyKeywordSetRecommendsSecurity(t *testing.T) {
	result := newTestGenerator().Generate("Trained analysts", nil, types.NewKeywordSet())

	assert.Equal(t, types.AngleSecurity, result.Recommended)
	for _, v := range result.Variants {
		assert.Equal(t, 0.0, v.Score)
	}
}

func TestGenerate_TieBreakPriority(t *testing.T) {
	// every bullet mentions Splunk and no angle vocabulary does, so all four scores are equal
	ks := keywordSet(types.CategoryTool, "splunk")

	result := newTestGenerator().Generate("Ran Splunk searches", nil, ks)

	scores := result.Scores()
	for _, a := range types.Angles {
		assert.InDelta(t, 0.7, scores[a], 1e-9)
	}
	assert.Equal(t, types.AngleSecurity, result.Recommended)
}

func TestGenerate_PartialTieBreak(t *testing.T) {
	// themed generator: only the named angles carry the job's keyword, bullets never mention it
	themed := func(angles ...types.Angle) *Generator {
		v := vocab.Default()
		for i := range v.Angles {
			v.Angles[i].Keywords = []string{"unrelated"}
			for _, a := range angles {
				if v.Angles[i].Angle == a {
					v.Angles[i].Keywords = []string{"zerotrust"}
				}
			}
		}
		return NewGenerator(v, ranking.NewDefaultScorer())
	}
	ks := keywordSet(types.CategoryCustom, "zerotrust")

	tests := []struct {
		name   string
		angles []types.Angle
		want   types.Angle
	}{
		{name: "efficiency ties team", angles: []types.Angle{types.AngleEfficiency, types.AngleTeam}, want: types.AngleEfficiency},
		{name: "team ties business", angles: []types.Angle{types.AngleTeam, types.AngleBusiness}, want: types.AngleTeam},
		{name: "efficiency ties business", angles: []types.Angle{types.AngleBusiness, types.AngleEfficiency}, want: types.AngleEfficiency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := themed(tt.angles...).Generate("Ran weekly detection reviews", nil, ks)

			scores := result.Scores()
			assert.InDelta(t, 0.0, scores[types.AngleSecurity], 1e-9)
			for _, a := range tt.angles {
				assert.InDelta(t, 0.3, scores[a], 1e-9)
			}
			assert.Equal(t, tt.want, result.Recommended)
		})
	}
}

func TestGenerate_RecommendsBestAngle(t *testing.T) {
	g := newTestGenerator()

	tests := []struct {
		name    string
		text    string
		metrics types.Metrics
		ks      types.KeywordSet
		want    types.Angle
	}{
		{
			name: "efficiency",
			text: "Python scripts for alert triage",
			ks:   keywordSet(types.CategoryCustom, "automation"),
			want: types.AngleEfficiency,
		},
		{
			name: "team",
			text: "Ran weekly detection engineering sessions",
			ks:   keywordSet(types.CategoryCustom, "mentoring"),
			want: types.AngleTeam,
		},
		{
			name:    "business",
			text:    "Ran the vulnerability program",
			metrics: types.Metrics{"budget": {Kind: types.MetricCurrency, Value: 50000}},
			ks:      keywordSet(types.CategoryCustom, "budget"),
			want:    types.AngleBusiness,
		},
		{
			name:    "security",
			text:    "Ran EDR",
			metrics: types.Metrics{"threats_detected": {Kind: types.MetricCount, Value: 12}},
			ks:      keywordSet(types.CategoryCustom, "threat"),
			want:    types.AngleSecurity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := g.Generate(tt.text, tt.metrics, tt.ks)
			assert.Equal(t, tt.want, result.Recommended)
			assert.Equal(t, result.Texts()[tt.want], result.RecommendedText())
		})
	}
}

func TestGenerate_ScoresInRange(t *testing.T) {
	ks := types.NewKeywordSet()
	ks.Add(types.CategoryTool, "splunk")
	ks.Add(types.CategoryConcept, "incident response")
	ks.Add(types.CategoryCustom, "automation")
	ks.Add(types.CategoryCustom, "team")

	metrics := types.Metrics{
		"incidents_reduced": {Kind: types.MetricPercentage, Value: 75},
		"people_trained":    {Kind: types.MetricCount, Value: 8},
	}
	result := newTestGenerator().Generate("Automated Splunk incident response for the team", metrics, ks)

	for _, v := range result.Variants {
		assert.GreaterOrEqual(t, v.Score, 0.0)
		assert.LessOrEqual(t, v.Score, 1.0)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	g := newTestGenerator()
	ks := keywordSet(types.CategoryConcept, "incident response", "threat hunting")
	metrics := types.Metrics{
		"incidents_reduced": {Kind: types.MetricPercentage, Value: 75},
		"team_size":         {Kind: types.MetricCount, Value: 4},
	}

	first := g.Generate("Led incident response", metrics, ks)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, g.Generate("Led incident response", metrics, ks))
	}
}

func TestNewGenerator_MissingAnglesFallBack(t *testing.T) {
	g := NewGenerator(vocab.Vocabulary{}, ranking.NewDefaultScorer())

	result := g.Generate("firewall rule cleanup", nil, types.NewKeywordSet())
	require.Len(t, result.Variants, 4)
	assert.Equal(t, "Implemented firewall rule cleanup, strengthening the organization's security posture.", result.Texts()[types.AngleSecurity])
}

func TestVariant_Lookup(t *testing.T) {
	result := newTestGenerator().Generate("Trained analysts", nil, types.NewKeywordSet())

	v, ok := result.Variant(types.AngleTeam)
	require.True(t, ok)
	assert.Equal(t, types.AngleTeam, v.Angle)

	_, ok = result.Variant(types.Angle("marketing"))
	assert.False(t, ok)
}

func TestJoinAnd(t *testing.T) {
	assert.Equal(t, "", joinAnd(nil))
	assert.Equal(t, "a", joinAnd([]string{"a"}))
	assert.Equal(t, "a and b", joinAnd([]string{"a", "b"}))
	assert.Equal(t, "a, b, and c", joinAnd([]string{"a", "b", "c"}))
}
