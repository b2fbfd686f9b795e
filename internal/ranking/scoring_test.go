package ranking

import (
	"testing"

	"github.com/jonathan/ats-tailor/internal/types"
	"github.com/stretchr/testify/assert"
)

func jobKeywords() types.KeywordSet {
	ks := types.NewKeywordSet()
	ks.Add(types.CategoryTool, "splunk")
	ks.Add(types.CategoryConcept, "siem")
	ks.Add(types.CategoryConcept, "threat hunting")
	ks.Add(types.CategoryFramework, "mitre att&ck")
	ks.Add(types.CategoryCustom, "expertise")
	return ks
}

func TestScore_WeightedShare(t *testing.T) {
	scorer := NewDefaultScorer()

	// total = 1.0 + 0.8 + 0.8 + 1.0 + 0.5 = 4.1
	score := scorer.Score(jobKeywords(), "Deployed Splunk for threat hunting")
	assert.InDelta(t, 1.8/4.1, score, 0.0001)
}

func TestScore_AllMatchedIsOne(t *testing.T) {
	scorer := NewDefaultScorer()

	score := scorer.Score(jobKeywords(),
		"Splunk SIEM expertise",
		"Threat hunting mapped to MITRE ATT&CK",
	)
	assert.Equal(t, 1.0, score)
}

func TestScore_EmptyKeywordSet(t *testing.T) {
	scorer := NewDefaultScorer()

	assert.Equal(t, 0.0, scorer.Score(types.NewKeywordSet(), "Splunk SIEM"))
	assert.Equal(t, 0.0, scorer.Score(types.KeywordSet{}, "Splunk SIEM"))
}

func TestScore_EmptyCandidates(t *testing.T) {
	scorer := NewDefaultScorer()

	assert.Equal(t, 0.0, scorer.Score(jobKeywords()))
	assert.Equal(t, 0.0, scorer.Score(jobKeywords(), ""))
	assert.Equal(t, 0.0, scorer.Score(jobKeywords(), "   ", "!!"))
}

func TestScore_AlwaysInRange(t *testing.T) {
	scorer := NewScorer(Weights{Tool: 3, Concept: -1, Framework: 0, Custom: 0.5})
	candidates := []string{
		"",
		"splunk",
		"splunk siem threat hunting expertise mitre att&ck",
		"nothing relevant here",
	}

	for _, c := range candidates {
		score := scorer.Score(jobKeywords(), c)
		assert.GreaterOrEqual(t, score, 0.0, c)
		assert.LessOrEqual(t, score, 1.0, c)
	}
}

func TestScore_TokenBoundaries(t *testing.T) {
	scorer := NewDefaultScorer()
	ks := types.NewKeywordSet()
	ks.Add(types.CategoryConcept, "soc")

	assert.Equal(t, 0.0, scorer.Score(ks, "Improved social engineering awareness"))
	assert.Equal(t, 1.0, scorer.Score(ks, "Tier 2 SOC analyst"))
}

func TestScore_StemmedMatch(t *testing.T) {
	scorer := NewDefaultScorer()
	ks := types.NewKeywordSet()
	ks.Add(types.CategoryCustom, "training")

	assert.Equal(t, 1.0, scorer.Score(ks, "Trained 8 analysts"))
}

func TestPrepare_DuplicateKeywordUsesHighestWeight(t *testing.T) {
	scorer := NewDefaultScorer()
	ks := types.NewKeywordSet()
	ks.Add(types.CategoryCustom, "python")
	ks.Add(types.CategoryTool, "python")
	ks.Add(types.CategoryCustom, "scripting")

	q := scorer.Prepare(ks)
	assert.InDelta(t, 1.5, q.total, 0.0001)
	assert.InDelta(t, 1.0/1.5, q.Score("Python"), 0.0001)
}

func TestExplain_MatchedInQueryOrder(t *testing.T) {
	scorer := NewDefaultScorer()

	result := scorer.Explain(jobKeywords(), "Threat hunting with Splunk")
	assert.Equal(t, []string{"splunk", "threat hunting"}, result.Matched)
	assert.InDelta(t, 1.8/4.1, result.Score, 0.0001)
}

func TestExplain_NoMatchHasEmptySlice(t *testing.T) {
	result := NewDefaultScorer().Explain(jobKeywords(), "Gardening")
	assert.NotNil(t, result.Matched)
	assert.Empty(t, result.Matched)
}

func TestQuery_Reuse(t *testing.T) {
	q := NewDefaultScorer().Prepare(jobKeywords())

	first := q.Score("Splunk")
	_ = q.Score("SIEM")
	assert.Equal(t, first, q.Score("Splunk"))
}

func TestWeights_For(t *testing.T) {
	w := DefaultWeights()
	assert.Equal(t, 1.0, w.For(types.CategoryTool))
	assert.Equal(t, 1.0, w.For(types.CategoryFramework))
	assert.Equal(t, 0.8, w.For(types.CategoryConcept))
	assert.Equal(t, 0.5, w.For(types.CategoryCustom))
	assert.Equal(t, 0.0, w.For(types.Category("other")))
}

func TestNotes(t *testing.T) {
	assert.Equal(t, "No keyword matches", Notes(Result{}))
	assert.Contains(t, Notes(Result{Score: 0.6, Matched: []string{"splunk"}}), "Strong")
	assert.Contains(t, Notes(Result{Score: 0.3, Matched: []string{"splunk"}}), "Moderate")
	assert.Contains(t, Notes(Result{Score: 0.1, Matched: []string{"splunk"}}), "Weak")
}
