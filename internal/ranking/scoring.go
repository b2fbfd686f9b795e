// Package ranking scores candidate content against a job's keyword set.
package ranking

import (
	"fmt"
	"strings"

	"github.com/jonathan/ats-tailor/internal/parsing"
	"github.com/jonathan/ats-tailor/internal/types"
)

// Default category weights. A matched keyword contributes its category weight to the
// numerator; every distinct keyword contributes its weight to the denominator.
const (
	toolWeight      = 1.0
	frameworkWeight = 1.0
	conceptWeight   = 0.8
	customWeight    = 0.5
)

// Weights assigns a multiplicative weight to each keyword category
type Weights struct {
	Tool      float64 `json:"tool"`
	Concept   float64 `json:"concept"`
	Framework float64 `json:"framework"`
	Custom    float64 `json:"custom"`
}

// DefaultWeights returns the fixed category weights used for ranking
func DefaultWeights() Weights {
	return Weights{
		Tool:      toolWeight,
		Concept:   conceptWeight,
		Framework: frameworkWeight,
		Custom:    customWeight,
	}
}

// For returns the weight of a category. Negative weights are treated as zero.
func (w Weights) For(cat types.Category) float64 {
	var v float64
	switch cat {
	case types.CategoryTool:
		v = w.Tool
	case types.CategoryConcept:
		v = w.Concept
	case types.CategoryFramework:
		v = w.Framework
	case types.CategoryCustom:
		v = w.Custom
	}
	if v < 0 {
		return 0
	}
	return v
}

// Scorer computes normalized relevance scores
type Scorer struct {
	weights Weights
}

// NewScorer creates a Scorer with the given category weights
func NewScorer(weights Weights) *Scorer {
	return &Scorer{weights: weights}
}

// NewDefaultScorer creates a Scorer with DefaultWeights
func NewDefaultScorer() *Scorer {
	return NewScorer(DefaultWeights())
}

// queryTerm is a distinct keyword ready for matching
type queryTerm struct {
	keyword string
	phrase  parsing.Text
	weight  float64
}

// Query is a keyword set prepared for repeated scoring
type Query struct {
	terms []queryTerm
	total float64
}

// Result is a score together with the keywords that produced it
type Result struct {
	Score   float64  `json:"score"`
	Matched []string `json:"matched"`
}

// Prepare normalizes a keyword set once so that many candidates can be scored against it.
// A keyword listed under several categories counts once, with its highest weight.
func (s *Scorer) Prepare(ks types.KeywordSet) *Query {
	q := &Query{}
	index := make(map[string]int)

	for _, entry := range ks.Entries() {
		phrase := parsing.Normalize(entry.Keyword)
		if phrase.IsEmpty() {
			continue
		}
		weight := s.weights.For(entry.Category)
		key := phrase.String()

		if i, ok := index[key]; ok {
			if weight > q.terms[i].weight {
				q.total += weight - q.terms[i].weight
				q.terms[i].weight = weight
			}
			continue
		}

		index[key] = len(q.terms)
		q.terms = append(q.terms, queryTerm{keyword: entry.Keyword, phrase: phrase, weight: weight})
		q.total += weight
	}

	return q
}

// IsEmpty reports whether the query has nothing to match
func (q *Query) IsEmpty() bool {
	return q.total <= 0
}

// Score returns the weighted share of keywords found in any candidate, in [0,1].
// An empty query or empty candidates score 0.
func (q *Query) Score(candidates ...string) float64 {
	return q.Explain(candidates...).Score
}

// Explain scores the candidates and lists the matched keywords in query order
func (q *Query) Explain(candidates ...string) Result {
	result := Result{Matched: []string{}}
	if q.IsEmpty() {
		return result
	}

	texts := make([]parsing.Text, 0, len(candidates))
	for _, c := range candidates {
		if t := parsing.Normalize(c); !t.IsEmpty() {
			texts = append(texts, t)
		}
	}
	if len(texts) == 0 {
		return result
	}

	matched := 0.0
	for _, term := range q.terms {
		for _, t := range texts {
			if t.ContainsPhrase(term.phrase) {
				matched += term.weight
				result.Matched = append(result.Matched, term.keyword)
				break
			}
		}
	}

	result.Score = clamp(matched / q.total)
	return result
}

// Score is a convenience for one-off scoring of candidates against a keyword set
func (s *Scorer) Score(ks types.KeywordSet, candidates ...string) float64 {
	return s.Prepare(ks).Score(candidates...)
}

// Explain is a convenience for one-off scoring that also reports matched keywords
func (s *Scorer) Explain(ks types.KeywordSet, candidates ...string) Result {
	return s.Prepare(ks).Explain(candidates...)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Notes creates a brief explanation of a score
func Notes(r Result) string {
	switch {
	case len(r.Matched) == 0:
		return "No keyword matches"
	case r.Score >= 0.5:
		return fmt.Sprintf("Strong keyword match (%s)", strings.Join(r.Matched, ", "))
	case r.Score >= 0.2:
		return fmt.Sprintf("Moderate keyword match (%s)", strings.Join(r.Matched, ", "))
	default:
		return fmt.Sprintf("Weak keyword match (%s)", strings.Join(r.Matched, ", "))
	}
}
