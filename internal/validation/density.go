package validation

import (
	"github.com/jonathan/ats-tailor/internal/parsing"
	"github.com/jonathan/ats-tailor/internal/types"
)

// DefaultMaxDensity is the highest keyword share of a document's words before it reads as stuffed
const DefaultMaxDensity = 0.15

// Density is the keyword density of a document
type Density struct {
	Density    float64        `json:"density"`
	MaxDensity float64        `json:"max_density"`
	Valid      bool           `json:"valid"`
	Words      int            `json:"words"`
	Counts     map[string]int `json:"counts"`
}

// ValidateKeywordDensity counts non-overlapping occurrences of each keyword phrase and divides
// the total by the document's word count. A maxDensity of zero or less uses DefaultMaxDensity.
// Empty text has density 0.
func ValidateKeywordDensity(text string, keywords []string, maxDensity float64) Density {
	if maxDensity <= 0 {
		maxDensity = DefaultMaxDensity
	}

	doc := parsing.Normalize(text)
	result := Density{
		MaxDensity: maxDensity,
		Words:      doc.Len(),
		Counts:     make(map[string]int, len(keywords)),
	}

	total := 0
	for _, kw := range keywords {
		if _, seen := result.Counts[kw]; seen {
			continue
		}
		n := doc.Count(parsing.Normalize(kw))
		result.Counts[kw] = n
		total += n
	}

	if result.Words > 0 {
		result.Density = float64(total) / float64(result.Words)
	}
	result.Valid = result.Density <= maxDensity
	return result
}

// KeywordCoverage lists which keywords of a set appear in text. A keyword present in several
// categories is reported once, in its first category's position.
func KeywordCoverage(ks types.KeywordSet, text string) types.KeywordCoverage {
	doc := parsing.Normalize(text)
	coverage := types.KeywordCoverage{Matched: []string{}, Missing: []string{}}

	seen := make(map[string]bool)
	for _, e := range ks.Entries() {
		if seen[e.Keyword] {
			continue
		}
		seen[e.Keyword] = true
		if doc.Contains(e.Keyword) {
			coverage.Matched = append(coverage.Matched, e.Keyword)
		} else {
			coverage.Missing = append(coverage.Missing, e.Keyword)
		}
	}

	if total := len(coverage.Matched) + len(coverage.Missing); total > 0 {
		coverage.Ratio = float64(len(coverage.Matched)) / float64(total)
	}
	return coverage
}
