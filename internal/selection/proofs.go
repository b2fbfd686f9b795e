package selection

import (
	"strings"

	"github.com/jonathan/ats-tailor/internal/keywords"
	"github.com/jonathan/ats-tailor/internal/ranking"
	"github.com/jonathan/ats-tailor/internal/types"
)

// DefaultMinConfidence is the score an achievement must exceed to be offered as proof
const DefaultMinConfidence = 0.1

// Matcher pairs job requirements with supporting achievements
type Matcher struct {
	extractor *keywords.Extractor
	scorer    *ranking.Scorer

	// MinConfidence is the exclusive lower bound for a match
	MinConfidence float64
	// Limit caps the number of matches; zero means no cap
	Limit int
}

// NewMatcher creates a Matcher with DefaultMinConfidence and no limit
func NewMatcher(extractor *keywords.Extractor, scorer *ranking.Scorer) *Matcher {
	return &Matcher{
		extractor:     extractor,
		scorer:        scorer,
		MinConfidence: DefaultMinConfidence,
	}
}

// Match assigns achievements to requirements greedily, in requirement order.
// Each requirement takes the best unused achievement scoring above MinConfidence;
// ties go to the earliest achievement. An achievement text is used at most once.
func (m *Matcher) Match(achievements, requirements []string) []types.ProofMatch {
	matches := []types.ProofMatch{}

	pool := uniqueTexts(achievements)
	used := make([]bool, len(pool))

	for _, req := range requirements {
		if m.Limit > 0 && len(matches) >= m.Limit {
			break
		}

		query := m.scorer.Prepare(m.extractor.Extract(req))
		if query.IsEmpty() {
			continue
		}

		best := -1
		bestScore := 0.0
		for i, ach := range pool {
			if used[i] {
				continue
			}
			score := query.Score(ach)
			if score > bestScore {
				best = i
				bestScore = score
			}
		}

		if best < 0 || bestScore <= m.MinConfidence {
			continue
		}

		used[best] = true
		matches = append(matches, types.ProofMatch{
			Requirement: req,
			Achievement: pool[best],
			Confidence:  bestScore,
		})
	}

	return matches
}

// uniqueTexts drops blank and repeated achievement texts, keeping first occurrences
func uniqueTexts(texts []string) []string {
	seen := make(map[string]bool, len(texts))
	out := make([]string, 0, len(texts))
	for _, t := range texts {
		if strings.TrimSpace(t) == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
