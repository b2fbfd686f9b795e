package selection

import (
	"github.com/jonathan/ats-tailor/internal/ranking"
	"github.com/jonathan/ats-tailor/internal/types"
)

// SelectSummary returns the summary that best matches the keyword set.
// Ties go to the earliest declared summary, so an empty keyword set selects the first one with score 0.
func SelectSummary(scorer *ranking.Scorer, summaries types.Summaries, ks types.KeywordSet) (types.SummarySelection, error) {
	if len(summaries) == 0 {
		return types.SummarySelection{}, ErrNoSummaries
	}

	query := scorer.Prepare(ks)

	best := types.SummarySelection{
		Key:   summaries[0].Key,
		Text:  summaries[0].Text,
		Score: query.Score(summaries[0].Text),
	}
	for _, s := range summaries[1:] {
		score := query.Score(s.Text)
		if score > best.Score {
			best = types.SummarySelection{Key: s.Key, Text: s.Text, Score: score}
		}
	}

	return best, nil
}

// SummaryByKey returns the named summary scored against the keyword set
func SummaryByKey(scorer *ranking.Scorer, summaries types.Summaries, key string, ks types.KeywordSet) (types.SummarySelection, error) {
	s, ok := summaries.Get(key)
	if !ok {
		return types.SummarySelection{}, &Error{Message: "unknown summary type " + key}
	}
	return types.SummarySelection{
		Key:   s.Key,
		Text:  s.Text,
		Score: scorer.Score(ks, s.Text),
	}, nil
}
