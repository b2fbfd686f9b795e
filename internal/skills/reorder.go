// Package skills orders a profile's skills by relevance to a job and builds resume headlines.
package skills

import (
	"sort"

	"github.com/jonathan/ats-tailor/internal/ranking"
	"github.com/jonathan/ats-tailor/internal/types"
)

// Rank scores every skill by name and returns them sorted by descending score.
// The sort is stable, so equal scores keep their declaration order.
func Rank(scorer *ranking.Scorer, collection types.SkillCollection, ks types.KeywordSet) []types.RankedSkill {
	query := scorer.Prepare(ks)

	ranked := make([]types.RankedSkill, 0)
	for _, cat := range collection {
		for _, skill := range cat.Skills {
			result := query.Explain(skill)
			ranked = append(ranked, types.RankedSkill{
				Name:     skill,
				Category: cat.Name,
				Position: len(ranked),
				Score:    result.Score,
				Matched:  result.Matched,
			})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

// Reorder returns at most maxCount skill names, most relevant first.
// The result is a permutation of the input followed by truncation; maxCount <= 0 keeps all.
func Reorder(scorer *ranking.Scorer, collection types.SkillCollection, ks types.KeywordSet, maxCount int) []string {
	ranked := Rank(scorer, collection, ks)
	if maxCount > 0 && len(ranked) > maxCount {
		ranked = ranked[:maxCount]
	}

	names := make([]string, len(ranked))
	for i, r := range ranked {
		names[i] = r.Name
	}
	return names
}
