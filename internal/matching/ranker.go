package matching

import (
	"sort"

	"github.com/gcbaptista/go-path-search/index"
)

// Result pairs a candidate with the relevance computed for one Find call.
type Result struct {
	Candidate *index.Candidate
	Score     float64
}

// Find scores every candidate against the term and returns the best matches
// in descending relevance order, truncated to limit. Every candidate is
// scored on every call; only the per-candidate position index is reused.
// Equal scores keep their traversal order (the sort is stable), which makes
// repeated calls over an unchanged candidate set deterministic. A limit of 0
// yields an empty result set.
func Find(term string, candidates []index.Candidate, limit int) []Result {
	results := make([]Result, 0, len(candidates))
	for i := range candidates {
		candidate := &candidates[i]
		results = append(results, Result{
			Candidate: candidate,
			Score:     Similarity(term, candidate),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if limit < 0 {
		limit = 0
	}
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}
