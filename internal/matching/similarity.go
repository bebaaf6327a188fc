package matching

import (
	"sort"
	"strings"

	"github.com/gcbaptista/go-path-search/index"
)

// Similarity scores how well a query term matches a candidate path. Exact
// matches score 1.0; terms sharing no runes with the candidate score 0. In
// between, the score rewards runs of query runes that occur consecutively in
// the candidate (quadratically, so one run of length 4 outweighs four
// scattered hits) and penalizes query runes absent from the candidate. The
// result is a ranking signal, not a probability: non-exact scores are not
// bounded by 1.0.
func Similarity(term string, candidate *index.Candidate) float64 {
	// Exact matches against the display path short-circuit everything else,
	// including the empty-vs-empty case.
	if term == candidate.DisplayPath {
		return 1.0
	}

	keyLength := candidate.KeyLength()
	if keyLength == 0 {
		// An empty key cannot positively match any non-empty term, and the
		// exact-match check above already handled the empty term.
		return 0.0
	}

	// Lookups run against the folded key, so the term must be folded the
	// same way.
	if candidate.CaseFolded {
		term = strings.ToLower(term)
	}

	// Fragments track runs of consecutive key positions matched so far.
	// They carry more weight than a plain sum of per-rune occurrences.
	var fragments []*Fragment

	// Query runes absent from the key have discrete weight in the final
	// score; count them as we go.
	missing := 0

	for _, termRune := range term {
		occurrences := candidate.Occurrences(termRune)
		if occurrences == nil {
			missing++
			continue
		}

		// Occurrences not consumed to extend an existing fragment will
		// each seed a new one.
		unaccounted := append([]int(nil), occurrences...)

		// Extend every fragment whose next expected position carries this
		// rune. Growth is driven by adjacency in the candidate, not in the
		// term, so one rune can extend several fragments at once.
		for _, fragment := range fragments {
			target := fragment.NextIndex()
			if !containsPosition(occurrences, target) {
				continue
			}
			unaccounted = removePosition(unaccounted, target)
			fragment.Extend()
		}

		for _, position := range unaccounted {
			fragments = append(fragments, NewFragment(position))
		}
	}

	// Share of the key's length not invalidated by missing term runes.
	// Guard against terms with more misses than the key has runes.
	if missing >= keyLength {
		return 0.0
	}
	existenceRatio := float64(keyLength-missing) / float64(keyLength)

	// Quadratic reward for long consecutive runs.
	fragmentScore := 0.0
	for _, fragment := range fragments {
		length := float64(fragment.Length())
		fragmentScore += length * length
	}

	// The key-length division offsets the higher fragment-score probability
	// of longer paths.
	return fragmentScore * existenceRatio / float64(keyLength)
}

// containsPosition reports whether position occurs in the ascending
// occurrence list.
func containsPosition(occurrences []int, position int) bool {
	i := sort.SearchInts(occurrences, position)
	return i < len(occurrences) && occurrences[i] == position
}

// removePosition deletes the first instance of position from the list,
// preserving order. The list is returned unchanged when position is absent.
func removePosition(occurrences []int, position int) []int {
	for i, occurrence := range occurrences {
		if occurrence == position {
			return append(occurrences[:i], occurrences[i+1:]...)
		}
	}
	return occurrences
}
