package matching

import (
	"testing"

	"github.com/gcbaptista/go-path-search/index"
)

func scoreAgainst(t *testing.T, term, path string, caseSensitive bool) float64 {
	t.Helper()
	candidate := index.NewCandidate(path, caseSensitive)
	return Similarity(term, &candidate)
}

func TestSimilarityPerfectMatch(t *testing.T) {
	if got := scoreAgainst(t, "src/hound.rs", "src/hound.rs", true); got != 1.0 {
		t.Errorf("Expected 1.0 for an exact match, got %f", got)
	}
}

func TestSimilarityEmptyTermAndEmptyPath(t *testing.T) {
	if got := scoreAgainst(t, "", "", true); got != 1.0 {
		t.Errorf("Expected 1.0 for empty term against empty path, got %f", got)
	}
}

func TestSimilarityEmptyPathCannotMatch(t *testing.T) {
	if got := scoreAgainst(t, "hound", "", true); got != 0.0 {
		t.Errorf("Expected 0.0 for a non-empty term against an empty path, got %f", got)
	}
}

func TestSimilarityCompletelyDifferentTerms(t *testing.T) {
	if got := scoreAgainst(t, "lib", "src", true); got != 0.0 {
		t.Errorf("Expected 0.0 for terms sharing no runes, got %f", got)
	}
}

func TestSimilarityZeroForLargerTermWithNoMatchingRunes(t *testing.T) {
	// More missing runes than the path has runes must clamp to zero rather
	// than going negative.
	if got := scoreAgainst(t, "hound", "amp", true); got != 0.0 {
		t.Errorf("Expected 0.0 when every term rune misses, got %f", got)
	}
}

func TestSimilarityIncreasesForConsecutiveMatches(t *testing.T) {
	properlyOrdered := scoreAgainst(t, "houn", "hound", true)
	improperlyOrdered := scoreAgainst(t, "nuoh", "hound", true)

	if properlyOrdered <= improperlyOrdered {
		t.Errorf("Expected consecutive matches (%f) to outscore scattered ones (%f)",
			properlyOrdered, improperlyOrdered)
	}
}

func TestSimilarityDecreasesForNonMatchingRunes(t *testing.T) {
	nonMatching := scoreAgainst(t, "houns", "hound", true)
	subset := scoreAgainst(t, "houn", "hound", true)

	if subset <= nonMatching {
		t.Errorf("Expected a miss-free term (%f) to outscore one with a miss (%f)",
			subset, nonMatching)
	}
}

func TestSimilarityScoresBasedOnPathLength(t *testing.T) {
	// Not an exact match in either case, so the length normalization is
	// what separates the two scores.
	differingLength := scoreAgainst(t, "houn", "hound library", true)
	sameLength := scoreAgainst(t, "houn", "hound", true)

	if sameLength <= differingLength {
		t.Errorf("Expected the shorter path (%f) to outscore the longer one (%f)",
			sameLength, differingLength)
	}
}

func TestSimilarityFoldsTermForCaseInsensitiveCandidates(t *testing.T) {
	folded := scoreAgainst(t, "Hound", "houndfile", false)
	lower := scoreAgainst(t, "hound", "houndfile", false)

	if folded != lower {
		t.Errorf("Expected folded term score %f to equal lower-case score %f", folded, lower)
	}
	if folded == 0.0 {
		t.Error("Expected a positive score for a folded term match")
	}
}

func TestSimilarityKeepsCaseForCaseSensitiveCandidates(t *testing.T) {
	upper := scoreAgainst(t, "HOUND", "hound", true)

	if upper != 0.0 {
		t.Errorf("Expected 0.0 for a case mismatch on a case-sensitive candidate, got %f", upper)
	}
}

func TestSimilarityOneRuneExtendsSeveralFragments(t *testing.T) {
	// "aa" against "aaa": the second 'a' extends fragments seeded by the
	// first while also seeding its own; the quadratic reward must reflect
	// runs, not a flat occurrence count.
	doubled := scoreAgainst(t, "aa", "aaa", true)
	single := scoreAgainst(t, "a", "aaa", true)

	if doubled <= single {
		t.Errorf("Expected repeated runes (%f) to outscore a single rune (%f)", doubled, single)
	}
}
