package matching

import (
	"testing"

	"github.com/gcbaptista/go-path-search/index"
)

func buildHaystack(caseSensitive bool, paths ...string) []index.Candidate {
	candidates := make([]index.Candidate, 0, len(paths))
	for _, path := range paths {
		candidates = append(candidates, index.NewCandidate(path, caseSensitive))
	}
	return candidates
}

func TestFindReturnsCorrectlyOrderedResults(t *testing.T) {
	haystack := buildHaystack(false, "src/hound.rs", "lib/hounds.rs", "Houndfile")

	results := Find("Hound", haystack, 2)

	expected := []string{"Houndfile", "src/hound.rs"}
	if len(results) != len(expected) {
		t.Fatalf("Expected %d results, got %d", len(expected), len(results))
	}
	for i, path := range expected {
		if results[i].Candidate.DisplayPath != path {
			t.Errorf("Expected result %d to be %q, got %q", i, path, results[i].Candidate.DisplayPath)
		}
	}
}

func TestFindRespectsLimit(t *testing.T) {
	haystack := buildHaystack(true, "src/hound.rs", "lib/hounds.rs", "Houndfile")

	t.Run("Truncates to the limit", func(t *testing.T) {
		results := Find("hound", haystack, 2)
		if len(results) != 2 {
			t.Errorf("Expected 2 results, got %d", len(results))
		}
	})

	t.Run("Returns everything when the limit exceeds the set", func(t *testing.T) {
		results := Find("hound", haystack, 10)
		if len(results) != 3 {
			t.Errorf("Expected 3 results, got %d", len(results))
		}
	})

	t.Run("Zero limit yields an empty set", func(t *testing.T) {
		results := Find("hound", haystack, 0)
		if len(results) != 0 {
			t.Errorf("Expected no results, got %d", len(results))
		}
	})

	t.Run("Negative limit yields an empty set", func(t *testing.T) {
		results := Find("hound", haystack, -1)
		if len(results) != 0 {
			t.Errorf("Expected no results, got %d", len(results))
		}
	})
}

func TestFindBreaksTiesByTraversalOrder(t *testing.T) {
	// Both candidates score identically against the term; the earlier
	// traversal entry must stay first across repeated calls.
	haystack := buildHaystack(true, "beta", "abet")

	for i := 0; i < 5; i++ {
		results := Find("x", haystack, 2)
		if results[0].Candidate.DisplayPath != "beta" || results[1].Candidate.DisplayPath != "abet" {
			t.Fatalf("Expected stable traversal order on tie, got [%q, %q]",
				results[0].Candidate.DisplayPath, results[1].Candidate.DisplayPath)
		}
	}
}

func TestFindOnEmptyHaystack(t *testing.T) {
	results := Find("hound", nil, 5)
	if len(results) != 0 {
		t.Errorf("Expected no results over an empty haystack, got %d", len(results))
	}
}
