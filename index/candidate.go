package index

import (
	"strings"
	"unicode/utf8"
)

// Candidate is one indexed file path eligible to be matched against a query.
// The position index maps every rune in MatchKey to the ascending list of
// rune offsets at which it occurs; it is built once at construction and never
// mutated afterwards, so repeated Find calls reuse it for free.
type Candidate struct {
	DisplayPath string        // Relative path as produced by traversal
	MatchKey    string        // DisplayPath, lower-cased when CaseFolded
	Positions   map[rune][]int
	CaseFolded  bool // True when MatchKey was case-folded at construction
}

// NewCandidate builds a Candidate for a relative path. When caseSensitive is
// false the matching key (and therefore the position index) is lower-cased;
// the display path is kept as-is either way. Construction cannot fail.
func NewCandidate(relativePath string, caseSensitive bool) Candidate {
	matchKey := relativePath
	if !caseSensitive {
		matchKey = strings.ToLower(relativePath)
	}

	positions := make(map[rune][]int)
	offset := 0
	for _, r := range matchKey {
		positions[r] = append(positions[r], offset)
		offset++
	}

	return Candidate{
		DisplayPath: relativePath,
		MatchKey:    matchKey,
		Positions:   positions,
		CaseFolded:  !caseSensitive,
	}
}

// KeyLength returns the number of runes in the matching key.
func (c *Candidate) KeyLength() int {
	return utf8.RuneCountInString(c.MatchKey)
}

// Occurrences returns the positions at which r occurs in the matching key,
// or nil if it does not occur at all. The returned slice is shared with the
// index and must not be modified.
func (c *Candidate) Occurrences(r rune) []int {
	return c.Positions[r]
}
