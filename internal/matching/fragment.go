package matching

// Fragment tracks one run of consecutive matching key positions accumulated
// during a single similarity computation. Fragments are function-local to
// that computation and are never retained across calls.
type Fragment struct {
	start  int
	length int
}

// NewFragment starts a fragment of length 1 at the given key position.
func NewFragment(start int) *Fragment {
	return &Fragment{start: start, length: 1}
}

// NextIndex is the key position immediately after the run matched so far.
// A subsequent query rune occurring at this position extends the fragment.
func (f *Fragment) NextIndex() int {
	return f.start + f.length
}

// Extend grows the fragment by one position following a match at NextIndex.
func (f *Fragment) Extend() {
	f.length++
}

// Length returns the number of consecutive positions covered so far.
func (f *Fragment) Length() int {
	return f.length
}
