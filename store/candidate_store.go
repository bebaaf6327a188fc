package store

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"sync"

	"github.com/gcbaptista/go-path-search/index"
)

// CandidateStore owns the candidates of one path index. It is populated as a
// whole (traversal order is preserved, which also serves as the ranking
// tie-break) and queried many times. Concurrent reads are safe; population
// requires exclusive access through the mutex.
type CandidateStore struct {
	Mu         sync.RWMutex
	Root       string            // Absolute root the candidates are relative to
	Candidates []index.Candidate // In traversal order
}

// gobCandidateStoreData is a helper struct for Gob encoding/decoding
// CandidateStore data. It excludes the mutex.
type gobCandidateStoreData struct {
	Root       string
	Candidates []index.Candidate
}

// GobEncode implements the gob.GobEncoder interface for CandidateStore.
func (cs *CandidateStore) GobEncode() ([]byte, error) {
	cs.Mu.RLock()
	defer cs.Mu.RUnlock()

	dataToEncode := gobCandidateStoreData{
		Root:       cs.Root,
		Candidates: cs.Candidates,
	}

	var buf bytes.Buffer
	encoder := gob.NewEncoder(&buf)
	if err := encoder.Encode(dataToEncode); err != nil {
		return nil, fmt.Errorf("failed to gob encode candidate store data: %w", err)
	}
	return buf.Bytes(), nil
}

// GobDecode implements the gob.GobDecoder interface for CandidateStore.
func (cs *CandidateStore) GobDecode(data []byte) error {
	decodedData := gobCandidateStoreData{}

	buf := bytes.NewBuffer(data)
	decoder := gob.NewDecoder(buf)
	if err := decoder.Decode(&decodedData); err != nil {
		return fmt.Errorf("failed to gob decode candidate store data: %w", err)
	}

	cs.Mu.Lock()
	defer cs.Mu.Unlock()

	cs.Root = decodedData.Root
	cs.Candidates = decodedData.Candidates

	// Ensure the slice is initialized if it was nil after decoding (e.g.
	// from an empty file)
	if cs.Candidates == nil {
		cs.Candidates = make([]index.Candidate, 0)
	}

	return nil
}

// Replace swaps the stored candidates for a freshly populated set.
func (cs *CandidateStore) Replace(root string, candidates []index.Candidate) {
	cs.Mu.Lock()
	defer cs.Mu.Unlock()

	cs.Root = root
	cs.Candidates = candidates
}

// Count returns the number of stored candidates.
func (cs *CandidateStore) Count() int {
	cs.Mu.RLock()
	defer cs.Mu.RUnlock()

	return len(cs.Candidates)
}
