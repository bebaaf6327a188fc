package store

import (
	"bytes"
	"encoding/gob"
	"testing"

	"github.com/gcbaptista/go-path-search/index"
)

func TestCandidateStoreGobRoundTrip(t *testing.T) {
	original := &CandidateStore{}
	original.Replace("/tmp/project", []index.Candidate{
		index.NewCandidate("root_file", false),
		index.NewCandidate("directory/nested_file", false),
	})

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(original); err != nil {
		t.Fatalf("Failed to encode candidate store: %v", err)
	}

	decoded := &CandidateStore{}
	if err := gob.NewDecoder(&buf).Decode(decoded); err != nil {
		t.Fatalf("Failed to decode candidate store: %v", err)
	}

	if decoded.Root != "/tmp/project" {
		t.Errorf("Expected root to survive the round trip, got %q", decoded.Root)
	}
	if decoded.Count() != 2 {
		t.Fatalf("Expected 2 candidates after decoding, got %d", decoded.Count())
	}
	if decoded.Candidates[0].DisplayPath != "root_file" {
		t.Errorf("Expected traversal order to survive, got %q first", decoded.Candidates[0].DisplayPath)
	}
	if got := decoded.Candidates[1].Occurrences('/'); len(got) != 1 || got[0] != 9 {
		t.Errorf("Expected the position index to survive, got %v", got)
	}
}

func TestCandidateStoreDecodeEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&CandidateStore{}); err != nil {
		t.Fatalf("Failed to encode empty candidate store: %v", err)
	}

	decoded := &CandidateStore{}
	if err := gob.NewDecoder(&buf).Decode(decoded); err != nil {
		t.Fatalf("Failed to decode empty candidate store: %v", err)
	}

	if decoded.Candidates == nil {
		t.Error("Expected candidates slice to be initialized after decoding")
	}
}

func TestCandidateStoreReplace(t *testing.T) {
	cs := &CandidateStore{}
	cs.Replace("/a", []index.Candidate{index.NewCandidate("one", true)})
	cs.Replace("/b", []index.Candidate{
		index.NewCandidate("two", true),
		index.NewCandidate("three", true),
	})

	if cs.Root != "/b" {
		t.Errorf("Expected root '/b' after replacement, got %q", cs.Root)
	}
	if cs.Count() != 2 {
		t.Errorf("Expected 2 candidates after replacement, got %d", cs.Count())
	}
}
