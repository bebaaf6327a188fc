package indexing

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/gcbaptista/go-path-search/config"
	"github.com/gcbaptista/go-path-search/store"
)

func buildSampleRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	if err := os.WriteFile(filepath.Join(root, "root_file"), []byte("root"), 0600); err != nil {
		t.Fatalf("Failed to create root_file: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(root, "directory"), 0750); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "directory", "nested_file"), []byte("nested"), 0600); err != nil {
		t.Fatalf("Failed to create nested_file: %v", err)
	}

	return root
}

func TestNewServiceValidation(t *testing.T) {
	settings := &config.IndexSettings{Name: "test", RootPath: "/tmp"}

	if _, err := NewService(nil, settings); err == nil {
		t.Error("Expected an error for a nil candidate store")
	}
	if _, err := NewService(&store.CandidateStore{}, nil); err == nil {
		t.Error("Expected an error for nil settings")
	}
}

func TestPopulateAddsAllFiles(t *testing.T) {
	root := buildSampleRoot(t)
	candidateStore := &store.CandidateStore{}
	settings := &config.IndexSettings{Name: "test", RootPath: root, CaseSensitive: true}
	settings.ApplyDefaults()

	service, err := NewService(candidateStore, settings)
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	result, err := service.Populate()
	if err != nil {
		t.Fatalf("Populate failed: %v", err)
	}
	if result.CandidateCount != 2 {
		t.Errorf("Expected 2 candidates, got %d", result.CandidateCount)
	}

	displayPaths := make([]string, 0, candidateStore.Count())
	for _, candidate := range candidateStore.Candidates {
		displayPaths = append(displayPaths, candidate.DisplayPath)
	}
	sort.Strings(displayPaths)

	expected := []string{filepath.Join("directory", "nested_file"), "root_file"}
	for i, path := range expected {
		if displayPaths[i] != path {
			t.Errorf("Expected candidate %q, got %q", path, displayPaths[i])
		}
	}
}

func TestPopulateAppliesExclusions(t *testing.T) {
	root := buildSampleRoot(t)
	candidateStore := &store.CandidateStore{}
	settings := &config.IndexSettings{
		Name:          "test",
		RootPath:      root,
		CaseSensitive: true,
		Exclusions:    []string{"**/directory"},
	}
	settings.ApplyDefaults()

	service, err := NewService(candidateStore, settings)
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	result, err := service.Populate()
	if err != nil {
		t.Fatalf("Populate failed: %v", err)
	}
	if result.CandidateCount != 1 {
		t.Fatalf("Expected 1 candidate, got %d", result.CandidateCount)
	}
	if candidateStore.Candidates[0].DisplayPath != "root_file" {
		t.Errorf("Expected only root_file to survive, got %q", candidateStore.Candidates[0].DisplayPath)
	}
}

func TestPopulateReplacesPreviousContents(t *testing.T) {
	root := buildSampleRoot(t)
	candidateStore := &store.CandidateStore{}
	settings := &config.IndexSettings{Name: "test", RootPath: root, CaseSensitive: true}
	settings.ApplyDefaults()

	service, err := NewService(candidateStore, settings)
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	if _, err := service.Populate(); err != nil {
		t.Fatalf("First populate failed: %v", err)
	}
	if err := os.Remove(filepath.Join(root, "root_file")); err != nil {
		t.Fatalf("Failed to remove root_file: %v", err)
	}
	if _, err := service.Populate(); err != nil {
		t.Fatalf("Second populate failed: %v", err)
	}

	if candidateStore.Count() != 1 {
		t.Errorf("Expected repopulation to replace the set, got %d candidates", candidateStore.Count())
	}
}

func TestPopulateFailsForMissingRoot(t *testing.T) {
	candidateStore := &store.CandidateStore{}
	settings := &config.IndexSettings{Name: "test", RootPath: filepath.Join(t.TempDir(), "missing")}
	settings.ApplyDefaults()

	service, err := NewService(candidateStore, settings)
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	if _, err := service.Populate(); err == nil {
		t.Error("Expected an error for a missing root path")
	}
}

func TestDeleteAllCandidates(t *testing.T) {
	root := buildSampleRoot(t)
	candidateStore := &store.CandidateStore{}
	settings := &config.IndexSettings{Name: "test", RootPath: root, CaseSensitive: true}
	settings.ApplyDefaults()

	service, err := NewService(candidateStore, settings)
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	if _, err := service.Populate(); err != nil {
		t.Fatalf("Populate failed: %v", err)
	}
	if err := service.DeleteAllCandidates(); err != nil {
		t.Fatalf("DeleteAllCandidates failed: %v", err)
	}

	if candidateStore.Count() != 0 {
		t.Errorf("Expected an empty store, got %d candidates", candidateStore.Count())
	}
}
