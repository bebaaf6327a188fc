package walker

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// buildSampleTree creates a root directory with a file at the top level and
// a nested file one directory down.
func buildSampleTree(t *testing.T) string {
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

func TestWalkFindsAllRegularFiles(t *testing.T) {
	root := buildSampleTree(t)

	paths, err := Walk(root, Options{})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	sort.Strings(paths)
	expected := []string{filepath.Join("directory", "nested_file"), "root_file"}
	if len(paths) != len(expected) {
		t.Fatalf("Expected %d paths, got %d: %v", len(expected), len(paths), paths)
	}
	for i, path := range expected {
		if paths[i] != path {
			t.Errorf("Expected path %q, got %q", path, paths[i])
		}
	}
}

func TestWalkPrunesExcludedDirectories(t *testing.T) {
	root := buildSampleTree(t)

	paths, err := Walk(root, Options{Exclusions: []string{"**/directory"}})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	if len(paths) != 1 || paths[0] != "root_file" {
		t.Errorf("Expected only root_file to survive exclusion, got %v", paths)
	}
}

func TestWalkExcludesMatchingFiles(t *testing.T) {
	root := buildSampleTree(t)

	paths, err := Walk(root, Options{Exclusions: []string{"**/nested_file"}})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	if len(paths) != 1 || paths[0] != "root_file" {
		t.Errorf("Expected nested_file to be excluded, got %v", paths)
	}
}

func TestWalkIgnoresMalformedPatterns(t *testing.T) {
	root := buildSampleTree(t)

	paths, err := Walk(root, Options{Exclusions: []string{"[invalid"}})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	if len(paths) != 2 {
		t.Errorf("Expected malformed patterns to match nothing, got %v", paths)
	}
}

func TestWalkRespectsGitignore(t *testing.T) {
	root := buildSampleTree(t)
	if err := os.WriteFile(filepath.Join(root, ".gitignore"), []byte("directory/\n"), 0600); err != nil {
		t.Fatalf("Failed to create .gitignore: %v", err)
	}

	paths, err := Walk(root, Options{RespectGitignore: true})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	for _, path := range paths {
		if path == filepath.Join("directory", "nested_file") {
			t.Errorf("Expected gitignored directory to be pruned, got %v", paths)
		}
	}
}

func TestWalkFailsForMissingRoot(t *testing.T) {
	if _, err := Walk(filepath.Join(t.TempDir(), "does_not_exist"), Options{}); err == nil {
		t.Error("Expected an error for a missing root")
	}
}

func TestWalkFailsForFileRoot(t *testing.T) {
	root := t.TempDir()
	filePath := filepath.Join(root, "plain_file")
	if err := os.WriteFile(filePath, []byte("x"), 0600); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	if _, err := Walk(filePath, Options{}); err == nil {
		t.Error("Expected an error for a root that is a regular file")
	}
}

func TestWalkSkipsNonRegularEntries(t *testing.T) {
	root := buildSampleTree(t)
	if err := os.Symlink(filepath.Join(root, "root_file"), filepath.Join(root, "link_file")); err != nil {
		t.Skipf("Symlinks unavailable: %v", err)
	}

	paths, err := Walk(root, Options{})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	for _, path := range paths {
		if path == "link_file" {
			t.Errorf("Expected symlinks to be skipped, got %v", paths)
		}
	}
}

func TestWalkOfGitignoreFileItself(t *testing.T) {
	// The .gitignore file is a regular file and stays a candidate unless an
	// exclusion says otherwise.
	root := buildSampleTree(t)
	if err := os.WriteFile(filepath.Join(root, ".gitignore"), []byte("directory/\n"), 0600); err != nil {
		t.Fatalf("Failed to create .gitignore: %v", err)
	}

	paths, err := Walk(root, Options{RespectGitignore: true})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	found := false
	for _, path := range paths {
		if path == ".gitignore" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected .gitignore itself to be listed, got %v", paths)
	}
}
