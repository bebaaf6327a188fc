// Package walker traverses a root directory and produces the relative paths
// of the regular files beneath it. Traversal is best-effort: entries that
// cannot be read, stat'ed, or represented as valid text are silently skipped
// rather than aborting the walk, so a partial listing is a valid outcome.
package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/monochromegane/go-gitignore"
)

// Options controls which entries the walk yields.
type Options struct {
	// Exclusions are glob patterns (doublestar syntax) matched against the
	// slash-separated relative path of every entry. A matching directory is
	// pruned entirely, so the walk never descends into it.
	Exclusions []string

	// RespectGitignore additionally honors a .gitignore file at the root,
	// when one exists.
	RespectGitignore bool
}

// Walk returns the relative paths of all regular files beneath root, in
// traversal order. It fails only when the root itself is not a readable
// directory; every error below the root is skipped.
func Walk(root string, opts Options) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat root path %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root path %s is not a directory", root)
	}

	var ignoreMatcher gitignore.IgnoreMatcher
	if opts.RespectGitignore {
		gitignorePath := filepath.Join(root, ".gitignore")
		if _, err := os.Stat(gitignorePath); err == nil {
			ignoreMatcher, _ = gitignore.NewGitIgnore(gitignorePath)
		}
	}

	paths := make([]string, 0)
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are omitted, not fatal.
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		if relPath == "." {
			return nil
		}

		// Glob matching is defined over slash-separated paths.
		matchPath := filepath.ToSlash(relPath)
		if matchesAny(opts.Exclusions, matchPath) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if ignoreMatcher != nil && ignoreMatcher.Match(path, d.IsDir()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		// Paths that cannot be represented as valid text are skipped.
		if !utf8.ValidString(relPath) {
			return nil
		}

		paths = append(paths, relPath)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("failed to walk root path %s: %w", root, walkErr)
	}

	return paths, nil
}

// matchesAny reports whether the relative path matches at least one
// exclusion pattern. Malformed patterns never match.
func matchesAny(patterns []string, relPath string) bool {
	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, relPath); err == nil && matched {
			return true
		}
	}
	return false
}
