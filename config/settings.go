// Package config provides configuration structures for the path search
// engine. It defines per-index settings such as the root directory, case
// sensitivity, and exclusion patterns.
package config

import (
	"path/filepath"
	"strings"
)

// DefaultResultLimit is the number of results a find call returns when the
// caller does not specify a limit.
const DefaultResultLimit = 10

// IndexSettings contains all configuration options for a path index.
//
// RootPath is the directory whose descendant files become candidates.
// Exclusions are glob patterns (doublestar syntax, so "**" is supported)
// matched against the relative path of every traversed entry; a matching
// directory prunes its whole subtree. CaseSensitive selects whether matching
// keys keep their case at population time.
type IndexSettings struct {
	Name             string   `json:"name"`              // Unique name for the index
	RootPath         string   `json:"root_path"`         // Directory to index
	CaseSensitive    bool     `json:"case_sensitive"`    // Whether matching keys keep their case
	Exclusions       []string `json:"exclusions"`        // Glob patterns to omit from the candidate set
	RespectGitignore bool     `json:"respect_gitignore"` // Also honor a .gitignore at the root
	DefaultLimit     int      `json:"default_limit"`     // Result count when a query omits its limit
}

// Validate checks the settings for basic problems and returns a list of
// human-readable conflicts. An empty list means the settings are usable.
func (settings *IndexSettings) Validate() []string {
	var conflicts []string

	if strings.TrimSpace(settings.Name) == "" {
		conflicts = append(conflicts, "Index name cannot be empty or whitespace-only")
	}
	if strings.TrimSpace(settings.RootPath) == "" {
		conflicts = append(conflicts, "Root path cannot be empty or whitespace-only")
	}
	if settings.DefaultLimit < 0 {
		conflicts = append(conflicts, "Default limit cannot be negative")
	}

	conflicts = append(conflicts, checkDuplicates("exclusions", settings.Exclusions)...)

	for _, pattern := range settings.Exclusions {
		if strings.TrimSpace(pattern) == "" {
			conflicts = append(conflicts, "Exclusion pattern cannot be empty or whitespace-only")
			continue
		}
		if filepath.IsAbs(pattern) {
			conflicts = append(conflicts, "Exclusion pattern '"+pattern+"' must be relative to the root path")
		}
	}

	return conflicts
}

// checkDuplicates checks for duplicate values in a slice and returns error messages
func checkDuplicates(fieldName string, values []string) []string {
	var errors []string
	seen := make(map[string]bool)

	for _, value := range values {
		if seen[value] {
			errors = append(errors, "Duplicate pattern '"+value+"' found in "+fieldName)
		}
		seen[value] = true
	}

	return errors
}

// ApplyDefaults applies default values to the index settings
func (settings *IndexSettings) ApplyDefaults() {
	if settings.DefaultLimit == 0 {
		settings.DefaultLimit = DefaultResultLimit
	}

	// Initialize empty slices if nil to prevent nil pointer issues
	if settings.Exclusions == nil {
		settings.Exclusions = []string{}
	}
}
