package api

import (
	"testing"

	"github.com/gcbaptista/go-path-search/config"
)

func TestValidationResult_AddError(t *testing.T) {
	result := &ValidationResult{Valid: true}

	result.AddError("field1", "error message")

	if result.Valid {
		t.Error("Expected Valid to be false after adding error")
	}
	if len(result.Errors) != 1 {
		t.Errorf("Expected 1 error, got %d", len(result.Errors))
	}
	if result.Errors[0].Field != "field1" {
		t.Errorf("Expected field 'field1', got '%s'", result.Errors[0].Field)
	}
	if result.Errors[0].Message != "error message" {
		t.Errorf("Expected message 'error message', got '%s'", result.Errors[0].Message)
	}
}

func TestValidationResult_HasErrors(t *testing.T) {
	result := &ValidationResult{Valid: true}

	if result.HasErrors() {
		t.Error("Expected HasErrors to be false for empty result")
	}

	result.AddError("field", "message")

	if !result.HasErrors() {
		t.Error("Expected HasErrors to be true after adding error")
	}
}

func TestValidateIndexName(t *testing.T) {
	tests := []struct {
		name      string
		indexName string
		wantValid bool
	}{
		{
			name:      "valid index name",
			indexName: "test-index",
			wantValid: true,
		},
		{
			name:      "empty index name",
			indexName: "",
			wantValid: false,
		},
		{
			name:      "index name with leading whitespace",
			indexName: " test-index",
			wantValid: false,
		},
		{
			name:      "index name with trailing whitespace",
			indexName: "test-index ",
			wantValid: false,
		},
		{
			name:      "index name with path separator",
			indexName: "nested/index",
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateIndexName(tt.indexName)
			if result.Valid != tt.wantValid {
				t.Errorf("Expected valid=%v, got valid=%v (errors: %+v)", tt.wantValid, result.Valid, result.Errors)
			}
		})
	}
}

func TestValidateIndexSettings(t *testing.T) {
	tests := []struct {
		name      string
		settings  *config.IndexSettings
		wantValid bool
	}{
		{
			name:      "valid settings",
			settings:  &config.IndexSettings{Name: "code", RootPath: "/srv/project"},
			wantValid: true,
		},
		{
			name:      "nil settings",
			settings:  nil,
			wantValid: false,
		},
		{
			name:      "missing root path",
			settings:  &config.IndexSettings{Name: "code"},
			wantValid: false,
		},
		{
			name:      "absolute exclusion pattern",
			settings:  &config.IndexSettings{Name: "code", RootPath: "/srv/project", Exclusions: []string{"/abs/path"}},
			wantValid: false,
		},
		{
			name:      "duplicate exclusion patterns",
			settings:  &config.IndexSettings{Name: "code", RootPath: "/srv/project", Exclusions: []string{"*.log", "*.log"}},
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateIndexSettings(tt.settings)
			if result.Valid != tt.wantValid {
				t.Errorf("Expected valid=%v, got valid=%v (errors: %+v)", tt.wantValid, result.Valid, result.Errors)
			}
		})
	}
}

func TestValidateIndexSettingsAppliesDefaults(t *testing.T) {
	settings := &config.IndexSettings{Name: "code", RootPath: "/srv/project"}

	if result := ValidateIndexSettings(settings); result.HasErrors() {
		t.Fatalf("Expected valid settings, got errors: %+v", result.Errors)
	}
	if settings.DefaultLimit != config.DefaultResultLimit {
		t.Errorf("Expected default limit %d to be applied, got %d", config.DefaultResultLimit, settings.DefaultLimit)
	}
}
