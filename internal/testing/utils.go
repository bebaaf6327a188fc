// Package testing provides utilities and helpers for testing the path
// search service.
package testing

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-path-search/config"
	"github.com/gcbaptista/go-path-search/internal/engine"
	"github.com/gcbaptista/go-path-search/model"
	"github.com/gcbaptista/go-path-search/services"
)

// CreateTestEngine creates a new engine instance backed by a temporary data
// directory with automatic cleanup.
func CreateTestEngine(t *testing.T) *engine.Engine {
	t.Helper()

	eng := engine.NewEngine(t.TempDir())
	t.Cleanup(eng.Close)
	return eng
}

// CreateTestTree writes a small sample directory tree and returns its root.
func CreateTestTree(t *testing.T, relativePaths ...string) string {
	t.Helper()

	root := t.TempDir()
	for _, relativePath := range relativePaths {
		fullPath := filepath.Join(root, filepath.FromSlash(relativePath))
		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0750), "Failed to create parent directory")
		require.NoError(t, os.WriteFile(fullPath, []byte("content"), 0600), "Failed to write test file")
	}
	return root
}

// CreateTestIndex creates a test index over the given root with default settings.
func CreateTestIndex(t *testing.T, eng *engine.Engine, indexName, rootPath string) config.IndexSettings {
	t.Helper()

	settings := config.IndexSettings{
		Name:     indexName,
		RootPath: rootPath,
	}

	err := eng.CreateIndex(settings)
	require.NoError(t, err, "Failed to create test index")

	return settings
}

// JobPollingOptions configures job polling behavior
type JobPollingOptions struct {
	Timeout      time.Duration
	PollInterval time.Duration
}

// DefaultJobPollingOptions returns sensible defaults for job polling
func DefaultJobPollingOptions() JobPollingOptions {
	return JobPollingOptions{
		Timeout:      10 * time.Second,
		PollInterval: 10 * time.Millisecond,
	}
}

// WaitForJobCompletion polls a job until it completes or times out.
func WaitForJobCompletion(t *testing.T, jobManager services.JobManager, jobID string, opts JobPollingOptions) *model.Job {
	t.Helper()

	timeout := time.After(opts.Timeout)
	ticker := time.NewTicker(opts.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			t.Fatalf("Job %s did not complete within %v timeout", jobID, opts.Timeout)
		case <-ticker.C:
			job, err := jobManager.GetJob(jobID)
			require.NoError(t, err, "Failed to get job status")

			switch job.Status {
			case model.JobStatusCompleted:
				return job
			case model.JobStatusFailed:
				t.Fatalf("Job %s failed: %s", jobID, job.Error)
			}
		}
	}
}

// AssertJobCompleted verifies that a job completed successfully
func AssertJobCompleted(t *testing.T, job *model.Job, expectedType model.JobType, expectedIndex string) {
	t.Helper()

	assert.Equal(t, model.JobStatusCompleted, job.Status, "Job should be completed")
	assert.Equal(t, expectedType, job.Type, "Job type should match")
	assert.Equal(t, expectedIndex, job.IndexName, "Job index name should match")
	assert.NotNil(t, job.CompletedAt, "Job should have completion timestamp")
	assert.Empty(t, job.Error, "Job should not have error")
}

// FindTestCase represents a test case for search operations
type FindTestCase struct {
	Name          string
	Query         services.FindQuery
	ExpectedCount int
	ExpectedFirst string // Expected top-ranked path
	ValidateFunc  func(t *testing.T, result *services.FindResult)
}

// RunFindTests runs a suite of search tests against an index
func RunFindTests(t *testing.T, indexAccessor services.IndexAccessor, tests []FindTestCase) {
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			result, err := indexAccessor.Find(tt.Query)
			require.NoError(t, err, "Find should not fail")

			assert.Equal(t, tt.ExpectedCount, result.Total, "Result count should match")

			if tt.ExpectedFirst != "" && len(result.Hits) > 0 {
				assert.Equal(t, tt.ExpectedFirst, result.Hits[0].Path, "Top-ranked path should match expected")
			}

			if tt.ValidateFunc != nil {
				tt.ValidateFunc(t, &result)
			}
		})
	}
}
