package engine

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/gcbaptista/go-path-search/config"
	"github.com/gcbaptista/go-path-search/internal/errors"
	"github.com/gcbaptista/go-path-search/internal/jobs"
	"github.com/gcbaptista/go-path-search/internal/search"
	"github.com/gcbaptista/go-path-search/model"
	"github.com/gcbaptista/go-path-search/services"
)

const maxConcurrentJobs = 4

// Engine manages multiple path indexes.
// It implements the services.IndexManager interface.
type Engine struct {
	mu         sync.RWMutex
	indexes    map[string]*IndexInstance
	dataDir    string
	jobManager *jobs.Manager
}

// NewEngine creates a new path search engine orchestrator.
func NewEngine(dataDir string) *Engine {
	eng := &Engine{
		indexes:    make(map[string]*IndexInstance),
		dataDir:    dataDir,
		jobManager: jobs.NewManager(maxConcurrentJobs),
	}
	eng.jobManager.Start()
	eng.loadIndexesFromDisk()
	return eng
}

// Close stops the background job manager.
func (e *Engine) Close() {
	e.jobManager.Stop()
}

// CreateIndex creates a new index with the given settings and persists it.
// The candidate set starts empty; a populate (reindex) fills it.
func (e *Engine) CreateIndex(settings config.IndexSettings) error {
	settings.ApplyDefaults()
	if conflicts := settings.Validate(); len(conflicts) > 0 {
		return errors.NewValidationError("settings", conflicts[0])
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.indexes[settings.Name]; exists {
		return errors.NewIndexAlreadyExistsError(settings.Name)
	}

	instance, err := NewIndexInstance(settings)
	if err != nil {
		return fmt.Errorf("failed to create new index instance for '%s': %w", settings.Name, err)
	}

	searchService, err := search.NewService(instance.CandidateStore, instance.settings)
	if err != nil {
		return fmt.Errorf("failed to create search service for new index '%s': %w", settings.Name, err)
	}
	instance.SetSearcher(searchService)

	// Persist the initial (empty) state
	if err := e.persistIndexUnsafe(settings.Name, *instance.settings, instance); err != nil {
		return fmt.Errorf("failed to persist new index '%s': %w", settings.Name, err)
	}

	e.indexes[settings.Name] = instance
	log.Printf("Index '%s' created and persisted.", settings.Name)
	return nil
}

// GetIndex retrieves an index by its name.
func (e *Engine) GetIndex(name string) (services.IndexAccessor, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	instance, exists := e.indexes[name]
	if !exists {
		return nil, errors.NewIndexNotFoundError(name)
	}
	return instance, nil
}

// GetIndexSettings retrieves the settings for a specific index.
func (e *Engine) GetIndexSettings(name string) (config.IndexSettings, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	instance, exists := e.indexes[name]
	if !exists {
		return config.IndexSettings{}, errors.NewIndexNotFoundError(name)
	}
	return *instance.settings, nil // Return a copy
}

// DeleteIndex deletes an index and its data from disk.
func (e *Engine) DeleteIndex(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.indexes[name]; !exists {
		return errors.NewIndexNotFoundError(name)
	}

	delete(e.indexes, name)

	indexPath := filepath.Join(e.dataDir, name)
	if err := os.RemoveAll(indexPath); err != nil {
		return fmt.Errorf("failed to remove index directory %s: %w", indexPath, err)
	}

	log.Printf("Index '%s' deleted successfully.", name)
	return nil
}

// ListIndexes returns the names of all managed indexes.
func (e *Engine) ListIndexes() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.indexes))
	for name := range e.indexes {
		names = append(names, name)
	}
	return names
}

// GetJob retrieves a background job by ID.
func (e *Engine) GetJob(jobID string) (*model.Job, error) {
	return e.jobManager.GetJob(jobID)
}

// ListJobs returns all jobs for a specific index, optionally filtered by status.
func (e *Engine) ListJobs(indexName string, status *model.JobStatus) []*model.Job {
	return e.jobManager.ListJobs(indexName, status)
}

// GetJobMetrics returns current job performance metrics.
func (e *Engine) GetJobMetrics() jobs.JobMetricsData {
	return e.jobManager.GetMetrics()
}

// GetJobSuccessRate returns the completed-to-finished job ratio.
func (e *Engine) GetJobSuccessRate() float64 {
	return e.jobManager.GetSuccessRate()
}

// GetCurrentWorkload returns the number of jobs currently executing.
func (e *Engine) GetCurrentWorkload() int {
	return e.jobManager.GetCurrentWorkload()
}
