package engine

import (
	"context"
	"fmt"

	"github.com/gcbaptista/go-path-search/config"
	"github.com/gcbaptista/go-path-search/internal/errors"
	"github.com/gcbaptista/go-path-search/model"
)

// CreateIndexAsync creates a new index in the background and returns a job ID
// for tracking progress.
func (e *Engine) CreateIndexAsync(settings config.IndexSettings) (string, error) {
	settings.ApplyDefaults()
	if conflicts := settings.Validate(); len(conflicts) > 0 {
		return "", errors.NewValidationError("settings", conflicts[0])
	}

	e.mu.RLock()
	_, exists := e.indexes[settings.Name]
	e.mu.RUnlock()
	if exists {
		return "", errors.NewIndexAlreadyExistsError(settings.Name)
	}

	jobID := e.jobManager.CreateJob(model.JobTypeCreateIndex, settings.Name, map[string]string{
		"root_path": settings.RootPath,
	})

	err := e.jobManager.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error {
		e.jobManager.UpdateJobProgress(jobID, 0, 2, "Creating index")
		if err := e.CreateIndex(settings); err != nil {
			return err
		}

		e.jobManager.UpdateJobProgress(jobID, 1, 2, "Populating index")
		if err := e.populateAndPersist(settings.Name); err != nil {
			return err
		}

		e.jobManager.UpdateJobProgress(jobID, 2, 2, "Index created")
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to start index creation job: %w", err)
	}
	return jobID, nil
}

// DeleteIndexAsync deletes an index in the background and returns a job ID.
func (e *Engine) DeleteIndexAsync(name string) (string, error) {
	e.mu.RLock()
	_, exists := e.indexes[name]
	e.mu.RUnlock()
	if !exists {
		return "", errors.NewIndexNotFoundError(name)
	}

	jobID := e.jobManager.CreateJob(model.JobTypeDeleteIndex, name, nil)

	err := e.jobManager.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error {
		e.jobManager.UpdateJobProgress(jobID, 0, 1, "Deleting index")
		if err := e.DeleteIndex(name); err != nil {
			return err
		}
		e.jobManager.UpdateJobProgress(jobID, 1, 1, "Index deleted")
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to start index deletion job: %w", err)
	}
	return jobID, nil
}

// ReindexAsync re-walks the index root in the background and returns a job
// ID. The previous candidate set stays searchable until the walk finishes.
func (e *Engine) ReindexAsync(name string) (string, error) {
	e.mu.RLock()
	_, exists := e.indexes[name]
	e.mu.RUnlock()
	if !exists {
		return "", errors.NewIndexNotFoundError(name)
	}

	jobID := e.jobManager.CreateJob(model.JobTypeReindex, name, nil)

	err := e.jobManager.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error {
		e.jobManager.UpdateJobProgress(jobID, 0, 1, "Walking filesystem")
		if err := e.populateAndPersist(name); err != nil {
			return err
		}
		e.jobManager.UpdateJobProgress(jobID, 1, 1, "Reindex complete")
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to start reindex job: %w", err)
	}
	return jobID, nil
}

// populateAndPersist runs a populate on the named index and writes the
// refreshed candidate set to disk.
func (e *Engine) populateAndPersist(name string) error {
	e.mu.RLock()
	instance, exists := e.indexes[name]
	e.mu.RUnlock()
	if !exists {
		return errors.NewIndexNotFoundError(name)
	}

	if _, err := instance.Populate(); err != nil {
		return fmt.Errorf("failed to populate index '%s': %w", name, err)
	}
	return e.persistIndexUnsafe(name, *instance.settings, instance)
}
