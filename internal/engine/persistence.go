package engine

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gcbaptista/go-path-search/config"
	"github.com/gcbaptista/go-path-search/internal/errors"
	"github.com/gcbaptista/go-path-search/internal/persistence"
	"github.com/gcbaptista/go-path-search/internal/search"
)

const (
	settingsFile   = "settings.gob"
	candidatesFile = "candidates.gob"
)

// loadIndexesFromDisk scans the data directory and restores every index it
// can. Loading is best-effort: a corrupt or incomplete index directory is
// logged and skipped so one bad index never blocks startup.
func (e *Engine) loadIndexesFromDisk() {
	entries, err := os.ReadDir(e.dataDir)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Data directory %s does not exist yet, starting fresh.", e.dataDir)
			return
		}
		log.Printf("Warning: failed to read data directory %s: %v", e.dataDir, err)
		return
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		indexName := entry.Name()
		if err := e.loadIndex(indexName); err != nil {
			log.Printf("Warning: skipping index '%s': %v", indexName, err)
			continue
		}
		log.Printf("Loaded index '%s' from disk (%d candidates).",
			indexName, e.indexes[indexName].CandidateCount())
	}
}

// loadIndex restores a single index from its directory under dataDir.
func (e *Engine) loadIndex(indexName string) error {
	indexPath := filepath.Join(e.dataDir, indexName)

	var settings config.IndexSettings
	if err := persistence.LoadGob(filepath.Join(indexPath, settingsFile), &settings); err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if settings.Name != indexName {
		return fmt.Errorf("settings name '%s' does not match directory name '%s'", settings.Name, indexName)
	}
	settings.ApplyDefaults()

	instance, err := NewIndexInstance(settings)
	if err != nil {
		return fmt.Errorf("failed to create instance: %w", err)
	}

	if err := persistence.LoadGob(filepath.Join(indexPath, candidatesFile), instance.CandidateStore); err != nil {
		if err != os.ErrNotExist {
			return fmt.Errorf("failed to load candidates: %w", err)
		}
		// No candidate file yet means the index was created but never
		// populated. Start it empty.
	}

	searchService, err := search.NewService(instance.CandidateStore, instance.settings)
	if err != nil {
		return fmt.Errorf("failed to create search service: %w", err)
	}
	instance.SetSearcher(searchService)

	e.indexes[indexName] = instance
	return nil
}

// PersistIndexData saves the settings and candidate set of an index to disk.
func (e *Engine) PersistIndexData(name string) error {
	e.mu.RLock()
	instance, exists := e.indexes[name]
	e.mu.RUnlock()

	if !exists {
		return errors.NewIndexNotFoundError(name)
	}
	return e.persistIndexUnsafe(name, *instance.settings, instance)
}

// persistIndexUnsafe writes an index's files without taking the engine lock.
// Callers either hold the lock or own the only reference to the instance.
func (e *Engine) persistIndexUnsafe(name string, settings config.IndexSettings, instance *IndexInstance) error {
	indexPath := filepath.Join(e.dataDir, name)

	if err := persistence.SaveGob(filepath.Join(indexPath, settingsFile), settings); err != nil {
		return fmt.Errorf("failed to persist settings for index '%s': %w", name, err)
	}
	if err := persistence.SaveGob(filepath.Join(indexPath, candidatesFile), instance.CandidateStore); err != nil {
		return fmt.Errorf("failed to persist candidates for index '%s': %w", name, err)
	}
	return nil
}
