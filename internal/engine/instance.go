package engine

import (
	"fmt"

	"github.com/gcbaptista/go-path-search/config"
	"github.com/gcbaptista/go-path-search/internal/indexing"
	"github.com/gcbaptista/go-path-search/services"
	"github.com/gcbaptista/go-path-search/store"
)

// IndexInstance bundles the candidate store of one index with the services
// operating on it. It implements services.IndexAccessor.
type IndexInstance struct {
	settings       *config.IndexSettings
	CandidateStore *store.CandidateStore
	populator      services.Populator
	searcher       services.Searcher
}

// NewIndexInstance creates an index instance with an empty candidate store.
func NewIndexInstance(settings config.IndexSettings) (*IndexInstance, error) {
	settingsCopy := settings
	candidateStore := &store.CandidateStore{Root: settingsCopy.RootPath}

	populator, err := indexing.NewService(candidateStore, &settingsCopy)
	if err != nil {
		return nil, fmt.Errorf("failed to create indexing service: %w", err)
	}

	return &IndexInstance{
		settings:       &settingsCopy,
		CandidateStore: candidateStore,
		populator:      populator,
	}, nil
}

// SetSearcher wires the search service after construction. The search
// service needs the same store and settings, so the engine injects it once
// both exist.
func (i *IndexInstance) SetSearcher(searcher services.Searcher) {
	i.searcher = searcher
}

// Populate rebuilds the candidate set from the configured root.
func (i *IndexInstance) Populate() (services.PopulateResult, error) {
	return i.populator.Populate()
}

// DeleteAllCandidates empties the candidate set.
func (i *IndexInstance) DeleteAllCandidates() error {
	return i.populator.DeleteAllCandidates()
}

// Find runs a fuzzy query over the candidate set.
func (i *IndexInstance) Find(query services.FindQuery) (services.FindResult, error) {
	if i.searcher == nil {
		return services.FindResult{}, fmt.Errorf("index '%s' has no search service attached", i.settings.Name)
	}
	return i.searcher.Find(query)
}

// Settings returns a copy of the index settings.
func (i *IndexInstance) Settings() config.IndexSettings {
	return *i.settings
}

// CandidateCount returns the number of indexed paths.
func (i *IndexInstance) CandidateCount() int {
	return i.CandidateStore.Count()
}
