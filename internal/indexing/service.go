package indexing

import (
	"fmt"
	"log"
	"time"

	"github.com/gcbaptista/go-path-search/config"
	"github.com/gcbaptista/go-path-search/index"
	"github.com/gcbaptista/go-path-search/internal/walker"
	"github.com/gcbaptista/go-path-search/services"
	"github.com/gcbaptista/go-path-search/store"
)

// Service populates a candidate store from the filesystem.
// It fulfills the services.Populator interface.
type Service struct {
	candidateStore *store.CandidateStore
	settings       *config.IndexSettings
}

// NewService creates a new indexing Service.
func NewService(candidateStore *store.CandidateStore, settings *config.IndexSettings) (*Service, error) {
	if candidateStore == nil {
		return nil, fmt.Errorf("candidate store cannot be nil")
	}
	if settings == nil {
		return nil, fmt.Errorf("settings cannot be nil")
	}

	return &Service{
		candidateStore: candidateStore,
		settings:       settings,
	}, nil
}

// Populate walks the configured root, applies the exclusion patterns, and
// replaces the store contents with one Candidate per surviving regular file,
// in traversal order. Population is best-effort below the root: unreadable
// or undecodable entries are omitted and a partial set is not an error.
func (s *Service) Populate() (services.PopulateResult, error) {
	startTime := time.Now()

	paths, err := walker.Walk(s.settings.RootPath, walker.Options{
		Exclusions:       s.settings.Exclusions,
		RespectGitignore: s.settings.RespectGitignore,
	})
	if err != nil {
		return services.PopulateResult{}, fmt.Errorf("failed to traverse root for index '%s': %w", s.settings.Name, err)
	}

	candidates := make([]index.Candidate, 0, len(paths))
	for _, path := range paths {
		candidates = append(candidates, index.NewCandidate(path, s.settings.CaseSensitive))
	}

	s.candidateStore.Replace(s.settings.RootPath, candidates)
	log.Printf("Populated index '%s' with %d candidates from %s", s.settings.Name, len(candidates), s.settings.RootPath)

	return services.PopulateResult{
		CandidateCount: len(candidates),
		Took:           time.Since(startTime).Milliseconds(),
	}, nil
}

// DeleteAllCandidates empties the store without touching the filesystem.
func (s *Service) DeleteAllCandidates() error {
	s.candidateStore.Replace(s.settings.RootPath, make([]index.Candidate, 0))
	return nil
}
