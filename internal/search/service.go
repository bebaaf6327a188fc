package search

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gcbaptista/go-path-search/config"
	"github.com/gcbaptista/go-path-search/internal/errors"
	"github.com/gcbaptista/go-path-search/internal/matching"
	"github.com/gcbaptista/go-path-search/services"
	"github.com/gcbaptista/go-path-search/store"
)

// Service implements the find logic for a single path index.
// It fulfills the services.Searcher interface.
type Service struct {
	candidateStore *store.CandidateStore
	settings       *config.IndexSettings
}

// NewService creates a new search Service.
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

// Find scores every stored candidate against the query term and returns the
// best matches in descending relevance order. Every call scans the full set;
// there is no per-query caching beyond the position index each candidate
// carries. Repeated calls over an unchanged store with the same term return
// identical results.
func (s *Service) Find(query services.FindQuery) (services.FindResult, error) {
	startTime := time.Now()

	if query.Limit < 0 {
		return services.FindResult{}, errors.NewValidationError("limit", "cannot be negative")
	}
	limit := query.Limit
	if limit == 0 {
		limit = s.settings.DefaultLimit
	}

	s.candidateStore.Mu.RLock()
	results := matching.Find(query.Term, s.candidateStore.Candidates, limit)
	s.candidateStore.Mu.RUnlock()

	hits := make([]services.HitResult, 0, len(results))
	for _, result := range results {
		hits = append(hits, services.HitResult{
			Path:  result.Candidate.DisplayPath,
			Score: result.Score,
		})
	}

	return services.FindResult{
		Hits:    hits,
		Total:   len(hits),
		Limit:   limit,
		Took:    time.Since(startTime).Milliseconds(),
		QueryId: uuid.New().String(),
	}, nil
}
