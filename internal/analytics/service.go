package analytics

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/gcbaptista/go-path-search/model"
	"github.com/gcbaptista/go-path-search/services"
)

const (
	analyticsFileName = "analytics.json"
	maxEventsToKeep   = 10000 // Keep last 10k events for performance
	popularTermsLimit = 5
)

// Service tracks search events and produces usage summaries.
type Service struct {
	mutex        sync.RWMutex
	events       []model.SearchEvent
	indexManager services.IndexManager
	dataFilePath string
}

// NewService creates a new analytics service persisting under dataDir.
func NewService(indexManager services.IndexManager, dataDir string) *Service {
	service := &Service{
		events:       make([]model.SearchEvent, 0),
		indexManager: indexManager,
		dataFilePath: filepath.Join(dataDir, analyticsFileName),
	}

	if err := service.loadData(); err != nil {
		log.Printf("Warning: Failed to load analytics data: %v", err)
	}

	return service
}

// TrackSearchEvent records a new search event.
func (s *Service) TrackSearchEvent(event model.SearchEvent) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	s.events = append(s.events, event)

	// Keep only the latest events to prevent unbounded growth
	if len(s.events) > maxEventsToKeep {
		s.events = s.events[len(s.events)-maxEventsToKeep:]
	}

	// Persist data asynchronously
	go func() {
		if err := s.saveData(); err != nil {
			log.Printf("Warning: Failed to save analytics data: %v", err)
		}
	}()

	return nil
}

// GetSummary returns aggregate search statistics across all indexes.
func (s *Service) GetSummary() (model.AnalyticsSummary, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	summary := model.AnalyticsSummary{
		TotalSearches:     len(s.events),
		AvgResponseTimeMs: s.calculateAvgResponseTime(s.events),
		PopularSearches:   s.getPopularSearches(s.events),
		IndexStats:        s.getIndexStats(s.events),
		GeneratedAt:       time.Now(),
	}

	return summary, nil
}

// calculateAvgResponseTime calculates average response time in milliseconds.
func (s *Service) calculateAvgResponseTime(events []model.SearchEvent) int64 {
	if len(events) == 0 {
		return 0
	}

	var total time.Duration
	for _, event := range events {
		total += event.ResponseTime
	}
	return (total / time.Duration(len(events))).Milliseconds()
}

// getPopularSearches returns the most frequent search terms.
func (s *Service) getPopularSearches(events []model.SearchEvent) []model.PopularSearch {
	termCounts := make(map[string]int)
	for _, event := range events {
		if event.Term != "" {
			termCounts[event.Term]++
		}
	}

	popular := make([]model.PopularSearch, 0, len(termCounts))
	for term, count := range termCounts {
		popular = append(popular, model.PopularSearch{Term: term, SearchCount: count})
	}

	// Sort by count descending, term ascending for stable output
	sort.Slice(popular, func(i, j int) bool {
		if popular[i].SearchCount != popular[j].SearchCount {
			return popular[i].SearchCount > popular[j].SearchCount
		}
		return popular[i].Term < popular[j].Term
	})

	if len(popular) > popularTermsLimit {
		popular = popular[:popularTermsLimit]
	}
	return popular
}

// getIndexStats returns per-index candidate and search counts.
func (s *Service) getIndexStats(events []model.SearchEvent) []model.IndexStats {
	searchCounts := make(map[string]int)
	for _, event := range events {
		searchCounts[event.IndexName]++
	}

	indexes := s.indexManager.ListIndexes()
	sort.Strings(indexes)

	stats := make([]model.IndexStats, 0, len(indexes))
	for _, indexName := range indexes {
		candidateCount := 0
		if accessor, err := s.indexManager.GetIndex(indexName); err == nil {
			candidateCount = accessor.CandidateCount()
		}
		stats = append(stats, model.IndexStats{
			IndexName:      indexName,
			CandidateCount: candidateCount,
			SearchCount:    searchCounts[indexName],
		})
	}
	return stats
}

// loadData restores tracked events from disk.
func (s *Service) loadData() error {
	data, err := os.ReadFile(s.dataFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // Fresh start
		}
		return fmt.Errorf("failed to read analytics file: %w", err)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := json.Unmarshal(data, &s.events); err != nil {
		return fmt.Errorf("failed to parse analytics file: %w", err)
	}
	return nil
}

// saveData writes tracked events to disk.
func (s *Service) saveData() error {
	s.mutex.RLock()
	data, err := json.Marshal(s.events)
	s.mutex.RUnlock()
	if err != nil {
		return fmt.Errorf("failed to encode analytics data: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.dataFilePath), 0750); err != nil {
		return fmt.Errorf("failed to create analytics directory: %w", err)
	}
	if err := os.WriteFile(s.dataFilePath, data, 0600); err != nil {
		return fmt.Errorf("failed to write analytics file: %w", err)
	}
	return nil
}
