package model

import "time"

// SearchEvent represents a single find call for analytics tracking
type SearchEvent struct {
	IndexName    string        `json:"index_name"`
	Term         string        `json:"term"`
	ResponseTime time.Duration `json:"response_time"`
	ResultCount  int           `json:"result_count"`
	Timestamp    time.Time     `json:"timestamp"`
}

// PopularSearch represents aggregated data for frequently issued terms
type PopularSearch struct {
	Term        string `json:"term"`
	SearchCount int    `json:"search_count"`
}

// IndexStats represents statistics for a specific index
type IndexStats struct {
	IndexName      string `json:"index_name"`
	CandidateCount int    `json:"candidate_count"`
	SearchCount    int    `json:"search_count"`
}

// AnalyticsSummary represents aggregated analytics across all indexes
type AnalyticsSummary struct {
	TotalSearches     int             `json:"total_searches"`
	AvgResponseTimeMs int64           `json:"avg_response_time_ms"`
	PopularSearches   []PopularSearch `json:"popular_searches"`
	IndexStats        []IndexStats    `json:"index_stats"`
	GeneratedAt       time.Time       `json:"generated_at"`
}
