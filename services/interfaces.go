package services

import (
	"github.com/gcbaptista/go-path-search/config"
	"github.com/gcbaptista/go-path-search/model"
)

// HitResult represents a single path in the find results, with the relevance
// computed for it. Relevance is a ranking signal, not a probability: only
// exact matches are pinned to 1.0.
type HitResult struct {
	Path  string  `json:"path"`
	Score float64 `json:"score"`
}

// FindResult is the response to one find call. Hits are ordered by strictly
// descending relevance; ties keep traversal order.
type FindResult struct {
	Hits    []HitResult `json:"hits"`
	Total   int         `json:"total"`
	Limit   int         `json:"limit"`
	Took    int64       `json:"took"`     // milliseconds
	QueryId string      `json:"query_id"` // unique UUID for this find call
}

// FindQuery describes one find call against a populated index.
type FindQuery struct {
	Term  string `json:"term"`
	Limit int    `json:"limit,omitempty"` // 0 means the index default; negative is invalid
}

// PopulateResult reports the outcome of one population pass.
type PopulateResult struct {
	CandidateCount int   `json:"candidate_count"`
	Took           int64 `json:"took"` // milliseconds
}

// Populator defines operations for filling an index with candidates
type Populator interface {
	Populate() (PopulateResult, error)
	DeleteAllCandidates() error
}

// Searcher defines operations for querying an index
type Searcher interface {
	Find(query FindQuery) (FindResult, error)
}

// IndexManager manages the lifecycle of indices
type IndexManager interface {
	CreateIndex(settings config.IndexSettings) error
	GetIndex(name string) (IndexAccessor, error) // IndexAccessor combines Populator and Searcher
	GetIndexSettings(name string) (config.IndexSettings, error)
	DeleteIndex(name string) error
	ListIndexes() []string
	PersistIndexData(indexName string) error
}

// IndexManagerWithAsyncOps extends IndexManager with asynchronous operations
// that return a job ID instead of blocking.
type IndexManagerWithAsyncOps interface {
	IndexManager
	CreateIndexAsync(settings config.IndexSettings) (string, error)
	DeleteIndexAsync(name string) (string, error)
	ReindexAsync(name string) (string, error)
}

// JobManager defines operations for managing background jobs
type JobManager interface {
	GetJob(jobID string) (*model.Job, error)
	ListJobs(indexName string, status *model.JobStatus) []*model.Job
}

type IndexAccessor interface {
	Populator
	Searcher
	Settings() config.IndexSettings
	CandidateCount() int
}
