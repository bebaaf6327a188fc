package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-path-search/internal/analytics"
	"github.com/gcbaptista/go-path-search/services"
)

const maxRequestBodySize = 1 << 20 // 1 MiB is plenty for settings and queries

// API holds dependencies for API handlers, primarily the index manager.
type API struct {
	engine    services.IndexManager
	analytics *analytics.Service
}

// NewAPI creates a new API handler structure.
func NewAPI(engine services.IndexManager, analyticsService *analytics.Service) *API {
	return &API{
		engine:    engine,
		analytics: analyticsService,
	}
}

// SetupRoutes defines all the API routes for the path search service.
func SetupRoutes(router *gin.Engine, engine services.IndexManager, analyticsService *analytics.Service) {
	apiHandler := NewAPI(engine, analyticsService)

	router.Use(RequestSizeLimitMiddleware(maxRequestBodySize))
	router.Use(CORSMiddleware())

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	// Analytics route
	router.GET("/analytics", apiHandler.GetAnalyticsHandler)

	// Job management routes
	jobRoutes := router.Group("/jobs")
	{
		jobRoutes.GET("/:jobId", apiHandler.GetJobHandler)         // Get job status by ID
		jobRoutes.GET("/metrics", apiHandler.GetJobMetricsHandler) // Get job performance metrics
	}

	// Index management routes
	indexRoutes := router.Group("/indexes")
	{
		indexRoutes.POST("", apiHandler.CreateIndexHandler)                   // Create a new index
		indexRoutes.GET("", apiHandler.ListIndexesHandler)                    // List all indexes
		indexRoutes.GET("/:indexName", apiHandler.GetIndexHandler)            // Get index settings
		indexRoutes.DELETE("/:indexName", apiHandler.DeleteIndexHandler)      // Delete an index
		indexRoutes.POST("/:indexName/reindex", apiHandler.ReindexHandler)    // Re-walk the index root
		indexRoutes.GET("/:indexName/stats", apiHandler.GetIndexStatsHandler) // Get index statistics
		indexRoutes.GET("/:indexName/jobs", apiHandler.ListJobsHandler)       // List jobs for an index

		// Search route per index
		indexRoutes.POST("/:indexName/_search", apiHandler.SearchHandler)
	}
}

// HealthCheckHandler provides a simple health check endpoint
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "go-path-search",
		"timestamp": fmt.Sprintf("%d", time.Now().Unix()),
	})
}

// GetAnalyticsHandler handles the request to get aggregated search analytics
func (api *API) GetAnalyticsHandler(c *gin.Context) {
	summary, err := api.analytics.GetSummary()
	if err != nil {
		SendInternalError(c, "get analytics", err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetIndexStatsHandler returns statistics for a specific index
func (api *API) GetIndexStatsHandler(c *gin.Context) {
	indexName := c.Param("indexName")
	indexAccessor, err := api.engine.GetIndex(indexName)
	if err != nil {
		SendIndexNotFoundError(c, indexName)
		return
	}

	settings := indexAccessor.Settings()
	c.JSON(http.StatusOK, gin.H{
		"name":            settings.Name,
		"root_path":       settings.RootPath,
		"case_sensitive":  settings.CaseSensitive,
		"candidate_count": indexAccessor.CandidateCount(),
	})
}
