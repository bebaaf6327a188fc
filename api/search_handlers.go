package api

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/gcbaptista/go-path-search/internal/errors"
	"github.com/gcbaptista/go-path-search/model"
	"github.com/gcbaptista/go-path-search/services"
)

// SearchRequest defines the structure for fuzzy path queries.
type SearchRequest struct {
	Term  string `json:"term"`
	Limit int    `json:"limit,omitempty"`
}

// SearchHandler handles fuzzy search requests to an index.
// Request Body: SearchRequest
func (api *API) SearchHandler(c *gin.Context) {
	startTime := time.Now()
	indexName := c.Param("indexName")

	if result := ValidateIndexName(indexName); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	indexAccessor, err := api.engine.GetIndex(indexName)
	if err != nil {
		if errors.Is(err, internalErrors.ErrIndexNotFound) {
			SendIndexNotFoundError(c, indexName)
			return
		}
		SendInternalError(c, "get index", err)
		return
	}

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, "Invalid request body: "+err.Error())
		return
	}

	result, err := indexAccessor.Find(services.FindQuery{Term: req.Term, Limit: req.Limit})
	if err != nil {
		if errors.Is(err, internalErrors.ErrInvalidInput) {
			SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, err.Error())
			return
		}
		SendSearchError(c, indexName, err)
		return
	}

	event := model.SearchEvent{
		IndexName:    indexName,
		Term:         req.Term,
		ResponseTime: time.Since(startTime),
		ResultCount:  result.Total,
	}

	// Track the event asynchronously to avoid slowing down the response
	go func() {
		if err := api.analytics.TrackSearchEvent(event); err != nil {
			log.Printf("Warning: Failed to track search event: %v", err)
		}
	}()

	c.JSON(http.StatusOK, result)
}
