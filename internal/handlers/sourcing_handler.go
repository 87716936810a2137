package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sushant-97/ats-system/internal/dtos"
	"github.com/sushant-97/ats-system/internal/services"
)

type SourcingHandler struct {
	Sourcing *services.SourcingService
}

func NewSourcingHandler(sourcing *services.SourcingService) *SourcingHandler {
	return &SourcingHandler{Sourcing: sourcing}
}

// Search is POST /sourcing/search: runs the simulated natural-language
// search. Closing the connection cancels the pending search.
func (h *SourcingHandler) Search(c *gin.Context) {
	var req dtos.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	results, err := h.Sourcing.Search(c.Request.Context(), req.Query, req.Source, req.Level)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"candidates": results, "total": len(results)})
}

// Examples is GET /sourcing/examples: the canned search suggestions.
func (h *SourcingHandler) Examples(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"examples": services.SearchExamples})
}

// SourceCandidates is POST /sourcing/candidates: adds selected search
// results to the candidate pool.
func (h *SourcingHandler) SourceCandidates(c *gin.Context) {
	var req dtos.SourceCandidatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	added := h.Sourcing.SourceCandidates(req.IDs)
	c.JSON(http.StatusOK, gin.H{"added": added})
}
