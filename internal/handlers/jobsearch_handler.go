package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sushant-97/ats-system/internal/dtos"
	"github.com/sushant-97/ats-system/internal/services"
)

type JobSearchHandler struct {
	Search *services.JobSearchService
}

func NewJobSearchHandler(search *services.JobSearchService) *JobSearchHandler {
	return &JobSearchHandler{Search: search}
}

// SearchListings is POST /jobs/search: filters the listing set after the
// simulated delay. Closing the connection cancels the pending search.
func (h *JobSearchHandler) SearchListings(c *gin.Context) {
	var req dtos.JobSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	listings, err := h.Search.Search(c.Request.Context(), services.JobSearchFilter{
		Keyword:   req.Keyword,
		Location:  req.Location,
		Type:      req.Type,
		SalaryMin: req.SalaryMin,
		SalaryMax: req.SalaryMax,
		Level:     req.Level,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"listings": listings, "total": len(listings)})
}

// SavedListings is GET /jobs/saved.
func (h *JobSearchHandler) SavedListings(c *gin.Context) {
	saved := h.Search.Saved()
	c.JSON(http.StatusOK, gin.H{"listings": saved, "total": len(saved)})
}

// SaveListing is POST /jobs/:id/save.
func (h *JobSearchHandler) SaveListing(c *gin.Context) {
	if err := h.Search.Save(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": true})
}

// UnsaveListing is DELETE /jobs/:id/save.
func (h *JobSearchHandler) UnsaveListing(c *gin.Context) {
	if err := h.Search.Unsave(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": false})
}
