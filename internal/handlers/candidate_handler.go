package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sushant-97/ats-system/internal/dtos"
	"github.com/sushant-97/ats-system/internal/models"
	"github.com/sushant-97/ats-system/internal/pipeline"
	"github.com/sushant-97/ats-system/internal/services"
)

type CandidateHandler struct {
	Candidates *services.CandidateService
}

func NewCandidateHandler(candidates *services.CandidateService) *CandidateHandler {
	return &CandidateHandler{Candidates: candidates}
}

// criteriaFromQuery translates list query params into filter criteria.
func criteriaFromQuery(c *gin.Context) pipeline.Criteria {
	return pipeline.Criteria{
		Status:     models.CandidateStatus(c.Query("status")),
		StageGroup: models.CandidateStatus(c.Query("stageGroup")),
		SearchTerm: c.Query("search"),
		Source:     c.DefaultQuery("source", pipeline.SourceAll),
		Match:      c.DefaultQuery("match", pipeline.MatchAll),
		SortBy:     c.Query("sortBy"),
		Descending: c.Query("order") == "desc",
	}
}

// ListCandidates is GET /candidates. Filters come from query params; the
// optional job param scopes the pool to one posting.
func (h *CandidateHandler) ListCandidates(c *gin.Context) {
	candidates := h.Candidates.List(c.Query("job"), criteriaFromQuery(c))
	c.JSON(http.StatusOK, gin.H{"candidates": candidates, "total": len(candidates)})
}

// GetCandidate is GET /candidates/:id.
func (h *CandidateHandler) GetCandidate(c *gin.Context) {
	cand, err := h.Candidates.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cand)
}

// Board is GET /candidates/board: the filtered pool grouped by stage, with
// empty stages included so the client can render empty columns.
func (h *CandidateHandler) Board(c *gin.Context) {
	board := h.Candidates.Board(c.Query("job"), criteriaFromQuery(c))
	c.JSON(http.StatusOK, gin.H{"stages": board})
}

// Counts is GET /candidates/counts: tab badge numbers.
func (h *CandidateHandler) Counts(c *gin.Context) {
	byStatus, byGroup := h.Candidates.Counts(c.Query("job"))
	c.JSON(http.StatusOK, gin.H{"byStatus": byStatus, "byStageGroup": byGroup})
}

// MoveStage is POST /candidates/:id/stage.
func (h *CandidateHandler) MoveStage(c *gin.Context) {
	var req dtos.MoveStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	stage := models.Stage(req.Stage)
	if !stage.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown stage: " + req.Stage})
		return
	}
	cand, err := h.Candidates.MoveStage(c.Param("id"), stage)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cand)
}

// AddToLeads is POST /candidates/:id/leads.
func (h *CandidateHandler) AddToLeads(c *gin.Context) {
	cand, err := h.Candidates.AddToLeads(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cand)
}
