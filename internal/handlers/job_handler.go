package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sushant-97/ats-system/internal/services"
)

type JobHandler struct {
	Jobs       *services.JobService
	Candidates *services.CandidateService
}

func NewJobHandler(jobs *services.JobService, candidates *services.CandidateService) *JobHandler {
	return &JobHandler{Jobs: jobs, Candidates: candidates}
}

// ListJobs is GET /jobs with optional status filter and sorting.
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs := h.Jobs.List(services.JobFilter{
		Status: c.DefaultQuery("status", "all"),
		SortBy: c.DefaultQuery("sortBy", "daysActive"),
		Order:  c.DefaultQuery("order", "desc"),
	})
	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "total": len(jobs)})
}

// GetJob is GET /jobs/:id.
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.Jobs.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// JobCandidates is GET /jobs/:id/candidates: the job's candidate pool run
// through the same filter criteria as the global list.
func (h *JobHandler) JobCandidates(c *gin.Context) {
	job, err := h.Jobs.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	candidates := h.Candidates.List(job.ID, criteriaFromQuery(c))
	c.JSON(http.StatusOK, gin.H{"job": job, "candidates": candidates, "total": len(candidates)})
}
