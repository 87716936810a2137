package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sushant-97/ats-system/internal/dtos"
	"github.com/sushant-97/ats-system/internal/models"
	"github.com/sushant-97/ats-system/internal/services"
)

type InterviewHandler struct {
	Interviews *services.InterviewService
}

func NewInterviewHandler(interviews *services.InterviewService) *InterviewHandler {
	return &InterviewHandler{Interviews: interviews}
}

// ListInterviews is GET /interviews with an optional status filter.
func (h *InterviewHandler) ListInterviews(c *gin.Context) {
	status := models.InterviewStatus(c.Query("status"))
	interviews := h.Interviews.List(status)
	c.JSON(http.StatusOK, gin.H{"interviews": interviews, "total": len(interviews)})
}

// OnDay is GET /interviews/day/:date with date as YYYY-MM-DD, the calendar
// day-cell lookup.
func (h *InterviewHandler) OnDay(c *gin.Context) {
	day, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	interviews := h.Interviews.OnDate(day.Year(), int(day.Month()), day.Day())
	c.JSON(http.StatusOK, gin.H{"interviews": interviews, "total": len(interviews)})
}

// Schedule is POST /interviews.
func (h *InterviewHandler) Schedule(c *gin.Context) {
	var req dtos.ScheduleInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	date, _ := time.Parse("2006-01-02", req.Date)
	iv, err := h.Interviews.Schedule(models.Interview{
		Company:      req.Company,
		Position:     req.Position,
		Type:         models.InterviewType(req.Type),
		Date:         date,
		Time:         req.Time,
		Duration:     req.Duration,
		Location:     req.Location,
		Interviewers: req.Interviewers,
		Notes:        req.Notes,
		Reminder:     req.Reminder,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, iv)
}

// Cancel is POST /interviews/:id/cancel.
func (h *InterviewHandler) Cancel(c *gin.Context) {
	iv, err := h.Interviews.Cancel(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, iv)
}

// Complete is POST /interviews/:id/complete.
func (h *InterviewHandler) Complete(c *gin.Context) {
	iv, err := h.Interviews.Complete(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, iv)
}
