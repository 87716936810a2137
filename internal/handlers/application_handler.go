package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sushant-97/ats-system/internal/dtos"
	"github.com/sushant-97/ats-system/internal/models"
	"github.com/sushant-97/ats-system/internal/services"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
}

func NewApplicationHandler(apps *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Applications: apps}
}

// ListApplications is GET /applications: filtered, sorted and paginated.
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	result := h.Applications.List(services.ApplicationFilter{
		Search:    c.Query("search"),
		Status:    c.DefaultQuery("status", "all"),
		Type:      c.DefaultQuery("type", "all"),
		Location:  c.DefaultQuery("location", "all"),
		SortField: c.DefaultQuery("sortBy", "date"),
		SortDir:   c.DefaultQuery("order", "desc"),
		Page:      page,
	})
	c.JSON(http.StatusOK, result)
}

// GetApplication is GET /applications/:id.
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	app, err := h.Applications.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// CreateApplication is POST /applications.
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var req dtos.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	app := h.Applications.Create(applicationFromRequest(req))
	c.JSON(http.StatusCreated, app)
}

// UpdateApplication is PUT /applications/:id.
func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	var req dtos.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	app := applicationFromRequest(req)
	app.ID = c.Param("id")
	if err := h.Applications.Update(app); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// DeleteApplication is DELETE /applications/:id.
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	if err := h.Applications.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func applicationFromRequest(req dtos.ApplicationRequest) models.Application {
	date := time.Time{}
	if req.Date != "" {
		// Format already validated by the binding layer.
		date, _ = time.Parse("2006-01-02", req.Date)
	}
	return models.Application{
		Company:      req.Company,
		Position:     req.Position,
		Location:     req.Location,
		Type:         req.Type,
		Status:       models.ApplicationStatus(req.Status),
		Date:         date,
		URL:          req.URL,
		ContactEmail: req.ContactEmail,
		Notes:        req.Notes,
	}
}
