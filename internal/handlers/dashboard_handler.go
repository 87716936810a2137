package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sushant-97/ats-system/internal/services"
)

type DashboardHandler struct {
	Dashboard *services.DashboardService
}

func NewDashboardHandler(dashboard *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Dashboard: dashboard}
}

// Metrics is GET /dashboard/metrics: the headline card numbers.
func (h *DashboardHandler) Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.Dashboard.Metrics())
}

// Activity is GET /dashboard/activity: the monthly chart series.
func (h *DashboardHandler) Activity(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"months": h.Dashboard.Activity()})
}

// StatusDistribution is GET /dashboard/status-distribution: the pie chart
// series.
func (h *DashboardHandler) StatusDistribution(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"statuses": h.Dashboard.StatusDistribution()})
}
