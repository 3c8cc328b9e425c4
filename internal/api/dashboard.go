package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orderly-eats/gateway/internal/service"
)

// DashboardHandler serves the merged analytics dashboard.
type DashboardHandler struct {
	analytics *service.AnalyticsService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(analytics *service.AnalyticsService) *DashboardHandler {
	return &DashboardHandler{analytics: analytics}
}

// RegisterRoutes registers the dashboard routes
func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard", h.GetDashboard)
}

// GetDashboard returns analytics plus feature importance. Failed upstream
// fetches are replaced by fixed fallbacks, so this endpoint always renders.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.analytics.Dashboard(c.Request.Context()))
}
