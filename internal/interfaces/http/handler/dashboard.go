package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/evergreen/backend/internal/application/dashboard"
)

// DashboardHandler serves the admin dashboard counters
type DashboardHandler struct {
	BaseHandler
	dashboardService *dashboard.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *dashboard.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats godoc
// @Summary      Get dashboard statistics
// @Description  Returns the counters shown on the admin dashboard
// @Tags         admin-dashboard
// @Produce      json
// @Success      200 {object} APIResponse[dashboard.Stats]
// @Security     BearerAuth
// @Router       /admin/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.Stats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stats)
}
