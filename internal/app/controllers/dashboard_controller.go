package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frolicdev/frolic/internal/app/models/dto"
	"github.com/frolicdev/frolic/internal/app/services"
	"github.com/frolicdev/frolic/internal/middleware"
)

// DashboardController handles admin dashboard endpoints
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// Stats handles GET /api/v1/dashboard/stats
func (ctrl *DashboardController) Stats(c *gin.Context) {
	stats, err := ctrl.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(stats, "Dashboard stats retrieved"))
}

// Recent handles GET /api/v1/dashboard/recent
func (ctrl *DashboardController) Recent(c *gin.Context) {
	participants, err := ctrl.dashboardService.GetRecentParticipants(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(participants, "Recent participants retrieved"))
}
