package controller

import (
	"course_admin_backend/internal/service"
	"course_admin_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// Stats godoc
// @Summary Dashboard statistics
// @Description Worker and course counts plus the most recent courses
// @Tags dashboard
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.DashboardStats} "Success"
// @Router /api/dashboard [get]
func (c *DashboardController) Stats(ctx *gin.Context) {
	stats, err := c.DashboardService.Stats()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}
