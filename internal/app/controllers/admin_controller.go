package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuskudos/backend/internal/app/models/dto"
	"github.com/campuskudos/backend/internal/app/services"
	"github.com/campuskudos/backend/internal/middleware"
)

// AdminController exposes the administrative monthly-reset operations.
type AdminController struct {
	resetService *services.ResetService
}

// NewAdminController creates a new admin controller
func NewAdminController(resetService *services.ResetService) *AdminController {
	return &AdminController{resetService: resetService}
}

// SweepResets godoc
// @Summary Run the batch monthly reset
// @Description Resets every account whose last reset month is stale
// @Tags admin
// @Produce json
// @Success 200 {object} dto.Response{data=dto.SweepResult}
// @Router /admin/reset/sweep [post]
func (ctrl *AdminController) SweepResets(c *gin.Context) {
	result, err := ctrl.resetService.SweepAll(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(result, "Monthly reset sweep completed"))
}

// ResetStatistics godoc
// @Summary Get monthly-reset statistics
// @Tags admin
// @Produce json
// @Success 200 {object} dto.Response{data=dto.ResetStatistics}
// @Router /admin/reset/stats [get]
func (ctrl *AdminController) ResetStatistics(c *gin.Context) {
	stats, err := ctrl.resetService.Statistics(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(stats, "Reset statistics retrieved successfully"))
}
