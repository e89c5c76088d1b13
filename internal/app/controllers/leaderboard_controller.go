package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campuskudos/backend/internal/app/models/dto"
	"github.com/campuskudos/backend/internal/app/services"
	"github.com/campuskudos/backend/internal/middleware"
)

const defaultLeaderboardLimit = 10

// LeaderboardController handles leaderboard endpoints
type LeaderboardController struct {
	leaderboardService *services.LeaderboardService
}

// NewLeaderboardController creates a new leaderboard controller
func NewLeaderboardController(leaderboardService *services.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{leaderboardService: leaderboardService}
}

// Top godoc
// @Summary Get the leaderboard
// @Description Top students by total credits received, ties broken by student id
// @Tags leaderboard
// @Produce json
// @Param limit query int false "Number of entries" default(10)
// @Success 200 {object} dto.Response{data=dto.Leaderboard}
// @Router /leaderboard [get]
func (ctrl *LeaderboardController) Top(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLeaderboardLimit)))
	if err != nil || limit < 1 || limit > 100 {
		limit = defaultLeaderboardLimit
	}

	leaderboard, err := ctrl.leaderboardService.Top(c.Request.Context(), limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(leaderboard, "Leaderboard retrieved successfully"))
}

// StudentRanking godoc
// @Summary Get a single student's rank
// @Tags leaderboard
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.Response{data=dto.LeaderboardEntry}
// @Failure 404 {object} dto.Response
// @Router /leaderboard/student/{studentId} [get]
func (ctrl *LeaderboardController) StudentRanking(c *gin.Context) {
	ranking, err := ctrl.leaderboardService.StudentRanking(c.Request.Context(), c.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(ranking, "Student ranking retrieved successfully"))
}
