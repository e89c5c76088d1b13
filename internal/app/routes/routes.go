// Package routes wires HTTP endpoints to controllers.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuskudos/backend/internal/app/controllers"
	"github.com/campuskudos/backend/internal/middleware"
)

// SetupRoutes registers all API routes on the engine.
func SetupRoutes(router *gin.Engine, ctrls *controllers.Controllers) {
	router.Use(middleware.RequestLogger())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		recognition := v1.Group("/recognition")
		{
			recognition.POST("", ctrls.RecognitionController.Create)
			recognition.GET("/received/:studentId", ctrls.RecognitionController.ListReceived)
			recognition.GET("/sent/:studentId", ctrls.RecognitionController.ListSent)
			recognition.GET("/:id", ctrls.RecognitionController.GetByID)
		}

		endorsement := v1.Group("/endorsement")
		{
			endorsement.POST("", ctrls.EndorsementController.Create)
			endorsement.DELETE("/:id", ctrls.EndorsementController.Delete)
			endorsement.GET("/recognition/:recognitionId", ctrls.EndorsementController.ListByRecognition)
			endorsement.GET("/check/:recognitionId/:endorserId", ctrls.EndorsementController.Check)
		}

		redemption := v1.Group("/redemption")
		{
			redemption.POST("", ctrls.RedemptionController.Redeem)
			redemption.GET("/info/:studentId", ctrls.RedemptionController.Info)
			redemption.GET("/history/:studentId", ctrls.RedemptionController.History)
		}

		leaderboard := v1.Group("/leaderboard")
		{
			leaderboard.GET("", ctrls.LeaderboardController.Top)
			leaderboard.GET("/student/:studentId", ctrls.LeaderboardController.StudentRanking)
		}

		admin := v1.Group("/admin")
		{
			admin.POST("/reset/sweep", ctrls.AdminController.SweepResets)
			admin.GET("/reset/stats", ctrls.AdminController.ResetStatistics)
		}
	}
}
