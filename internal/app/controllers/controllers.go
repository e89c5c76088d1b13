// Package controllers contains the HTTP request handlers.
package controllers

import (
	"github.com/campuskudos/backend/internal/app/services"
)

// Controllers is a container for all application controllers
type Controllers struct {
	RecognitionController *RecognitionController
	EndorsementController *EndorsementController
	RedemptionController  *RedemptionController
	LeaderboardController *LeaderboardController
	AdminController       *AdminController
}

// NewControllers creates all controllers over the shared services
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		RecognitionController: NewRecognitionController(svcs.RecognitionService),
		EndorsementController: NewEndorsementController(svcs.EndorsementService),
		RedemptionController:  NewRedemptionController(svcs.RedemptionService),
		LeaderboardController: NewLeaderboardController(svcs.LeaderboardService),
		AdminController:       NewAdminController(svcs.ResetService),
	}
}
