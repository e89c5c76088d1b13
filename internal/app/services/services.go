// Package services contains the application's business logic layer.
package services

import (
	"github.com/campuskudos/backend/internal/app/repositories"
	"github.com/campuskudos/backend/internal/db"
	"github.com/campuskudos/backend/internal/pkg/cache"
)

// Services is a container for all application services
type Services struct {
	RecognitionService *RecognitionService
	EndorsementService *EndorsementService
	RedemptionService  *RedemptionService
	LeaderboardService *LeaderboardService
	ResetService       *ResetService
}

// NewServices creates all services over the shared repositories. The
// leaderboard cache may be nil when Redis is not configured.
func NewServices(database *db.PostgresDB, repos *repositories.Repositories, leaderboardCache *cache.LeaderboardCache) *Services {
	return &Services{
		RecognitionService: NewRecognitionService(database, repos.StudentRepository, repos.RecognitionRepository, leaderboardCache),
		EndorsementService: NewEndorsementService(repos.EndorsementRepository, repos.RecognitionRepository, repos.StudentRepository, leaderboardCache),
		RedemptionService:  NewRedemptionService(database, repos.StudentRepository),
		LeaderboardService: NewLeaderboardService(repos.LeaderboardRepository, repos.StudentRepository, leaderboardCache),
		ResetService:       NewResetService(database, repos.StudentRepository),
	}
}
