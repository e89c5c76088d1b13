// Package repositories contains the PostgreSQL data access layer.
package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories is a container for all application repositories
type Repositories struct {
	StudentRepository     *StudentRepository
	RecognitionRepository *RecognitionRepository
	EndorsementRepository *EndorsementRepository
	LeaderboardRepository *LeaderboardRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:     NewStudentRepository(db),
		RecognitionRepository: NewRecognitionRepository(db),
		EndorsementRepository: NewEndorsementRepository(db),
		LeaderboardRepository: NewLeaderboardRepository(db),
	}
}
