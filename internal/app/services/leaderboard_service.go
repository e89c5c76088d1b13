package services

import (
	"context"

	"github.com/campuskudos/backend/internal/app/models/dto"
	"github.com/campuskudos/backend/internal/app/repositories"
	"github.com/campuskudos/backend/internal/pkg/cache"
)

// LeaderboardService computes rank ordering over lifetime credits
// received. Read-only; ranks are derived, never stored.
type LeaderboardService struct {
	leaderboard *repositories.LeaderboardRepository
	students    *repositories.StudentRepository
	cache       *cache.LeaderboardCache
}

// NewLeaderboardService creates a new leaderboard service instance
func NewLeaderboardService(
	leaderboardRepo *repositories.LeaderboardRepository,
	studentRepo *repositories.StudentRepository,
	leaderboardCache *cache.LeaderboardCache,
) *LeaderboardService {
	return &LeaderboardService{
		leaderboard: leaderboardRepo,
		students:    studentRepo,
		cache:       leaderboardCache,
	}
}

// Top returns the top-N students by total credits received, ties broken by
// ascending student id. Served from the cache when fresh.
func (s *LeaderboardService) Top(ctx context.Context, limit int) (*dto.Leaderboard, error) {
	if entries, ok := s.cache.GetTop(ctx, limit); ok {
		return &dto.Leaderboard{Leaderboard: entries, Limit: limit, Total: len(entries)}, nil
	}

	entries, err := s.leaderboard.Top(ctx, limit)
	if err != nil {
		return nil, err
	}

	s.cache.SetTop(ctx, limit, entries)

	return &dto.Leaderboard{Leaderboard: entries, Limit: limit, Total: len(entries)}, nil
}

// StudentRanking returns one student's rank under the same total order the
// batch listing uses: rank = 1 + number of students strictly ahead. Always
// computed from the database so a student sees their position move
// immediately after a transfer.
func (s *LeaderboardService) StudentRanking(ctx context.Context, studentID string) (*dto.LeaderboardEntry, error) {
	student, err := s.students.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	ahead, err := s.leaderboard.CountAhead(ctx, student.TotalCreditsReceived, student.StudentID)
	if err != nil {
		return nil, err
	}

	recognitions, endorsements, err := s.leaderboard.CountsFor(ctx, student.StudentID)
	if err != nil {
		return nil, err
	}

	return &dto.LeaderboardEntry{
		Rank:                 int(ahead) + 1,
		StudentID:            student.StudentID,
		Name:                 student.Name,
		TotalCreditsReceived: student.TotalCreditsReceived,
		RecognitionCount:     int(recognitions),
		EndorsementCount:     int(endorsements),
	}, nil
}
