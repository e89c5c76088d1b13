package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuskudos/backend/internal/app/models/dto"
)

// LeaderboardRepository derives rank ordering and aggregate counts from
// stored state. Pure reads, no mutation.
type LeaderboardRepository struct {
	db *pgxpool.Pool
}

// NewLeaderboardRepository creates a new LeaderboardRepository
func NewLeaderboardRepository(db *pgxpool.Pool) *LeaderboardRepository {
	return &LeaderboardRepository{db: db}
}

// Top returns the top-N students ordered by total credits received
// descending, student id ascending as the deterministic tie-break.
// Each entry carries the receiver's recognition count and the number of
// endorsements across those recognitions.
func (r *LeaderboardRepository) Top(ctx context.Context, limit int) ([]dto.LeaderboardEntry, error) {
	const query = `
		SELECT s.student_id, s.name, s.total_credits_received,
			(SELECT COUNT(*) FROM recognitions rec WHERE rec.receiver_id = s.student_id) AS recognition_count,
			(SELECT COUNT(*)
				FROM endorsements e
				JOIN recognitions rec ON rec.id = e.recognition_id
				WHERE rec.receiver_id = s.student_id) AS endorsement_count
		FROM students s
		ORDER BY s.total_credits_received DESC, s.student_id ASC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []dto.LeaderboardEntry
	rank := 0
	for rows.Next() {
		rank++
		entry := dto.LeaderboardEntry{Rank: rank}
		if err := rows.Scan(&entry.StudentID, &entry.Name, &entry.TotalCreditsReceived,
			&entry.RecognitionCount, &entry.EndorsementCount); err != nil {
			return nil, fmt.Errorf("error scanning leaderboard row: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// CountAhead returns how many students rank strictly ahead of the given
// position under the leaderboard's total order. A student's rank is this
// count plus one, which by construction agrees with the batch ordering.
func (r *LeaderboardRepository) CountAhead(ctx context.Context, totalCreditsReceived int, studentID string) (int64, error) {
	const query = `
		SELECT COUNT(*) FROM students
		WHERE total_credits_received > $1
		   OR (total_credits_received = $1 AND student_id < $2)`

	var count int64
	if err := r.db.QueryRow(ctx, query, totalCreditsReceived, studentID).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting students ahead: %w", err)
	}

	return count, nil
}

// CountsFor returns the recognition and endorsement counts for a single
// student as receiver.
func (r *LeaderboardRepository) CountsFor(ctx context.Context, studentID string) (recognitions, endorsements int64, err error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM recognitions rec WHERE rec.receiver_id = $1),
			(SELECT COUNT(*)
				FROM endorsements e
				JOIN recognitions rec ON rec.id = e.recognition_id
				WHERE rec.receiver_id = $1)`

	if err := r.db.QueryRow(ctx, query, studentID).Scan(&recognitions, &endorsements); err != nil {
		return 0, 0, fmt.Errorf("error counting recognitions and endorsements: %w", err)
	}

	return recognitions, endorsements, nil
}
