package services

import (
	"context"
	"errors"
	"math"

	"github.com/jackc/pgx/v5"

	"github.com/campuskudos/backend/internal/app/models/dto"
	"github.com/campuskudos/backend/internal/app/repositories"
	"github.com/campuskudos/backend/internal/db"
	"github.com/campuskudos/backend/internal/pkg/apperrors"
	"github.com/campuskudos/backend/internal/pkg/credits"
	"github.com/campuskudos/backend/internal/pkg/logger"
)

// ResetService runs the administrative batch monthly reset and reports
// reset statistics. The lazy per-request reset remains the correctness
// mechanism; the sweep only brings idle accounts up to date.
type ResetService struct {
	db       *db.PostgresDB
	students *repositories.StudentRepository
}

// NewResetService creates a new reset service instance
func NewResetService(database *db.PostgresDB, studentRepo *repositories.StudentRepository) *ResetService {
	return &ResetService{db: database, students: studentRepo}
}

// SweepAll resets every account whose last reset month is stale. Each
// account is handled in its own short transaction under a row lock, so a
// concurrent lazy reset of the same account is not double-counted: the
// model method reports applied=false and the sweep skips it.
func (s *ResetService) SweepAll(ctx context.Context) (*dto.SweepResult, error) {
	month := credits.CurrentMonth()

	ids, err := s.students.ListStaleResetIDs(ctx, month)
	if err != nil {
		return nil, err
	}

	result := &dto.SweepResult{CurrentMonth: month}
	for _, id := range ids {
		err := s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
			student, err := s.students.GetForUpdate(ctx, tx, id)
			if err != nil {
				return err
			}

			carry, applied := student.ApplyMonthlyReset(month)
			if !applied {
				return nil
			}

			if err := s.students.UpdateBalances(ctx, tx, student); err != nil {
				return err
			}

			result.ResetCount++
			result.TotalCarryForward += carry
			return nil
		})
		if err != nil {
			// An account deleted between the listing and the lock is not
			// an error for the sweep.
			if errors.Is(err, apperrors.ErrStudentNotFound) {
				continue
			}
			return nil, err
		}
	}

	logger.Info().
		Str("month", month).
		Int("resetCount", result.ResetCount).
		Int("totalCarryForward", result.TotalCarryForward).
		Msg("Monthly reset sweep completed")

	return result, nil
}

// Statistics reports the reset state of the whole population for the
// current month.
func (s *ResetService) Statistics(ctx context.Context) (*dto.ResetStatistics, error) {
	month := credits.CurrentMonth()

	total, err := s.students.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	needingReset, err := s.students.CountNeedingReset(ctx, month)
	if err != nil {
		return nil, err
	}

	withCarry, aboveCap, err := s.students.CountWithCarryForward(ctx, credits.MaxCarryForward)
	if err != nil {
		return nil, err
	}

	percentage := float64(100)
	if total > 0 {
		percentage = float64(total-needingReset) / float64(total) * 100
		percentage = math.Round(percentage*100) / 100
	}

	return &dto.ResetStatistics{
		CurrentMonth:                month,
		TotalStudents:               total,
		StudentsNeedingReset:        needingReset,
		StudentsWithCarryForward:    withCarry,
		StudentsWithMaxCarryForward: aboveCap,
		ResetPercentage:             percentage,
	}, nil
}
