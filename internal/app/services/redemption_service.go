package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/campuskudos/backend/internal/app/models/dto"
	"github.com/campuskudos/backend/internal/app/repositories"
	"github.com/campuskudos/backend/internal/db"
	"github.com/campuskudos/backend/internal/pkg/apperrors"
	"github.com/campuskudos/backend/internal/pkg/credits"
	"github.com/campuskudos/backend/internal/pkg/logger"
)

// RedemptionService converts received credits into voucher value at the
// fixed rupee rate. Redemptions are permanent deductions and leave no
// ledger record.
type RedemptionService struct {
	db       *db.PostgresDB
	students *repositories.StudentRepository
}

// NewRedemptionService creates a new redemption service instance
func NewRedemptionService(database *db.PostgresDB, studentRepo *repositories.StudentRepository) *RedemptionService {
	return &RedemptionService{db: database, students: studentRepo}
}

// Redeem deducts credits from a student's balance and issues the voucher
// value. The balance read, monthly reset, and deduction run in one
// transaction under a row lock.
func (s *RedemptionService) Redeem(ctx context.Context, req dto.RedeemRequest) (*dto.RedemptionReceipt, error) {
	if req.StudentID == "" || req.CreditsToRedeem == nil {
		return nil, apperrors.NewValidationError("studentId and creditsToRedeem are required")
	}

	amount := *req.CreditsToRedeem
	if amount <= 0 {
		return nil, apperrors.NewValidationError("Credits to redeem must be greater than 0")
	}

	month := credits.CurrentMonth()
	var receipt *dto.RedemptionReceipt

	err := s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		student, err := s.students.GetForUpdate(ctx, tx, req.StudentID)
		if err != nil {
			return err
		}

		student.ApplyMonthlyReset(month)

		if err := student.CanRedeem(amount); err != nil {
			return err
		}

		student.Credits -= amount

		if err := s.students.UpdateBalances(ctx, tx, student); err != nil {
			return err
		}

		value := credits.ToRupees(amount)
		receipt = &dto.RedemptionReceipt{
			StudentID:            student.StudentID,
			CreditsRedeemed:      amount,
			VoucherValue:         value,
			VoucherValueCurrency: credits.FormatRupees(value),
			RemainingCredits:     student.Credits,
			RedeemedAt:           time.Now().UTC(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("studentID", req.StudentID).
		Int("credits", amount).
		Int("voucherValue", receipt.VoucherValue).
		Msg("Credits redeemed")

	return receipt, nil
}

// Info returns a student's current redemption position. The lazy monthly
// reset is applied (and persisted) first so the reported balance is the
// one a redemption would actually see.
func (s *RedemptionService) Info(ctx context.Context, studentID string) (*dto.RedemptionInfo, error) {
	var info *dto.RedemptionInfo

	err := s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		student, err := s.students.GetForUpdate(ctx, tx, studentID)
		if err != nil {
			return err
		}

		if _, applied := student.ApplyMonthlyReset(credits.CurrentMonth()); applied {
			if err := s.students.UpdateBalances(ctx, tx, student); err != nil {
				return err
			}
		}

		potential := credits.ToRupees(student.Credits)
		info = &dto.RedemptionInfo{
			StudentID:                      student.StudentID,
			AvailableCredits:               student.Credits,
			ConversionRate:                 credits.CreditToRupeeRate,
			Currency:                       "INR",
			PotentialVoucherValue:          potential,
			PotentialVoucherValueFormatted: credits.FormatRupees(potential),
			TotalCreditsReceived:           student.TotalCreditsReceived,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return info, nil
}

// History reports what redemption history is available: nothing beyond
// current balances, since no redemption ledger is kept.
func (s *RedemptionService) History(ctx context.Context, studentID string) (*dto.RedemptionHistory, error) {
	student, err := s.students.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return &dto.RedemptionHistory{
		StudentID:            student.StudentID,
		CurrentCredits:       student.Credits,
		TotalCreditsReceived: student.TotalCreditsReceived,
		Note:                 "Redemption history is not tracked. Only current balances are available.",
	}, nil
}
