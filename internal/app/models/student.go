package models

import (
	"fmt"
	"time"

	"github.com/campuskudos/backend/internal/pkg/apperrors"
	"github.com/campuskudos/backend/internal/pkg/credits"
)

// Student defines a student account in the credits economy, based on the
// 'students' table. Students are keyed by their business studentId, not by
// the surrogate primary key.
type Student struct {
	ID                         int64     `json:"-" db:"id"`
	StudentID                  string    `json:"studentId" db:"student_id" example:"STU001"`
	Name                       string    `json:"name" db:"name" example:"Aisha Verma"`
	Email                      string    `json:"email" db:"email" example:"aisha@campus.edu"`
	Credits                    int       `json:"credits" db:"credits" example:"100"`                // Current spendable/receivable balance
	MonthlySendingLimit        int       `json:"monthlySendingLimit" db:"monthly_sending_limit"`    // Per-month cap on outgoing credits
	CreditsSentThisMonth       int       `json:"creditsSentThisMonth" db:"credits_sent_this_month"` // Counter against the sending limit
	TotalCreditsReceived       int       `json:"totalCreditsReceived" db:"total_credits_received"`  // Lifetime, never reset; leaderboard basis
	LastResetMonth             *string   `json:"lastResetMonth,omitempty" db:"last_reset_month"`    // Month token of the last applied reset
	PreviousMonthUnusedCredits int       `json:"previousMonthUnusedCredits" db:"previous_month_unused_credits"`
	CreatedAt                  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt                  time.Time `json:"updatedAt" db:"updated_at"`
}

// ApplyMonthlyReset rolls the account into the given month if it has not been
// reset for it yet. The current balance is snapshotted BEFORE mutation; it
// becomes the input to the next month's carry-forward. Returns the
// carry-forward applied and whether any mutation happened. Calling it again
// with the same month token is a no-op.
func (s *Student) ApplyMonthlyReset(month string) (carryForward int, applied bool) {
	if s.LastResetMonth != nil && *s.LastResetMonth == month {
		return 0, false
	}

	carryForward = credits.CarryForward(s.PreviousMonthUnusedCredits)
	previousUnused := s.Credits

	s.Credits = credits.MonthlyAllocation + carryForward
	s.MonthlySendingLimit = credits.MonthlySendingLimit
	s.CreditsSentThisMonth = 0
	s.PreviousMonthUnusedCredits = previousUnused
	s.LastResetMonth = &month

	return carryForward, true
}

// CanSend checks whether the student may send the given amount: first the
// available balance, then the monthly sending limit. The returned errors
// echo the figures the client needs.
func (s *Student) CanSend(amount int) error {
	if s.Credits < amount {
		return apperrors.NewCustomError(apperrors.ErrInsufficientCredits,
			fmt.Sprintf("Insufficient credits. Available: %d, Requested: %d", s.Credits, amount))
	}

	if s.CreditsSentThisMonth+amount > s.MonthlySendingLimit {
		return apperrors.NewCustomError(apperrors.ErrSendingLimitReached,
			fmt.Sprintf("Monthly sending limit exceeded. Limit: %d, Already sent: %d, Requested: %d",
				s.MonthlySendingLimit, s.CreditsSentThisMonth, amount))
	}

	return nil
}

// CanRedeem checks redemption eligibility. The lifetime-received gate is
// independent of the current balance: a student who has never received
// credits cannot redeem the initial allocation.
func (s *Student) CanRedeem(amount int) error {
	if s.Credits < amount {
		return apperrors.NewCustomError(apperrors.ErrInsufficientCredits,
			fmt.Sprintf("Insufficient credits. Available: %d, Requested: %d", s.Credits, amount))
	}

	if s.TotalCreditsReceived == 0 {
		return apperrors.NewCustomError(apperrors.ErrNoCreditsReceived,
			"You can only redeem credits you have received. You have not received any credits yet.")
	}

	return nil
}
