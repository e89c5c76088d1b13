package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskudos/backend/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func TestApplyMonthlyReset_FirstEver(t *testing.T) {
	s := &Student{
		StudentID: "STU001",
		Credits:   100,
	}

	carry, applied := s.ApplyMonthlyReset("2024-02")

	assert.True(t, applied)
	assert.Equal(t, 0, carry, "first reset never applies carry-forward beyond stored unused credits")
	assert.Equal(t, 100, s.Credits)
	assert.Equal(t, 100, s.MonthlySendingLimit)
	assert.Equal(t, 0, s.CreditsSentThisMonth)
	assert.Equal(t, 100, s.PreviousMonthUnusedCredits, "balance snapshotted before mutation")
	require.NotNil(t, s.LastResetMonth)
	assert.Equal(t, "2024-02", *s.LastResetMonth)
}

func TestApplyMonthlyReset_IdempotentWithinMonth(t *testing.T) {
	s := &Student{
		StudentID:      "STU001",
		Credits:        73,
		LastResetMonth: strPtr("2024-02"),
	}

	carry, applied := s.ApplyMonthlyReset("2024-02")

	assert.False(t, applied)
	assert.Equal(t, 0, carry)
	assert.Equal(t, 73, s.Credits, "no mutation when the month token matches")
}

func TestApplyMonthlyReset_CarryForwardCapped(t *testing.T) {
	s := &Student{
		StudentID:                  "STU001",
		Credits:                    20,
		PreviousMonthUnusedCredits: 80,
		LastResetMonth:             strPtr("2024-01"),
	}

	carry, applied := s.ApplyMonthlyReset("2024-02")

	assert.True(t, applied)
	assert.Equal(t, 50, carry, "carry-forward is capped at 50, excess is forfeited")
	assert.Equal(t, 150, s.Credits)
	assert.Equal(t, 20, s.PreviousMonthUnusedCredits)
}

func TestApplyMonthlyReset_SnapshotFeedsNextMonth(t *testing.T) {
	s := &Student{
		StudentID:      "STU001",
		Credits:        40,
		LastResetMonth: strPtr("2024-01"),
	}

	_, applied := s.ApplyMonthlyReset("2024-02")
	require.True(t, applied)
	assert.Equal(t, 40, s.PreviousMonthUnusedCredits)
	assert.Equal(t, 100, s.Credits)

	// Spend nothing; next month's carry-forward comes from this snapshot.
	carry, applied := s.ApplyMonthlyReset("2024-03")
	require.True(t, applied)
	assert.Equal(t, 40, carry)
	assert.Equal(t, 140, s.Credits)
}

func TestApplyMonthlyReset_ResetsSendCounter(t *testing.T) {
	s := &Student{
		StudentID:            "STU001",
		Credits:              5,
		CreditsSentThisMonth: 95,
		MonthlySendingLimit:  100,
		LastResetMonth:       strPtr("2024-01"),
	}

	_, applied := s.ApplyMonthlyReset("2024-02")

	require.True(t, applied)
	assert.Equal(t, 0, s.CreditsSentThisMonth)
	assert.Equal(t, 100, s.MonthlySendingLimit)
}

func TestCanSend(t *testing.T) {
	t.Run("sufficient balance within limit", func(t *testing.T) {
		s := &Student{Credits: 100, MonthlySendingLimit: 100, CreditsSentThisMonth: 0}
		assert.NoError(t, s.CanSend(10))
	})

	t.Run("insufficient credits", func(t *testing.T) {
		s := &Student{Credits: 5, MonthlySendingLimit: 100}
		err := s.CanSend(10)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInsufficientCredits)
		assert.Equal(t, "Insufficient credits. Available: 5, Requested: 10", err.Error())
	})

	t.Run("monthly limit exceeded even with sufficient balance", func(t *testing.T) {
		s := &Student{Credits: 100, MonthlySendingLimit: 100, CreditsSentThisMonth: 95}
		err := s.CanSend(10)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrSendingLimitReached)
		assert.Equal(t, "Monthly sending limit exceeded. Limit: 100, Already sent: 95, Requested: 10", err.Error())
	})

	t.Run("exactly at limit is allowed", func(t *testing.T) {
		s := &Student{Credits: 100, MonthlySendingLimit: 100, CreditsSentThisMonth: 90}
		assert.NoError(t, s.CanSend(10))
	})
}

func TestCanRedeem(t *testing.T) {
	t.Run("eligible", func(t *testing.T) {
		s := &Student{Credits: 50, TotalCreditsReceived: 30}
		assert.NoError(t, s.CanRedeem(10))
	})

	t.Run("insufficient balance", func(t *testing.T) {
		s := &Student{Credits: 5, TotalCreditsReceived: 30}
		err := s.CanRedeem(10)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInsufficientCredits)
	})

	t.Run("never received credits", func(t *testing.T) {
		// Initial allocation alone is not redeemable.
		s := &Student{Credits: 100, TotalCreditsReceived: 0}
		err := s.CanRedeem(10)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNoCreditsReceived)
	})
}
