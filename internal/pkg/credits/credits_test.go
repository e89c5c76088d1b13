package credits

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCarryForward(t *testing.T) {
	tests := []struct {
		name   string
		unused int
		want   int
	}{
		{"zero unused", 0, 0},
		{"below cap", 30, 30},
		{"exactly at cap", 50, 50},
		{"above cap is forfeited", 80, 50},
		{"far above cap", 1000, 50},
		{"negative treated as zero", -10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CarryForward(tt.unused))
		})
	}
}

func TestNewMonthCredits(t *testing.T) {
	assert.Equal(t, 100, NewMonthCredits(0))
	assert.Equal(t, 130, NewMonthCredits(30))
	assert.Equal(t, 150, NewMonthCredits(50))
	// Carry-forward above the cap never accumulates.
	assert.Equal(t, 150, NewMonthCredits(80))
}

func TestToRupees(t *testing.T) {
	assert.Equal(t, 5, ToRupees(1))
	assert.Equal(t, 50, ToRupees(10))
	assert.Equal(t, 500, ToRupees(100))
	assert.Equal(t, 0, ToRupees(0))
}

func TestFormatRupees(t *testing.T) {
	assert.Equal(t, "₹500", FormatRupees(500))
	assert.Equal(t, "₹0", FormatRupees(0))
}

func TestMonthToken(t *testing.T) {
	jan := time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-01", MonthToken(jan))

	dec := time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, "2025-12", MonthToken(dec))
}

func TestIsValidMonthToken(t *testing.T) {
	valid := []string{"2024-01", "2024-12", "1999-06"}
	for _, s := range valid {
		assert.True(t, IsValidMonthToken(s), s)
	}

	invalid := []string{"", "2024-13", "2024-00", "2024-1", "24-01", "2024/01", "abcd-ef"}
	for _, s := range invalid {
		assert.False(t, IsValidMonthToken(s), s)
	}
}
