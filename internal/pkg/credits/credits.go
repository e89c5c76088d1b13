// Package credits holds the accounting rules of the recognition economy:
// monthly allocation, carry-forward, sending limits and the credit-to-rupee
// conversion rate. Everything here is pure so the rules can be tested
// without a database.
package credits

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// CreditToRupeeRate is the fixed conversion rate: ₹5 per credit.
	CreditToRupeeRate = 5

	// MonthlyAllocation is the number of credits every student receives
	// at the start of a month, before carry-forward.
	MonthlyAllocation = 100

	// MonthlySendingLimit caps how many credits a student may send per month.
	MonthlySendingLimit = 100

	// MaxCarryForward caps how many unused credits roll into the next month.
	// Anything above the cap is forfeited.
	MaxCarryForward = 50

	// MaxMessageLength caps the optional recognition message.
	MaxMessageLength = 500
)

// ToRupees converts credits to voucher value in rupees.
func ToRupees(credits int) int {
	return credits * CreditToRupeeRate
}

// FormatRupees renders a rupee amount as a currency string, e.g. "₹500".
func FormatRupees(rupees int) string {
	return fmt.Sprintf("₹%d", rupees)
}

// CarryForward returns the portion of unused credits that rolls into the
// next month, capped at MaxCarryForward. Negative input counts as zero.
func CarryForward(unusedCredits int) int {
	if unusedCredits < 0 {
		unusedCredits = 0
	}
	if unusedCredits > MaxCarryForward {
		return MaxCarryForward
	}
	return unusedCredits
}

// NewMonthCredits returns the balance a student starts a new month with.
func NewMonthCredits(unusedCredits int) int {
	return MonthlyAllocation + CarryForward(unusedCredits)
}

// MonthToken formats a point in time as an accounting month token (YYYY-MM).
func MonthToken(t time.Time) string {
	return t.Format("2006-01")
}

// CurrentMonth returns the month token for the current wall-clock time.
func CurrentMonth() string {
	return MonthToken(time.Now())
}

var monthTokenPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// IsValidMonthToken reports whether s is a well-formed month token.
func IsValidMonthToken(s string) bool {
	if !monthTokenPattern.MatchString(s) {
		return false
	}
	parts := strings.SplitN(s, "-", 2)
	year, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	return year > 0 && month >= 1 && month <= 12
}
