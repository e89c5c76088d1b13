package dto

import "time"

// RedeemRequest is the body of POST /redemption. CreditsToRedeem is a
// pointer so that a missing field and an explicit zero are told apart:
// missing is a required-fields error, zero fails the positive check.
type RedeemRequest struct {
	StudentID       string `json:"studentId" example:"STU001"`
	CreditsToRedeem *int   `json:"creditsToRedeem" example:"20"`
}

// RedemptionReceipt is the result of a successful redemption.
type RedemptionReceipt struct {
	StudentID            string    `json:"studentId" example:"STU001"`
	CreditsRedeemed      int       `json:"creditsRedeemed" example:"20"`
	VoucherValue         int       `json:"voucherValue" example:"100"`
	VoucherValueCurrency string    `json:"voucherValueCurrency" example:"₹100"`
	RemainingCredits     int       `json:"remainingCredits" example:"80"`
	RedeemedAt           time.Time `json:"redeemedAt"`
}

// RedemptionInfo describes a student's current redeemable position.
type RedemptionInfo struct {
	StudentID                      string `json:"studentId" example:"STU001"`
	AvailableCredits               int    `json:"availableCredits" example:"100"`
	ConversionRate                 int    `json:"conversionRate" example:"5"`
	Currency                       string `json:"currency" example:"INR"`
	PotentialVoucherValue          int    `json:"potentialVoucherValue" example:"500"`
	PotentialVoucherValueFormatted string `json:"potentialVoucherValueFormatted" example:"₹500"`
	TotalCreditsReceived           int    `json:"totalCreditsReceived" example:"40"`
}

// RedemptionHistory is the ledger-less placeholder for past redemptions.
// No redemption records are kept; only current balances are reported.
type RedemptionHistory struct {
	StudentID            string `json:"studentId" example:"STU001"`
	CurrentCredits       int    `json:"currentCredits" example:"80"`
	TotalCreditsReceived int    `json:"totalCreditsReceived" example:"40"`
	Note                 string `json:"note"`
}
