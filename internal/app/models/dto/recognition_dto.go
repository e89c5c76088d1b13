package dto

import "github.com/campuskudos/backend/internal/app/models"

// CreateRecognitionRequest is the body of POST /recognition.
// Field presence is validated in the service so the error messages and
// their ordering stay exact; a zero credits value counts as missing.
type CreateRecognitionRequest struct {
	SenderID   string `json:"senderId" example:"STU001"`
	ReceiverID string `json:"receiverId" example:"STU002"`
	Credits    int    `json:"credits" example:"10"`
	Message    string `json:"message,omitempty" example:"Great work!"`
}

// RecognitionResult is the payload returned by a successful transfer:
// the created recognition plus both post-transfer balances.
type RecognitionResult struct {
	Recognition     *models.Recognition `json:"recognition"`
	SenderBalance   int                 `json:"senderBalance" example:"90"`
	ReceiverBalance int                 `json:"receiverBalance" example:"110"`
}

// RecognitionList is a paginated recognition listing.
type RecognitionList struct {
	Recognitions []*models.Recognition `json:"recognitions"`
	Pagination   PaginationInfo        `json:"pagination"`
}
