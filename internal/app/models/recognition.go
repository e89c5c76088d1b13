package models

import (
	"time"

	"github.com/google/uuid"
)

// Recognition is a one-way credit gift from sender to receiver with an
// optional note. Immutable once created.
type Recognition struct {
	ID               uuid.UUID `json:"id" db:"id"`
	SenderID         string    `json:"senderId" db:"sender_id" example:"STU001"`
	ReceiverID       string    `json:"receiverId" db:"receiver_id" example:"STU002"`
	Credits          int       `json:"credits" db:"credits" example:"10"`
	Message          string    `json:"message" db:"message" example:"Great work!"`
	RecognitionMonth string    `json:"recognitionMonth" db:"recognition_month" example:"2024-01"` // Accounting month this was recognized in
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Sender   *StudentRef `json:"sender,omitempty"`
	Receiver *StudentRef `json:"receiver,omitempty"`
}

// StudentRef is the lightweight student reference attached to enriched
// recognition and endorsement listings.
type StudentRef struct {
	StudentID string `json:"studentId"`
	Name      string `json:"name"`
}
