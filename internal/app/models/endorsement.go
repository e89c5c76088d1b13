package models

import (
	"time"

	"github.com/google/uuid"
)

// Endorsement is a lightweight "cheer" a student attaches to an existing
// recognition. At most one per (recognition, endorser) pair, enforced by a
// unique constraint. Endorsing one's own recognition is permitted.
type Endorsement struct {
	ID            uuid.UUID `json:"id" db:"id"`
	RecognitionID uuid.UUID `json:"recognitionId" db:"recognition_id"`
	EndorserID    string    `json:"endorserId" db:"endorser_id" example:"STU003"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`

	// Relation (populated when needed)
	Endorser *StudentRef `json:"endorser,omitempty"`
}
