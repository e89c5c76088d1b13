package dto

import "github.com/campuskudos/backend/internal/app/models"

// CreateEndorsementRequest is the body of POST /endorsement.
type CreateEndorsementRequest struct {
	RecognitionID string `json:"recognitionId" example:"6f1b0c5e-8a4d-4a6f-9c21-3f9f2a1e7b10"`
	EndorserID    string `json:"endorserId" example:"STU003"`
}

// EndorsementList is the listing for a single recognition.
type EndorsementList struct {
	Endorsements []*models.Endorsement `json:"endorsements"`
	Count        int                   `json:"count" example:"3"`
}

// EndorsementCheck reports whether a student has endorsed a recognition.
type EndorsementCheck struct {
	HasEndorsed bool                `json:"hasEndorsed" example:"true"`
	Endorsement *models.Endorsement `json:"endorsement,omitempty"`
}
