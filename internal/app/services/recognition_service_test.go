package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskudos/backend/internal/pkg/apperrors"
)

func TestValidateTransferRequest(t *testing.T) {
	tests := []struct {
		name       string
		senderID   string
		receiverID string
		credits    int
		message    string
		wantErr    error
		wantMsg    string
	}{
		{
			name:       "valid request",
			senderID:   "STU001",
			receiverID: "STU002",
			credits:    10,
		},
		{
			name:       "missing sender",
			receiverID: "STU002",
			credits:    10,
			wantErr:    apperrors.ErrValidationFailed,
			wantMsg:    "senderId, receiverId, and credits are required",
		},
		{
			name:     "missing receiver",
			senderID: "STU001",
			credits:  10,
			wantErr:  apperrors.ErrValidationFailed,
			wantMsg:  "senderId, receiverId, and credits are required",
		},
		{
			name:       "zero credits counts as missing",
			senderID:   "STU001",
			receiverID: "STU002",
			credits:    0,
			wantErr:    apperrors.ErrValidationFailed,
			wantMsg:    "senderId, receiverId, and credits are required",
		},
		{
			name:       "negative credits",
			senderID:   "STU001",
			receiverID: "STU002",
			credits:    -5,
			wantErr:    apperrors.ErrValidationFailed,
			wantMsg:    "Credits must be greater than 0",
		},
		{
			name:       "message too long",
			senderID:   "STU001",
			receiverID: "STU002",
			credits:    10,
			message:    strings.Repeat("a", 501),
			wantErr:    apperrors.ErrValidationFailed,
			wantMsg:    "Message cannot exceed 500 characters",
		},
		{
			name:       "message at the limit is fine",
			senderID:   "STU001",
			receiverID: "STU002",
			credits:    10,
			message:    strings.Repeat("a", 500),
		},
		{
			name:       "self recognition",
			senderID:   "STU001",
			receiverID: "STU001",
			credits:    10,
			wantErr:    apperrors.ErrSelfRecognition,
			wantMsg:    "Self-recognition is not allowed",
		},
		{
			// The required-fields check runs before the self check, so a
			// zero-credit self transfer reports the missing field.
			name:       "required fields checked before self check",
			senderID:   "STU001",
			receiverID: "STU001",
			credits:    0,
			wantErr:    apperrors.ErrValidationFailed,
			wantMsg:    "senderId, receiverId, and credits are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTransferRequest(tt.senderID, tt.receiverID, tt.credits, tt.message)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}
