package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskudos/backend/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/recognition", nil)

	HandleAPIError(c, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation error is a 400",
			err:        apperrors.NewValidationError("senderId, receiverId, and credits are required"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "senderId, receiverId, and credits are required",
		},
		{
			name:       "insufficient credits is a 400",
			err:        apperrors.NewCustomError(apperrors.ErrInsufficientCredits, "Insufficient credits. Available: 5, Requested: 10"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Insufficient credits. Available: 5, Requested: 10",
		},
		{
			name:       "sending limit is a 400",
			err:        apperrors.ErrSendingLimitReached,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "monthly sending limit exceeded",
		},
		{
			name:       "self recognition is a 400",
			err:        apperrors.NewCustomError(apperrors.ErrSelfRecognition, "Self-recognition is not allowed"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Self-recognition is not allowed",
		},
		{
			name:       "duplicate endorsement is a 400",
			err:        apperrors.NewCustomError(apperrors.ErrDuplicateEndorsement, "You have already endorsed this recognition"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "You have already endorsed this recognition",
		},
		{
			name:       "missing sender is a 404",
			err:        apperrors.NewCustomError(apperrors.ErrSenderNotFound, "Sender student not found"),
			wantStatus: http.StatusNotFound,
			wantMsg:    "Sender student not found",
		},
		{
			name:       "missing recognition is a 404",
			err:        apperrors.ErrRecognitionNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    "recognition not found",
		},
		{
			name:       "missing endorsement is a 404",
			err:        apperrors.ErrEndorsementNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    "endorsement not found",
		},
		{
			name:       "unexpected error is a 500",
			err:        errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := handleError(t, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantMsg, body["message"])
		})
	}
}

func TestHandleAPIErrorProductionModeHidesInternals(t *testing.T) {
	SetProductionMode(true)
	defer SetProductionMode(false)

	w, body := handleError(t, errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", body["message"])

	// Client errors keep their message even in production.
	w, body = handleError(t, apperrors.NewValidationError("Credits must be greater than 0"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Credits must be greater than 0", body["message"])
}
