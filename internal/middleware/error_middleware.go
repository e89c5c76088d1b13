package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuskudos/backend/internal/app/models/dto"
	"github.com/campuskudos/backend/internal/pkg/apperrors"
	"github.com/campuskudos/backend/internal/pkg/logger"
)

// productionMode hides raw error messages from clients when set.
var productionMode bool

// SetProductionMode configures whether unexpected errors are reported with
// a generic message. Called once during bootstrap.
func SetProductionMode(enabled bool) {
	productionMode = enabled
}

// HandleAPIError maps application errors to HTTP responses. Every
// controller funnels its service errors through here so the status
// mapping lives in one place.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	// Validation and business-rule violations are client errors.
	case apperrors.Is(err, apperrors.ErrValidationFailed,
		apperrors.ErrBadRequest,
		apperrors.ErrSelfRecognition,
		apperrors.ErrInsufficientCredits,
		apperrors.ErrSendingLimitReached,
		apperrors.ErrNoCreditsReceived,
		apperrors.ErrDuplicateEndorsement,
		apperrors.ErrStudentIDAlreadyExists,
		apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))

	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrStudentNotFound,
		apperrors.ErrSenderNotFound,
		apperrors.ErrReceiverNotFound,
		apperrors.ErrRecognitionNotFound,
		apperrors.ErrEndorsementNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error()))

	default:
		logger.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Unexpected error")

		message := err.Error()
		if productionMode {
			message = "Internal server error"
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(message))
	}
}
