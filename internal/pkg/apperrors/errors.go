package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Student errors
var (
	ErrStudentNotFound        = errors.New("student not found")
	ErrSenderNotFound         = errors.New("sender student not found")
	ErrReceiverNotFound       = errors.New("receiver student not found")
	ErrStudentIDAlreadyExists = errors.New("studentId already exists")
	ErrEmailAlreadyExists     = errors.New("email already exists")
)

// Recognition errors
var (
	ErrRecognitionNotFound = errors.New("recognition not found")
	ErrSelfRecognition     = errors.New("self-recognition is not allowed")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrSendingLimitReached = errors.New("monthly sending limit exceeded")
)

// Endorsement errors
var (
	ErrEndorsementNotFound  = errors.New("endorsement not found")
	ErrDuplicateEndorsement = errors.New("recognition already endorsed")
)

// Redemption errors
var (
	ErrNoCreditsReceived = errors.New("no credits received yet")
)

// CustomError carries a sentinel error together with a human-readable
// message for the client. errors.Is against the sentinel still works
// through Unwrap.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel error.
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewValidationError creates a client-facing validation error (maps to 400).
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewNotFoundError creates a client-facing not-found error (maps to 404).
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// Is returns whether target matches err or any of the errors in errList.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
