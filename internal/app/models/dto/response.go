package dto

// Response is the standard API envelope. Success responses carry
// {success:true, message, data}; error responses carry
// {success:false, message, errors?}.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message,omitempty" example:"Operation completed successfully"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// NewSuccessResponse creates a standard success envelope.
func NewSuccessResponse(data interface{}, message string) Response {
	return Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse creates a standard error envelope.
func NewErrorResponse(message string) Response {
	return Response{
		Success: false,
		Message: message,
	}
}

// NewValidationErrorResponse creates an error envelope carrying per-field
// validation details.
func NewValidationErrorResponse(message string, errs interface{}) Response {
	return Response{
		Success: false,
		Message: message,
		Errors:  errs,
	}
}

// PaginationInfo is the metadata block attached to paginated lists.
type PaginationInfo struct {
	Total       int64 `json:"total" example:"42"`
	Limit       int   `json:"limit" example:"50"`
	Offset      int   `json:"offset" example:"0"`
	HasMore     bool  `json:"hasMore" example:"false"`
	TotalPages  int   `json:"totalPages" example:"1"`
	CurrentPage int   `json:"currentPage" example:"1"`
}
