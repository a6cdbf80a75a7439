package errors

import (
	"net/http"

	"github.com/cockroachdb/errors"
)

// ErrorDetail is the error payload embedded in API error responses.
type ErrorDetail struct {
	Message       string                 `json:"message"`
	InternalError string                 `json:"internal_error,omitempty"`
	Details       map[string]interface{} `json:"details,omitempty"`
}

// ErrorResponse is the standard JSON body returned for failed requests.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// NewErrorResponse builds an ErrorResponse from any error. For errors
// produced by the builder the hint becomes the public message; raw causes
// are only exposed for validation errors where they describe caller input.
func NewErrorResponse(err error) *ErrorResponse {
	resp := &ErrorResponse{
		Success: false,
		Error: ErrorDetail{
			Message: "An unexpected error occurred",
		},
	}

	var ie *InternalError
	if errors.As(err, &ie) {
		if ie.Hint() != "" {
			resp.Error.Message = ie.Hint()
		} else {
			resp.Error.Message = ie.Error()
		}
		resp.Error.Details = ie.ReportableDetails()
		if IsValidation(err) {
			resp.Error.InternalError = ie.Error()
		}
		return resp
	}

	if IsValidation(err) {
		resp.Error.Message = err.Error()
	}
	return resp
}

// HTTPStatusFromErr maps marker errors to HTTP status codes.
func HTTPStatusFromErr(err error) int {
	switch {
	case IsValidation(err):
		return http.StatusBadRequest
	case IsNotFound(err):
		return http.StatusNotFound
	case IsAlreadyExists(err):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidOperation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
