package errors

import (
	stderrors "errors"
)

// ErrorResponse is the JSON envelope returned to clients.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody contains the error fields sent to clients. A renderer needs
// only these three fields, regardless of which variant produced the error.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// ToResponse converts a CoreError to an ErrorResponse for JSON serialization.
func (e *CoreError) ToResponse() ErrorResponse {
	return ErrorResponse{
		Error: ErrorBody{
			Code:    e.Code,
			Message: e.Message,
			Details: e.Details,
		},
	}
}

// IsCoreError checks if an error is a CoreError.
func IsCoreError(err error) bool {
	var coreErr *CoreError
	return stderrors.As(err, &coreErr)
}

// AsCoreError converts an error to a CoreError if possible.
func AsCoreError(err error) (*CoreError, bool) {
	var coreErr *CoreError
	if stderrors.As(err, &coreErr) {
		return coreErr, true
	}
	return nil, false
}
