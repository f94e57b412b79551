package errors

import "net/http"

// ErrorCode is a machine-readable classification for a failure kind.
// Codes are a public contract: once released a code keeps its meaning
// forever. Extending the taxonomy means appending a new code, never
// reassigning an existing one; removal is a breaking change.
type ErrorCode string

// Dependency errors
const (
	// ErrCodeClientInitialization indicates an external client dependency
	// could not be brought into a usable state.
	ErrCodeClientInitialization ErrorCode = "CLIENT_INITIALIZATION_ERROR"
	// ErrCodeConnectionFailed indicates a failed connection to a service.
	ErrCodeConnectionFailed ErrorCode = "CONNECTION_FAILED"
	// ErrCodeServiceUnavailable indicates the service is temporarily unavailable.
	ErrCodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	// ErrCodeTimeout indicates the operation timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
)

// Resource errors
const (
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unclassified internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// allCodes lists every registered code in registration order. Append-only.
var allCodes = []ErrorCode{
	ErrCodeClientInitialization,
	ErrCodeConnectionFailed,
	ErrCodeServiceUnavailable,
	ErrCodeTimeout,
	ErrCodeNotFound,
	ErrCodeInvalidInput,
	ErrCodeInternal,
}

var httpStatusByCode = map[ErrorCode]int{
	ErrCodeClientInitialization: http.StatusServiceUnavailable,
	ErrCodeConnectionFailed:     http.StatusServiceUnavailable,
	ErrCodeServiceUnavailable:   http.StatusServiceUnavailable,
	ErrCodeTimeout:              http.StatusGatewayTimeout,
	ErrCodeNotFound:             http.StatusNotFound,
	ErrCodeInvalidInput:         http.StatusBadRequest,
	ErrCodeInternal:             http.StatusInternalServerError,
}

// Codes returns every registered error code in registration order.
func Codes() []ErrorCode {
	out := make([]ErrorCode, len(allCodes))
	copy(out, allCodes)
	return out
}

// LookupCode resolves a code by its string form. It returns false for
// values outside the registered set.
func LookupCode(name string) (ErrorCode, bool) {
	for _, c := range allCodes {
		if string(c) == name {
			return c, true
		}
	}
	return "", false
}

// HTTPStatusForCode returns the HTTP status a renderer should use for the
// given code. Unknown codes map to 500.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := httpStatusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
