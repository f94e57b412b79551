package errors

import "fmt"

// maxDetailsLen caps stored details so a noisy lower-level error cannot
// blow up log lines or response payloads.
const maxDetailsLen = 2048

// CoreError is the base structured error. Message and Code are set at
// construction and never change; Details is optional free-form diagnostic
// context, already normalized to a plain string.
type CoreError struct {
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Code is a machine-readable error code from the registered set.
	Code ErrorCode `json:"code"`
	// Details contains optional diagnostic context. Empty means absent.
	Details string `json:"details,omitempty"`
}

// Error returns the string representation of the error.
func (e *CoreError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (details: %s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// HTTPStatus returns the HTTP status a renderer should use for this error.
func (e *CoreError) HTTPStatus() int {
	return HTTPStatusForCode(e.Code)
}

// New creates a CoreError with no details. It always succeeds.
func New(message string, code ErrorCode) *CoreError {
	return &CoreError{Message: message, Code: code}
}

// NewWithDetails creates a CoreError carrying diagnostic details.
func NewWithDetails(message string, code ErrorCode, details string) *CoreError {
	return &CoreError{Message: message, Code: code, Details: truncate(details)}
}

// Normalize converts a lower-level failure value into a plain string so it
// can be stored as details. A CoreError must never retain a live reference
// to a foreign error, only its string form.
func Normalize(v any) string {
	switch d := v.(type) {
	case nil:
		return ""
	case string:
		return truncate(d)
	case error:
		return truncate(d.Error())
	case fmt.Stringer:
		return truncate(d.String())
	default:
		return truncate(fmt.Sprintf("%v", d))
	}
}

func truncate(s string) string {
	if len(s) > maxDetailsLen {
		return s[:maxDetailsLen]
	}
	return s
}

// --- Variant Constructors ---
//
// Each variant fixes the message and code for one failure scenario and
// normalizes the caller-supplied context into details.

const clientInitializationMessage = "The client initialization failed."

// ClientInitialization signals that an external client dependency could not
// be constructed. details may be the lower-level error or a plain
// description; it is stringified at the wrap site. The error is terminal
// and descriptive, it does not retry or re-raise the original failure.
func ClientInitialization(details any) *CoreError {
	return NewWithDetails(clientInitializationMessage, ErrCodeClientInitialization, Normalize(details))
}

// ConnectionFailed signals a failed connection to a named service.
func ConnectionFailed(service string, cause any) *CoreError {
	return NewWithDetails(
		fmt.Sprintf("Unable to connect to %s.", service),
		ErrCodeConnectionFailed,
		Normalize(cause),
	)
}

// ServiceUnavailable signals that a named service is temporarily unavailable.
func ServiceUnavailable(service string) *CoreError {
	return New(
		fmt.Sprintf("The %s is temporarily unavailable. Please try again.", service),
		ErrCodeServiceUnavailable,
	)
}

// Timeout signals that an operation took too long.
func Timeout(operation string) *CoreError {
	return NewWithDetails("The request took too long. Please try again.", ErrCodeTimeout, operation)
}

// NotFound signals that a requested resource does not exist.
func NotFound(resource string) *CoreError {
	return New(fmt.Sprintf("The requested %s was not found.", resource), ErrCodeNotFound)
}

// InvalidInput signals that caller-supplied input failed validation.
func InvalidInput(reason string) *CoreError {
	return NewWithDetails("Invalid input.", ErrCodeInvalidInput, reason)
}

// Internal signals an unclassified failure. cause is normalized into details.
func Internal(cause any) *CoreError {
	return NewWithDetails(
		"An unexpected error occurred. Please try again or contact support.",
		ErrCodeInternal,
		Normalize(cause),
	)
}
