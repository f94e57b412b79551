package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestCoreError_New_Success(t *testing.T) {
	err := New("m", ErrCodeInternal)
	if err.Message != "m" {
		t.Errorf("expected message 'm', got %q", err.Message)
	}
	if err.Code != ErrCodeInternal {
		t.Errorf("expected code %s, got %s", ErrCodeInternal, err.Code)
	}
	if err.Details != "" {
		t.Errorf("expected absent details, got %q", err.Details)
	}
}

func TestCoreError_NewWithDetails_Success(t *testing.T) {
	err := NewWithDetails("m", ErrCodeInternal, "x")
	if err.Details != "x" {
		t.Errorf("expected details 'x', got %q", err.Details)
	}
}

func TestCoreError_Error_Format(t *testing.T) {
	err := New("something broke", ErrCodeInternal)
	s := err.Error()
	if !strings.Contains(s, "INTERNAL_ERROR") {
		t.Errorf("expected error string to contain code, got %q", s)
	}
	if !strings.Contains(s, "something broke") {
		t.Errorf("expected error string to contain message, got %q", s)
	}

	withDetails := NewWithDetails("something broke", ErrCodeInternal, "disk full")
	if !strings.Contains(withDetails.Error(), "disk full") {
		t.Errorf("expected error string to contain details, got %q", withDetails.Error())
	}
}

func TestCoreError_ImplementsErrorInterface(t *testing.T) {
	var err error = New("test", ErrCodeNotFound)
	if err.Error() == "" {
		t.Error("Error() should not be empty")
	}

	var coreErr *CoreError
	if !stderrors.As(err, &coreErr) {
		t.Error("stderrors.As should work with CoreError")
	}
}

func TestClientInitialization_StringDetails(t *testing.T) {
	err := ClientInitialization("boom")
	if err.Message != "The client initialization failed." {
		t.Errorf("expected fixed message, got %q", err.Message)
	}
	if err.Code != ErrCodeClientInitialization {
		t.Errorf("expected CLIENT_INITIALIZATION_ERROR, got %s", err.Code)
	}
	if err.Details != "boom" {
		t.Errorf("expected details 'boom', got %q", err.Details)
	}
}

func TestClientInitialization_ErrorDetails(t *testing.T) {
	cause := fmt.Errorf("dial tcp 127.0.0.1:6379: connection refused")
	err := ClientInitialization(cause)
	if err.Details != cause.Error() {
		t.Errorf("expected details %q, got %q", cause.Error(), err.Details)
	}
}

func TestClientInitialization_IsCoreError(t *testing.T) {
	// A variant must be consumable through the base contract alone.
	var err error = ClientInitialization("boom")

	coreErr, ok := AsCoreError(err)
	if !ok {
		t.Fatal("expected ClientInitialization to satisfy the CoreError contract")
	}
	if coreErr.Message == "" || coreErr.Code == "" {
		t.Error("expected message and code to be readable from the base type")
	}
	if coreErr.Details != "boom" {
		t.Errorf("expected details 'boom', got %q", coreErr.Details)
	}
}

func TestClientInitialization_NilDetails(t *testing.T) {
	err := ClientInitialization(nil)
	if err.Details != "" {
		t.Errorf("expected empty details for nil input, got %q", err.Details)
	}
	if err.Code != ErrCodeClientInitialization {
		t.Errorf("expected CLIENT_INITIALIZATION_ERROR, got %s", err.Code)
	}
}

func TestNormalize_Table(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"nil", nil, ""},
		{"string", "plain text", "plain text"},
		{"error", fmt.Errorf("wrapped failure"), "wrapped failure"},
		{"int", 42, "42"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.input); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestNormalize_CapsLength(t *testing.T) {
	long := strings.Repeat("a", maxDetailsLen*2)
	got := Normalize(long)
	if len(got) != maxDetailsLen {
		t.Errorf("expected details capped at %d, got %d", maxDetailsLen, len(got))
	}
}

func TestVariantConstructors_Table(t *testing.T) {
	tests := []struct {
		name   string
		err    *CoreError
		code   ErrorCode
		status int
	}{
		{"ClientInitialization", ClientInitialization("x"), ErrCodeClientInitialization, http.StatusServiceUnavailable},
		{"ConnectionFailed", ConnectionFailed("redis", "refused"), ErrCodeConnectionFailed, http.StatusServiceUnavailable},
		{"ServiceUnavailable", ServiceUnavailable("api"), ErrCodeServiceUnavailable, http.StatusServiceUnavailable},
		{"Timeout", Timeout("query"), ErrCodeTimeout, http.StatusGatewayTimeout},
		{"NotFound", NotFound("user"), ErrCodeNotFound, http.StatusNotFound},
		{"InvalidInput", InvalidInput("bad email"), ErrCodeInvalidInput, http.StatusBadRequest},
		{"Internal", Internal(fmt.Errorf("oops")), ErrCodeInternal, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code != tc.code {
				t.Errorf("expected code %s, got %s", tc.code, tc.err.Code)
			}
			if tc.err.HTTPStatus() != tc.status {
				t.Errorf("expected status %d, got %d", tc.status, tc.err.HTTPStatus())
			}
			if tc.err.Message == "" {
				t.Error("expected non-empty message")
			}
		})
	}
}

func TestErrorCode_Codes_UniqueAndStable(t *testing.T) {
	first := Codes()
	second := Codes()

	if len(first) != len(second) {
		t.Fatalf("enumeration not stable: %d vs %d", len(first), len(second))
	}

	seen := make(map[ErrorCode]bool, len(first))
	for i, c := range first {
		if seen[c] {
			t.Errorf("duplicate code %s", c)
		}
		seen[c] = true
		if second[i] != c {
			t.Errorf("code order changed between enumerations: %s vs %s", c, second[i])
		}
	}
}

func TestErrorCode_Codes_CopyIsIsolated(t *testing.T) {
	codes := Codes()
	codes[0] = "MUTATED"
	if Codes()[0] == "MUTATED" {
		t.Error("mutating the returned slice must not affect the registry")
	}
}

func TestErrorCode_LookupCode_Table(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ErrorCode
		found bool
	}{
		{"client initialization", "CLIENT_INITIALIZATION_ERROR", ErrCodeClientInitialization, true},
		{"internal", "INTERNAL_ERROR", ErrCodeInternal, true},
		{"unknown", "NO_SUCH_CODE", "", false},
		{"empty", "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, found := LookupCode(tc.input)
			if found != tc.found {
				t.Fatalf("expected found=%v, got %v", tc.found, found)
			}
			if got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestHTTPStatusForCode_UnknownDefaultsTo500(t *testing.T) {
	if got := HTTPStatusForCode("NO_SUCH_CODE"); got != http.StatusInternalServerError {
		t.Errorf("expected 500 for unknown code, got %d", got)
	}
}
