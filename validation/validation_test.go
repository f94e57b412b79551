package validation

import (
	"strings"
	"testing"

	"github.com/skillsenselab/pulse/errors"
)

type sampleConfig struct {
	Name        string `yaml:"name" validate:"required"`
	Environment string `yaml:"environment" validate:"omitempty,oneof=development staging production"`
}

func TestValidate_Success(t *testing.T) {
	cfg := sampleConfig{Name: "svc", Environment: "production"}
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MissingRequired(t *testing.T) {
	err := Validate(sampleConfig{Environment: "staging"})
	if err == nil {
		t.Fatal("expected error for missing name")
	}

	coreErr, ok := errors.AsCoreError(err)
	if !ok {
		t.Fatal("expected an INVALID_INPUT CoreError")
	}
	if coreErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", coreErr.Code)
	}
	if !strings.Contains(coreErr.Details, "name is required") {
		t.Errorf("expected details naming the field, got %q", coreErr.Details)
	}
}

func TestValidate_OneOf(t *testing.T) {
	err := Validate(sampleConfig{Name: "svc", Environment: "bogus"})
	if err == nil {
		t.Fatal("expected error for invalid environment")
	}

	coreErr, _ := errors.AsCoreError(err)
	if coreErr == nil || !strings.Contains(coreErr.Details, "environment must be one of") {
		t.Errorf("expected oneof detail, got %v", err)
	}
}

func TestValidate_MultipleFailuresJoined(t *testing.T) {
	err := Validate(sampleConfig{Environment: "bogus"})
	if err == nil {
		t.Fatal("expected error")
	}

	coreErr, _ := errors.AsCoreError(err)
	if coreErr == nil {
		t.Fatal("expected CoreError")
	}
	if !strings.Contains(coreErr.Details, ";") {
		t.Errorf("expected joined field messages, got %q", coreErr.Details)
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Name", "name"},
		{"MaxBodySize", "max_body_size"},
		{"already_snake", "already_snake"},
	}
	for _, tc := range tests {
		if got := toSnakeCase(tc.in); got != tc.want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
