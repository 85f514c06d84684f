package pkg

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("conditional check failed")
	err := NewDomainError(CodeInternal, "save failed", cause, http.StatusInternalServerError)

	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause to survive errors.Is")
	}
	if err.Error() != "INTERNAL_ERROR: save failed: conditional check failed" {
		t.Fatalf("unexpected message: %q", err.Error())
	}

	simple := NewValidationError("user.name: must have at least 2 characters")
	if simple.Error() != "VALIDATION_ERROR: user.name: must have at least 2 characters" {
		t.Fatalf("unexpected message: %q", simple.Error())
	}
}

func TestNewValidationErrorFields(t *testing.T) {
	err := NewValidationErrorFields([]FieldError{
		{Field: "phone", Message: "cannot be empty"},
		{Field: "name", Message: "must have at least 2 characters"},
	})
	if !IsValidation(err) {
		t.Fatalf("expected a validation error, got %v", err)
	}
	if err.Message != "phone: cannot be empty; name: must have at least 2 characters" {
		t.Fatalf("unexpected message: %q", err.Message)
	}
	if err.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", err.HTTPStatus)
	}
}

func TestErrorPredicates(t *testing.T) {
	notFound := NewEntityNotFound("apartment", "APT-101")
	if !IsNotFound(notFound) || IsValidation(notFound) || IsBusinessRuleViolation(notFound) {
		t.Fatalf("unexpected predicate results for %v", notFound)
	}
	if notFound.Message != `apartment "APT-101" not found` {
		t.Fatalf("unexpected message: %q", notFound.Message)
	}

	violation := NewBusinessRuleViolation("contract is not active")
	if !IsBusinessRuleViolation(violation) || violation.HTTPStatus != http.StatusConflict {
		t.Fatalf("unexpected violation mapping: %+v", violation)
	}

	// predicates must see through wrapping
	wrapped := fmt.Errorf("loading payment: %w", notFound)
	if !IsNotFound(wrapped) {
		t.Fatalf("expected IsNotFound to unwrap, got false for %v", wrapped)
	}
}

func TestAsAppError(t *testing.T) {
	appErr := NewBusinessRuleViolation("apartment is not available")
	if got := AsAppError(fmt.Errorf("creating contract: %w", appErr)); got.Code != CodeBusinessRuleViolation {
		t.Fatalf("expected wrapped app error to be recovered, got %+v", got)
	}

	plain := errors.New("dial tcp: connection refused")
	got := AsAppError(plain)
	if got.Code != CodeInternal || got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal fallback, got %+v", got)
	}
	if !errors.Is(got, plain) {
		t.Fatalf("expected fallback to keep the cause")
	}
}

func TestToHTTPError(t *testing.T) {
	env := NewEntityNotFound("user", "+5511912345678").ToHTTPError()
	if env.Status != "error" {
		t.Fatalf("unexpected status: %q", env.Status)
	}
	if env.Error.Code != CodeEntityNotFound || env.Error.StatusCode != http.StatusNotFound {
		t.Fatalf("unexpected body: %+v", env.Error)
	}
}
