package pkg

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// AppError is the single error type crossing layer boundaries.
//
// Repositories, entities and usecases return *AppError (or wrap one);
// handlers map it to the HTTP envelope without ever inspecting message
// text. Code is a stable machine-readable identifier.

type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

const (
	CodeValidation            = "VALIDATION_ERROR"
	CodeEntityNotFound        = "ENTITY_NOT_FOUND"
	CodeBusinessRuleViolation = "BUSINESS_RULE_VIOLATION"
	CodeInternal              = "INTERNAL_ERROR"
)

// NewValidationError reports a field-level input problem (HTTP 400).
func NewValidationError(message string) *AppError {
	return NewDomainErrorSimple(CodeValidation, message, http.StatusBadRequest)
}

// FieldError is a single request-field validation failure.
type FieldError struct {
	Field   string
	Message string
}

// NewValidationErrorFields joins field path + message pairs into one
// validation error, in request-body order.
func NewValidationErrorFields(fields []FieldError) *AppError {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return NewValidationError(strings.Join(parts, "; "))
}

// NewEntityNotFound reports a missing aggregate (HTTP 404).
func NewEntityNotFound(entity, id string) *AppError {
	return NewDomainErrorSimple(CodeEntityNotFound, fmt.Sprintf("%s %q not found", entity, id), http.StatusNotFound)
}

// NewBusinessRuleViolation reports a rejected state transition or a
// broken cross-entity rule (HTTP 409).
func NewBusinessRuleViolation(message string) *AppError {
	return NewDomainErrorSimple(CodeBusinessRuleViolation, message, http.StatusConflict)
}

// AsAppError extracts the AppError from err, wrapping unknown errors as
// INTERNAL_ERROR so handlers always have a status to answer with.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewDomainError(CodeInternal, "An internal error occurred", err, http.StatusInternalServerError)
}

func IsValidation(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == CodeValidation
}

func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == CodeEntityNotFound
}

func IsBusinessRuleViolation(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == CodeBusinessRuleViolation
}

// HTTPError is the JSON envelope returned on every error response.
type HTTPError struct {
	Status string        `json:"status"`
	Error  HTTPErrorBody `json:"error"`
}

type HTTPErrorBody struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{
		Status: "error",
		Error: HTTPErrorBody{
			Code:       e.Code,
			Message:    e.Message,
			StatusCode: e.HTTPStatus,
		},
	}
}
