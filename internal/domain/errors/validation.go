package errors

import (
	"net/http"
	"sort"
	"strings"

	"tutorhub/internal/errors"
)

// ValidationError carries a per-field error map. It is the explicit
// error-collector returned from a validation pass: every failed field
// surfaces at once, and the value never outlives its owning request.
type ValidationError struct {
	httpCode  int
	errorCode string
	fields    map[string]string
}

// NewValidationError creates a validation error from a collected field map.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{
		httpCode:  http.StatusBadRequest,
		errorCode: "VALIDATION_FAILED",
		fields:    fields,
	}
}

// NewFieldError creates a single-field error with a specific status and code.
// Used for conflict and credential failures that name one actionable field.
func NewFieldError(httpCode int, errorCode, field, message string) *ValidationError {
	return &ValidationError{
		httpCode:  httpCode,
		errorCode: errorCode,
		fields:    map[string]string{field: message},
	}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.fields))
	for field, msg := range e.fields {
		msgs = append(msgs, field+": "+msg)
	}
	sort.Strings(msgs)

	return strings.Join(msgs, "; ")
}

// WrapMessage wraps the error with additional context message
func (e *ValidationError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return "Request validation failed"
}

// Details returns detailed error information
func (e *ValidationError) Details() string {
	return e.Error()
}

// Fields returns the per-field error map.
func (e *ValidationError) Fields() map[string]string {
	return e.fields
}
