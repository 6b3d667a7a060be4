package models

import (
	"errors"
	"fmt"
)

// Error codes used across the application. All errors are terminal at
// the action boundary: nothing retries, the user re-triggers the action.
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeDataInconsistency = "DATA_INCONSISTENCY"
	CodeTransport         = "TRANSPORT_ERROR"
	CodeInternal          = "INTERNAL_ERROR"
)

// AppError represents a custom application error.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewValidationError(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

func NewNotFoundError(resource string, id any) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

// NewDataInconsistencyError marks a state where the session points at a
// record that no longer exists; callers must force a logout.
func NewDataInconsistencyError(message string) *AppError {
	return &AppError{Code: CodeDataInconsistency, Message: message}
}

func NewTransportError(message string, err error) *AppError {
	return &AppError{Code: CodeTransport, Message: message, Err: err}
}

func NewInternalError(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: "Internal error", Err: err}
}

// CodeOf returns the application error code for err, or CodeInternal
// for errors that did not originate from this package.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// IsNotFound reports whether err is a NOT_FOUND application error.
func IsNotFound(err error) bool {
	return CodeOf(err) == CodeNotFound
}
