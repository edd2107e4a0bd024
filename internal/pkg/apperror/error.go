// Package apperror provides the structured error type shared by the registry.
// Callers branch on the error kind with errors.Is against the exported sentinels.
package apperror

import (
	"errors"
	"fmt"
)

// Error codes
const (
	CodeNotFound        = "NOT_FOUND"
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeInvalidState    = "INVALID_STATE"
	CodeConflict        = "CONFLICT"
)

// Sentinels for errors.Is. They match any AppError carrying the same code.
var (
	ErrNotFound        = &AppError{Code: CodeNotFound}
	ErrInvalidArgument = &AppError{Code: CodeInvalidArgument}
	ErrInvalidState    = &AppError{Code: CodeInvalidState}
	ErrConflict        = &AppError{Code: CodeConflict}
)

// AppError is the standard error type of the module.
type AppError struct {
	// Code is a machine-readable error identifier
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Details contains additional context (ids, field errors)
	Details map[string]any `json:"details,omitempty"`

	// Err is the underlying error
	Err error `json:"-"`
}

// Error implements error interface
func (e *AppError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "unspecified"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError with the same code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithDetail adds a key-value pair to error details
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

// --- Factory functions ---

// NewNotFound creates a not found error for the given entity and id.
func NewNotFound(entity string, id any) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s %v not found", entity, id),
		Details: map[string]any{"entity": entity, "id": id},
	}
}

// NewInvalidArgument creates an invalid argument error.
func NewInvalidArgument(message string) *AppError {
	return &AppError{
		Code:    CodeInvalidArgument,
		Message: message,
	}
}

// NewInvalidState creates an illegal lifecycle transition error.
func NewInvalidState(message string) *AppError {
	return &AppError{
		Code:    CodeInvalidState,
		Message: message,
	}
}

// NewConflict creates a conflict error.
func NewConflict(message string) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Message: message,
	}
}

// Code returns the code of the first AppError in err's chain, or "" if there is none.
func Code(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
