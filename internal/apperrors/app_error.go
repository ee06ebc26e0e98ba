package apperrors

import (
	"errors"
	"fmt"
)

// AppError carries an HTTP-ish status code alongside a message and the wrapped cause.
// Repositories and services return these; handlers map the code to a response status.
type AppError struct {
	Code    int
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

// NewAppError creates an AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound via errors.Is.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// Is allows errors.Is comparisons against the wrapped sentinel.
func (e *AppError) Is(target error) bool {
	return errors.Is(e.Err, target)
}
