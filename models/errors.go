package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the failures the engine can return across its API
// boundary. Handlers map kinds to HTTP status codes; services never panic
// across the boundary.
type ErrorKind string

const (
	ErrorKindValidation  ErrorKind = "validation"  // Malformed client input, never retried
	ErrorKindNotFound    ErrorKind = "not_found"   // Unknown token or question number
	ErrorKindState       ErrorKind = "state"       // Operation not allowed in the session's current status
	ErrorKindConflict    ErrorKind = "conflict"    // Concurrent same-token update collision, safe to retry once
	ErrorKindPersistence ErrorKind = "persistence" // I/O failure against the session store
)

// AppError is a typed failure with a client-renderable message. The
// wrapped cause, if any, is for logs only.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// NewValidationError reports malformed client input.
func NewValidationError(format string, args ...interface{}) *AppError {
	return &AppError{Kind: ErrorKindValidation, Message: fmt.Sprintf(format, args...)}
}

// NewNotFoundError reports an unknown token or question.
func NewNotFoundError(format string, args ...interface{}) *AppError {
	return &AppError{Kind: ErrorKindNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewStateError reports an operation rejected by the session lifecycle.
func NewStateError(format string, args ...interface{}) *AppError {
	return &AppError{Kind: ErrorKindState, Message: fmt.Sprintf(format, args...)}
}

// NewConflictError reports a concurrent-update collision.
func NewConflictError(message string, cause error) *AppError {
	return &AppError{Kind: ErrorKindConflict, Message: message, Err: cause}
}

// NewPersistenceError wraps a session-store I/O failure.
func NewPersistenceError(message string, cause error) *AppError {
	return &AppError{Kind: ErrorKindPersistence, Message: message, Err: cause}
}

// KindOf extracts the ErrorKind of err, or "" if err is not an AppError.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
