package tenantforum

import (
	"errors"
	"fmt"
)

// Error represents a tenantforum library error with categorization.
type Error struct {
	// Code is a machine-readable error code
	Code string

	// Message is a human-readable error message
	Message string

	// Err is the underlying error (if any)
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same code, so wrapped
// lookup failures still match the sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Error codes for tenantforum operations.
const (
	// ErrCodeNoSuchTopic indicates that no topic matched the lookup.
	ErrCodeNoSuchTopic = "NO_SUCH_TOPIC"

	// ErrCodeNoSuchResponse indicates that no response matched the lookup.
	ErrCodeNoSuchResponse = "NO_SUCH_RESPONSE"

	// ErrCodeValidation indicates validation failed.
	ErrCodeValidation = "VALIDATION_ERROR"

	// ErrCodeConfiguration indicates invalid configuration.
	ErrCodeConfiguration = "CONFIGURATION_ERROR"

	// ErrCodeInvalidScope indicates a query was issued without a valid scope.
	ErrCodeInvalidScope = "INVALID_SCOPE"

	// ErrCodeDatabase indicates database operation failed.
	ErrCodeDatabase = "DATABASE_ERROR"
)

// Common errors.
var (
	// ErrNoSuchTopic is returned when a topic does not exist or is not
	// accessible in the requested scope.
	ErrNoSuchTopic = &Error{
		Code:    ErrCodeNoSuchTopic,
		Message: "no such topic",
	}

	// ErrNoSuchResponse is returned when a response does not exist or is not
	// accessible in the requested scope.
	ErrNoSuchResponse = &Error{
		Code:    ErrCodeNoSuchResponse,
		Message: "no such response",
	}

	// ErrInvalidScope is returned when a query is issued with a zero Scope.
	ErrInvalidScope = &Error{
		Code:    ErrCodeInvalidScope,
		Message: "invalid query scope",
	}
)

// NewError creates a new Error with the given code and message.
func NewError(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// NewErrorWithCause creates a new Error wrapping an underlying error.
func NewErrorWithCause(code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     cause,
	}
}

// IsNotFound checks if an error is a topic or response lookup failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNoSuchTopic) || errors.Is(err, ErrNoSuchResponse)
}

// IsValidation checks if an error is a validation failure.
func IsValidation(err error) bool {
	return hasCode(err, ErrCodeValidation)
}

func hasCode(err error, code string) bool {
	var forumErr *Error
	if errors.As(err, &forumErr) {
		return forumErr.Code == code
	}
	return false
}
