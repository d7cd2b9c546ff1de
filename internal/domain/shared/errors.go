package shared

import (
	"errors"
	"fmt"
)

// Domain error codes. Every error that crosses a service boundary is one of
// these kinds or is treated as unexpected.
const (
	CodeInvalidInput = "INVALID_INPUT"
	CodeNotFound     = "NOT_FOUND"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target is a DomainError of the same kind, so that
// errors.Is(err, ErrNotFound) matches any not-found error regardless of message.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewInvalidInputError creates an InvalidInput error with a formatted message
func NewInvalidInputError(format string, args ...any) *DomainError {
	return NewDomainError(CodeInvalidInput, fmt.Sprintf(format, args...))
}

// NewNotFoundError creates a NotFound error with a formatted message
func NewNotFoundError(format string, args ...any) *DomainError {
	return NewDomainError(CodeNotFound, fmt.Sprintf(format, args...))
}

// Common domain errors
var (
	ErrNotFound     = NewDomainError(CodeNotFound, "Resource not found")
	ErrInvalidInput = NewDomainError(CodeInvalidInput, "Invalid input provided")

	// ErrDuplicateKey is returned by repositories when a uniqueness constraint
	// is violated. Application services turn it into an InvalidInput error.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrOptimisticLock is returned by repositories when an update carries a
	// version that is no longer the stored one.
	ErrOptimisticLock = errors.New("optimistic lock: entity was modified concurrently")
)

// IsInvalidInput reports whether err carries the InvalidInput kind
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNotFound reports whether err carries the NotFound kind
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
