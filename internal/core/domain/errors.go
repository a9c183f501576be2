// Package domain defines the core domain models for SolGate.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a request-level error with a structured error code.
//
// Codes are grouped by concern: SG-VAL-* for input validation failures,
// SG-OP-* for inputs the Solana SDK rejected, SG-SYS-* for transport and
// process level failures. Only the message is exposed in the response body;
// the code travels in the X-Error-Code header.
type DomainError struct {
	Code    string // Error code (e.g. "SG-VAL-4001")
	Message string // Human-readable message
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Cause:   cause,
	}
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// Validation returns a validation error for a single field.
// Validation errors are produced before any SDK call is made.
func Validation(field, reason string) *DomainError {
	return &DomainError{
		Code:    "SG-VAL-4001",
		Message: fmt.Sprintf("invalid %s: %s", field, reason),
	}
}

// Required returns a validation error for a missing field.
func Required(field string) *DomainError {
	return &DomainError{
		Code:    "SG-VAL-4002",
		Message: field + " is required",
	}
}

// Operation returns an error for input the SDK rejected after validation
// passed (e.g. bytes that decode but do not form a valid curve point).
func Operation(what string, cause error) *DomainError {
	return &DomainError{
		Code:    "SG-OP-4100",
		Message: what,
		Cause:   cause,
	}
}

// ============================================================================
// Transport errors (SYS)
// ============================================================================

var (
	// ErrBadRequestBody indicates the request body was not valid JSON for
	// the endpoint's schema.
	ErrBadRequestBody = NewDomainError("SG-SYS-4000", "invalid request body")

	// ErrInternal indicates an unexpected server-side failure.
	ErrInternal = NewDomainError("SG-SYS-5000", "internal server error")
)
