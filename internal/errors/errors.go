// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeValidation indicates a malformed, missing or out-of-enum input field
	TypeValidation Type = "VALIDATION_ERROR"

	// TypeUnknownIndicator indicates a reference-table lookup miss
	TypeUnknownIndicator Type = "UNKNOWN_INDICATOR"

	// TypeDivisionByZero indicates a degenerate denominator in a calculator
	TypeDivisionByZero Type = "DIVISION_BY_ZERO"

	// TypeIncompleteScore indicates the aggregator was invoked with missing dimensions
	TypeIncompleteScore Type = "INCOMPLETE_SCORE"

	// TypeOutOfRange indicates a non-numeric composite score reached the classifier
	TypeOutOfRange Type = "OUT_OF_RANGE"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeStorage indicates a result storage error
	TypeStorage Type = "STORAGE_ERROR"

	// TypeNotFound indicates a requested entity was not found
	TypeNotFound Type = "NOT_FOUND"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// Validation creates a validation error for a bad input field
func Validation(message string) *Error {
	return New(TypeValidation, message)
}

// Validationf creates a formatted validation error
func Validationf(format string, args ...interface{}) *Error {
	return Newf(TypeValidation, format, args...)
}

// UnknownIndicator creates a reference-table lookup error.
// A miss is a configuration defect, fatal to the evaluation.
func UnknownIndicator(key string) *Error {
	return Newf(TypeUnknownIndicator, "indicator not found: %s", key).
		WithContext("indicator", key)
}

// DivisionByZero creates an error for a degenerate denominator
func DivisionByZero(field string) *Error {
	return Newf(TypeDivisionByZero, "division by zero: %s", field).
		WithContext("field", field)
}

// IncompleteScore creates an error for an aggregator missing dimensions
func IncompleteScore(got, want int) *Error {
	return Newf(TypeIncompleteScore, "aggregator requires %d dimension scores, got %d", want, got)
}

// OutOfRange creates an error for a non-numeric composite score
func OutOfRange(message string) *Error {
	return New(TypeOutOfRange, message)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Storage creates a storage error
func Storage(message string, cause error) *Error {
	return Wrap(TypeStorage, message, cause)
}

// NotFound creates a not found error
func NotFound(entity, identifier string) *Error {
	return Newf(TypeNotFound, "%s not found: %s", entity, identifier)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
