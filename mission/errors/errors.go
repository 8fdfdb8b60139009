// Package errors provides the coded error type shared by the rover packages.
//
// Every failure raised by the plateau model, the command interpreter and the
// mission manager is an *Error carrying a machine-readable Code. Callers
// discriminate on the code rather than the message:
//
//	if apperrors.IsCode(err, apperrors.CodeCellOccupied) { ... }
package errors

import (
	stderrors "errors"
	"fmt"
)

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown is reported by CodeOf for errors that are not *Error.
	CodeUnknown Code = "UNKNOWN"

	// Model errors
	CodeInvalidBounds Code = "INVALID_BOUNDS"
	CodeOutOfBounds   Code = "OUT_OF_BOUNDS"
	CodeCellOccupied  Code = "CELL_OCCUPIED"
	CodeNullArgument  Code = "NULL_ARGUMENT"

	// Input errors
	CodeMalformedInput Code = "MALFORMED_INPUT"

	// Lookup errors
	CodeNotFound Code = "NOT_FOUND"
)

// Metadata keys
const (
	MetaRover = "rover"
	MetaField = "field"
	MetaX     = "x"
	MetaY     = "y"
)

// Error is the domain error type with structured metadata.
type Error struct {
	Code     Code              // Machine-readable error code
	Message  string            // Human-readable message
	Metadata map[string]string // Additional context (occupying rover, failing field)
	Cause    error             // Wrapped underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// Meta returns a metadata value, or "" when absent.
func (e *Error) Meta(key string) string {
	if e.Metadata == nil {
		return ""
	}
	return e.Metadata[key]
}

// New creates a simple domain error with a code and message.
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a domain error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// WithMetadata creates a domain error with metadata.
func WithMetadata(code Code, message string, metadata map[string]string) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Metadata: metadata,
	}
}

// Wrap creates a domain error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithMetadata creates a domain error with both metadata and a cause.
func WrapWithMetadata(code Code, message string, metadata map[string]string, cause error) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Metadata: metadata,
		Cause:    cause,
	}
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var target *Error
	if stderrors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// CodeOf returns the code of the first *Error in err's chain.
// A nil error yields "" and a foreign error yields CodeUnknown.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	if e, ok := As(err); ok {
		return e.Code
	}
	return CodeUnknown
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}
