// Package errors provides structured error types shared by the puzzle toolkit.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library packages and the CLI
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Codes follow the error kinds surfaced by the toolkit:
//   - INVALID_*, WIDTH_MISMATCH, OUT_OF_RANGE: malformed input or violated preconditions
//   - IO_ERROR: input files missing or unreadable, report output failures
//   - NOT_FOUND: a required element (start marker, predecessor id) is absent
//   - CYCLE: a dependency graph cannot be ordered
//
// Library code returns these errors for recoverable failures. Invariant violations
// (indexing past a BitSet width, for instance) panic with an *Error value so the
// code stays inspectable from a recover.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "unexpected character %q", c)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "cannot read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidDay    Code = "INVALID_DAY"
	ErrCodeWidthMismatch Code = "WIDTH_MISMATCH"
	ErrCodeOutOfRange    Code = "OUT_OF_RANGE"

	// I/O errors
	ErrCodeIO Code = "IO_ERROR"

	// Resource not found errors
	ErrCodeNotFound Code = "NOT_FOUND"

	// Graph errors
	ErrCodeCycle Code = "CYCLE"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code,
// so an IO_ERROR wrapped inside an INVALID_DAY error still matches both codes.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode extracts the outermost error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return e.Message + ": " + UserMessage(e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// Panicf panics with a new *Error. It is reserved for broken invariants
// that callers are expected to rule out, like an index past a set width.
func Panicf(code Code, format string, args ...any) {
	panic(New(code, format, args...))
}
