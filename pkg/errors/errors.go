// Package errors provides structured error types for the mvngraph application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI
//   - Machine-readable error codes for programmatic handling (exit codes)
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidPackage, "invalid package %q", raw)
//	if errors.Is(err, errors.ErrCodeInvalidPackage) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidInput, origErr, "parse arguments")
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for configuration resolution failures.
const (
	// ErrCodeMissingOption indicates a mandatory option was not supplied.
	ErrCodeMissingOption Code = "MISSING_REQUIRED_OPTION"

	// ErrCodeConflictingOptions indicates mutually exclusive options were both supplied.
	ErrCodeConflictingOptions Code = "CONFLICTING_OPTIONS"

	// ErrCodeInvalidPackage indicates a package string that does not decompose
	// into groupId:artifactId.
	ErrCodeInvalidPackage Code = "INVALID_PACKAGE"

	// ErrCodeInvalidDepth indicates a max-depth value that is not a positive integer.
	ErrCodeInvalidDepth Code = "INVALID_DEPTH"

	// ErrCodeInvalidURL indicates a repository URL with an unsupported scheme.
	ErrCodeInvalidURL Code = "INVALID_URL"

	// ErrCodeInvalidPath indicates an unusable test-repository path.
	ErrCodeInvalidPath Code = "INVALID_PATH"

	// ErrCodeInvalidInput covers malformed input that is not attributable to a
	// single option (unknown flags, unreadable defaults files).
	ErrCodeInvalidInput Code = "INVALID_INPUT"

	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal Code = "INTERNAL_ERROR"
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
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
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
		return e.Message
	}
	return err.Error()
}
