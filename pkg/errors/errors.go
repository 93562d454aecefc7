// Package errors provides structured error types for requirement detection.
//
// Every failure the detector reports carries a machine-readable [Code] so that
// callers can tell a recoverable "this source could not be interpreted"
// failure apart from the final "nothing was found anywhere" failure:
//
//   - COULD_NOT_PARSE: a declaration source exists but cannot be interpreted
//   - REQUIREMENTS_NOT_FOUND: no source yielded any requirement
//   - INVALID_*: bad input (paths, constraints, requirement values)
//
// # Usage
//
//	err := errors.New(errors.ErrCodeCouldNotParse, "no setup() call in %s", path)
//	if errors.IsCouldNotParse(err) {
//	    // fall through to the next source
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeCouldNotParse, tomlErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Detection outcomes
	ErrCodeCouldNotParse Code = "COULD_NOT_PARSE"
	ErrCodeNotFound      Code = "REQUIREMENTS_NOT_FOUND"
	ErrCodeSyntax        Code = "SYNTAX_ERROR"

	// Input validation errors
	ErrCodeInvalidPath        Code = "INVALID_PATH"
	ErrCodeInvalidRequirement Code = "INVALID_REQUIREMENT"
	ErrCodeInvalidConstraint  Code = "INVALID_CONSTRAINT"
	ErrCodeInvalidFormat      Code = "INVALID_FORMAT"
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
// Only the outermost *Error in the chain is consulted.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// IsCouldNotParse reports whether err is a COULD_NOT_PARSE failure.
func IsCouldNotParse(err error) bool { return Is(err, ErrCodeCouldNotParse) }

// IsNotFound reports whether err is a REQUIREMENTS_NOT_FOUND failure.
func IsNotFound(err error) bool { return Is(err, ErrCodeNotFound) }

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
