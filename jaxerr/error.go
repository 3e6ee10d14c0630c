package jaxerr

import (
	"errors"
	"fmt"
	"strings"
)

// Standard error codes.
const (
	// CodeInvalidFormat indicates a format constant outside the closed set
	CodeInvalidFormat = "INVALID_FORMAT"

	// CodeInvalidOptions indicates an options tree that cannot be represented
	CodeInvalidOptions = "INVALID_OPTIONS"

	// CodeParseError indicates failure to decode a document
	CodeParseError = "PARSE_ERROR"

	// CodeRuleFailed indicates a constraint rule did not hold
	CodeRuleFailed = "RULE_FAILED"
)

// Sentinel errors, one per code.
var (
	// ErrInvalidFormat is matched by errors carrying CodeInvalidFormat
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidOptions is matched by errors carrying CodeInvalidOptions
	ErrInvalidOptions = errors.New("invalid options")

	// ErrParse is matched by errors carrying CodeParseError
	ErrParse = errors.New("parse error")

	// ErrRuleFailed is matched by errors carrying CodeRuleFailed
	ErrRuleFailed = errors.New("rule failed")
)

var sentinels = map[string]error{
	CodeInvalidFormat:  ErrInvalidFormat,
	CodeInvalidOptions: ErrInvalidOptions,
	CodeParseError:     ErrParse,
	CodeRuleFailed:     ErrRuleFailed,
}

// Error is a structured error for jax operations.
type Error struct {
	// Component is the package or type that produced the error (e.g. "glenum")
	Component string

	// Operation is the specific operation that failed (e.g. "SizeofFormat")
	Operation string

	// Code is one of the Code* constants
	Code string

	// Message is a human-readable error message
	Message string

	// Details contains additional context as key-value pairs
	Details map[string]any

	// Cause is the underlying error, if any
	Cause error
}

// New creates a new structured error.
//
// Example:
//
//	err := jaxerr.New("glenum", "SizeofFormat", jaxerr.CodeInvalidFormat,
//	    "unsupported pixel format GL_FLOAT")
func New(component, operation, code, message string) *Error {
	return &Error{
		Component: component,
		Operation: operation,
		Code:      code,
		Message:   message,
	}
}

// Newf is New with a formatted message.
func Newf(component, operation, code, format string, args ...any) *Error {
	return New(component, operation, code, fmt.Sprintf(format, args...))
}

// WithCause sets the underlying error and returns the same instance.
func (e *Error) WithCause(err error) *Error {
	e.Cause = err
	return e
}

// WithDetails sets additional context and returns the same instance.
func (e *Error) WithDetails(details map[string]any) *Error {
	e.Details = details
	return e
}

// Error formats the error as "component [operation/code]: message: cause".
func (e *Error) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("%s [%s/%s]", e.Component, e.Operation, e.Code))

	if e.Message != "" {
		parts = append(parts, e.Message)
	}

	if e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}

	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the sentinel for e.Code, or an *Error with the
// same Component, Operation and Code.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if s, ok := sentinels[e.Code]; ok && s == target {
		return true
	}
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Component == t.Component && e.Operation == t.Operation && e.Code == t.Code
}

// CodeOf returns the code of the first *Error in err's chain, or "" if none.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
