// Package errors provides standardized error handling for the glance
// client. It defines the error kinds surfaced to the UI and helper
// functions for consistent creation, wrapping, and classification.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions re-exported for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Unauthorized is a 401 from the server; the caller must clear
	// credentials and re-prompt.
	Unauthorized
	// RequestFailed is any other non-2xx response.
	RequestFailed
	// ValidationFailed is a local precondition failure that never
	// reaches the network.
	ValidationFailed
	// InvalidPath covers malformed navigation paths, including a
	// nested trash segment.
	InvalidPath
	// Config error kinds
	InvalidConfig
	ConfigNotFound
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// RequestError represents a failed backend request. Status carries
// the HTTP status code when one was received.
type RequestError struct {
	ApplicationError
	status int
}

// NewRequestError creates a new request error
func NewRequestError(msg string, status int, kind ErrorKind, err error) *RequestError {
	return &RequestError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		status: status,
	}
}

// Status returns the HTTP status code associated with the error, or
// zero when the request never produced a response.
func (e *RequestError) Status() int {
	return e.status
}

// NewUnauthorized creates the distinguished 401 error.
func NewUnauthorized() *RequestError {
	return NewRequestError("unauthorized", 401, Unauthorized, nil)
}

// NewValidationError creates a local precondition error.
func NewValidationError(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: ValidationFailed,
	}
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// NewKind creates a new error with an explicit kind
func NewKind(msg string, kind ErrorKind) error {
	return &ApplicationError{
		msg:  msg,
		kind: kind,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: kindOf(err),
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: kindOf(err),
	}
}

// kindOf preserves the kind of a wrapped application error so that
// classification helpers keep working through Wrap.
func kindOf(err error) ErrorKind {
	type kinder interface{ Kind() ErrorKind }
	var k kinder
	if errors.As(err, &k) {
		return k.Kind()
	}
	return Unknown
}

// IsUnauthorized checks if the error carries the Unauthorized kind
func IsUnauthorized(err error) bool {
	return isKind(err, Unauthorized)
}

// IsRequestFailed checks if the error carries the RequestFailed kind
func IsRequestFailed(err error) bool {
	return isKind(err, RequestFailed)
}

// IsValidationFailed checks if the error carries the ValidationFailed kind
func IsValidationFailed(err error) bool {
	return isKind(err, ValidationFailed)
}

// IsInvalidPath checks if the error carries the InvalidPath kind
func IsInvalidPath(err error) bool {
	return isKind(err, InvalidPath)
}

func isKind(err error, kind ErrorKind) bool {
	type kinder interface{ Kind() ErrorKind }
	var k kinder
	if errors.As(err, &k) {
		return k.Kind() == kind
	}
	return false
}
