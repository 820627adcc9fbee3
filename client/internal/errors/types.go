// Package errors provides the error values returned by the client SDK.
// Non-2xx responses become *RequestFailedError; transport failures become
// *ClassifiedError. Both carry a Category so callers and the optional retry
// policy can tell transient failures from permanent ones.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory determines how errors should be handled by retry logic.
type ErrorCategory int

const (
	// Recoverable errors may succeed if the same request is sent again.
	// Examples: 500 Internal Server Error, 429, network timeouts.
	Recoverable ErrorCategory = iota

	// Irrecoverable errors fail the same way on every attempt.
	// Examples: 400 Bad Request, 404 Not Found.
	Irrecoverable
)

// String returns a human-readable representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// DefaultMessage is used when a failed response has neither a body nor a
// status text.
const DefaultMessage = "Request failed"

// DeleteFailedMessage is the fixed message reported by failed deletes.
const DeleteFailedMessage = "Delete failed"

// ErrDeleteFailed matches any failed delete via errors.Is.
var ErrDeleteFailed = stderrors.New(DeleteFailedMessage)

// RequestFailedError is returned for every non-2xx response.
//
// Error() reproduces the message contract callers historically matched on:
// the raw body text, else the status text, else DefaultMessage. The structured
// fields carry the same information without string matching.
type RequestFailedError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string // reason phrase, e.g. "Bad Request"
	Body       string

	// Payload is the body decoded as JSON, nil when the body is not JSON.
	Payload any
	// FieldErrors is set when the body is a {field: [messages]} object.
	FieldErrors map[string][]string

	Category ErrorCategory

	// message overrides the derived message (used by deletes).
	message string
	// sentinel lets errors.Is match fixed-message failures.
	sentinel error
}

// Error implements the error interface.
func (e *RequestFailedError) Error() string {
	if e.message != "" {
		return e.message
	}
	return messageFor(e.Body, e.Status)
}

// Unwrap exposes the sentinel for fixed-message failures.
func (e *RequestFailedError) Unwrap() error { return e.sentinel }

// HasFieldErrors reports whether the server returned per-field validation
// messages.
func (e *RequestFailedError) HasFieldErrors() bool { return len(e.FieldErrors) > 0 }

func messageFor(body, status string) string {
	switch {
	case body != "":
		return body
	case status != "":
		return status
	default:
		return DefaultMessage
	}
}

// ClassifiedError wraps a transport-level failure with a category.
type ClassifiedError struct {
	Category   ErrorCategory
	Underlying error
}

// Error implements the error interface.
func (e *ClassifiedError) Error() string {
	return fmt.Sprintf("[%s] %v", e.Category, e.Underlying)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *ClassifiedError) Unwrap() error {
	return e.Underlying
}

// IsRecoverable reports whether err is worth retrying.
func IsRecoverable(err error) bool {
	var rf *RequestFailedError
	if stderrors.As(err, &rf) {
		return rf.Category == Recoverable
	}
	var ce *ClassifiedError
	if stderrors.As(err, &ce) {
		return ce.Category == Recoverable
	}
	return false
}

// IsIrrecoverable returns true if the error should not be retried.
func IsIrrecoverable(err error) bool {
	var rf *RequestFailedError
	if stderrors.As(err, &rf) {
		return rf.Category == Irrecoverable
	}
	var ce *ClassifiedError
	if stderrors.As(err, &ce) {
		return ce.Category == Irrecoverable
	}
	return false
}
