package libbbb

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNoTransport is returned by the network operations of a Client built without HTTP transport.
var ErrNoTransport = errors.New("no transport configured")

// A ValidationError is returned when a required parameter is missing or invalid.
// The request is never sent.
type ValidationError struct {
	Field  string
	Reason string
}

func validationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Reason)
}

// A TransportError is returned when the request could not reach or come back from the server.
type TransportError struct {
	Method     string
	StatusCode int // 0 when no response has been received
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: unexpected HTTP status %d", e.Method, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Method, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// A MalformedResponseError is returned when the response body is not the expected XML document.
type MalformedResponseError struct {
	Method string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%s: malformed response: %s", e.Method, e.Err)
}

// Unwrap returns the underlying error.
func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// An APIError represents a FAILED return code sent by the server.
// It is never returned by the Client operations, see Response.Err.
type APIError struct {
	MessageKey string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return e.MessageKey
	}
	return fmt.Sprintf("%s: %s", e.MessageKey, e.Message)
}
