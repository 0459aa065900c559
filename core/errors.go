package core

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for comparison using errors.Is()
// These are generic errors that can be wrapped with additional context
var (
	// Authentication/authorization errors
	ErrNoToken      = errors.New("no access token in session")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Resource errors
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("resource conflict")

	// Order lifecycle errors
	ErrOrderTerminal     = errors.New("order is in a terminal state")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrNoDeliveryAgents  = errors.New("no delivery agents available")

	// State errors
	ErrAlreadyStarted = errors.New("already started")
	ErrNotStarted     = errors.New("not started")

	// HTTP/Network errors
	ErrConnectionFailed = errors.New("connection failed")
	ErrRequestFailed    = errors.New("request failed")
	ErrBadResponse      = errors.New("malformed response body")
)

// ClientError provides structured error information with context.
// It implements the error interface and supports error wrapping.
type ClientError struct {
	Op      string // Operation that failed (e.g., "orders.PlaceOrder")
	Kind    string // Error kind (e.g., "auth", "order", "dashboard")
	Status  int    // HTTP status code, when the backend answered
	Message string // Server-provided or human-readable message
	Err     error  // Underlying error for wrapping
}

// Error returns the string representation of the error
func (e *ClientError) Error() string {
	switch {
	case e.Op != "" && e.Message != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	}
	return fmt.Sprintf("%s error", e.Kind)
}

// Unwrap returns the underlying error for use with errors.Is/As
func (e *ClientError) Unwrap() error {
	return e.Err
}

// UserMessage returns the text suitable for a toast: the server-decoded
// message when present, a generic fallback otherwise.
func (e *ClientError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return "API request failed."
}

// NewClientError creates a new ClientError
func NewClientError(op, kind string, err error) *ClientError {
	return &ClientError{
		Op:   op,
		Kind: kind,
		Err:  err,
	}
}

// UserMessageOf extracts a toast-ready message from any error.
func UserMessageOf(err error, fallback string) string {
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce.UserMessage()
	}
	if fallback != "" {
		return fallback
	}
	return "API request failed."
}

// IsAuthError checks if an error should force a redirect to login
func IsAuthError(err error) bool {
	return errors.Is(err, ErrNoToken) ||
		errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrForbidden)
}

// IsNotFound checks if an error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsStateError checks if an error is related to invalid lifecycle state
func IsStateError(err error) bool {
	return errors.Is(err, ErrOrderTerminal) ||
		errors.Is(err, ErrInvalidTransition) ||
		errors.Is(err, ErrAlreadyStarted) ||
		errors.Is(err, ErrNotStarted)
}

// IsTransient checks if an error is a transport-level failure. The client
// never retries automatically; callers use this to decide what to tell
// the user.
func IsTransient(err error) bool {
	return errors.Is(err, ErrConnectionFailed) ||
		errors.Is(err, ErrRequestFailed)
}
