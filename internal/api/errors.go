package api

import "fmt"

// Failure classes mirror how the backend reports problems. Auth failures
// (401) additionally fire the client's unauthorized callback so the caller
// can tear the session down.

type UnauthorizedError struct{ Message string }

func (e *UnauthorizedError) Error() string { return e.Message }

type ForbiddenError struct{ Message string }

func (e *ForbiddenError) Error() string { return e.Message }

type NotFoundError struct{ Message string }

func (e *NotFoundError) Error() string { return e.Message }

type ConflictError struct{ Message string }

func (e *ConflictError) Error() string { return e.Message }

type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "Validation error" }

// ServerError covers 5xx responses. Retry is left to the user.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server error (status %d)", e.Status)
}

// NetworkError wraps transport-level failures (connection refused, DNS,
// timeouts). Indistinguishable from a dead server as far as the UI goes.
type NetworkError struct{ Err error }

func (e *NetworkError) Error() string { return "Network error. Please check your connection." }

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError is the catch-all for non-2xx statuses outside the taxonomy
// above, carrying whatever message the server sent.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed (status %d)", e.Status)
}

// UserMessage converts any client error into the string shown to the user.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
