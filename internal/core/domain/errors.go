package domain

import (
	"errors"
	"fmt"
)

// SessionExpiredMessage replaces whatever the backend sent on a 401. The
// backend's own wording is still available through APIError.Response.
const SessionExpiredMessage = "Session expired. Please log in again."

var (
	// ErrKeyNotFound is returned by SessionStorage when a key is absent.
	ErrKeyNotFound = errors.New("session storage: key not found")

	// ErrBackendUnreachable marks transport-level failures that happened
	// before any HTTP response was received.
	ErrBackendUnreachable = errors.New("backend unreachable")

	// ErrNotAuthenticated is returned by operations that require a live
	// session when none is present.
	ErrNotAuthenticated = errors.New("not authenticated")
)

// APIError is the normalized form of every non-2xx backend response.
// Message is always a scalar string, even when the backend sent a
// structured validation body; Response preserves the raw parsed body for
// callers that need the detail.
type APIError struct {
	Message  string
	Status   int
	Response any
}

func (e *APIError) Error() string {
	return e.Message
}

// IsStatus reports whether err is an APIError with the given HTTP status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// TransportError wraps a failure of the HTTP transport itself (connection
// refused, DNS failure, ...). It matches ErrBackendUnreachable via
// errors.Is.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("cannot reach the portal backend (is the API server running on port 8000?): %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrBackendUnreachable) succeed for any
// TransportError regardless of the wrapped cause.
func (e *TransportError) Is(target error) bool {
	return target == ErrBackendUnreachable
}
