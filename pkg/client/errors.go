package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnreachable marks a request that never got a response from the API.
var ErrUnreachable = errors.New("server unreachable")

// HTTPError represents a non-2xx HTTP response from the API.
type HTTPError struct {
	StatusCode int
	// Message is the server-provided "message" or "error" field, if any.
	Message string
	// Body is the raw (size-limited) response body.
	Body string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// IsStatus returns true if err (or any wrapped error) is an HTTPError with the given status code.
func IsStatus(err error, code int) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == code
	}
	return false
}

// IsAuthFailure reports whether err is a 401 or 403 from the API.
func IsAuthFailure(err error) bool {
	return IsStatus(err, http.StatusUnauthorized) || IsStatus(err, http.StatusForbidden)
}

// UnreachableMessage is shown when the API could not be reached at all.
const UnreachableMessage = "Server is offline or unreachable."

// Describe turns err into the text shown to the admin: the unreachable
// notice for transport failures, the server's own message when it sent
// one, and fallback otherwise.
func Describe(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrUnreachable) {
		return UnreachableMessage
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr.Message != "" {
		return httpErr.Message
	}
	return fallback
}
