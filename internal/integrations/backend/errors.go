package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrInternal request could not be built or sent (network, timeout)
	ErrInternal = errors.New("backend: internal error")
	// ErrInvalidResponse response body could not be decoded
	ErrInvalidResponse = errors.New("backend: invalid response")
	// ErrBadRequest backend rejected the payload (400, 422)
	ErrBadRequest = errors.New("backend: bad request")
	// ErrUnauthorized token missing or expired (401)
	ErrUnauthorized = errors.New("backend: unauthorized")
	// ErrForbidden operation not allowed for this user (403)
	ErrForbidden = errors.New("backend: forbidden")
	// ErrNotFound resource does not exist (404)
	ErrNotFound = errors.New("backend: not found")
	// ErrUnavailable backend answered with 5xx
	ErrUnavailable = errors.New("backend: unavailable")
	// ErrUnexpectedStatus any other status code
	ErrUnexpectedStatus = errors.New("backend: unexpected status")
)

// ResponseError is a non-2xx answer. It unwraps to one of the sentinels above.
type ResponseError struct {
	StatusCode int
	Message    string
	Kind       error
}

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%v: status %d", e.Kind, e.StatusCode)
	}
	return fmt.Sprintf("%v: status %d: %s", e.Kind, e.StatusCode, e.Message)
}

func (e *ResponseError) Unwrap() error {
	return e.Kind
}

// ServerMessage returns the message sent by the backend, or "" when there is none
func ServerMessage(err error) string {
	var re *ResponseError
	if errors.As(err, &re) {
		return re.Message
	}
	return ""
}

// IsTransport reports whether err means the backend could not be reached or failed on its side
func IsTransport(err error) bool {
	return errors.Is(err, ErrInternal) || errors.Is(err, ErrUnavailable) ||
		errors.Is(err, ErrInvalidResponse) || errors.Is(err, ErrUnexpectedStatus)
}
