package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable   = errors.New("server unavailable")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotFound      = errors.New("not found")
	ErrRequestFailed = errors.New("request failed")
)

// RequestFailure is returned by every backend call that fails, whether the
// transport errored (Status 0) or the backend answered with a non-2xx code.
// Message is the backend's explanation when it sent one.
type RequestFailure struct {
	Method  string
	Path    string
	Status  int
	Message string
	Err     error
}

func (e *RequestFailure) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s %s: %s", e.Method, e.Path, e.Message)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, e.Message)
}

func (e *RequestFailure) Unwrap() error {
	return e.Err
}

// sentinelFor maps an HTTP status to the sentinel a RequestFailure unwraps to.
func sentinelFor(status int) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return ErrUnavailable
	default:
		return ErrRequestFailed
	}
}
