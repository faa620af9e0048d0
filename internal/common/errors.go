// Package common defines shared constants and sentinel errors used across
// the client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Credential errors (malformed or expired token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Local validation failures; nothing is sent to the backend.
	ErrValidation = errors.New("validation error")
)

// ValidationError wraps a local validation failure. It matches
// ErrValidation with errors.Is while keeping the underlying field errors
// reachable through errors.As / Unwrap.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Invalid wraps err as a ValidationError. A nil err stays nil.
func Invalid(err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Err: err}
}

// InvalidMessage is a shorthand for Invalid(errors.New(msg)).
func InvalidMessage(msg string) error {
	return &ValidationError{Err: errors.New(msg)}
}
