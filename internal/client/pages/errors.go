package pages

import (
	"errors"

	"github.com/safetytracker/tracker/internal/client/client"
)

var (
	ErrNotOwner      = errors.New("only the owner can change this entry")
	ErrWrongMode     = errors.New("action not available right now")
	ErrLoadCanceled  = errors.New("load canceled")
	ErrDeleteAborted = errors.New("delete not confirmed")
	ErrViewDenied    = errors.New("you don't have permission to view this check-in")
)

// Message renders err for the user. Backend failures show the backend's
// explanation rather than the request line.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrViewDenied) {
		return ErrViewDenied.Error()
	}
	var rf *client.RequestFailure
	if errors.As(err, &rf) && rf.Message != "" {
		switch {
		case errors.Is(err, client.ErrUnauthorized):
			return "not allowed: " + rf.Message
		case errors.Is(err, client.ErrUnavailable):
			return "server unavailable: " + rf.Message
		default:
			return rf.Message
		}
	}
	return err.Error()
}
