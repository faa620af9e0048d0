// Package guard gates protected pages on a resolved, signed-in session.
package guard

import (
	"context"
	"sync"

	"github.com/safetytracker/tracker/internal/client/session"
)

type State int

const (
	StateResolving State = iota
	StateAuthorized
	StateUnauthorized
)

func (s State) String() string {
	switch s {
	case StateResolving:
		return "resolving"
	case StateAuthorized:
		return "authorized"
	case StateUnauthorized:
		return "unauthorized"
	default:
		return "unknown"
	}
}

// Navigator mounts the page at path.
type Navigator interface {
	Navigate(path string)
}

// SessionSource is the part of *session.Store the guard reads.
type SessionSource interface {
	Snapshot() session.Session
	Done() <-chan struct{}
}

// Guard decides once per mount whether the wrapped page may render. While
// the session is resolving it stays undecided and navigates nowhere; once
// resolution is over it either authorizes or redirects to signInPath.
type Guard struct {
	src        SessionSource
	nav        Navigator
	signInPath string

	mu    sync.Mutex
	state State
}

func New(src SessionSource, nav Navigator, signInPath string) *Guard {
	return &Guard{src: src, nav: nav, signInPath: signInPath, state: StateResolving}
}

// Evaluate returns the guard state, deciding it if resolution has finished.
// A decided guard never changes state.
func (g *Guard) Evaluate() State {
	g.mu.Lock()
	if g.state != StateResolving {
		defer g.mu.Unlock()
		return g.state
	}

	snap := g.src.Snapshot()
	switch {
	case snap.Resolving:
		g.mu.Unlock()
		return StateResolving
	case snap.User != nil:
		g.state = StateAuthorized
		g.mu.Unlock()
		return StateAuthorized
	default:
		g.state = StateUnauthorized
		g.mu.Unlock()
		g.nav.Navigate(g.signInPath)
		return StateUnauthorized
	}
}

// Wait blocks until the session has resolved, then evaluates.
func (g *Guard) Wait(ctx context.Context) (State, error) {
	if st := g.Evaluate(); st != StateResolving {
		return st, nil
	}
	select {
	case <-g.src.Done():
		return g.Evaluate(), nil
	case <-ctx.Done():
		return StateResolving, ctx.Err()
	}
}

// Run waits for a decision and calls render only when authorized.
func (g *Guard) Run(ctx context.Context, render func(ctx context.Context) error) (State, error) {
	st, err := g.Wait(ctx)
	if err != nil || st != StateAuthorized {
		return st, err
	}
	return st, render(ctx)
}
