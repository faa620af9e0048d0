// Package session holds the signed-in user shared by every page of the
// client, and the bearer credential that authenticates backend calls.
//
// A Store starts in the resolving state. Resolve reads the persisted
// credential once and turns it into an Identity; afterwards the user only
// changes through SignIn and SignOut. Observers registered with Subscribe are
// called after every transition with the new Session.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/safetytracker/tracker/internal/client/models"
	"github.com/safetytracker/tracker/internal/logging"
)

// CredentialStore persists the bearer credential between runs.
type CredentialStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, credential string) error
	Delete(ctx context.Context) error
}

// IdentityResolver turns a credential into the user it belongs to.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, credential string) (models.Identity, error)
}

// Session is a point-in-time view of the store.
type Session struct {
	User      *models.Identity
	Resolving bool
}

// SignedIn reports whether a user is present.
func (s Session) SignedIn() bool {
	return s.User != nil
}

var ErrClosed = errors.New("session store closed")

type Store struct {
	creds    CredentialStore
	resolver IdentityResolver
	logger   logging.Logger

	mu        sync.RWMutex
	user      *models.Identity
	token     string
	resolving bool
	closed    bool
	version   uint64
	subs      map[int]func(Session)
	nextSub   int

	resolveOnce sync.Once
	doneOnce    sync.Once
	done        chan struct{}
}

func NewStore(creds CredentialStore, resolver IdentityResolver, logger logging.Logger) *Store {
	return &Store{
		creds:     creds,
		resolver:  resolver,
		logger:    logger,
		resolving: true,
		subs:      make(map[int]func(Session)),
		done:      make(chan struct{}),
	}
}

// Resolve loads the persisted credential and derives the user from it. Any
// failure deletes the credential and leaves the user absent. Resolving goes
// false exactly once; later calls return immediately.
func (s *Store) Resolve(ctx context.Context) {
	s.resolveOnce.Do(func() {
		s.resolve(ctx)
	})
}

func (s *Store) resolve(ctx context.Context) {
	s.mu.RLock()
	startVersion := s.version
	s.mu.RUnlock()

	credential, err := s.creds.Load(ctx)
	if err != nil {
		s.logger.Warn(ctx, "failed to load credential", "error", err.Error())
		s.finishResolving(ctx, startVersion, nil, "", true)
		return
	}
	if credential == "" {
		s.logger.Debug(ctx, "no persisted credential")
		s.finishResolving(ctx, startVersion, nil, "", false)
		return
	}

	identity, err := s.resolver.ResolveIdentity(ctx, credential)
	if err != nil {
		s.logger.Info(ctx, "persisted credential rejected", "error", err.Error())
		s.finishResolving(ctx, startVersion, nil, "", true)
		return
	}

	s.logger.Info(ctx, "session resolved", "user_id", identity.ID, "username", identity.Username)
	s.finishResolving(ctx, startVersion, &identity, credential, false)
}

// finishResolving applies the resolution result unless a sign-in or
// sign-out happened while it ran.
func (s *Store) finishResolving(ctx context.Context, startVersion uint64, user *models.Identity, token string, dropCredential bool) {
	s.mu.Lock()
	stale := s.version != startVersion
	if !stale {
		s.user = user
		s.token = token
	}
	s.resolving = false
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if dropCredential && !stale {
		if err := s.creds.Delete(ctx); err != nil {
			s.logger.Warn(ctx, "failed to delete rejected credential", "error", err.Error())
		}
	}

	s.doneOnce.Do(func() { close(s.done) })
	s.notify(snap)
}

// Done is closed once resolution has finished.
func (s *Store) Done() <-chan struct{} {
	return s.done
}

func (s *Store) Snapshot() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Session {
	snap := Session{Resolving: s.resolving}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	return snap
}

// Token returns the current bearer credential or "" when signed out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SignIn persists credential and makes identity the current user. When the
// credential cannot be persisted the user is left unchanged.
func (s *Store) SignIn(ctx context.Context, identity models.Identity, credential string) error {
	if s.isClosed() {
		return ErrClosed
	}
	if err := s.creds.Save(ctx, credential); err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}

	s.mu.Lock()
	s.version++
	s.user = &identity
	s.token = credential
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Info(ctx, "signed in", "user_id", identity.ID, "username", identity.Username)
	s.notify(snap)
	return nil
}

// SignOut deletes the credential and clears the user. Signing out twice is
// not an error.
func (s *Store) SignOut(ctx context.Context) error {
	s.mu.Lock()
	s.version++
	wasSignedIn := s.user != nil
	s.user = nil
	s.token = ""
	snap := s.snapshotLocked()
	s.mu.Unlock()

	err := s.creds.Delete(ctx)
	if err != nil {
		s.logger.Warn(ctx, "failed to delete credential", "error", err.Error())
		err = fmt.Errorf("delete credential: %w", err)
	}

	if wasSignedIn {
		s.logger.Info(ctx, "signed out")
		s.notify(snap)
	}
	return err
}

// Subscribe registers fn for every later transition and returns a function
// that removes it.
func (s *Store) Subscribe(fn func(Session)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return func() {}
	}
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Close disposes the store: subscribers are dropped and no further sign-in
// is accepted.
func (s *Store) Close() {
	s.mu.Lock()
	s.closed = true
	s.subs = make(map[int]func(Session))
	s.mu.Unlock()
}

func (s *Store) isClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

func (s *Store) notify(snap Session) {
	s.mu.RLock()
	fns := make([]func(Session), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(snap)
	}
}

// IsOwner reports whether the signed-in user of s owns e. It is false while
// no user is present or when e carries no owner.
func IsOwner(s Session, e models.Owned) bool {
	if s.User == nil || e == nil {
		return false
	}
	ownerID, ok := e.OwnerID()
	return ok && ownerID == s.User.ID
}
