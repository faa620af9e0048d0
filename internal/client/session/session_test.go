package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/safetytracker/tracker/internal/client/models"
	"github.com/safetytracker/tracker/internal/common"
	"github.com/safetytracker/tracker/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCreds struct {
	mu        sync.Mutex
	value     string
	loadErr   error
	saveErr   error
	deleteErr error
	deletes   int
	saves     []string
}

func (f *fakeCreds) Load(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value, f.loadErr
}

func (f *fakeCreds) Save(ctx context.Context, credential string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves = append(f.saves, credential)
	f.value = credential
	return nil
}

func (f *fakeCreds) Delete(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.value = ""
	return nil
}

type fakeResolver struct {
	identity models.Identity
	err      error
	calls    int
	lastCred string
}

func (f *fakeResolver) ResolveIdentity(ctx context.Context, credential string) (models.Identity, error) {
	f.calls++
	f.lastCred = credential
	return f.identity, f.err
}

var sam = models.Identity{ID: 7, Username: "sam", DisplayName: "Sam"}

func TestStore_InitiallyResolving(t *testing.T) {
	s := NewStore(&fakeCreds{}, &fakeResolver{}, logging.Discard())

	snap := s.Snapshot()
	assert.True(t, snap.Resolving)
	assert.Nil(t, snap.User)
	assert.Equal(t, "", s.Token())

	select {
	case <-s.Done():
		t.Fatal("done closed before Resolve")
	default:
	}
}

func TestStore_Resolve(t *testing.T) {
	tests := []struct {
		name        string
		creds       *fakeCreds
		resolver    *fakeResolver
		wantUser    *models.Identity
		wantToken   string
		wantDeletes int
	}{
		{
			name:      "valid credential",
			creds:     &fakeCreds{value: "tok"},
			resolver:  &fakeResolver{identity: sam},
			wantUser:  &sam,
			wantToken: "tok",
		},
		{
			name:     "no credential",
			creds:    &fakeCreds{},
			resolver: &fakeResolver{},
		},
		{
			name:        "rejected credential is deleted",
			creds:       &fakeCreds{value: "bad"},
			resolver:    &fakeResolver{err: common.ErrTokenExpired},
			wantDeletes: 1,
		},
		{
			name:        "storage failure",
			creds:       &fakeCreds{loadErr: errors.New("disk")},
			resolver:    &fakeResolver{},
			wantDeletes: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(tt.creds, tt.resolver, logging.Discard())

			var seen []Session
			s.Subscribe(func(snap Session) { seen = append(seen, snap) })

			s.Resolve(context.Background())

			snap := s.Snapshot()
			assert.False(t, snap.Resolving)
			assert.Equal(t, tt.wantUser, snap.User)
			assert.Equal(t, tt.wantToken, s.Token())
			assert.Equal(t, tt.wantDeletes, tt.creds.deletes)
			require.Len(t, seen, 1)
			assert.False(t, seen[0].Resolving)

			select {
			case <-s.Done():
			default:
				t.Fatal("done not closed after Resolve")
			}
		})
	}
}

func TestStore_ResolveOnce(t *testing.T) {
	creds := &fakeCreds{value: "tok"}
	resolver := &fakeResolver{identity: sam}
	s := NewStore(creds, resolver, logging.Discard())

	s.Resolve(context.Background())
	s.Resolve(context.Background())

	assert.Equal(t, 1, resolver.calls)
	assert.Equal(t, "tok", resolver.lastCred)
}

func TestStore_SignInSignOut(t *testing.T) {
	creds := &fakeCreds{}
	s := NewStore(creds, &fakeResolver{}, logging.Discard())
	s.Resolve(context.Background())

	var seen []Session
	unsubscribe := s.Subscribe(func(snap Session) { seen = append(seen, snap) })

	require.NoError(t, s.SignIn(context.Background(), sam, "tok"))
	assert.Equal(t, []string{"tok"}, creds.saves)
	assert.Equal(t, "tok", s.Token())
	require.NotNil(t, s.Snapshot().User)
	assert.Equal(t, "sam", s.Snapshot().User.Username)

	require.NoError(t, s.SignOut(context.Background()))
	assert.Nil(t, s.Snapshot().User)
	assert.Equal(t, "", s.Token())
	assert.Equal(t, "", creds.value)

	// idempotent
	require.NoError(t, s.SignOut(context.Background()))
	assert.Nil(t, s.Snapshot().User)

	require.Len(t, seen, 2)
	assert.True(t, seen[0].SignedIn())
	assert.False(t, seen[1].SignedIn())

	unsubscribe()
	require.NoError(t, s.SignIn(context.Background(), sam, "tok2"))
	assert.Len(t, seen, 2)
}

func TestStore_SignInPersistFailure(t *testing.T) {
	creds := &fakeCreds{saveErr: errors.New("read-only")}
	s := NewStore(creds, &fakeResolver{}, logging.Discard())
	s.Resolve(context.Background())

	err := s.SignIn(context.Background(), sam, "tok")
	require.Error(t, err)
	assert.Nil(t, s.Snapshot().User)
	assert.Equal(t, "", s.Token())
}

func TestStore_SignOutDeleteFailureStillClearsUser(t *testing.T) {
	creds := &fakeCreds{}
	s := NewStore(creds, &fakeResolver{}, logging.Discard())
	s.Resolve(context.Background())
	require.NoError(t, s.SignIn(context.Background(), sam, "tok"))

	creds.deleteErr = errors.New("locked")
	err := s.SignOut(context.Background())
	require.Error(t, err)
	assert.Nil(t, s.Snapshot().User)
}

func TestStore_Close(t *testing.T) {
	s := NewStore(&fakeCreds{}, &fakeResolver{}, logging.Discard())
	called := false
	s.Subscribe(func(Session) { called = true })

	s.Close()
	s.Resolve(context.Background())
	assert.False(t, called)

	assert.ErrorIs(t, s.SignIn(context.Background(), sam, "tok"), ErrClosed)
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	s := NewStore(&fakeCreds{}, &fakeResolver{}, logging.Discard())
	require.NoError(t, s.SignIn(context.Background(), sam, "tok"))

	snap := s.Snapshot()
	snap.User.Username = "mallory"
	assert.Equal(t, "sam", s.Snapshot().User.Username)
}

func TestStore_ConcurrentReads(t *testing.T) {
	s := NewStore(&fakeCreds{value: "tok"}, &fakeResolver{identity: sam}, logging.Discard())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = s.Snapshot()
				_ = s.Token()
			}
		}()
	}
	s.Resolve(context.Background())
	wg.Wait()

	assert.Equal(t, "tok", s.Token())
}

type owned struct {
	id int64
	ok bool
}

func (o owned) OwnerID() (int64, bool) { return o.id, o.ok }

func TestIsOwner(t *testing.T) {
	tests := []struct {
		name string
		s    Session
		e    models.Owned
		want bool
	}{
		{"no user", Session{}, owned{id: 7, ok: true}, false},
		{"owner", Session{User: &sam}, owned{id: 7, ok: true}, true},
		{"someone else", Session{User: &sam}, owned{id: 8, ok: true}, false},
		{"no owner on entity", Session{User: &sam}, owned{}, false},
		{"nil entity", Session{User: &sam}, nil, false},
		{"story", Session{User: &sam}, models.Story{Owner: &models.Owner{ID: 7}}, true},
		{"check-in", Session{User: &sam}, models.CheckIn{Owner: &models.Owner{ID: 9}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOwner(tt.s, tt.e))
		})
	}
}
