package pages

import (
	"context"
	"fmt"
	"sync"

	"github.com/safetytracker/tracker/internal/client/guard"
	"github.com/safetytracker/tracker/internal/client/models"
	"github.com/safetytracker/tracker/internal/client/session"
	"github.com/safetytracker/tracker/internal/logging"
	"golang.org/x/sync/errgroup"
)

type Mode int

const (
	ModeInit Mode = iota
	ModeLoading
	ModeViewing
	ModeEditing
	ModeLoadError
	ModeDeleted
)

func (m Mode) String() string {
	switch m {
	case ModeInit:
		return "init"
	case ModeLoading:
		return "loading"
	case ModeViewing:
		return "viewing"
	case ModeEditing:
		return "editing"
	case ModeLoadError:
		return "load-error"
	case ModeDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Source binds Controller to one kind of entity. T is the entity, D the
// edit draft and L the lookups loaded next to it.
type Source[T models.Owned, D any, L any] interface {
	Fetch(ctx context.Context, id int64) (T, error)
	Lookup(ctx context.Context) (L, error)
	Draft(entity T) D
	// Submit sends draft as the new state of entity and returns what the
	// backend reports back. Submit may rewrite *draft into an equivalent
	// form; the rewritten draft is what stays on the page after a failure.
	Submit(ctx context.Context, entity T, draft *D) (T, error)
	Delete(ctx context.Context, entity T) error
	ListingPath() string
	Noun() string
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

// SessionReader is the read side of *session.Store.
type SessionReader interface {
	Snapshot() session.Session
}

// View is a copy of the page state for rendering.
type View[T any, D any, L any] struct {
	Mode      Mode
	ID        int64
	Entity    T
	Lookup    L
	Draft     D
	Err       string
	Busy      bool
	CanEdit   bool
	CanDelete bool
}

type Controller[T models.Owned, D any, L any] struct {
	src     Source[T, D, L]
	sess    SessionReader
	nav     guard.Navigator
	confirm Confirmer
	logger  logging.Logger

	mu        sync.Mutex
	mode      Mode
	id        int64
	entity    T
	hasEntity bool
	lookup    L
	draft     D
	errMsg    string
	busy      bool
	gen       uint64
	cancel    context.CancelFunc
}

func NewController[T models.Owned, D any, L any](src Source[T, D, L], sess SessionReader, nav guard.Navigator,
	confirm Confirmer, logger logging.Logger) *Controller[T, D, L] {
	return &Controller[T, D, L]{
		src:     src,
		sess:    sess,
		nav:     nav,
		confirm: confirm,
		logger:  logger.With("page", src.Noun()),
	}
}

// Load fetches entity id and the lookups concurrently. Either failure puts
// the page in LoadError without partial data. A newer Load or Unmount
// cancels this one; its results are then dropped and ErrLoadCanceled is
// returned.
func (c *Controller[T, D, L]) Load(ctx context.Context, id int64) error {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.gen++
	gen := c.gen
	loadCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.mode = ModeLoading
	c.id = id
	c.errMsg = ""
	c.busy = false
	c.mu.Unlock()
	defer cancel()

	var (
		entity T
		lookup L
	)
	g, gctx := errgroup.WithContext(loadCtx)
	g.Go(func() error {
		e, err := c.src.Fetch(gctx, id)
		if err != nil {
			return fmt.Errorf("load %s %d: %w", c.src.Noun(), id, err)
		}
		entity = e
		return nil
	})
	g.Go(func() error {
		l, err := c.src.Lookup(gctx)
		if err != nil {
			return fmt.Errorf("load lookups: %w", err)
		}
		lookup = l
		return nil
	})
	err := g.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return ErrLoadCanceled
	}
	c.cancel = nil

	if err != nil {
		var zeroT T
		var zeroL L
		var zeroD D
		c.mode = ModeLoadError
		c.entity, c.lookup, c.draft = zeroT, zeroL, zeroD
		c.hasEntity = false
		c.errMsg = Message(err)
		c.logger.Warn(ctx, "page load failed", "id", id, "error", err.Error())
		return err
	}

	var zeroD D
	c.mode = ModeViewing
	c.entity = entity
	c.hasEntity = true
	c.lookup = lookup
	c.draft = zeroD
	return nil
}

// Unmount cancels an in-flight load and leaves edit mode.
func (c *Controller[T, D, L]) Unmount() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.gen++
	var zeroD D
	c.draft = zeroD
	c.busy = false
	c.errMsg = ""
	if c.hasEntity && c.mode != ModeDeleted {
		c.mode = ModeViewing
	} else if c.mode != ModeDeleted {
		c.mode = ModeInit
	}
}

func (c *Controller[T, D, L]) View() View[T, D, L] {
	c.mu.Lock()
	defer c.mu.Unlock()

	owner := c.hasEntity && session.IsOwner(c.sess.Snapshot(), c.entity)
	return View[T, D, L]{
		Mode:      c.mode,
		ID:        c.id,
		Entity:    c.entity,
		Lookup:    c.lookup,
		Draft:     c.draft,
		Err:       c.errMsg,
		Busy:      c.busy,
		CanEdit:   c.mode == ModeViewing && owner,
		CanDelete: c.mode == ModeViewing && owner,
	}
}

// BeginEdit opens a draft copy of the entity. Only the owner may edit.
func (c *Controller[T, D, L]) BeginEdit() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode != ModeViewing {
		return ErrWrongMode
	}
	if !session.IsOwner(c.sess.Snapshot(), c.entity) {
		return ErrNotOwner
	}
	c.draft = c.src.Draft(c.entity)
	c.errMsg = ""
	c.mode = ModeEditing
	return nil
}

// UpdateDraft applies fn to the draft.
func (c *Controller[T, D, L]) UpdateDraft(fn func(d *D)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode != ModeEditing || c.busy {
		return ErrWrongMode
	}
	fn(&c.draft)
	return nil
}

// Submit sends the draft. On success the entity is replaced by the
// backend's version and the page returns to Viewing; on failure the page
// stays in Editing with the draft untouched and the error set.
func (c *Controller[T, D, L]) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.mode != ModeEditing || c.busy {
		c.mu.Unlock()
		return ErrWrongMode
	}
	if !session.IsOwner(c.sess.Snapshot(), c.entity) {
		c.errMsg = ErrNotOwner.Error()
		c.mu.Unlock()
		return ErrNotOwner
	}
	entity, draft, gen := c.entity, c.draft, c.gen
	c.busy = true
	c.errMsg = ""
	c.mu.Unlock()

	updated, err := c.src.Submit(ctx, entity, &draft)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return ErrLoadCanceled
	}
	c.busy = false
	if err != nil {
		c.draft = draft
		c.errMsg = Message(err)
		c.logger.Warn(ctx, "submit failed", "id", c.id, "error", err.Error())
		return err
	}

	var zeroD D
	c.entity = updated
	c.draft = zeroD
	c.mode = ModeViewing
	return nil
}

// Cancel drops the draft and shows the last good entity again. Nothing is
// re-fetched.
func (c *Controller[T, D, L]) Cancel() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode != ModeEditing || c.busy {
		return ErrWrongMode
	}
	var zeroD D
	c.draft = zeroD
	c.errMsg = ""
	c.mode = ModeViewing
	return nil
}

// Delete removes the entity after the user confirms, then navigates to the
// listing. A declined confirmation changes nothing and returns
// ErrDeleteAborted.
func (c *Controller[T, D, L]) Delete(ctx context.Context) error {
	c.mu.Lock()
	if c.mode != ModeViewing || c.busy {
		c.mu.Unlock()
		return ErrWrongMode
	}
	if !session.IsOwner(c.sess.Snapshot(), c.entity) {
		c.mu.Unlock()
		return ErrNotOwner
	}
	entity, gen := c.entity, c.gen
	c.mu.Unlock()

	if !c.confirm.Confirm(fmt.Sprintf("Delete this %s? This cannot be undone.", c.src.Noun())) {
		return ErrDeleteAborted
	}

	c.mu.Lock()
	if gen != c.gen || c.mode != ModeViewing {
		c.mu.Unlock()
		return ErrWrongMode
	}
	c.busy = true
	c.errMsg = ""
	c.mu.Unlock()

	err := c.src.Delete(ctx, entity)

	c.mu.Lock()
	c.busy = false
	if err != nil {
		c.errMsg = Message(err)
		c.mu.Unlock()
		c.logger.Warn(ctx, "delete failed", "error", err.Error())
		return err
	}
	var zeroT T
	c.entity = zeroT
	c.hasEntity = false
	c.mode = ModeDeleted
	c.mu.Unlock()

	c.nav.Navigate(c.src.ListingPath())
	return nil
}
