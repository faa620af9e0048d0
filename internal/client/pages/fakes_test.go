package pages

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/safetytracker/tracker/internal/client/client"
	"github.com/safetytracker/tracker/internal/client/models"
	"github.com/safetytracker/tracker/internal/client/session"
)

// memBackend is an in-memory stand-in for the stories/authors/check-ins API.
// Write calls echo relations as bare ids, like the real backend.
type memBackend struct {
	mu       sync.Mutex
	nextID   int64
	ownerID  int64
	stories  map[int64]models.Story
	authors  map[int64]models.Author
	checkins map[int64]models.CheckIn

	getCalls     int
	updateErr    error
	deleteErr    error
	authorsErr   error
	createdNames []string
	lastUpdate   *models.StoryInput
	deletes      []int64
}

func newMemBackend(ownerID int64) *memBackend {
	return &memBackend{
		nextID:   100,
		ownerID:  ownerID,
		stories:  map[int64]models.Story{},
		authors:  map[int64]models.Author{},
		checkins: map[int64]models.CheckIn{},
	}
}

func (b *memBackend) id() int64 {
	b.nextID++
	return b.nextID
}

func notFound(path string) error {
	return &client.RequestFailure{Method: "GET", Path: path, Status: 404, Message: "Not found.", Err: client.ErrNotFound}
}

func (b *memBackend) addAuthor(name string) models.Author {
	b.mu.Lock()
	defer b.mu.Unlock()
	a := models.Author{ID: b.id(), Name: name}
	b.authors[a.ID] = a
	return a
}

func (b *memBackend) addStory(title, content string, authorID, ownerID int64) models.Story {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := models.Story{ID: b.id(), Title: title, Content: content,
		Author: &models.Author{ID: authorID}, Owner: &models.Owner{ID: ownerID}}
	b.stories[s.ID] = s
	return s
}

func (b *memBackend) expand(s models.Story) models.Story {
	if s.Author != nil {
		a := b.authors[s.Author.ID]
		s.Author = &models.Author{ID: a.ID, Name: a.Name}
	}
	if s.Owner != nil {
		s.Owner = &models.Owner{ID: s.Owner.ID, Username: fmt.Sprintf("user%d", s.Owner.ID)}
	}
	return s
}

// stories

type memStories struct{ *memBackend }

func (m memStories) List(ctx context.Context) ([]models.Story, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Story{}
	for _, s := range m.stories {
		out = append(out, m.expand(s))
	}
	return out, nil
}

func (m memStories) Get(ctx context.Context, id int64) (models.Story, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++
	s, ok := m.stories[id]
	if !ok {
		return models.Story{}, notFound(fmt.Sprintf("/api/stories/%d/", id))
	}
	return m.expand(s), nil
}

func (m memStories) Create(ctx context.Context, in models.StoryInput) (models.Story, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.authors[in.AuthorID]; !ok {
		return models.Story{}, &client.RequestFailure{Status: 400, Message: "author: Invalid pk.", Err: client.ErrRequestFailed}
	}
	s := models.Story{ID: m.id(), Title: in.Title, Content: in.Content,
		Author: &models.Author{ID: in.AuthorID}, Owner: &models.Owner{ID: m.ownerID}}
	m.stories[s.ID] = s
	return s, nil
}

func (m memStories) Update(ctx context.Context, id int64, in models.StoryInput) (models.Story, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastUpdate = &in
	if m.updateErr != nil {
		return models.Story{}, m.updateErr
	}
	s, ok := m.stories[id]
	if !ok {
		return models.Story{}, notFound(fmt.Sprintf("/api/stories/%d/", id))
	}
	s.Title, s.Content, s.Author = in.Title, in.Content, &models.Author{ID: in.AuthorID}
	m.stories[id] = s
	return s, nil
}

func (m memStories) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes = append(m.deletes, id)
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.stories, id)
	return nil
}

// authors

type memAuthors struct{ *memBackend }

func (m memAuthors) List(ctx context.Context) ([]models.Author, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.authorsErr != nil {
		return nil, m.authorsErr
	}
	out := []models.Author{}
	for _, a := range m.authors {
		out = append(out, m.withStories(a))
	}
	return out, nil
}

func (m memAuthors) Get(ctx context.Context, id int64) (models.Author, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.authors[id]
	if !ok {
		return models.Author{}, notFound(fmt.Sprintf("/api/authors/%d/", id))
	}
	return m.withStories(a), nil
}

func (m memAuthors) Create(ctx context.Context, name string) (models.Author, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createdNames = append(m.createdNames, name)
	a := models.Author{ID: m.id(), Name: name}
	m.authors[a.ID] = a
	return a, nil
}

func (b *memBackend) withStories(a models.Author) models.Author {
	for _, s := range b.stories {
		if s.Author != nil && s.Author.ID == a.ID {
			a.Stories = append(a.Stories, s)
		}
	}
	return a
}

// check-ins

type memCheckIns struct{ *memBackend }

func (m memCheckIns) List(ctx context.Context) ([]models.CheckIn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.CheckIn{}
	for _, c := range m.checkins {
		out = append(out, c)
	}
	return out, nil
}

func (m memCheckIns) Get(ctx context.Context, id int64) (models.CheckIn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++
	c, ok := m.checkins[id]
	if !ok {
		return models.CheckIn{}, notFound(fmt.Sprintf("/api/check_ins/%d/", id))
	}
	return c, nil
}

func (m memCheckIns) Create(ctx context.Context, in models.CheckInInput) (models.CheckIn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := checkInFrom(m.id(), m.ownerID, in)
	m.checkins[c.ID] = c
	return c, nil
}

func (m memCheckIns) Update(ctx context.Context, id int64, in models.CheckInInput) (models.CheckIn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return models.CheckIn{}, m.updateErr
	}
	old, ok := m.checkins[id]
	if !ok {
		return models.CheckIn{}, notFound(fmt.Sprintf("/api/check_ins/%d/", id))
	}
	c := checkInFrom(id, old.Owner.ID, in)
	m.checkins[id] = c
	return c, nil
}

func (m memCheckIns) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes = append(m.deletes, id)
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.checkins, id)
	return nil
}

func checkInFrom(id, ownerID int64, in models.CheckInInput) models.CheckIn {
	return models.CheckIn{
		ID: id, Title: in.Title, Description: in.Description, Category: in.Category, DayType: in.DayType,
		ReactionLevel: in.ReactionLevel, CopingAction: in.CopingAction, Effectiveness: in.Effectiveness,
		RelaxedToday: in.RelaxedToday, Owner: &models.Owner{ID: ownerID},
	}
}

// session, navigation, confirmation

type fixedSession struct {
	mu sync.Mutex
	s  session.Session
}

func signedInAs(id int64) *fixedSession {
	return &fixedSession{s: session.Session{User: &models.Identity{ID: id, Username: fmt.Sprintf("user%d", id)}}}
}

func (f *fixedSession) Snapshot() session.Session {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.s
}

func (f *fixedSession) signOut() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.s.User = nil
}

type recordingNav struct {
	mu    sync.Mutex
	paths []string
}

func (r *recordingNav) Navigate(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
}

type answer bool

func (a answer) Confirm(string) bool { return bool(a) }

var errBoom = errors.New("boom")
