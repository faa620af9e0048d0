package pages

import (
	"context"
	"fmt"

	"github.com/safetytracker/tracker/internal/client/guard"
	"github.com/safetytracker/tracker/internal/client/models"
	"github.com/safetytracker/tracker/internal/client/relation"
	"github.com/safetytracker/tracker/internal/client/services"
	"github.com/safetytracker/tracker/internal/logging"
)

const (
	StoriesPath  = "/stories"
	AuthorsPath  = "/authors"
	CheckInsPath = "/checkins"
)

// StoryAPI is the story half of the backend; *client.StoryClient implements it.
type StoryAPI interface {
	List(ctx context.Context) ([]models.Story, error)
	Get(ctx context.Context, id int64) (models.Story, error)
	Create(ctx context.Context, in models.StoryInput) (models.Story, error)
	Update(ctx context.Context, id int64, in models.StoryInput) (models.Story, error)
	Delete(ctx context.Context, id int64) error
}

// AuthorAPI is implemented by *client.AuthorClient.
type AuthorAPI interface {
	List(ctx context.Context) ([]models.Author, error)
	Get(ctx context.Context, id int64) (models.Author, error)
	Create(ctx context.Context, name string) (models.Author, error)
}

// StoryDraft is the editable part of a story.
type StoryDraft struct {
	Title   string
	Content string
	Author  relation.AuthorSelection
}

type storySource struct {
	stories  StoryAPI
	authors  AuthorAPI
	resolver *relation.AuthorResolver
	logger   logging.Logger
}

func (s *storySource) Noun() string        { return "story" }
func (s *storySource) ListingPath() string { return StoriesPath }

func (s *storySource) Fetch(ctx context.Context, id int64) (models.Story, error) {
	return s.stories.Get(ctx, id)
}

func (s *storySource) Lookup(ctx context.Context) ([]models.Author, error) {
	return s.authors.List(ctx)
}

func (s *storySource) Draft(st models.Story) StoryDraft {
	d := StoryDraft{Title: st.Title, Content: st.Content}
	if st.Author != nil && st.Author.ID > 0 {
		id := st.Author.ID
		d.Author.SelectedAuthorID = &id
	}
	return d
}

func (s *storySource) Submit(ctx context.Context, st models.Story, d *StoryDraft) (models.Story, error) {
	if err := services.ValidateStory(d.Title, d.Content); err != nil {
		return models.Story{}, err
	}
	authorID, err := s.resolver.Resolve(ctx, d.Author)
	if err != nil {
		return models.Story{}, err
	}
	// A freshly created author is selected from now on, so a retry after a
	// failed update does not create it twice.
	d.Author = relation.AuthorSelection{SelectedAuthorID: &authorID}

	in := models.StoryInput{Title: d.Title, AuthorID: authorID, Content: d.Content}
	if ownerID, ok := st.OwnerID(); ok {
		in.OwnerID = &ownerID
	}

	updated, err := s.stories.Update(ctx, st.ID, in)
	if err != nil {
		return models.Story{}, fmt.Errorf("update story %d: %w", st.ID, err)
	}
	if updated.Expanded() {
		return updated, nil
	}

	// Write endpoints echo relations as bare ids.
	fresh, err := s.stories.Get(ctx, st.ID)
	if err != nil {
		s.logger.Warn(ctx, "re-fetch after update failed", "id", st.ID, "error", err.Error())
		return updated, nil
	}
	return fresh, nil
}

func (s *storySource) Delete(ctx context.Context, st models.Story) error {
	return s.stories.Delete(ctx, st.ID)
}

// StoryPage shows one story with the author list needed to edit it.
type StoryPage = Controller[models.Story, StoryDraft, []models.Author]

func NewStoryPage(stories StoryAPI, authors AuthorAPI, sess SessionReader, nav guard.Navigator,
	confirm Confirmer, logger logging.Logger) *StoryPage {
	src := &storySource{
		stories:  stories,
		authors:  authors,
		resolver: relation.NewAuthorResolver(authors),
		logger:   logger,
	}
	return NewController[models.Story, StoryDraft, []models.Author](src, sess, nav, confirm, logger)
}
