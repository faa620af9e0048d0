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

// StoryCreate is the new-story form.
type StoryCreate struct {
	stories  StoryAPI
	authors  AuthorAPI
	resolver *relation.AuthorResolver
	nav      guard.Navigator
	logger   logging.Logger
}

func NewStoryCreate(stories StoryAPI, authors AuthorAPI, nav guard.Navigator, logger logging.Logger) *StoryCreate {
	return &StoryCreate{
		stories:  stories,
		authors:  authors,
		resolver: relation.NewAuthorResolver(authors),
		nav:      nav,
		logger:   logger,
	}
}

// Authors lists the authors offered in the picker.
func (p *StoryCreate) Authors(ctx context.Context) ([]models.Author, error) {
	return p.authors.List(ctx)
}

// Submit validates d, resolves its author, creates the story and goes to
// the stories listing.
func (p *StoryCreate) Submit(ctx context.Context, d StoryDraft) (models.Story, error) {
	if err := services.ValidateStory(d.Title, d.Content); err != nil {
		return models.Story{}, err
	}
	authorID, err := p.resolver.Resolve(ctx, d.Author)
	if err != nil {
		return models.Story{}, err
	}

	created, err := p.stories.Create(ctx, models.StoryInput{Title: d.Title, AuthorID: authorID, Content: d.Content})
	if err != nil {
		p.logger.Warn(ctx, "story create failed", "error", err.Error())
		return models.Story{}, fmt.Errorf("create story: %w", err)
	}
	p.logger.Info(ctx, "story created", "id", created.ID, "author_id", authorID)
	p.nav.Navigate(StoriesPath)
	return created, nil
}

// CheckInCreate is the new-check-in form.
type CheckInCreate struct {
	checkins CheckInAPI
	nav      guard.Navigator
	logger   logging.Logger
}

func NewCheckInCreate(checkins CheckInAPI, nav guard.Navigator, logger logging.Logger) *CheckInCreate {
	return &CheckInCreate{checkins: checkins, nav: nav, logger: logger}
}

func (p *CheckInCreate) Submit(ctx context.Context, in models.CheckInInput) (models.CheckIn, error) {
	if err := services.ValidateCheckIn(in); err != nil {
		return models.CheckIn{}, err
	}
	created, err := p.checkins.Create(ctx, in)
	if err != nil {
		p.logger.Warn(ctx, "check-in create failed", "error", err.Error())
		return models.CheckIn{}, fmt.Errorf("create check-in: %w", err)
	}
	p.nav.Navigate(CheckInsPath)
	return created, nil
}
