package client

import (
	"context"

	"github.com/safetytracker/tracker/internal/client/models"
)

const (
	StoriesPath  = "/api/stories/"
	AuthorsPath  = "/api/authors/"
	CheckInsPath = "/api/check_ins/"
)

type StoryClient struct {
	res *Resource[models.Story]
}

func NewStoryClient(doer Doer) *StoryClient {
	return &StoryClient{res: NewResource[models.Story](doer, StoriesPath)}
}

func (c *StoryClient) List(ctx context.Context) ([]models.Story, error) {
	return c.res.List(ctx)
}

func (c *StoryClient) Get(ctx context.Context, id int64) (models.Story, error) {
	return c.res.Get(ctx, id)
}

func (c *StoryClient) Create(ctx context.Context, in models.StoryInput) (models.Story, error) {
	return c.res.Create(ctx, in)
}

func (c *StoryClient) Update(ctx context.Context, id int64, in models.StoryInput) (models.Story, error) {
	return c.res.Update(ctx, id, in)
}

func (c *StoryClient) Delete(ctx context.Context, id int64) error {
	return c.res.Delete(ctx, id)
}

type AuthorClient struct {
	res *Resource[models.Author]
}

func NewAuthorClient(doer Doer) *AuthorClient {
	return &AuthorClient{res: NewResource[models.Author](doer, AuthorsPath)}
}

func (c *AuthorClient) List(ctx context.Context) ([]models.Author, error) {
	return c.res.List(ctx)
}

func (c *AuthorClient) Get(ctx context.Context, id int64) (models.Author, error) {
	return c.res.Get(ctx, id)
}

// Create registers a new author by name and returns it with its id.
func (c *AuthorClient) Create(ctx context.Context, name string) (models.Author, error) {
	return c.res.Create(ctx, map[string]string{"name": name})
}

type CheckInClient struct {
	res *Resource[models.CheckIn]
}

func NewCheckInClient(doer Doer) *CheckInClient {
	return &CheckInClient{res: NewResource[models.CheckIn](doer, CheckInsPath)}
}

func (c *CheckInClient) List(ctx context.Context) ([]models.CheckIn, error) {
	return c.res.List(ctx)
}

func (c *CheckInClient) Get(ctx context.Context, id int64) (models.CheckIn, error) {
	return c.res.Get(ctx, id)
}

func (c *CheckInClient) Create(ctx context.Context, in models.CheckInInput) (models.CheckIn, error) {
	return c.res.Create(ctx, in)
}

func (c *CheckInClient) Update(ctx context.Context, id int64, in models.CheckInInput) (models.CheckIn, error) {
	return c.res.Update(ctx, id, in)
}

func (c *CheckInClient) Delete(ctx context.Context, id int64) error {
	return c.res.Delete(ctx, id)
}
