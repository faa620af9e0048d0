package pages

import (
	"context"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	noContent     = "No content available"
	untitled      = "Untitled Story"
	excerptLength = 200
	snippetLength = 100
)

var sentenceBreak = regexp.MustCompile(`[.!?]+`)

// Preview returns the first two sentences of content, with "..." when more
// follow.
func Preview(content string) string {
	if strings.TrimSpace(content) == "" {
		return noContent
	}
	var sentences []string
	for _, s := range sentenceBreak.Split(content, -1) {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}
	if len(sentences) == 0 {
		return noContent
	}
	if len(sentences) <= 2 {
		return strings.Join(sentences, ". ")
	}
	return strings.Join(sentences[:2], ". ") + "..."
}

// Excerpt cuts content to n runes, adding "..." when it was longer.
func Excerpt(content string, n int) string {
	if content == "" {
		return noContent
	}
	if utf8.RuneCountInString(content) <= n {
		return content
	}
	return string([]rune(content)[:n]) + "..."
}

func titleOrUntitled(title string) string {
	if strings.TrimSpace(title) == "" {
		return untitled
	}
	return title
}

type StorySummary struct {
	ID      int64
	Title   string
	Author  string
	Preview string
}

type StoriesList struct {
	stories StoryAPI
}

func NewStoriesList(stories StoryAPI) *StoriesList {
	return &StoriesList{stories: stories}
}

func (p *StoriesList) Load(ctx context.Context) ([]StorySummary, error) {
	stories, err := p.stories.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]StorySummary, 0, len(stories))
	for _, s := range stories {
		out = append(out, StorySummary{
			ID:      s.ID,
			Title:   titleOrUntitled(s.Title),
			Author:  s.AuthorName(),
			Preview: Preview(s.Content),
		})
	}
	return out, nil
}

type AuthorSummary struct {
	ID         int64
	Name       string
	StoryCount int
}

type AuthorsList struct {
	authors AuthorAPI
}

func NewAuthorsList(authors AuthorAPI) *AuthorsList {
	return &AuthorsList{authors: authors}
}

func (p *AuthorsList) Load(ctx context.Context) ([]AuthorSummary, error) {
	authors, err := p.authors.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]AuthorSummary, 0, len(authors))
	for _, a := range authors {
		out = append(out, AuthorSummary{ID: a.ID, Name: a.Name, StoryCount: len(a.Stories)})
	}
	return out, nil
}

type StoryExcerpt struct {
	ID      int64
	Title   string
	Excerpt string
}

type AuthorView struct {
	ID      int64
	Name    string
	Stories []StoryExcerpt
}

type AuthorPage struct {
	authors AuthorAPI
}

func NewAuthorPage(authors AuthorAPI) *AuthorPage {
	return &AuthorPage{authors: authors}
}

func (p *AuthorPage) Load(ctx context.Context, id int64) (AuthorView, error) {
	a, err := p.authors.Get(ctx, id)
	if err != nil {
		return AuthorView{}, err
	}
	v := AuthorView{ID: a.ID, Name: a.Name, Stories: make([]StoryExcerpt, 0, len(a.Stories))}
	for _, s := range a.Stories {
		v.Stories = append(v.Stories, StoryExcerpt{
			ID:      s.ID,
			Title:   titleOrUntitled(s.Title),
			Excerpt: Excerpt(s.Content, excerptLength),
		})
	}
	return v, nil
}

type CheckInSummary struct {
	ID        int64
	Title     string
	Category  string
	DayType   string
	Snippet   string
	CreatedAt time.Time
}

// CheckInsList shows every check-in the backend returns for the user;
// the backend does the owner filtering.
type CheckInsList struct {
	checkins CheckInAPI
}

func NewCheckInsList(checkins CheckInAPI) *CheckInsList {
	return &CheckInsList{checkins: checkins}
}

func (p *CheckInsList) Load(ctx context.Context) ([]CheckInSummary, error) {
	checkins, err := p.checkins.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CheckInSummary, 0, len(checkins))
	for _, c := range checkins {
		out = append(out, CheckInSummary{
			ID:        c.ID,
			Title:     c.Title,
			Category:  c.Category,
			DayType:   c.DayType,
			Snippet:   Excerpt(c.Description, snippetLength),
			CreatedAt: c.CreatedAt,
		})
	}
	return out, nil
}
