package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/safetytracker/tracker/internal/client/models"
	"github.com/safetytracker/tracker/internal/client/pages"
	"github.com/safetytracker/tracker/internal/client/relation"
)

// Stories lists every story with a short preview.
func (a *App) Stories(ctx context.Context) error {
	return a.protect(ctx, func(ctx context.Context) error {
		a.mount(nil)
		list, err := pages.NewStoriesList(a.stories).Load(ctx)
		if err != nil {
			a.report(err)
			return err
		}
		if len(list) == 0 {
			fmt.Fprintln(a.out, "No stories yet. Type 'newstory' to write one.")
			return nil
		}
		for _, s := range list {
			fmt.Fprintf(a.out, "[%d] %s by %s\n    %s\n", s.ID, s.Title, s.Author, s.Preview)
		}
		return nil
	})
}

// Story mounts the story page for the id in args.
func (a *App) Story(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: story <id>")
		return err
	}
	return a.protect(ctx, func(ctx context.Context) error {
		m := &storyMount{app: a, page: pages.NewStoryPage(a.stories, a.authors, a.session, a,
			promptConfirmer{reader: a.reader, w: a.out}, a.logger)}
		a.mount(m)
		err := m.page.Load(ctx, id)
		m.Render()
		return err
	})
}

// NewStory prompts for a story and creates it.
func (a *App) NewStory(ctx context.Context) error {
	return a.protect(ctx, func(ctx context.Context) error {
		a.mount(nil)
		create := pages.NewStoryCreate(a.stories, a.authors, a, a.logger)

		authors, err := create.Authors(ctx)
		if err != nil {
			a.report(err)
			return err
		}

		var d pages.StoryDraft
		if d.Title, err = GetSimpleText(a.reader, "Title", a.out); err != nil {
			return err
		}
		if d.Content, err = GetMultiline(a.reader, "Story", a.out); err != nil {
			return err
		}
		if d.Author, err = a.promptAuthor(authors, nil); err != nil {
			return err
		}

		created, err := create.Submit(ctx, d)
		if err != nil {
			a.report(err)
			return err
		}
		fmt.Fprintf(a.out, "Story %d created\n", created.ID)
		return nil
	})
}

// promptAuthor shows the author picker followed by the new-author field.
func (a *App) promptAuthor(authors []models.Author, current *int64) (relation.AuthorSelection, error) {
	fmt.Fprintln(a.out, "Authors:")
	for _, au := range authors {
		fmt.Fprintf(a.out, "  [%d] %s\n", au.ID, au.Name)
	}

	label := "Author id"
	if current != nil {
		label = fmt.Sprintf("Author id [%d]", *current)
	}
	pick, err := GetSimpleText(a.reader, label, a.out)
	if err != nil {
		return relation.AuthorSelection{}, err
	}
	sel := relation.AuthorSelection{SelectedAuthorID: current}
	if pick != "" {
		sel.SelectedAuthorID = relation.ParseSelection(pick)
	}

	sel.NewAuthorName, err = GetSimpleText(a.reader, "Or a new author name (empty to use the id)", a.out)
	if err != nil {
		return relation.AuthorSelection{}, err
	}
	return sel, nil
}

// Authors lists authors with their story counts.
func (a *App) Authors(ctx context.Context) error {
	return a.protect(ctx, func(ctx context.Context) error {
		a.mount(nil)
		list, err := pages.NewAuthorsList(a.authors).Load(ctx)
		if err != nil {
			a.report(err)
			return err
		}
		for _, au := range list {
			fmt.Fprintf(a.out, "[%d] %s (%d %s)\n", au.ID, au.Name, au.StoryCount, plural(au.StoryCount, "story", "stories"))
		}
		return nil
	})
}

// Author shows one author and excerpts of their stories.
func (a *App) Author(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: author <id>")
		return err
	}
	return a.protect(ctx, func(ctx context.Context) error {
		a.mount(nil)
		v, err := pages.NewAuthorPage(a.authors).Load(ctx, id)
		if err != nil {
			a.report(err)
			return err
		}
		fmt.Fprintln(a.out, v.Name)
		if len(v.Stories) == 0 {
			fmt.Fprintln(a.out, "  No stories yet.")
		}
		for _, s := range v.Stories {
			fmt.Fprintf(a.out, "  [%d] %s\n      %s\n", s.ID, s.Title, s.Excerpt)
		}
		return nil
	})
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

type storyMount struct {
	app  *App
	page *pages.StoryPage
}

func (m *storyMount) Unmount() { m.page.Unmount() }

func (m *storyMount) Render() {
	a := m.app
	v := m.page.View()
	if !a.renderState(v.Mode, v.Err) {
		return
	}

	s := v.Entity
	fmt.Fprintf(a.out, "%s\nby %s", s.Title, s.AuthorName())
	if !s.CreatedAt.IsZero() {
		fmt.Fprintf(a.out, ", %s", s.CreatedAt.Format("Jan 2, 2006"))
	}
	fmt.Fprintf(a.out, "\n\n%s\n", s.Content)

	if v.Mode == pages.ModeEditing {
		fmt.Fprintf(a.out, "\n-- draft --\nTitle: %s\n%s\n", v.Draft.Title, v.Draft.Content)
		if name := strings.TrimSpace(v.Draft.Author.NewAuthorName); name != "" {
			fmt.Fprintf(a.out, "New author: %s\n", name)
		} else if v.Draft.Author.SelectedAuthorID != nil {
			fmt.Fprintf(a.out, "Author id: %d\n", *v.Draft.Author.SelectedAuthorID)
		}
	}
	a.renderFooter(v.Mode, v.Err, v.CanEdit, v.CanDelete)
}

func (m *storyMount) Edit(ctx context.Context) error {
	a := m.app
	if m.page.View().Mode == pages.ModeViewing {
		if err := m.page.BeginEdit(); err != nil {
			return err
		}
	}
	v := m.page.View()
	if v.Mode != pages.ModeEditing {
		return pages.ErrWrongMode
	}

	d := v.Draft
	var err error
	if d.Title, err = a.promptDefault("Title", d.Title); err != nil {
		return err
	}
	content, err := GetMultiline(a.reader, "Story (empty keeps the current text)", a.out)
	if err != nil {
		return err
	}
	if content != "" {
		d.Content = content
	}
	if d.Author, err = a.promptAuthor(v.Lookup, d.Author.SelectedAuthorID); err != nil {
		return err
	}

	return m.page.UpdateDraft(func(dd *pages.StoryDraft) { *dd = d })
}

func (m *storyMount) Save(ctx context.Context) error   { return m.page.Submit(ctx) }
func (m *storyMount) Cancel() error                    { return m.page.Cancel() }
func (m *storyMount) Delete(ctx context.Context) error { return m.page.Delete(ctx) }
