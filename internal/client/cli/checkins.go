package cli

import (
	"context"
	"fmt"

	"github.com/safetytracker/tracker/internal/client/models"
	"github.com/safetytracker/tracker/internal/client/pages"
)

// CheckIns lists the user's check-ins.
func (a *App) CheckIns(ctx context.Context) error {
	return a.protect(ctx, func(ctx context.Context) error {
		a.mount(nil)
		list, err := pages.NewCheckInsList(a.checkins).Load(ctx)
		if err != nil {
			a.report(err)
			return err
		}
		if len(list) == 0 {
			fmt.Fprintln(a.out, "No check-ins yet. Type 'newcheckin' to add one.")
			return nil
		}
		for _, c := range list {
			fmt.Fprintf(a.out, "[%d] %s (%s, %s)\n    %s\n", c.ID, c.Title, c.Category, c.DayType, c.Snippet)
		}
		return nil
	})
}

// CheckIn mounts the check-in page for the id in args.
func (a *App) CheckIn(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: checkin <id>")
		return err
	}
	return a.protect(ctx, func(ctx context.Context) error {
		m := &checkInMount{app: a, page: pages.NewCheckInPage(a.checkins, a.session, a,
			promptConfirmer{reader: a.reader, w: a.out}, a.logger)}
		a.mount(m)
		err := m.page.Load(ctx, id)
		m.Render()
		return err
	})
}

// NewCheckIn prompts for a check-in and creates it.
func (a *App) NewCheckIn(ctx context.Context) error {
	return a.protect(ctx, func(ctx context.Context) error {
		a.mount(nil)
		in, err := a.promptCheckIn(models.CheckInInput{
			Category:      models.CheckInCategories[0],
			DayType:       models.DayTypes[1],
			ReactionLevel: 5,
			Effectiveness: 5,
		}, pages.CheckInLookups{Categories: models.CheckInCategories, DayTypes: models.DayTypes})
		if err != nil {
			return err
		}

		created, err := pages.NewCheckInCreate(a.checkins, a, a.logger).Submit(ctx, in)
		if err != nil {
			a.report(err)
			return err
		}
		fmt.Fprintf(a.out, "Check-in %d saved\n", created.ID)
		return nil
	})
}

func (a *App) promptCheckIn(d models.CheckInInput, lookups pages.CheckInLookups) (models.CheckInInput, error) {
	var err error
	if d.Title, err = a.promptDefault("Title", d.Title); err != nil {
		return d, err
	}
	if d.Description, err = a.promptDefault("What happened?", d.Description); err != nil {
		return d, err
	}
	if d.Category, err = GetChoice(a.reader, "Category", a.out, lookups.Categories, d.Category); err != nil {
		return d, err
	}
	if d.DayType, err = GetChoice(a.reader, "What kind of day is it?", a.out, lookups.DayTypes, d.DayType); err != nil {
		return d, err
	}
	if d.ReactionLevel, err = GetNumber(a.reader, "Reaction level", a.out, d.ReactionLevel, 1, 10); err != nil {
		return d, err
	}
	if d.CopingAction, err = a.promptDefault("What did you do to cope?", d.CopingAction); err != nil {
		return d, err
	}
	if d.Effectiveness, err = GetNumber(a.reader, "How well did it help", a.out, d.Effectiveness, 1, 10); err != nil {
		return d, err
	}
	if d.RelaxedToday, err = a.promptDefault("Something that relaxed you today (optional)", d.RelaxedToday); err != nil {
		return d, err
	}
	return d, nil
}

type checkInMount struct {
	app  *App
	page *pages.CheckInPage
}

func (m *checkInMount) Unmount() { m.page.Unmount() }

func (m *checkInMount) Render() {
	a := m.app
	v := m.page.View()
	if !a.renderState(v.Mode, v.Err) {
		return
	}

	c := v.Entity
	fmt.Fprintln(a.out, c.Title)
	if !c.CreatedAt.IsZero() {
		fmt.Fprintln(a.out, "Created:", c.CreatedAt.Format("Jan 2, 2006 15:04"))
	}
	fmt.Fprintf(a.out, "Category: %s\nDay: %s\nReaction level: %d/10\n", c.Category, c.DayType, c.ReactionLevel)
	fmt.Fprintf(a.out, "What happened: %s\nCoping action: %s\nEffectiveness: %d/10\n", c.Description, c.CopingAction, c.Effectiveness)
	if c.RelaxedToday != "" {
		fmt.Fprintln(a.out, "Relaxed today:", c.RelaxedToday)
	}

	if v.Mode == pages.ModeEditing {
		d := v.Draft
		fmt.Fprintf(a.out, "\n-- draft --\n%s | %s | %s | reaction %d | coping %q | effectiveness %d\n",
			d.Title, d.Category, d.DayType, d.ReactionLevel, d.CopingAction, d.Effectiveness)
	}
	a.renderFooter(v.Mode, v.Err, v.CanEdit, v.CanDelete)
}

func (m *checkInMount) Edit(ctx context.Context) error {
	if m.page.View().Mode == pages.ModeViewing {
		if err := m.page.BeginEdit(); err != nil {
			return err
		}
	}
	v := m.page.View()
	if v.Mode != pages.ModeEditing {
		return pages.ErrWrongMode
	}

	d, err := m.app.promptCheckIn(v.Draft, v.Lookup)
	if err != nil {
		return err
	}
	return m.page.UpdateDraft(func(dd *models.CheckInInput) { *dd = d })
}

func (m *checkInMount) Save(ctx context.Context) error   { return m.page.Submit(ctx) }
func (m *checkInMount) Cancel() error                    { return m.page.Cancel() }
func (m *checkInMount) Delete(ctx context.Context) error { return m.page.Delete(ctx) }
