package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/safetytracker/tracker/internal/client/pages"
)

// mountedPage is an entity page the edit commands act on.
type mountedPage interface {
	Render()
	Edit(ctx context.Context) error
	Save(ctx context.Context) error
	Cancel() error
	Delete(ctx context.Context) error
	Unmount()
}

var errNothingMounted = errors.New("open a story or check-in first")

func (a *App) withCurrent(ctx context.Context, fn func(ctx context.Context, p mountedPage) error) error {
	return a.protect(ctx, func(ctx context.Context) error {
		p := a.currentPage()
		if p == nil {
			fmt.Fprintln(a.out, errNothingMounted.Error())
			return errNothingMounted
		}
		return fn(ctx, p)
	})
}

// Edit opens (or continues) the draft of the current page.
func (a *App) Edit(ctx context.Context) error {
	return a.withCurrent(ctx, func(ctx context.Context, p mountedPage) error {
		if err := p.Edit(ctx); err != nil {
			a.report(err)
			return err
		}
		fmt.Fprintln(a.out, "Draft updated. Type 'save' to submit or 'cancel' to discard.")
		return nil
	})
}

// Save submits the draft of the current page.
func (a *App) Save(ctx context.Context) error {
	return a.withCurrent(ctx, func(ctx context.Context, p mountedPage) error {
		err := p.Save(ctx)
		p.Render()
		if err != nil && !errors.Is(err, pages.ErrLoadCanceled) {
			fmt.Fprintln(a.out, "Your draft was kept; fix it with 'edit' and 'save' again, or 'cancel'.")
		}
		return err
	})
}

// Cancel discards the draft of the current page.
func (a *App) Cancel(ctx context.Context) error {
	return a.withCurrent(ctx, func(ctx context.Context, p mountedPage) error {
		if err := p.Cancel(); err != nil {
			a.report(err)
			return err
		}
		p.Render()
		return nil
	})
}

// Delete removes the entity of the current page after confirmation.
func (a *App) Delete(ctx context.Context) error {
	return a.withCurrent(ctx, func(ctx context.Context, p mountedPage) error {
		err := p.Delete(ctx)
		switch {
		case errors.Is(err, pages.ErrDeleteAborted):
			fmt.Fprintln(a.out, "Delete cancelled")
			return nil
		case err != nil:
			a.report(err)
			return err
		}
		fmt.Fprintln(a.out, "Deleted.")
		return nil
	})
}

// renderState prints the parts of a page view shared by every entity page.
// It reports whether the entity itself should be printed.
func (a *App) renderState(mode pages.Mode, errMsg string) bool {
	switch mode {
	case pages.ModeInit, pages.ModeLoading:
		fmt.Fprintln(a.out, "Loading...")
		return false
	case pages.ModeLoadError:
		fmt.Fprintln(a.out, "Error:", errMsg)
		return false
	case pages.ModeDeleted:
		fmt.Fprintln(a.out, "Deleted.")
		return false
	}
	return true
}

func (a *App) renderFooter(mode pages.Mode, errMsg string, canEdit, canDelete bool) {
	if errMsg != "" {
		fmt.Fprintln(a.out, "Error:", errMsg)
	}
	switch {
	case mode == pages.ModeEditing:
		fmt.Fprintln(a.out, "Editing: 'edit' to change the draft, 'save' to submit, 'cancel' to discard")
	case canEdit && canDelete:
		fmt.Fprintln(a.out, "Actions: edit, delete")
	}
}

// promptDefault reads a line; an empty answer keeps current.
func (a *App) promptDefault(label, current string) (string, error) {
	text, err := GetSimpleText(a.reader, fmt.Sprintf("%s [%s]", label, current), a.out)
	if err != nil {
		return "", err
	}
	if text == "" {
		return current, nil
	}
	return text, nil
}
