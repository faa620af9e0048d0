// Package relation turns a story form's author input into the author id the
// backend expects.
package relation

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/safetytracker/tracker/internal/client/models"
	"github.com/safetytracker/tracker/internal/common"
)

// AuthorSelection is the author half of a story form: an existing author
// picked from the list and/or the name of a new one.
type AuthorSelection struct {
	SelectedAuthorID *int64
	NewAuthorName    string
}

// ParseSelection converts the raw picker value into an author id. Anything
// that is not a positive integer yields nil.
func ParseSelection(raw string) *int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return nil
	}
	return &id
}

// AuthorCreator is satisfied by *client.AuthorClient.
type AuthorCreator interface {
	Create(ctx context.Context, name string) (models.Author, error)
}

const missingAuthorMessage = "select an author or enter a new name"

type AuthorResolver struct {
	authors AuthorCreator
}

func NewAuthorResolver(authors AuthorCreator) *AuthorResolver {
	return &AuthorResolver{authors: authors}
}

// Resolve returns the author id for sel. A non-blank new name wins over the
// selection and creates the author first.
func (r *AuthorResolver) Resolve(ctx context.Context, sel AuthorSelection) (int64, error) {
	if name := strings.TrimSpace(sel.NewAuthorName); name != "" {
		author, err := r.authors.Create(ctx, name)
		if err != nil {
			return 0, fmt.Errorf("create author %q: %w", name, err)
		}
		return author.ID, nil
	}
	if sel.SelectedAuthorID != nil && *sel.SelectedAuthorID > 0 {
		return *sel.SelectedAuthorID, nil
	}
	return 0, common.InvalidMessage(missingAuthorMessage)
}
