package pages

import (
	"context"
	"fmt"

	"github.com/safetytracker/tracker/internal/client/guard"
	"github.com/safetytracker/tracker/internal/client/models"
	"github.com/safetytracker/tracker/internal/client/services"
	"github.com/safetytracker/tracker/internal/logging"
)

// CheckInAPI is implemented by *client.CheckInClient.
type CheckInAPI interface {
	List(ctx context.Context) ([]models.CheckIn, error)
	Get(ctx context.Context, id int64) (models.CheckIn, error)
	Create(ctx context.Context, in models.CheckInInput) (models.CheckIn, error)
	Update(ctx context.Context, id int64, in models.CheckInInput) (models.CheckIn, error)
	Delete(ctx context.Context, id int64) error
}

// CheckInLookups holds the choices offered when editing a check-in.
type CheckInLookups struct {
	Categories []string
	DayTypes   []string
}

type checkInSource struct {
	checkins CheckInAPI
	sess     SessionReader
}

func (s *checkInSource) Noun() string        { return "check-in" }
func (s *checkInSource) ListingPath() string { return CheckInsPath }

// Fetch refuses check-ins owned by someone other than the signed-in user.
func (s *checkInSource) Fetch(ctx context.Context, id int64) (models.CheckIn, error) {
	ci, err := s.checkins.Get(ctx, id)
	if err != nil {
		return models.CheckIn{}, err
	}
	snap := s.sess.Snapshot()
	if ownerID, ok := ci.OwnerID(); ok && snap.User != nil && ownerID != snap.User.ID {
		return models.CheckIn{}, ErrViewDenied
	}
	return ci, nil
}

func (s *checkInSource) Lookup(ctx context.Context) (CheckInLookups, error) {
	return CheckInLookups{
		Categories: append([]string(nil), models.CheckInCategories...),
		DayTypes:   append([]string(nil), models.DayTypes...),
	}, nil
}

func (s *checkInSource) Draft(ci models.CheckIn) models.CheckInInput {
	return ci.Input()
}

func (s *checkInSource) Submit(ctx context.Context, ci models.CheckIn, d *models.CheckInInput) (models.CheckIn, error) {
	if err := services.ValidateCheckIn(*d); err != nil {
		return models.CheckIn{}, err
	}
	updated, err := s.checkins.Update(ctx, ci.ID, *d)
	if err != nil {
		return models.CheckIn{}, fmt.Errorf("update check-in %d: %w", ci.ID, err)
	}
	return updated, nil
}

func (s *checkInSource) Delete(ctx context.Context, ci models.CheckIn) error {
	return s.checkins.Delete(ctx, ci.ID)
}

type CheckInPage = Controller[models.CheckIn, models.CheckInInput, CheckInLookups]

func NewCheckInPage(checkins CheckInAPI, sess SessionReader, nav guard.Navigator,
	confirm Confirmer, logger logging.Logger) *CheckInPage {
	return NewController[models.CheckIn, models.CheckInInput, CheckInLookups](
		&checkInSource{checkins: checkins, sess: sess}, sess, nav, confirm, logger)
}
