package booking

import (
	"context"
	"fmt"
	"time"

	"dbswash/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateSession starts a new booking draft, assigns it a unique session id,
// seeds the default appointment time from the requested day/night mode and
// stores it. Unknown seed package ids are ignored.
func (s *DefaultSessionService) CreateSession(seed SessionSeed) (*SessionView, error) {
	ctx := context.Background()

	draft := &models.BookingDraft{
		SessionID:       uuid.New().String(),
		Step:            models.StepScheduleAndVehicle,
		ScheduledAt:     seedScheduledAt(time.Now(), seed.Mode),
		Vehicle:         models.Vehicle{SizeClass: models.VehicleSedan},
		Customer:        models.Customer{PaymentMethod: models.PaymentMobileMoney},
		SubmissionState: models.SubmissionIdle,
		CreatedAt:       time.Now(),
	}

	if seed.PackageID != 0 {
		if _, err := s.Catalog.PackageByID(seed.PackageID); err == nil {
			draft.SelectedPackageID = seed.PackageID
		} else {
			s.Logger.Debug("ignoring unknown seed package", zap.Int("packageId", seed.PackageID))
		}
	}

	if err := s.Store.Save(ctx, draft); err != nil {
		return nil, err
	}
	return s.view(draft)
}

// GetSession returns the draft together with its freshly derived quote.
func (s *DefaultSessionService) GetSession(sessionID string) (*SessionView, error) {
	draft, err := s.Store.Get(context.Background(), sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(draft)
}

// CancelSession discards an in-progress draft.
func (s *DefaultSessionService) CancelSession(sessionID string) error {
	ctx := context.Background()
	if _, err := s.Store.Get(ctx, sessionID); err != nil {
		return err
	}
	if err := s.Store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}

// seedScheduledAt computes the default appointment time. Night mode seeds
// 20:00 the same day; otherwise, outside the 06:00-18:00 window the next day
// at 10:00 is proposed, inside it the current time stands.
func seedScheduledAt(now time.Time, mode string) string {
	if mode == "night" {
		at := time.Date(now.Year(), now.Month(), now.Day(), 20, 0, 0, 0, now.Location())
		return at.Format(models.ScheduledAtLayout)
	}
	if now.Hour() > 18 || now.Hour() < 6 {
		next := now.AddDate(0, 0, 1)
		at := time.Date(next.Year(), next.Month(), next.Day(), 10, 0, 0, 0, now.Location())
		return at.Format(models.ScheduledAtLayout)
	}
	return now.Format(models.ScheduledAtLayout)
}

// loadMutable fetches a draft that is still open for edits. Submitted drafts
// are read-only and an in-flight submission blocks concurrent changes.
func (s *DefaultSessionService) loadMutable(ctx context.Context, sessionID string) (*models.BookingDraft, error) {
	draft, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	switch draft.SubmissionState {
	case models.SubmissionSuccess:
		return nil, ErrSessionSubmitted
	case models.SubmissionProcessing:
		return nil, ErrSubmitInFlight
	}
	return draft, nil
}

// view pairs a draft with its derived quote.
func (s *DefaultSessionService) view(draft *models.BookingDraft) (*SessionView, error) {
	packages, err := s.Catalog.Packages()
	if err != nil {
		return nil, fmt.Errorf("failed to load package catalog: %w", err)
	}
	extras, err := s.Catalog.Extras()
	if err != nil {
		return nil, fmt.Errorf("failed to load extras catalog: %w", err)
	}
	return &SessionView{
		Draft: draft,
		Quote: BuildQuote(draft, packages, extras, s.Currency),
	}, nil
}
