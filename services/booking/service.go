package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	catalogRepo "sattva/database/repository/catalog"
	"sattva/models"
	"sattva/services/session"
	"sattva/services/tasks"
	"sattva/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	totalSteps = 3
	// DateWindow is how many consecutive days, starting on the mount day,
	// the wizard offers.
	DateWindow = 7
)

// DefaultBookingService implements BookingService on top of the session
// store and the task scheduler.
type DefaultBookingService struct {
	Catalog     catalogRepo.CatalogRepository
	Store       session.Store
	Locker      *session.Locker
	Scheduler   tasks.Scheduler
	Media       utils.MediaResolver
	Logger      *zap.Logger
	SubmitDelay time.Duration
	Now         func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultBookingService) View(ctx context.Context, sessionID string) (*models.BookingView, error) {
	return s.update(ctx, sessionID, nil)
}

// SelectProvider records the provider and moves on to scheduling. Existing
// date and time selections are kept so that changing the provider does not
// lose them.
func (s *DefaultBookingService) SelectProvider(ctx context.Context, sessionID string, providerID int) (*models.BookingView, error) {
	return s.update(ctx, sessionID, func(b *models.BookingSession) error {
		if b.Step != models.StepChoosingProvider {
			return ErrWrongStep
		}
		if _, err := s.Catalog.ProviderByID(ctx, providerID); err != nil {
			if errors.Is(err, catalogRepo.ErrNotFound) {
				return ErrProviderNotFound
			}
			return fmt.Errorf("failed to load provider %d: %w", providerID, err)
		}
		id := providerID
		b.ProviderID = &id
		b.Step = models.StepChoosingSchedule
		return nil
	})
}

func (s *DefaultBookingService) ChangeProvider(ctx context.Context, sessionID string) (*models.BookingView, error) {
	return s.update(ctx, sessionID, func(b *models.BookingSession) error {
		if b.Pending() {
			return ErrSubmissionPending
		}
		if b.Step != models.StepChoosingSchedule {
			return ErrWrongStep
		}
		b.Step = models.StepChoosingProvider
		return nil
	})
}

func (s *DefaultBookingService) SelectDate(ctx context.Context, sessionID string, index int) (*models.BookingView, error) {
	return s.update(ctx, sessionID, func(b *models.BookingSession) error {
		if b.Pending() {
			return ErrSubmissionPending
		}
		if b.Step != models.StepChoosingSchedule {
			return ErrWrongStep
		}
		if index < 0 || index >= DateWindow {
			return ErrInvalidDate
		}
		i := index
		b.DateIndex = &i
		return nil
	})
}

func (s *DefaultBookingService) SelectTime(ctx context.Context, sessionID, slot string) (*models.BookingView, error) {
	slots, err := s.Catalog.TimeSlots(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load time slots: %w", err)
	}
	return s.update(ctx, sessionID, func(b *models.BookingSession) error {
		if b.Pending() {
			return ErrSubmissionPending
		}
		if b.Step != models.StepChoosingSchedule {
			return ErrWrongStep
		}
		if b.DateIndex == nil {
			return ErrDateRequired
		}
		if !contains(slots, slot) {
			return ErrInvalidTimeSlot
		}
		b.TimeSlot = slot
		return nil
	})
}

func (s *DefaultBookingService) Confirm(ctx context.Context, sessionID string) (*models.BookingView, error) {
	return s.update(ctx, sessionID, func(b *models.BookingSession) error {
		if b.Step != models.StepChoosingSchedule {
			return ErrWrongStep
		}
		if b.Pending() {
			return ErrSubmissionPending
		}
		if b.DateIndex == nil || b.TimeSlot == "" {
			return ErrSelectionIncomplete
		}

		submissionID := uuid.New().String()
		payload, err := tasks.SessionPayload{SessionID: sessionID, SubmissionID: submissionID}.Encode()
		if err != nil {
			return err
		}
		taskID, err := s.Scheduler.Schedule(ctx, tasks.TypeBookingSubmit, payload, s.SubmitDelay)
		if err != nil {
			return fmt.Errorf("failed to schedule booking submission: %w", err)
		}
		b.SubmissionID = submissionID
		b.TaskID = taskID
		s.Logger.Info("booking submission scheduled",
			zap.String("sessionID", sessionID),
			zap.String("submissionID", submissionID),
			zap.Duration("delay", s.SubmitDelay),
		)
		return nil
	})
}

// BookAnother restarts the wizard from a confirmed booking with every
// selection cleared. The offered dates stay those of the original mount.
func (s *DefaultBookingService) BookAnother(ctx context.Context, sessionID string) (*models.BookingView, error) {
	return s.update(ctx, sessionID, func(b *models.BookingSession) error {
		if b.Step != models.StepConfirmed {
			return ErrWrongStep
		}
		*b = models.BookingSession{
			Step:      models.StepChoosingProvider,
			MountedAt: b.MountedAt,
		}
		return nil
	})
}

func (s *DefaultBookingService) Teardown(ctx context.Context, sessionID string) error {
	unlock := s.Locker.Lock(sessionID)
	defer unlock()

	var b models.BookingSession
	found, err := s.Store.Get(ctx, sessionID, session.KeyBooking, &b)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	if b.Pending() {
		if err := s.Scheduler.Cancel(ctx, b.TaskID); err != nil && !errors.Is(err, tasks.ErrTaskNotFound) {
			s.Logger.Warn("failed to cancel booking submission",
				zap.String("sessionID", sessionID),
				zap.String("taskID", b.TaskID),
				zap.Error(err),
			)
		}
	}
	if err := s.Store.Delete(ctx, sessionID, session.KeyBooking); err != nil {
		return err
	}
	s.Logger.Debug("booking wizard torn down", zap.String("sessionID", sessionID), zap.Bool("hadPending", b.Pending()))
	return nil
}

func (s *DefaultBookingService) RegisterTasks(mux *tasks.Mux) {
	mux.HandleFunc(tasks.TypeBookingSubmit, s.completeSubmission)
}

// completeSubmission moves the wizard to the confirmed step, unless the
// session has been torn down or has started another submission since.
func (s *DefaultBookingService) completeSubmission(ctx context.Context, raw []byte) error {
	p, err := tasks.DecodeSessionPayload(raw)
	if err != nil {
		return err
	}

	unlock := s.Locker.Lock(p.SessionID)
	defer unlock()

	var b models.BookingSession
	found, err := s.Store.Get(ctx, p.SessionID, session.KeyBooking, &b)
	if err != nil {
		return err
	}
	if !found || b.SubmissionID != p.SubmissionID {
		s.Logger.Debug("stale booking submission ignored",
			zap.String("sessionID", p.SessionID),
			zap.String("submissionID", p.SubmissionID),
		)
		return nil
	}

	confirmedAt := s.now()
	b.Step = models.StepConfirmed
	b.ConfirmedAt = &confirmedAt
	b.SubmissionID = ""
	b.TaskID = ""
	if err := s.Store.Set(ctx, p.SessionID, session.KeyBooking, b); err != nil {
		return err
	}
	s.Logger.Info("booking confirmed", zap.String("sessionID", p.SessionID), zap.String("timeSlot", b.TimeSlot))
	return nil
}

// update loads the wizard under the session lock, mounting it on first
// access, applies fn (if any), persists it and renders the view.
func (s *DefaultBookingService) update(ctx context.Context, sessionID string, fn func(*models.BookingSession) error) (*models.BookingView, error) {
	unlock := s.Locker.Lock(sessionID)
	defer unlock()

	var b models.BookingSession
	found, err := s.Store.Get(ctx, sessionID, session.KeyBooking, &b)
	if err != nil {
		return nil, err
	}
	dirty := false
	if !found {
		b = models.BookingSession{Step: models.StepChoosingProvider, MountedAt: s.now()}
		dirty = true
	}

	if fn != nil {
		if err := fn(&b); err != nil {
			return nil, err
		}
		dirty = true
	}
	if dirty {
		if err := s.Store.Set(ctx, sessionID, session.KeyBooking, b); err != nil {
			if b.Pending() {
				_ = s.Scheduler.Cancel(ctx, b.TaskID)
			}
			return nil, err
		}
	}
	return s.render(ctx, b)
}

func (s *DefaultBookingService) render(ctx context.Context, b models.BookingSession) (*models.BookingView, error) {
	providers, err := s.Catalog.Providers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load providers: %w", err)
	}
	slots, err := s.Catalog.TimeSlots(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load time slots: %w", err)
	}
	if s.Media != nil {
		for i := range providers {
			providers[i].ImageURL = s.Media.ImageURL(providers[i].ImageID)
		}
	}

	view := &models.BookingView{
		Step:       b.Step,
		StepNumber: b.Step.Number(),
		TotalSteps: totalSteps,
		Providers:  providers,
		Dates:      Dates(b.MountedAt, b.DateIndex),
		DateIndex:  b.DateIndex,
		Pending:    b.Pending(),
	}
	if b.TimeSlot != "" {
		slot := b.TimeSlot
		view.TimeSlot = &slot
	}
	view.TimeEnabled = b.DateIndex != nil && !b.Pending()
	view.CanConfirm = b.Step == models.StepChoosingSchedule && b.DateIndex != nil && b.TimeSlot != "" && !b.Pending()

	view.TimeSlots = make([]models.TimeSlotOption, len(slots))
	for i, slot := range slots {
		view.TimeSlots[i] = models.TimeSlotOption{
			Slot:     slot,
			Selected: slot == b.TimeSlot,
			Enabled:  view.TimeEnabled,
		}
	}

	if b.ProviderID != nil {
		for i := range providers {
			if providers[i].ID == *b.ProviderID {
				p := providers[i]
				view.Provider = &p
				view.ConfirmPrice = p.Price
				break
			}
		}
	}

	if b.Step == models.StepConfirmed && view.Provider != nil {
		date := ""
		if b.DateIndex != nil {
			date = view.Dates[*b.DateIndex].ISO
		}
		view.Confirmation = &models.BookingConfirmation{
			ProviderName: view.Provider.Name,
			TimeSlot:     b.TimeSlot,
			Date:         date,
			Message:      fmt.Sprintf("Your session with %s is set for %s.", view.Provider.Name, b.TimeSlot),
		}
	}
	return view, nil
}

// Dates lists the DateWindow days starting on the mount day.
func Dates(mountedAt time.Time, selected *int) []models.DateSlot {
	dates := make([]models.DateSlot, DateWindow)
	for i := range dates {
		d := mountedAt.AddDate(0, 0, i)
		dates[i] = models.DateSlot{
			Index:    i,
			Day:      d.Format("Mon"),
			Date:     d.Day(),
			ISO:      d.Format("2006-01-02"),
			Selected: selected != nil && *selected == i,
		}
	}
	return dates
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
