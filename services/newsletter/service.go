// Package newsletter drives the scroll-triggered newsletter prompt. Once
// dismissed, the prompt stays hidden for the rest of the session.
package newsletter

import (
	"context"
	"errors"
	"time"

	"sattva/models"
	"sattva/services/session"
	"sattva/services/tasks"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	headline        = "Unlock Your Dosha Guide"
	pitch           = "Join 10k+ wellness seekers. Get a free Ayurvedic food chart when you sign up."
	successHeadline = "You're on the list!"
	successPitch    = "Check your inbox for your free guide."
)

type NewsletterService interface {
	State(ctx context.Context, sessionID string) (*models.NewsletterView, error)
	ReportScroll(ctx context.Context, sessionID string, fraction float64) (*models.NewsletterView, error)
	Dismiss(ctx context.Context, sessionID string) (*models.NewsletterView, error)
	Subscribe(ctx context.Context, sessionID, email string) (*models.NewsletterView, error)
	// Teardown cancels a scheduled auto-dismiss and drops the overlay state.
	// The session's dismissal flag is kept.
	Teardown(ctx context.Context, sessionID string) error
	RegisterTasks(mux *tasks.Mux)
}

type DefaultNewsletterService struct {
	Store       session.Store
	Locker      *session.Locker
	Scheduler   tasks.Scheduler
	Logger      *zap.Logger
	Threshold   float64
	AutoDismiss time.Duration

	validate *validator.Validate
}

func NewNewsletterService(store session.Store, locker *session.Locker, scheduler tasks.Scheduler, logger *zap.Logger, threshold float64, autoDismiss time.Duration) *DefaultNewsletterService {
	return &DefaultNewsletterService{
		Store:       store,
		Locker:      locker,
		Scheduler:   scheduler,
		Logger:      logger,
		Threshold:   threshold,
		AutoDismiss: autoDismiss,
		validate:    validator.New(),
	}
}

func (s *DefaultNewsletterService) State(ctx context.Context, sessionID string) (*models.NewsletterView, error) {
	return s.update(ctx, sessionID, nil)
}

// ReportScroll shows the prompt once the visitor has scrolled past the
// threshold. Scrolling back up does not hide it again.
func (s *DefaultNewsletterService) ReportScroll(ctx context.Context, sessionID string, fraction float64) (*models.NewsletterView, error) {
	if fraction < 0 || fraction > 1 {
		return nil, ErrInvalidFraction
	}
	return s.update(ctx, sessionID, func(st *models.NewsletterState, dismissed bool) (bool, error) {
		if dismissed || st.Visible || fraction <= s.Threshold {
			return false, nil
		}
		st.Visible = true
		return false, nil
	})
}

func (s *DefaultNewsletterService) Dismiss(ctx context.Context, sessionID string) (*models.NewsletterView, error) {
	return s.update(ctx, sessionID, func(st *models.NewsletterState, _ bool) (bool, error) {
		s.cancelPending(ctx, sessionID, st)
		st.Visible = false
		return true, nil
	})
}

func (s *DefaultNewsletterService) Subscribe(ctx context.Context, sessionID, email string) (*models.NewsletterView, error) {
	if s.validate.Var(email, "required,email") != nil {
		return nil, ErrInvalidEmail
	}
	return s.update(ctx, sessionID, func(st *models.NewsletterState, dismissed bool) (bool, error) {
		if dismissed {
			return false, ErrDismissed
		}
		if st.Status == models.NewsletterSuccess {
			return false, nil
		}
		if !st.Visible {
			return false, ErrNotVisible
		}

		submissionID := uuid.New().String()
		payload, err := tasks.SessionPayload{SessionID: sessionID, SubmissionID: submissionID}.Encode()
		if err != nil {
			return false, err
		}
		taskID, err := s.Scheduler.Schedule(ctx, tasks.TypeNewsletterAutoDismiss, payload, s.AutoDismiss)
		if err != nil {
			return false, err
		}
		st.Status = models.NewsletterSuccess
		st.SubmissionID = submissionID
		st.TaskID = taskID
		s.Logger.Info("newsletter signup accepted", zap.String("sessionID", sessionID))
		return false, nil
	})
}

func (s *DefaultNewsletterService) Teardown(ctx context.Context, sessionID string) error {
	unlock := s.Locker.Lock(sessionID)
	defer unlock()

	var st models.NewsletterState
	found, err := s.Store.Get(ctx, sessionID, session.KeyNewsletter, &st)
	if err != nil || !found {
		return err
	}
	s.cancelPending(ctx, sessionID, &st)
	return s.Store.Delete(ctx, sessionID, session.KeyNewsletter)
}

func (s *DefaultNewsletterService) RegisterTasks(mux *tasks.Mux) {
	mux.HandleFunc(tasks.TypeNewsletterAutoDismiss, s.autoDismiss)
}

func (s *DefaultNewsletterService) autoDismiss(ctx context.Context, raw []byte) error {
	p, err := tasks.DecodeSessionPayload(raw)
	if err != nil {
		return err
	}

	unlock := s.Locker.Lock(p.SessionID)
	defer unlock()

	var st models.NewsletterState
	found, err := s.Store.Get(ctx, p.SessionID, session.KeyNewsletter, &st)
	if err != nil {
		return err
	}
	if !found || st.SubmissionID != p.SubmissionID {
		s.Logger.Debug("stale newsletter auto-dismiss ignored", zap.String("sessionID", p.SessionID))
		return nil
	}
	st.Visible = false
	st.SubmissionID = ""
	st.TaskID = ""
	if err := s.Store.Set(ctx, p.SessionID, session.KeyNewsletter, st); err != nil {
		return err
	}
	return s.Store.Set(ctx, p.SessionID, session.KeyNewsletterDismissed, true)
}

func (s *DefaultNewsletterService) cancelPending(ctx context.Context, sessionID string, st *models.NewsletterState) {
	if st.TaskID == "" {
		return
	}
	if err := s.Scheduler.Cancel(ctx, st.TaskID); err != nil && !errors.Is(err, tasks.ErrTaskNotFound) {
		s.Logger.Warn("failed to cancel newsletter auto-dismiss", zap.String("sessionID", sessionID), zap.Error(err))
	}
	st.SubmissionID = ""
	st.TaskID = ""
}

// update applies fn to the overlay state under the session lock. fn reports
// whether the dismissal flag must be recorded.
func (s *DefaultNewsletterService) update(ctx context.Context, sessionID string, fn func(*models.NewsletterState, bool) (bool, error)) (*models.NewsletterView, error) {
	unlock := s.Locker.Lock(sessionID)
	defer unlock()

	var dismissed bool
	if _, err := s.Store.Get(ctx, sessionID, session.KeyNewsletterDismissed, &dismissed); err != nil {
		return nil, err
	}
	st := models.NewsletterState{Status: models.NewsletterIdle}
	if _, err := s.Store.Get(ctx, sessionID, session.KeyNewsletter, &st); err != nil {
		return nil, err
	}

	if fn != nil {
		before := st
		dismiss, err := fn(&st, dismissed)
		if err != nil {
			return nil, err
		}
		if st != before {
			if err := s.Store.Set(ctx, sessionID, session.KeyNewsletter, st); err != nil {
				return nil, err
			}
		}
		if dismiss && !dismissed {
			if err := s.Store.Set(ctx, sessionID, session.KeyNewsletterDismissed, true); err != nil {
				return nil, err
			}
			dismissed = true
			s.Logger.Debug("newsletter dismissed", zap.String("sessionID", sessionID))
		}
	}
	return s.render(st, dismissed), nil
}

func (s *DefaultNewsletterService) render(st models.NewsletterState, dismissed bool) *models.NewsletterView {
	view := &models.NewsletterView{
		Visible:   st.Visible && !dismissed,
		Dismissed: dismissed,
		Status:    st.Status,
		Threshold: s.Threshold,
		Headline:  headline,
		Pitch:     pitch,
	}
	if st.Status == models.NewsletterSuccess {
		view.Headline = successHeadline
		view.Pitch = successPitch
	}
	return view
}
