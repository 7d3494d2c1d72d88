package booking

import (
	"context"

	"sattva/models"
	"sattva/services/tasks"
)

// BookingService drives the consultation booking wizard of one visitor.
type BookingService interface {
	View(ctx context.Context, sessionID string) (*models.BookingView, error)
	SelectProvider(ctx context.Context, sessionID string, providerID int) (*models.BookingView, error)
	ChangeProvider(ctx context.Context, sessionID string) (*models.BookingView, error)
	SelectDate(ctx context.Context, sessionID string, index int) (*models.BookingView, error)
	SelectTime(ctx context.Context, sessionID, slot string) (*models.BookingView, error)
	// Confirm starts the simulated submission. The wizard reaches the
	// confirmed step once the scheduled task runs.
	Confirm(ctx context.Context, sessionID string) (*models.BookingView, error)
	BookAnother(ctx context.Context, sessionID string) (*models.BookingView, error)
	// Teardown cancels any pending submission and discards the wizard.
	Teardown(ctx context.Context, sessionID string) error
	RegisterTasks(mux *tasks.Mux)
}
