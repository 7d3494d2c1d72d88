// Package tasks runs the delayed, cancellable jobs behind the storefront's
// simulated submissions.
package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"
)

const (
	TypeBookingSubmit         = "booking:submit"
	TypeNewsletterAutoDismiss = "newsletter:autodismiss"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrNoHandler       = errors.New("no handler registered for task type")
	ErrSchedulerClosed = errors.New("scheduler is closed")
)

// SessionPayload identifies the session and the submission a task belongs
// to. A handler ignores the task when the session has moved on to another
// submission.
type SessionPayload struct {
	SessionID    string `json:"sessionId"`
	SubmissionID string `json:"submissionId"`
}

func (p SessionPayload) Encode() ([]byte, error) {
	return json.Marshal(p)
}

func DecodeSessionPayload(b []byte) (SessionPayload, error) {
	var p SessionPayload
	if err := json.Unmarshal(b, &p); err != nil {
		return p, fmt.Errorf("invalid task payload: %w", err)
	}
	return p, nil
}

// Handler processes one task payload.
type Handler func(ctx context.Context, payload []byte) error

// Mux routes task types to handlers. Both scheduler backends dispatch
// through it.
type Mux struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

func NewMux() *Mux {
	return &Mux{handlers: make(map[string]Handler)}
}

func (m *Mux) HandleFunc(taskType string, h Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[taskType] = h
}

func (m *Mux) Dispatch(ctx context.Context, taskType string, payload []byte) error {
	m.mu.RLock()
	h, ok := m.handlers[taskType]
	m.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoHandler, taskType)
	}
	return h(ctx, payload)
}

// Scheduler runs a task once after a delay unless it is cancelled first.
type Scheduler interface {
	// Schedule enqueues the task and returns its ID.
	Schedule(ctx context.Context, taskType string, payload []byte, delay time.Duration) (string, error)
	// Cancel removes a task that has not run yet.
	Cancel(ctx context.Context, taskID string) error
	// Close stops the scheduler; outstanding tasks are dropped.
	Close() error
}
