package tasks

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TimerScheduler runs tasks in-process on timers. Tasks do not survive a
// restart.
type TimerScheduler struct {
	mux    *Mux
	logger *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool
}

func NewTimerScheduler(mux *Mux, logger *zap.Logger) *TimerScheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &TimerScheduler{
		mux:    mux,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
		timers: make(map[string]*time.Timer),
	}
}

func (s *TimerScheduler) Schedule(ctx context.Context, taskType string, payload []byte, delay time.Duration) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", ErrSchedulerClosed
	}

	id := uuid.New().String()
	s.timers[id] = time.AfterFunc(delay, func() {
		s.fire(id, taskType, payload)
	})
	s.logger.Debug("task scheduled", zap.String("taskID", id), zap.String("type", taskType), zap.Duration("delay", delay))
	return id, nil
}

func (s *TimerScheduler) fire(id, taskType string, payload []byte) {
	s.mu.Lock()
	if _, ok := s.timers[id]; !ok {
		// Cancelled or closed while the timer was firing.
		s.mu.Unlock()
		return
	}
	delete(s.timers, id)
	s.wg.Add(1)
	s.mu.Unlock()
	defer s.wg.Done()

	if err := s.mux.Dispatch(s.ctx, taskType, payload); err != nil {
		s.logger.Error("task failed", zap.String("taskID", id), zap.String("type", taskType), zap.Error(err))
		return
	}
	s.logger.Debug("task done", zap.String("taskID", id), zap.String("type", taskType))
}

func (s *TimerScheduler) Cancel(ctx context.Context, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.timers[taskID]
	if !ok {
		return ErrTaskNotFound
	}
	t.Stop()
	delete(s.timers, taskID)
	return nil
}

// Pending reports how many tasks are waiting to fire.
func (s *TimerScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Close stops every outstanding timer and waits for running handlers.
func (s *TimerScheduler) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
	return nil
}
