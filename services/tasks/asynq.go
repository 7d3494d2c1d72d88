package tasks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const defaultQueue = "default"

// AsynqScheduler enqueues tasks on Redis through asynq so that pending
// submissions survive a restart and any instance can process them. Handlers
// read session state, so it must be paired with the Redis session store.
type AsynqScheduler struct {
	client    *asynq.Client
	inspector *asynq.Inspector
	queue     string
}

func NewAsynqScheduler(opt asynq.RedisClientOpt) *AsynqScheduler {
	return &AsynqScheduler{
		client:    asynq.NewClient(opt),
		inspector: asynq.NewInspector(opt),
		queue:     defaultQueue,
	}
}

func (s *AsynqScheduler) Schedule(ctx context.Context, taskType string, payload []byte, delay time.Duration) (string, error) {
	task := asynq.NewTask(taskType, payload)
	info, err := s.client.EnqueueContext(ctx, task,
		asynq.TaskID(uuid.New().String()),
		asynq.Queue(s.queue),
		asynq.ProcessIn(delay),
		asynq.MaxRetry(0),
	)
	if err != nil {
		return "", fmt.Errorf("failed to enqueue %s: %w", taskType, err)
	}
	return info.ID, nil
}

func (s *AsynqScheduler) Cancel(ctx context.Context, taskID string) error {
	err := s.inspector.DeleteTask(s.queue, taskID)
	if errors.Is(err, asynq.ErrTaskNotFound) {
		return ErrTaskNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to cancel task %s: %w", taskID, err)
	}
	return nil
}

func (s *AsynqScheduler) Close() error {
	return errors.Join(s.client.Close(), s.inspector.Close())
}

// AsynqHandler adapts the mux to an asynq worker.
func AsynqHandler(m *Mux) asynq.Handler {
	return asynq.HandlerFunc(func(ctx context.Context, t *asynq.Task) error {
		return m.Dispatch(ctx, t.Type(), t.Payload())
	})
}
