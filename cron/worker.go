package cron

import (
	"context"
	"time"

	"sattva/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const maxStartAttempts = 5

// TaskWorker processes the delayed session tasks queued on Redis.
type TaskWorker struct {
	srv    *asynq.Server
	mux    *tasks.Mux
	opt    asynq.RedisClientOpt
	logger *zap.Logger
}

func NewTaskWorker(opt asynq.RedisClientOpt, mux *tasks.Mux, logger *zap.Logger) *TaskWorker {
	srv := asynq.NewServer(
		opt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)
	return &TaskWorker{srv: srv, mux: mux, opt: opt, logger: logger}
}

// Start runs the worker in the background, retrying with backoff if it
// fails to start, and watches the Redis connection until ctx is done.
func (w *TaskWorker) Start(ctx context.Context) {
	go w.monitorRedisConnection(ctx)

	go func() {
		w.logger.Info("task worker: starting")
		for attempts := 1; attempts <= maxStartAttempts; attempts++ {
			err := w.srv.Start(tasks.AsynqHandler(w.mux))
			if err == nil {
				return
			}
			w.logger.Error("task worker: failed to start",
				zap.Int("attempt", attempts),
				zap.Int("maxAttempts", maxStartAttempts),
				zap.Error(err),
			)
			if attempts == maxStartAttempts {
				w.logger.Fatal("task worker: max retry attempts reached")
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Duration(attempts*2) * time.Second):
			}
		}
	}()
}

// Shutdown stops fetching new tasks and waits for running ones.
func (w *TaskWorker) Shutdown() {
	w.srv.Shutdown()
	w.logger.Info("task worker: stopped")
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func (w *TaskWorker) monitorRedisConnection(ctx context.Context) {
	client := redis.NewClient(&redis.Options{
		Addr:     w.opt.Addr,
		Password: w.opt.Password,
		DB:       w.opt.DB,
	})
	defer client.Close()

	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := client.Ping(ctx).Err(); err != nil {
				w.logger.Warn("task worker: Redis connection lost", zap.Error(err))
			}
		}
	}
}
