package utils

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Pinger is anything the health monitor can probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Dependencies map[string]bool `json:"dependencies"`
	CheckedAt    time.Time       `json:"checkedAt"`
}

// Healthy reports whether every dependency answered the last probe.
func (h HealthStatus) Healthy() bool {
	for _, ok := range h.Dependencies {
		if !ok {
			return false
		}
	}
	return true
}

// HealthMonitor periodically probes dependencies and keeps the last snapshot.
type HealthMonitor struct {
	deps     map[string]Pinger
	interval time.Duration
	logger   *zap.Logger

	mu      sync.RWMutex
	current HealthStatus
}

func NewHealthMonitor(deps map[string]Pinger, interval time.Duration, logger *zap.Logger) *HealthMonitor {
	return &HealthMonitor{
		deps:     deps,
		interval: interval,
		logger:   logger,
		current:  HealthStatus{Dependencies: map[string]bool{}},
	}
}

// Status returns latest stored health snapshot.
func (m *HealthMonitor) Status() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Check probes every dependency once and stores the result.
func (m *HealthMonitor) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Dependencies: make(map[string]bool, len(m.deps)),
		CheckedAt:    time.Now(),
	}
	for name, dep := range m.deps {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := dep.Ping(pingCtx)
		cancel()
		if err != nil {
			m.logger.Warn("health: dependency unreachable", zap.String("dependency", name), zap.Error(err))
		}
		status.Dependencies[name] = err == nil
	}

	m.mu.Lock()
	m.current = status
	m.mu.Unlock()
	return status
}

// Start performs an immediate check, then re-checks on every interval until
// ctx is cancelled.
func (m *HealthMonitor) Start(ctx context.Context) {
	m.Check(ctx)
	go func() {
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Check(ctx)
			}
		}
	}()
}
