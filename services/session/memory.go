package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

type memorySession struct {
	values    map[string][]byte
	expiresAt time.Time
}

// MemoryStore is an in-process Store for single-instance deployments and
// tests. It applies the same JSON round trip and TTL as RedisStore.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*memorySession
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*memorySession),
	}
}

// live returns the session if it exists and has not expired. Caller holds mu.
func (s *MemoryStore) live(sessionID string) *memorySession {
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil
	}
	if s.now().After(sess.expiresAt) {
		delete(s.sessions, sessionID)
		return nil
	}
	return sess
}

func (s *MemoryStore) Get(ctx context.Context, sessionID, key string, dest any) (bool, error) {
	if sessionID == "" {
		return false, ErrNoSession
	}
	s.mu.Lock()
	sess := s.live(sessionID)
	var data []byte
	if sess != nil {
		data = sess.values[key]
	}
	s.mu.Unlock()

	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to decode session key %s: %w", key, err)
	}
	return true, nil
}

func (s *MemoryStore) Set(ctx context.Context, sessionID, key string, value any) error {
	if sessionID == "" {
		return ErrNoSession
	}
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode session key %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.live(sessionID)
	if sess == nil {
		sess = &memorySession{values: make(map[string][]byte)}
		s.sessions[sessionID] = sess
	}
	sess.values[key] = b
	sess.expiresAt = s.now().Add(s.ttl)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, sessionID, key string) error {
	if sessionID == "" {
		return ErrNoSession
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess := s.live(sessionID); sess != nil {
		delete(sess.values, key)
	}
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrNoSession
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

// Sweep drops expired sessions and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	now := s.now()
	for id, sess := range s.sessions {
		if now.After(sess.expiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
