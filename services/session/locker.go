package session

import "sync"

// Locker serializes read-modify-write cycles per session. Locks are created
// on demand and released when no caller holds or waits for them.
type Locker struct {
	mu    sync.Mutex
	locks map[string]*refLock
}

type refLock struct {
	mu   sync.Mutex
	refs int
}

func NewLocker() *Locker {
	return &Locker{locks: make(map[string]*refLock)}
}

// Lock acquires the lock for sessionID and returns its unlock function.
func (l *Locker) Lock(sessionID string) func() {
	l.mu.Lock()
	rl, ok := l.locks[sessionID]
	if !ok {
		rl = &refLock{}
		l.locks[sessionID] = rl
	}
	rl.refs++
	l.mu.Unlock()

	rl.mu.Lock()
	return func() {
		rl.mu.Unlock()
		l.mu.Lock()
		rl.refs--
		if rl.refs == 0 {
			delete(l.locks, sessionID)
		}
		l.mu.Unlock()
	}
}

// Len reports how many session locks are currently tracked.
func (l *Locker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
