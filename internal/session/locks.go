// Package session serializes message handling per user so that a state read
// by one in-flight webhook is never stale by the time it is written back.
package session

import (
	"sync"
	"time"
)

type Locks struct {
	mu    sync.Mutex
	users map[string]*userLock
}

type userLock struct {
	mu       sync.Mutex
	lastUsed time.Time
}

func NewLocks() *Locks {
	return &Locks{users: make(map[string]*userLock)}
}

// Do runs fn while holding the lock for userID. Messages from the same user
// are handled one at a time; different users proceed in parallel.
func (l *Locks) Do(userID string, fn func() error) error {
	l.mu.Lock()
	ul, ok := l.users[userID]
	if !ok {
		ul = &userLock{}
		l.users[userID] = ul
	}
	ul.lastUsed = time.Now()
	l.mu.Unlock()

	ul.mu.Lock()
	defer ul.mu.Unlock()
	return fn()
}

// Sweep drops locks idle longer than maxAge so the map does not grow without
// bound over the process lifetime.
func (l *Locks) Sweep(maxAge time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	for userID, ul := range l.users {
		if now.Sub(ul.lastUsed) > maxAge {
			delete(l.users, userID)
		}
	}
}
