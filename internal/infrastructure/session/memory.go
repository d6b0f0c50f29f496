package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps sessions in process memory. Suitable for a single
// console instance; restarts sign everyone out.
type MemoryStore struct {
	mu        sync.RWMutex
	sessions  map[uuid.UUID]*Session
	stopChan  chan struct{}
	closeOnce sync.Once
}

// NewMemoryStore creates an in-memory session store with a background
// sweeper that evicts expired sessions.
func NewMemoryStore() *MemoryStore {
	store := &MemoryStore{
		sessions: make(map[uuid.UUID]*Session),
		stopChan: make(chan struct{}),
	}
	go store.cleanupLoop()
	return store
}

// Save stores or replaces a session
func (s *MemoryStore) Save(_ context.Context, sess *Session) error {
	copied := *sess
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = &copied
	return nil
}

// Get returns the session or ErrNotFound if missing or expired
func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok || sess.Expired(time.Now()) {
		return nil, ErrNotFound
	}
	copied := *sess
	return &copied, nil
}

// Delete removes a session
func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Close stops the background sweeper
func (s *MemoryStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stopChan)
	})
	return nil
}

func (s *MemoryStore) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.evictExpired()
		case <-s.stopChan:
			return
		}
	}
}

func (s *MemoryStore) evictExpired() {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		if sess.Expired(now) {
			delete(s.sessions, id)
		}
	}
}
