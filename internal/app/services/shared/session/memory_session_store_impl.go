package session

import (
	"careportal-service/internal/app/contracts"
	"context"
	"sync"
	"time"
)

// MemorySessionStore keeps sessions in process memory. Sessions are lost on
// restart, so it only suits local development and tests.
type MemorySessionStore struct {
	mu        sync.RWMutex
	ttl       time.Duration
	now       func() time.Time
	sessions  map[string]map[string]string
	expiresAt map[string]time.Time
}

// NewMemorySessionStore returns a store whose sessions never expire.
func NewMemorySessionStore() contracts.SessionStore {
	return NewMemorySessionStoreWithTTL(0)
}

// NewMemorySessionStoreWithTTL returns a store where every write pushes the
// session's expiry ttl into the future, like EXPIRE on the redis store.
func NewMemorySessionStoreWithTTL(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		ttl:       ttl,
		now:       time.Now,
		sessions:  make(map[string]map[string]string),
		expiresAt: make(map[string]time.Time),
	}
}

func (s *MemorySessionStore) Get(ctx context.Context, sessionID, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.expired(sessionID) {
		return "", false, nil
	}
	value, ok := s.sessions[sessionID][key]
	return value, ok, nil
}

func (s *MemorySessionStore) Set(ctx context.Context, sessionID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.expired(sessionID) {
		s.remove(sessionID)
	}
	values, ok := s.sessions[sessionID]
	if !ok {
		values = make(map[string]string)
		s.sessions[sessionID] = values
	}
	values[key] = value
	if s.ttl > 0 {
		s.expiresAt[sessionID] = s.now().Add(s.ttl)
	}
	return nil
}

func (s *MemorySessionStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.remove(sessionID)
	return nil
}

// Sweep drops expired sessions and reports how many were removed.
func (s *MemorySessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for sessionID := range s.expiresAt {
		if s.expired(sessionID) {
			s.remove(sessionID)
			removed++
		}
	}
	return removed
}

// expired must be called with mu held.
func (s *MemorySessionStore) expired(sessionID string) bool {
	expiresAt, ok := s.expiresAt[sessionID]
	return ok && !s.now().Before(expiresAt)
}

func (s *MemorySessionStore) remove(sessionID string) {
	delete(s.sessions, sessionID)
	delete(s.expiresAt, sessionID)
}
