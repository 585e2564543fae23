// Package session implements the domain's SessionStore.
package session

import (
	"context"
	"sync"
	"time"

	"roster/internal/domain/entity"
	"roster/internal/domain/service"
)

const sweepInterval = time.Minute

type memorySession struct {
	claims    entity.SessionClaims
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. Sessions do not survive a restart
// and are not shared between instances.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
	now      func() time.Time
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: map[string]memorySession{},
		now:      time.Now,
	}
}

var _ service.SessionStore = (*MemoryStore)(nil)

// Put registers token for claims for at most ttl.
func (s *MemoryStore) Put(ctx context.Context, token string, claims entity.SessionClaims, ttl time.Duration) error {
	if ttl <= 0 {
		return service.ErrInvalidSessionTTL
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[token] = memorySession{claims: claims, expiresAt: s.now().Add(ttl)}

	return nil
}

// Get returns the claims registered for token.
func (s *MemoryStore) Get(ctx context.Context, token string) (*entity.SessionClaims, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, service.ErrSessionNotFound
	}
	if !s.now().Before(sess.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()

		return nil, service.ErrSessionNotFound
	}
	claims := sess.claims

	return &claims, nil
}

// Remove revokes token.
func (s *MemoryStore) Remove(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)

	return nil
}

// Sweep drops every expired session and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for token, sess := range s.sessions {
		if !now.Before(sess.expiresAt) {
			delete(s.sessions, token)
			removed++
		}
	}

	return removed
}

// Clear drops every session.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.sessions)
}

// Len returns the number of stored sessions, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}

func (s *MemoryStore) runSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
