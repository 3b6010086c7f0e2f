// Package memory provides an in-process session storage backend. It serves
// local development without a Redis instance and the test suites.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/quillboard/quillboard-web/internal/core/ports"
)

type entry struct {
	rec       ports.SessionRecord
	expiresAt time.Time
}

// SessionStorage is a thread-safe map of session records with TTL expiry.
type SessionStorage struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
}

// NewSessionStorage creates a storage whose records expire after ttl.
// A non-positive ttl means records never expire.
func NewSessionStorage(ttl time.Duration) *SessionStorage {
	s := &SessionStorage{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
	if ttl > 0 {
		go s.cleanupLoop()
	}
	return s
}

func (s *SessionStorage) Read(_ context.Context, id string) (ports.SessionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[id]
	if !ok || s.expired(e) {
		return ports.SessionRecord{}, nil
	}
	return e.rec, nil
}

func (s *SessionStorage) Write(_ context.Context, id string, rec ports.SessionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var expiresAt time.Time
	if s.ttl > 0 {
		expiresAt = time.Now().Add(s.ttl)
	}
	s.entries[id] = entry{rec: rec, expiresAt: expiresAt}
	return nil
}

func (s *SessionStorage) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, id)
	return nil
}

func (s *SessionStorage) expired(e entry) bool {
	return !e.expiresAt.IsZero() && time.Now().After(e.expiresAt)
}

func (s *SessionStorage) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		for id, e := range s.entries {
			if s.expired(e) {
				delete(s.entries, id)
			}
		}
		s.mu.Unlock()
	}
}
