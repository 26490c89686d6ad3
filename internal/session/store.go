package session

import (
	"context"
	"sync"
	"time"
)

// Store tracks which session ids are currently live. Logging out
// deletes the id, which invalidates the matching token even before it
// expires.
type Store interface {
	Put(ctx context.Context, id string, ttl time.Duration) error
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
}

// MemoryStore is an in-process Store used in tests and single-binary
// setups without Redis.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]time.Time
}

// NewMemoryStore creates a new MemoryStore instance.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]time.Time)}
}

func (s *MemoryStore) Put(ctx context.Context, id string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = time.Now().Add(ttl)
	return nil
}

func (s *MemoryStore) Exists(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	expiry, ok := s.sessions[id]
	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		delete(s.sessions, id)
		return false, nil
	}
	return true, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
