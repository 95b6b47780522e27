package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process Store for tests and redis-less development.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	session   Session
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Put(_ context.Context, domain Domain, id string, sess Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[storageKey(domain, id)] = memoryEntry{
		session:   sess,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, domain Domain, id string) (Session, error) {
	s.mu.RLock()
	entry, ok := s.entries[storageKey(domain, id)]
	s.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return Session{}, ErrNotFound
	}
	return entry.session, nil
}

func (s *MemoryStore) Delete(_ context.Context, domain Domain, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, storageKey(domain, id))
	return nil
}
