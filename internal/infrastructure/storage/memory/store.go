// internal/infrastructure/storage/memory/store.go
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/your-org/storefront-engine/internal/infrastructure/storage"
)

type entry struct {
	value     string
	expiresAt time.Time // zero means no expiry
}

// Store is an in-process storage.Store used in tests and local development
// when no Redis instance is available.
type Store struct {
	mu   sync.RWMutex
	data map[string]entry
}

// NewStore creates an empty in-memory key-value store
func NewStore() *Store {
	return &Store{data: make(map[string]entry)}
}

// Get retrieves a value by key
func (s *Store) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return "", storage.ErrNotFound
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, key)
		s.mu.Unlock()
		return "", storage.ErrNotFound
	}
	return e.value, nil
}

// Set stores a key-value pair with expiration
func (s *Store) Set(_ context.Context, key, value string, expiration time.Duration) error {
	e := entry{value: value}
	if expiration > 0 {
		e.expiresAt = time.Now().Add(expiration)
	}

	s.mu.Lock()
	s.data[key] = e
	s.mu.Unlock()
	return nil
}

// Delete deletes one or more keys
func (s *Store) Delete(_ context.Context, keys ...string) error {
	s.mu.Lock()
	for _, key := range keys {
		delete(s.data, key)
	}
	s.mu.Unlock()
	return nil
}
