package session

import (
	"errors"
	"sync"
)

// ErrNotFound is returned when no value is stored under the requested id.
var ErrNotFound = errors.New("session not found")

// Store persists one value per conversation id.
type Store[T any] interface {
	Put(id string, value T) error
	Get(id string) (T, error)
	Delete(id string) error
}

// InMemoryStore is a volatile Store keeping values in a process local map.
// It is safe for concurrent access. Values are lost on restart.
type InMemoryStore[T any] struct {
	mu       sync.RWMutex
	sessions map[string]T
}

// NewInMemoryStore constructs an empty in‑memory session store.
func NewInMemoryStore[T any]() *InMemoryStore[T] {
	return &InMemoryStore[T]{sessions: make(map[string]T)}
}

// Put stores (or replaces) the value for id.
func (s *InMemoryStore[T]) Put(id string, value T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = value
	return nil
}

// Get returns the value for id or ErrNotFound.
func (s *InMemoryStore[T]) Get(id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.sessions[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return value, nil
}

// Delete removes the value for id. Deleting an unknown id is a no-op.
func (s *InMemoryStore[T]) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Len returns the number of stored sessions.
func (s *InMemoryStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
