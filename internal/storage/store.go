// Package storage provides the scoped key-value store backing the
// gamification state. Keys are plain strings within a per-user scope; values
// are opaque strings (integers and JSON blobs in practice).
package storage

import (
	"context"
	"sync"
)

// Store is the persistence contract consumed by the gamification service.
// Implementations must tolerate concurrent callers; cross-process writers get
// last-write-wins.
type Store interface {
	Get(ctx context.Context, scope, key string) (value string, ok bool, err error)
	Set(ctx context.Context, scope, key, value string) error
	Delete(ctx context.Context, scope, key string) error
	Close() error
}

// MemoryStore is an in-memory Store for tests and ephemeral runs.
type MemoryStore struct {
	mu sync.RWMutex
	m  map[string]map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: map[string]map[string]string{}}
}

func (s *MemoryStore) Get(_ context.Context, scope, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[scope][key]
	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, scope, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.m[scope] == nil {
		s.m[scope] = map[string]string{}
	}
	s.m[scope][key] = value
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, scope, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m[scope], key)
	return nil
}

func (s *MemoryStore) Close() error { return nil }
