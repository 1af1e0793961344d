package store

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore is a map-backed Store used by tests and by local runs without a
// database. Values round-trip through JSON so stored and loaded records stay
// decoupled the same way they are with the real backend.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: map[string][]byte{}}
}

// Load unmarshals the value stored under key into v.
func (s *MemoryStore) Load(_ context.Context, key string, v interface{}) (bool, error) {
	s.mu.RLock()
	b, ok := s.records[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, v); err != nil {
		// Same contract as the database store: unreadable state is absent state.
		return false, nil
	}
	return true, nil
}

// Save marshals v and stores it under key.
func (s *MemoryStore) Save(_ context.Context, key string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.records[key] = b
	s.mu.Unlock()
	return nil
}

// SetRaw stores raw bytes under key, bypassing marshalling. Tests use it to
// plant malformed records.
func (s *MemoryStore) SetRaw(key string, b []byte) {
	s.mu.Lock()
	s.records[key] = b
	s.mu.Unlock()
}
