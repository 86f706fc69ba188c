// apps/go-term/internal/store/memory.go
//
// In-memory implementation of the KV interface.
// Used by tests and by WORDLE_STORE_DRIVER=memory throwaway sessions, where
// durability is not required.
//
// Characteristics:
//   - Stores string values keyed by string in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.

package store

import (
	"context"
	"sync"
)

// KV is the per-device key/value persistence collaborator.
// Implementations may be backed by memory (this file) or SQLite.
type KV interface {
	// Get returns the value for key. ok is false when the key was never set.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// SetMany stores every pair or none of them.
	SetMany(ctx context.Context, values map[string]string) error

	// Close releases underlying resources.
	Close() error
}

// memory is an in-memory map-based KV implementation.
type memory struct {
	mu   sync.RWMutex      // guards data
	data map[string]string // keyed by storage key
}

// NewMemory constructs a new in-memory KV.
func NewMemory() KV {
	return &memory{data: make(map[string]string)}
}

// Get looks up a key.
func (m *memory) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set adds or replaces the value.
func (m *memory) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// SetMany applies all pairs under one lock.
func (m *memory) SetMany(ctx context.Context, values map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range values {
		m.data[k] = v
	}
	return nil
}

func (m *memory) Close() error { return nil }
