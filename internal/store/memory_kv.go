package store

import (
	"context"
	"fmt"
	"sync"
)

// MemoryKV is a map-backed KeyValue used by tests and by throwaway demo
// runs that do not want a database file. It enforces the same per-value
// limit as the SQLite repository so the persistence ladder behaves
// identically on both backends, and like the SQLite repository it is safe
// for concurrent use.
type MemoryKV struct {
	maxValueBytes int64

	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryKV constructs an empty in-memory KeyValue with the given hard
// per-value limit. A non-positive limit means unlimited.
func NewMemoryKV(maxValueBytes int64) *MemoryKV {
	return &MemoryKV{
		maxValueBytes: maxValueBytes,
		entries:       make(map[string]string),
	}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.entries[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	if m.maxValueBytes > 0 && int64(len(value)) > m.maxValueBytes {
		return fmt.Errorf("%w: key=%s size=%d limit=%d", ErrValueTooLarge, key, len(value), m.maxValueBytes)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = value
	return nil
}

func (m *MemoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
	return nil
}
