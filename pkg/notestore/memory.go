package notestore

import (
	"bytes"
	"context"
	"sync"
)

// Memory is an in-process store. It is safe for concurrent use.
type Memory struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

// Get returns a copy of the value stored under key.
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return nil, nil
	}
	return bytes.Clone(v), nil
}

// Set stores a copy of value under key.
func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = bytes.Clone(value)
	return nil
}

// CompareAndSwap stores next if the current value equals old.
func (m *Memory) CompareAndSwap(_ context.Context, key string, old, next []byte) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !bytes.Equal(m.values[key], old) {
		return false, nil
	}
	m.values[key] = bytes.Clone(next)
	return true, nil
}

// Healthcheck always succeeds.
func (m *Memory) Healthcheck(context.Context) error { return nil }
