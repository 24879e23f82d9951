package store

import (
	"context"
	"sync"
)

// Memory is an in-process Store used by tests and local development. It
// mimics the external store's last-write-wins behavior.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, namespace, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[namespace+"\x00"+key]
	if !ok {
		return nil, ErrNotFound
	}
	return value, nil
}

func (m *Memory) Put(_ context.Context, namespace, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[namespace+"\x00"+key] = cp
	return nil
}
