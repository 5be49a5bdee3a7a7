package identity

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store for tests and single-node dev runs.
type MemoryStore struct {
	mu  sync.Mutex
	ids map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{ids: make(map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, sessionKey string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.ids[sessionKey]
	if !ok {
		return "", ErrNotFound
	}
	return id, nil
}

func (m *MemoryStore) PutIfAbsent(_ context.Context, sessionKey, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.ids[sessionKey]; ok {
		return false, nil
	}
	m.ids[sessionKey] = id
	return true, nil
}

func (m *MemoryStore) Delete(_ context.Context, sessionKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.ids, sessionKey)
	return nil
}
