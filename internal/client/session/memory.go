package session

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store. Values are kept JSON-encoded so it
// behaves exactly like the persistent store, including null handling.
type MemoryStore struct {
	mu  sync.Mutex
	raw []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Get(_ context.Context) (Token, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return decodeToken(m.raw)
}

func (m *MemoryStore) Set(_ context.Context, token Token) error {
	raw, err := encodeToken(token)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.raw = raw
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	m.raw = nil
	m.mu.Unlock()
	return nil
}

// SetRaw stores an arbitrary encoded value, e.g. "null".
func (m *MemoryStore) SetRaw(raw []byte) {
	m.mu.Lock()
	m.raw = append([]byte(nil), raw...)
	m.mu.Unlock()
}
