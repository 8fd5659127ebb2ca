package cart

import (
	"context"
	"errors"
	"sync"
)

// ErrNotPersisted is returned by Storage.Read when the slot has never been
// written. The store treats it the same as an empty cart.
var ErrNotPersisted = errors.New("cart: no persisted state")

// Storage is a single durable key-value slot holding the serialized cart.
// It is read once at startup and overwritten on every mutation.
type Storage interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}

// MemoryStorage keeps the slot in process memory. It backs tests and the
// degraded mode where Redis is not configured; carts then simply do not
// survive a restart.
type MemoryStorage struct {
	mu      sync.Mutex
	data    []byte
	present bool
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) Read(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.present {
		return nil, ErrNotPersisted
	}
	return append([]byte(nil), m.data...), nil
}

func (m *MemoryStorage) Write(ctx context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
	m.present = true
	return nil
}
