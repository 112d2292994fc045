package memory

import (
	"context"
	"sync"

	interfaces "github.com/AmanBeast/Sotre-Ledgger/internal/interfaces"
)

// MemoryGateway is an in-process implementation of interfaces.Gateway.
// Values survive only as long as the process; it backs tests and throwaway runs.
type MemoryGateway struct {
	mu     sync.Mutex
	values map[string][]byte
	saves  map[string]int
}

// NewMemoryGateway creates an empty MemoryGateway
func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{
		values: make(map[string][]byte),
		saves:  make(map[string]int),
	}
}

// Load returns a copy of the last value saved under key.
func (m *MemoryGateway) Load(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	copied := make([]byte, len(v))
	copy(copied, v)
	return copied, true, nil
}

// Save stores a copy of value so callers can't modify what was written.
func (m *MemoryGateway) Save(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := make([]byte, len(value))
	copy(copied, value)
	m.values[key] = copied
	m.saves[key]++
	return nil
}

// Saves reports how many times key has been written.
func (m *MemoryGateway) Saves(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves[key]
}

func (m *MemoryGateway) Close() error { return nil }

// Compile-time check: ensure MemoryGateway implements Gateway interface
var _ interfaces.Gateway = (*MemoryGateway)(nil)
