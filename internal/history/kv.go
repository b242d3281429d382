// Package history persists analysis entries in a string-keyed key-value
// store, self-healing corrupted records on read through the schema
// normalizer.
package history

import "context"

// KV is the opaque string-keyed persistent store the history layer runs on.
// GetItem reports found=false for missing keys.
type KV interface {
	GetItem(ctx context.Context, key string) (value string, found bool, err error)
	SetItem(ctx context.Context, key, value string) error
}

// MemoryKV is an in-memory KV implementation, used in tests and as a
// throwaway backend.
type MemoryKV struct {
	items map[string]string
}

// NewMemoryKV creates an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{items: make(map[string]string)}
}

// GetItem implements KV.
func (m *MemoryKV) GetItem(_ context.Context, key string) (string, bool, error) {
	value, found := m.items[key]
	return value, found, nil
}

// SetItem implements KV.
func (m *MemoryKV) SetItem(_ context.Context, key, value string) error {
	m.items[key] = value
	return nil
}
