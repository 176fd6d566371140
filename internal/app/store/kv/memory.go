package kv

import (
	"context"
	"encoding/json"
	"sync"
)

// Memory is an in-process Store used by tests and by installations that
// do not need persistence across restarts.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(ctx context.Context, collection string, v any) error {
	m.mu.RLock()
	raw, ok := m.data[collection]
	m.mu.RUnlock()
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		// Malformed payload degrades to the zero collection.
		return nil
	}
	return nil
}

func (m *Memory) Put(ctx context.Context, collection string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data[collection] = raw
	m.mu.Unlock()
	return nil
}

func (m *Memory) Delete(ctx context.Context, collection string) error {
	m.mu.Lock()
	delete(m.data, collection)
	m.mu.Unlock()
	return nil
}

func (m *Memory) Close(ctx context.Context) error { return nil }

// Corrupt overwrites a collection with an unparseable payload. Tests use it
// to exercise the malformed-data fallback.
func (m *Memory) Corrupt(collection string) {
	m.mu.Lock()
	m.data[collection] = []byte("{not json")
	m.mu.Unlock()
}
