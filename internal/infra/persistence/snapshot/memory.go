// Package snapshot contains the concrete snapshot-store backends. Every
// backend persists whole serialized records under fixed keys; the choice of
// backend never changes store semantics.
package snapshot

import (
	"context"
	"sync"

	"ppoth/internal/domain/repository"
)

// memoryStore keeps snapshots in process memory. It is the zero-config
// default and the backend unit tests run against.
type memoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory snapshot store.
func NewMemoryStore() repository.SnapshotStore {
	return &memoryStore{data: make(map[string][]byte)}
}

func (s *memoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.data[key]
	if !ok {
		return nil, repository.ErrSnapshotNotFound
	}

	out := make([]byte, len(raw))
	copy(out, raw)

	return out, nil
}

func (s *memoryStore) Put(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.data[key] = stored

	return nil
}
