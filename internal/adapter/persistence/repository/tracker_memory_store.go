package repository

import (
	"context"
	"sync"

	"fitmarket/internal/usecase/interfaces"
)

// TrackerMemoryStore is the in-process key-value store backing the
// calorie tracker. Values are opaque bytes; the tracker use case owns
// the encoding.

type TrackerMemoryStore struct {
	mu    sync.RWMutex
	items map[string][]byte
}

var _ interfaces.ITrackerStore = (*TrackerMemoryStore)(nil)

func NewTrackerMemoryStore() *TrackerMemoryStore {
	return &TrackerMemoryStore{items: make(map[string][]byte)}
}

func (s *TrackerMemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (s *TrackerMemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	s.items[key] = v
	return nil
}
