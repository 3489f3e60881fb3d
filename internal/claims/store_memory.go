package claims

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store for tests and dev mode. Claims do not
// survive a restart.
type MemoryStore struct {
	mu  sync.Mutex
	ids []string
	set map[string]struct{}
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{set: make(map[string]struct{})}
}

func (s *MemoryStore) Load(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, len(s.ids))
	copy(ids, s.ids)
	return ids, nil
}

func (s *MemoryStore) Add(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.set[id]; ok {
		return nil
	}
	s.set[id] = struct{}{}
	s.ids = append(s.ids, id)
	return nil
}
