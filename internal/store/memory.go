package store

import (
	"context"
	"sync"

	"github.com/ATenderholt/rainbow-filedata/internal/domain"
)

// MemoryStore keeps entries in process. The local invoke server may call
// Put from several requests at once, hence the mutex.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]domain.FileEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]domain.FileEntry),
	}
}

func (s *MemoryStore) Put(_ context.Context, entry domain.FileEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[entry.ID] = entry
	return nil
}

func (s *MemoryStore) Get(id string) (domain.FileEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	return entry, ok
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}
