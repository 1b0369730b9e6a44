package audit

import (
	"context"
	"sync"
)

// MemoryStore keeps the audit trail in memory.
type MemoryStore struct {
	mu     sync.RWMutex
	events []Event
}

// NewMemoryStore constructs an empty in-memory audit store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *MemoryStore) List(_ context.Context) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Event{}, s.events...), nil
}
