package longpoll

import "sync"

// OffsetStore persists the getUpdates offset so a restarted bot does
// not re-deliver already-confirmed updates.
type OffsetStore interface {
	// Offset returns the saved offset, or 0 when none was saved.
	Offset() (int, error)
	// SetOffset saves the offset.
	SetOffset(offset int) error
}

// MemoryStore keeps the offset in memory. Restarts re-deliver
// unconfirmed updates.
type MemoryStore struct {
	mu     sync.Mutex
	offset int
}

// NewMemoryStore creates an empty in-memory offset store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Offset implements OffsetStore.
func (s *MemoryStore) Offset() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offset, nil
}

// SetOffset implements OffsetStore.
func (s *MemoryStore) SetOffset(offset int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offset = offset
	return nil
}
