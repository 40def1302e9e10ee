package journal

import (
	"sync"

	"droscher.com/BeerDiary/pkg/model"
)

// Session buffers tasting entries that belong to one browsing session and may
// not be persisted yet. The store never reads it; callers pass its entries to
// Reconcile and apply Removals from DeleteTasting.
type Session struct {
	mu      sync.Mutex
	entries []model.TastingEntry
}

func NewSession() *Session {
	return &Session{}
}

// Add buffers entry unless an entry with the same key is already buffered.
func (s *Session) Add(entry model.TastingEntry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(entry.Key()) >= 0 {
		return false
	}

	s.entries = append(s.entries, entry)

	return true
}

func (s *Session) Contains(key model.TastingKey) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.indexOf(key) >= 0
}

// Drop removes every buffered entry with key and returns how many were removed.
func (s *Session) Drop(key model.TastingKey) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.entries[:0]

	for _, entry := range s.entries {
		if entry.Key() != key {
			kept = append(kept, entry)
		}
	}

	dropped := len(s.entries) - len(kept)
	clear(s.entries[len(kept):])
	s.entries = kept

	return dropped
}

func (s *Session) Apply(removal Removal) int {
	return s.Drop(removal.Key)
}

func (s *Session) Entries() []model.TastingEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]model.TastingEntry, len(s.entries))
	copy(entries, s.entries)

	return entries
}

func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

func (s *Session) indexOf(key model.TastingKey) int {
	for index, entry := range s.entries {
		if entry.Key() == key {
			return index
		}
	}

	return -1
}
