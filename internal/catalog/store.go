package catalog

import "sync"

// Store holds the active catalog. Activating a snapshot swaps the whole
// catalog pointer; readers take the pointer once and never see a partially
// updated dataset.
type Store struct {
	mu      sync.RWMutex
	current *Catalog
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Set makes c the active catalog.
func (s *Store) Set(c *Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = c
}

// Current returns the active catalog, or false when no dataset is loaded.
func (s *Store) Current() (*Catalog, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.current != nil
}
