// Package session holds the process-wide record of which principal, if any,
// is currently authenticated, plus the optional file-backed persistence the
// host UI uses to survive process restarts.
package session

import "sync"

// Store is the process-wide session state. Exactly one Store exists per
// running process; it lives only for the process lifetime.
//
// Mutation is a critical section: a single writer at a time, and readers
// always observe the last fully committed value. There is no intermediate
// "logged in but wrong id" state.
type Store struct {
	mu           sync.RWMutex
	activeUserID int64
}

// NewStore returns an unauthenticated session store.
func NewStore() *Store {
	return &Store{}
}

// SetActive records id as the authenticated principal. id must be positive;
// non-positive values leave the store unauthenticated.
func (s *Store) SetActive(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id <= 0 {
		s.activeUserID = 0
		return
	}
	s.activeUserID = id
}

// Clear drops the active session.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeUserID = 0
}

// Active returns the authenticated principal id and whether one is set.
func (s *Store) Active() (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeUserID, s.activeUserID > 0
}
