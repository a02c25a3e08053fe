// Package notestore is the local cache of the user's notes, plus the
// staleness rule that keeps tag labels honest: every tag mutation marks
// the cache stale, and the next read re-fetches it. That is how a tag
// rename is guaranteed to propagate into note display without the
// cache ever serving an outdated name.
package notestore

import (
	"sync"

	"github.com/foreskyapp/foresky-cli/internal/domain"
)

// Store caches notes between fetches. Only successful remote
// operations mutate it; a failed fetch keeps the previous contents.
type Store struct {
	mu    sync.RWMutex
	notes []domain.Note
	byID  map[int64]int
	stale bool
}

// New creates an empty, stale store so that the first read always
// fetches from the server.
func New() *Store {
	return &Store{byID: make(map[int64]int), stale: true}
}

// All returns the cached notes in server order.
func (s *Store) All() []domain.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// Len returns the number of cached notes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

// Get looks a note up by identifier.
func (s *Store) Get(id int64) (domain.Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byID[id]
	if !ok {
		return domain.Note{}, false
	}
	return s.notes[i], true
}

// Stale reports whether the cache must be re-fetched before use.
func (s *Store) Stale() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stale
}

// Invalidate marks the cache stale. Called after every tag mutation
// (rename or delete), whose effects reach into note display.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stale = true
}

// ReplaceAll swaps the cache for a freshly fetched note list and
// clears the staleness mark.
func (s *Store) ReplaceAll(notes []domain.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = make([]domain.Note, len(notes))
	copy(s.notes, notes)
	s.byID = make(map[int64]int, len(notes))
	for i, n := range s.notes {
		s.byID[n.ID] = i
	}
	s.stale = false
}

// Upsert merges a created or updated note into the cache.
func (s *Store) Upsert(note domain.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i, ok := s.byID[note.ID]; ok {
		s.notes[i] = note
		return
	}
	s.notes = append(s.notes, note)
	s.byID[note.ID] = len(s.notes) - 1
}

// Remove drops a note from the cache.
func (s *Store) Remove(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.byID[id]
	if !ok {
		return
	}
	s.notes = append(s.notes[:i], s.notes[i+1:]...)
	delete(s.byID, id)
	for j := i; j < len(s.notes); j++ {
		s.byID[s.notes[j].ID] = j
	}
}
