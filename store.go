package main

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Store holds all puzzle sessions in memory.
type Store struct {
	mu      sync.RWMutex
	puzzles map[string]*Session
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		puzzles: make(map[string]*Session),
	}
}

// CreatePuzzle starts a session on an all-black grid of the given size.
func (s *Store) CreatePuzzle(size int) (*Session, error) {
	p, err := newSession(uuid.NewString(), size)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.puzzles[p.ID] = p
	s.mu.Unlock()

	return p, nil
}

// GetPuzzle returns a session by ID, or nil if not found.
func (s *Store) GetPuzzle(id string) *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.puzzles[id]
}

// DeletePuzzle removes a session. It reports whether the session existed.
func (s *Store) DeletePuzzle(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.puzzles[id]; !ok {
		return false
	}
	delete(s.puzzles, id)
	return true
}

// ListPuzzles returns all sessions, most recent first.
func (s *Store) ListPuzzles() []*Session {
	s.mu.RLock()
	list := make([]*Session, 0, len(s.puzzles))
	for _, p := range s.puzzles {
		list = append(list, p)
	}
	s.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list
}
