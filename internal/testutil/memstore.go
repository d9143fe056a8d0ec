package testutil

import (
	"context"
	"sync"

	"github.com/akyairhashvil/dialtimer/internal/models"
)

// MemStore is an in-memory timer store that records every save.
type MemStore struct {
	mu       sync.Mutex
	timers   []models.Timer
	selected int
	saves    int
	LoadErr  error
	SaveErr  error
}

// NewMemStore creates a store pre-populated with timers.
func NewMemStore(timers []models.Timer, selected int) *MemStore {
	return &MemStore{timers: cloneAll(timers), selected: selected}
}

func (s *MemStore) Load(ctx context.Context) ([]models.Timer, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return nil, 0, s.LoadErr
	}
	return cloneAll(s.timers), s.selected, nil
}

func (s *MemStore) Save(ctx context.Context, timers []models.Timer, selected int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.timers = cloneAll(timers)
	s.selected = selected
	return nil
}

// Saved returns the last saved state.
func (s *MemStore) Saved() ([]models.Timer, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAll(s.timers), s.selected
}

// Saves returns how many times Save was called.
func (s *MemStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

func cloneAll(in []models.Timer) []models.Timer {
	out := make([]models.Timer, len(in))
	for i, t := range in {
		out[i] = t.Clone()
	}
	return out
}
