package store

import (
	"context"
	"slices"
	"strings"
	"sync"
)

// MemoryStore keeps figures in an in-process map. Useful for tests and for
// serving ad hoc figures without touching disk.
type MemoryStore struct {
	mu   sync.RWMutex
	figs map[string]Figure
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() Store {
	return &MemoryStore{figs: make(map[string]Figure)}
}

// Put stores fig, replacing any previous version.
func (s *MemoryStore) Put(ctx context.Context, fig Figure) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.figs[fig.Name] = fig
	return nil
}

// Get retrieves the figure stored under name.
func (s *MemoryStore) Get(ctx context.Context, name string) (Figure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fig, ok := s.figs[name]
	if !ok {
		return Figure{}, ErrNotFound
	}
	return fig, nil
}

// List returns all stored figures sorted by name.
func (s *MemoryStore) List(ctx context.Context) ([]Figure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	figs := make([]Figure, 0, len(s.figs))
	for _, fig := range s.figs {
		figs = append(figs, fig)
	}
	slices.SortFunc(figs, func(a, b Figure) int {
		return strings.Compare(a.Name, b.Name)
	})
	return figs, nil
}

// Delete removes the figure stored under name.
func (s *MemoryStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.figs[name]; !ok {
		return ErrNotFound
	}
	delete(s.figs, name)
	return nil
}

// Close does nothing for the memory backend.
func (s *MemoryStore) Close() error { return nil }

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
