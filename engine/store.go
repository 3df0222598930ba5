package engine

import (
	"sync"

	"github.com/lixenwraith/sandfall/core"
)

// Store is a sparse set of components of type T
// Dense parallel slices give cache-friendly iteration; index map gives O(1) removal
type Store[T any] struct {
	mu       sync.RWMutex
	index    map[core.Entity]int
	entities []core.Entity
	values   []T
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{
		index:    make(map[core.Entity]int),
		entities: make([]core.Entity, 0, 64),
		values:   make([]T, 0, 64),
	}
}

// Set inserts or replaces the component of an entity
func (s *Store[T]) Set(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[e]; ok {
		s.values[i] = val
		return
	}
	s.index[e] = len(s.entities)
	s.entities = append(s.entities, e)
	s.values = append(s.values, val)
}

func (s *Store[T]) Get(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i, ok := s.index[e]; ok {
		return s.values[i], true
	}
	var zero T
	return zero, false
}

// Remove deletes an entity's component by swapping the last element into its slot
func (s *Store[T]) Remove(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[e]
	if !ok {
		return
	}
	last := len(s.entities) - 1
	if i != last {
		s.entities[i] = s.entities[last]
		s.values[i] = s.values[last]
		s.index[s.entities[i]] = i
	}
	var zero T
	s.values[last] = zero
	s.entities = s.entities[:last]
	s.values = s.values[:last]
	delete(s.index, e)
}

func (s *Store[T]) Has(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[e]
	return ok
}

// All returns a snapshot of entities holding this component
// Safe to mutate the store while iterating the result
func (s *Store[T]) All() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

func (s *Store[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.index)
	clear(s.values)
	s.entities = s.entities[:0]
	s.values = s.values[:0]
}
