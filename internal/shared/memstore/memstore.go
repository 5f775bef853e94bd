package memstore

import (
	"sync"

	"github.com/google/uuid"
)

// Store is an in-memory keyed collection: the sole source of truth for
// one resource type. Iteration order is insertion order. There is no
// secondary indexing; callers filter by scanning List.
//
// Gin handles requests concurrently, so every method locks even though
// individual operations are trivial.
type Store[T any] struct {
	mu    sync.RWMutex
	items map[uuid.UUID]T
	order []uuid.UUID
}

func New[T any]() *Store[T] {
	return &Store[T]{
		items: make(map[uuid.UUID]T),
	}
}

func (s *Store[T]) Insert(id uuid.UUID, item T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		s.order = append(s.order, id)
	}
	s.items[id] = item
}

func (s *Store[T]) Get(id uuid.UUID) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	return item, ok
}

// List returns all items in insertion order.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]T, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, s.items[id])
	}
	return items
}

// Delete reports whether the id existed.
func (s *Store[T]) Delete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.remove(id)
}

func (s *Store[T]) Has(id uuid.UUID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.items[id]
	return ok
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

// DeleteWhere removes every item matching the predicate and returns
// how many were removed. Used for cascade deletes.
func (s *Store[T]) DeleteWhere(match func(T) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []uuid.UUID
	for _, id := range s.order {
		if match(s.items[id]) {
			ids = append(ids, id)
		}
	}
	for _, id := range ids {
		s.remove(id)
	}
	return len(ids)
}

// remove expects the write lock to be held.
func (s *Store[T]) remove(id uuid.UUID) bool {
	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}
