package models

import (
	"fmt"
	"sync"
)

// Store is an ordered in-memory collection of records keyed by id. Insertion
// order is kept; Replace swaps an entry in place. Reads return copies.
type Store[T Record] struct {
	mu      sync.RWMutex
	items   []T
	version uint64
}

func NewStore[T Record]() *Store[T] {
	return &Store[T]{items: make([]T, 0)}
}

// Seed replaces the whole collection. Ids must be positive and unique.
func (s *Store[T]) Seed(items []T) error {
	seen := make(map[int]struct{}, len(items))
	next := make([]T, 0, len(items))
	for _, rec := range items {
		id := rec.GetID()
		if id <= 0 {
			return fmt.Errorf("seed: invalid id %d", id)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("seed: duplicate id %d", id)
		}
		seen[id] = struct{}{}
		next = append(next, cloneRecord(rec))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = next
	s.version++
	return nil
}

func (s *Store[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, len(s.items))
	for i, rec := range s.items {
		out[i] = cloneRecord(rec)
	}
	return out
}

func (s *Store[T]) Get(id int) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.index(id); i >= 0 {
		return cloneRecord(s.items[i]), true
	}
	var zero T
	return zero, false
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Version increases on every mutation.
func (s *Store[T]) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Insert allocates the next id, builds the record with it and appends it in
// one step. Nothing is stored when build fails.
func (s *Store[T]) Insert(build func(id int) (T, error)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	id := NextID(s.ids())
	rec, err := build(id)
	if err != nil {
		return zero, err
	}
	if rec.GetID() != id {
		return zero, fmt.Errorf("insert: record id %d, allocated %d", rec.GetID(), id)
	}
	s.items = append(s.items, cloneRecord(rec))
	s.version++
	return cloneRecord(rec), nil
}

// Replace swaps the record with the same id in place.
func (s *Store[T]) Replace(rec T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(rec.GetID())
	if i < 0 {
		return false
	}
	s.items[i] = cloneRecord(rec)
	s.version++
	return true
}

func (s *Store[T]) Remove(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	s.version++
	return true
}

func (s *Store[T]) index(id int) int {
	for i, rec := range s.items {
		if rec.GetID() == id {
			return i
		}
	}
	return -1
}

func (s *Store[T]) ids() []int {
	ids := make([]int, len(s.items))
	for i, rec := range s.items {
		ids[i] = rec.GetID()
	}
	return ids
}
