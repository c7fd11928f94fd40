// Package pkg is a package that provides utilities for testwatch.
package pkg

// OrderedSet is an insertion-ordered collection that drops exact duplicates.
// It is not safe for concurrent use.
type OrderedSet[T comparable] interface {
	Len() int
	Add(item T) bool
	Contains(item T) bool
	Items() []T
	Drain() []T
}

type orderedSetImpl[T comparable] struct {
	items []T
	index map[T]struct{}
}

// NewOrderedSet creates an empty OrderedSet.
func NewOrderedSet[T comparable]() OrderedSet[T] {
	return &orderedSetImpl[T]{
		index: make(map[T]struct{}),
	}
}

// Add implements OrderedSet. It returns false when item is already present.
func (s *orderedSetImpl[T]) Add(item T) bool {
	if _, ok := s.index[item]; ok {
		return false
	}

	s.index[item] = struct{}{}
	s.items = append(s.items, item)

	return true
}

// Contains implements OrderedSet.
func (s *orderedSetImpl[T]) Contains(item T) bool {
	_, ok := s.index[item]
	return ok
}

// Len implements OrderedSet.
func (s *orderedSetImpl[T]) Len() int {
	return len(s.items)
}

// Items implements OrderedSet. The returned slice is a copy.
func (s *orderedSetImpl[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)

	return out
}

// Drain implements OrderedSet. The set is swapped for an empty one and the
// previous contents are returned in insertion order.
func (s *orderedSetImpl[T]) Drain() []T {
	drained := s.items
	s.items = nil
	s.index = make(map[T]struct{})

	if drained == nil {
		return []T{}
	}

	return drained
}
