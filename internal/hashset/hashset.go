// Package hashset provides an insertion-only hash set backed by a
// SwissTable map.
package hashset

import (
	"github.com/dolthub/swiss"
)

// defaultCapacity is the size hint used when the caller has none.
const defaultCapacity = 8

// Set is a set of comparable values. The zero value is not usable; call New.
type Set[T comparable] struct {
	m *swiss.Map[T, struct{}]
}

// New returns an empty Set sized for about capacity values.
func New[T comparable](capacity uint32) *Set[T] {
	if capacity == 0 {
		capacity = defaultCapacity
	}
	return &Set[T]{m: swiss.NewMap[T, struct{}](capacity)}
}

// Add inserts v and reports whether it was not already present.
func (s *Set[T]) Add(v T) bool {
	if s.m.Has(v) {
		return false
	}
	s.m.Put(v, struct{}{})
	return true
}

// Remove deletes v and reports whether it was present.
func (s *Set[T]) Remove(v T) bool {
	return s.m.Delete(v)
}

func (s *Set[T]) Has(v T) bool {
	return s.m.Has(v)
}

func (s *Set[T]) Len() int {
	return s.m.Count()
}
