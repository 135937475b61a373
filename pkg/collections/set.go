package collections

import (
	"cmp"
	"strings"

	"github.com/aretw0/ferrule/internal/debugfmt"
	"github.com/emirpasic/gods/sets/treeset"
)

// Set holds unique values in ascending order.
type Set[T cmp.Ordered] struct {
	tree *treeset.Set
}

// NewSet returns a set holding the given values.
func NewSet[T cmp.Ordered](values ...T) *Set[T] {
	s := &Set[T]{tree: treeset.NewWith(comparator[T]())}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts v and reports whether it was not already present.
func (s *Set[T]) Add(v T) bool {
	if s.tree.Contains(v) {
		return false
	}
	s.tree.Add(v)
	return true
}

func (s *Set[T]) Contains(v T) bool { return s.tree.Contains(v) }

func (s *Set[T]) Remove(v T) { s.tree.Remove(v) }

func (s *Set[T]) Len() int { return s.tree.Size() }

// Values returns the members in ascending order.
func (s *Set[T]) Values() []T {
	raw := s.tree.Values()
	out := make([]T, len(raw))
	for i, v := range raw {
		out[i] = v.(T)
	}
	return out
}

// String renders the set as {a, b}.
func (s *Set[T]) String() string {
	parts := make([]string, 0, s.Len())
	for _, v := range s.Values() {
		parts = append(parts, debugfmt.Format(v))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
