package seq

import (
	"iter"

	"github.com/aretw0/ferrule/pkg/borrow"
	"github.com/aretw0/ferrule/pkg/option"
)

// Iterator is a pull-based, single-pass sequence.
type Iterator[T any] interface {
	Next() option.Option[T]
}

// Func adapts a function to an Iterator. The result is fused.
func Func[T any](next func() option.Option[T]) Iterator[T] {
	return &funcIter[T]{next: next}
}

type funcIter[T any] struct {
	next func() option.Option[T]
	done bool
}

func (f *funcIter[T]) Next() option.Option[T] {
	if f.done {
		return option.None[T]()
	}
	v := f.next()
	if v.IsNone() {
		f.done = true
		f.next = nil
	}
	return v
}

func fromSlice[T any](s []T) Iterator[T] {
	i := 0
	return Func(func() option.Option[T] {
		if i >= len(s) {
			return option.None[T]()
		}
		v := s[i]
		i++
		return option.Some(v)
	})
}

// Values iterates over a copy of s taken when Values is called.
func Values[T any](s []T) Iterator[T] {
	return fromSlice(append([]T(nil), s...))
}

// Refs iterates through a shared borrow. The source is read, never written.
func Refs[T any](r *borrow.Ref[[]T]) Iterator[T] {
	i := 0
	return Func(func() option.Option[T] {
		s := r.Get()
		if i >= len(s) {
			return option.None[T]()
		}
		v := s[i]
		i++
		return option.Some(v)
	})
}

// IterMut yields a pointer to each element through an exclusive borrow.
// The pointers are only valid while the borrow is live.
func IterMut[T any](r *borrow.RefMut[[]T]) Iterator[*T] {
	i := 0
	return Func(func() option.Option[*T] {
		s := r.Get()
		if i >= len(s) {
			return option.None[*T]()
		}
		p := &s[i]
		i++
		return option.Some(p)
	})
}

// IntoIter moves the slice out of c; c is unusable afterwards.
func IntoIter[T any](c *borrow.Cell[[]T]) Iterator[T] {
	return fromSlice(c.Take())
}

// Range yields lo, lo+1, ..., hi-1.
func Range(lo, hi int) Iterator[int] {
	return Func(func() option.Option[int] {
		if lo >= hi {
			return option.None[int]()
		}
		v := lo
		lo++
		return option.Some(v)
	})
}

// RangeInclusive yields lo, lo+1, ..., hi.
func RangeInclusive(lo, hi int) Iterator[int] {
	return Range(lo, hi+1)
}

// Map transforms each element with fn, possibly into another type.
func Map[T, U any](it Iterator[T], fn func(T) U) Iterator[U] {
	return Func(func() option.Option[U] {
		return option.Map(it.Next(), fn)
	})
}

// Filter keeps the elements for which keep reports true.
func Filter[T any](it Iterator[T], keep func(T) bool) Iterator[T] {
	return Func(func() option.Option[T] {
		for {
			v, ok := it.Next().Get()
			if !ok {
				return option.None[T]()
			}
			if keep(v) {
				return option.Some(v)
			}
		}
	})
}

// Chain yields every element of a, then every element of b.
func Chain[T any](a, b Iterator[T]) Iterator[T] {
	first := true
	return Func(func() option.Option[T] {
		if first {
			if v := a.Next(); v.IsSome() {
				return v
			}
			first = false
		}
		return b.Next()
	})
}

// Indexed pairs an element with its position in the traversal.
type Indexed[T any] struct {
	Index int
	Value T
}

// Enumerate pairs each element with its zero-based index.
func Enumerate[T any](it Iterator[T]) Iterator[Indexed[T]] {
	i := 0
	return Func(func() option.Option[Indexed[T]] {
		return option.Map(it.Next(), func(v T) Indexed[T] {
			p := Indexed[T]{Index: i, Value: v}
			i++
			return p
		})
	})
}

// Collect drains it into a slice.
func Collect[T any](it Iterator[T]) []T {
	var out []T
	for v := range All(it) {
		out = append(out, v)
	}
	return out
}

// ForEach calls fn on every remaining element.
func ForEach[T any](it Iterator[T], fn func(T)) {
	for v := range All(it) {
		fn(v)
	}
}

// Count drains it and returns the number of elements.
func Count[T any](it Iterator[T]) int {
	n := 0
	for range All(it) {
		n++
	}
	return n
}

// All adapts it to a range-over-func sequence. Breaking out of the loop leaves the
// remaining elements in it.
func All[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next().Get()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// All2 adapts an enumeration to a two-value range-over-func sequence.
func All2[T any](it Iterator[Indexed[T]]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for p := range All(it) {
			if !yield(p.Index, p.Value) {
				return
			}
		}
	}
}
