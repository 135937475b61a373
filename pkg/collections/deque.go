package collections

import (
	"github.com/aretw0/ferrule/internal/debugfmt"
	"github.com/aretw0/ferrule/pkg/option"
	"github.com/emirpasic/gods/lists/doublylinkedlist"
)

// Deque is a double-ended queue.
type Deque[T any] struct {
	list *doublylinkedlist.List
}

func NewDeque[T any]() *Deque[T] {
	return &Deque[T]{list: doublylinkedlist.New()}
}

func (d *Deque[T]) PushBack(v T) { d.list.Add(v) }

func (d *Deque[T]) PushFront(v T) { d.list.Prepend(v) }

// PopFront removes and returns the first element.
func (d *Deque[T]) PopFront() option.Option[T] {
	return d.pop(0)
}

// PopBack removes and returns the last element.
func (d *Deque[T]) PopBack() option.Option[T] {
	return d.pop(d.list.Size() - 1)
}

func (d *Deque[T]) pop(index int) option.Option[T] {
	v, ok := d.list.Get(index)
	if !ok {
		return option.None[T]()
	}
	d.list.Remove(index)
	return option.Some(v.(T))
}

func (d *Deque[T]) Len() int { return d.list.Size() }

// Values returns the elements from front to back.
func (d *Deque[T]) Values() []T {
	raw := d.list.Values()
	out := make([]T, len(raw))
	for i, v := range raw {
		out[i] = v.(T)
	}
	return out
}

// String renders the deque as [front, ..., back].
func (d *Deque[T]) String() string {
	return debugfmt.Format(d.Values())
}
