package borrow

func checkRange(op string, n, lo, hi int) error {
	if lo < 0 || hi > n || lo > hi {
		return &BorrowError{Op: op, Err: ErrOutOfRange}
	}
	return nil
}

// SliceRef is a shared view over the range [lo, hi) of a slice owned by a Cell.
// It holds a shared borrow on the parent until released.
type SliceRef[T any] struct {
	parent *Ref[[]T]
	lo, hi int
}

// View borrows the range [lo, hi) of c's slice for reading.
func View[T any](c *Cell[[]T], lo, hi int) (*SliceRef[T], error) {
	r, err := c.TryBorrow()
	if err != nil {
		return nil, err
	}
	if err := checkRange("view", len(r.Get()), lo, hi); err != nil {
		r.Release()
		return nil, err
	}
	return &SliceRef[T]{parent: r, lo: lo, hi: hi}, nil
}

func (s *SliceRef[T]) Len() int { return s.hi - s.lo }

// At returns element i of the view, counted from the start of the view.
func (s *SliceRef[T]) At(i int) T {
	return s.parent.Get()[s.lo:s.hi][i]
}

// Values returns a copy of the viewed elements.
func (s *SliceRef[T]) Values() []T {
	return append([]T(nil), s.parent.Get()[s.lo:s.hi]...)
}

// Release ends the view and its borrow on the parent.
func (s *SliceRef[T]) Release() { s.parent.Release() }

// SliceMut is an exclusive view over the range [lo, hi) of a slice owned by a Cell.
type SliceMut[T any] struct {
	parent *RefMut[[]T]
	lo, hi int
}

// ViewMut borrows the range [lo, hi) of c's slice for writing.
func ViewMut[T any](c *Cell[[]T], lo, hi int) (*SliceMut[T], error) {
	r, err := c.TryBorrowMut()
	if err != nil {
		return nil, err
	}
	if err := checkRange("view_mut", len(r.Get()), lo, hi); err != nil {
		r.Release()
		return nil, err
	}
	return &SliceMut[T]{parent: r, lo: lo, hi: hi}, nil
}

func (s *SliceMut[T]) Len() int { return s.hi - s.lo }

func (s *SliceMut[T]) At(i int) T {
	return s.parent.Get()[s.lo:s.hi][i]
}

// Set writes element i of the view through to the parent.
func (s *SliceMut[T]) Set(i int, v T) {
	s.parent.Get()[s.lo:s.hi][i] = v
}

func (s *SliceMut[T]) Values() []T {
	return append([]T(nil), s.parent.Get()[s.lo:s.hi]...)
}

func (s *SliceMut[T]) Release() { s.parent.Release() }
