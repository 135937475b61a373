package borrow

// Ref is a shared, read-only reference to the value of a Cell.
type Ref[T any] struct {
	cell     *Cell[T]
	released bool
}

// Get returns the referenced value.
func (r *Ref[T]) Get() T {
	if r.released {
		panic(&BorrowError{Op: "get", Err: ErrReleased})
	}
	return r.cell.value
}

// Release ends the borrow. Calling it again is a no-op.
func (r *Ref[T]) Release() {
	if r.released {
		return
	}
	r.released = true
	r.cell.shared--
}

// RefMut is an exclusive reference to the value of a Cell.
type RefMut[T any] struct {
	cell     *Cell[T]
	released bool
}

func (r *RefMut[T]) live(op string) {
	if r.released {
		panic(&BorrowError{Op: op, Err: ErrReleased})
	}
}

// Get returns the referenced value.
func (r *RefMut[T]) Get() T {
	r.live("get")
	return r.cell.value
}

// Set replaces the referenced value.
func (r *RefMut[T]) Set(v T) {
	r.live("set")
	r.cell.value = v
}

// Update mutates the value in place. The pointer must not outlive fn.
func (r *RefMut[T]) Update(fn func(*T)) {
	r.live("update")
	fn(&r.cell.value)
}

// Release ends the borrow. Calling it again is a no-op.
func (r *RefMut[T]) Release() {
	if r.released {
		return
	}
	r.released = true
	r.cell.exclusive = false
}
