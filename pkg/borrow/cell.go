package borrow

// Cell owns a value of type T and tracks the references handed out for it.
type Cell[T any] struct {
	value     T
	shared    int
	exclusive bool
	moved     bool
}

// New returns a cell owning v.
func New[T any](v T) *Cell[T] {
	return &Cell[T]{value: v}
}

// Shared returns the number of live shared references.
func (c *Cell[T]) Shared() int { return c.shared }

// Exclusive reports whether an exclusive reference is live.
func (c *Cell[T]) Exclusive() bool { return c.exclusive }

// Moved reports whether the value has been moved out.
func (c *Cell[T]) Moved() bool { return c.moved }

func (c *Cell[T]) fail(op string, err error) *BorrowError {
	return &BorrowError{Op: op, Shared: c.shared, Exclusive: c.exclusive, Err: err}
}

// check returns the error for an access that needs the given level.
// Reads conflict only with an exclusive reference; writes conflict with any.
func (c *Cell[T]) check(op string, write bool) error {
	switch {
	case c.moved:
		return c.fail(op, ErrMoved)
	case c.exclusive:
		return c.fail(op, ErrMutablyBorrowed)
	case write && c.shared > 0:
		return c.fail(op, ErrBorrowed)
	}
	return nil
}

// TryBorrow returns a shared reference, or an error if an exclusive one is live.
func (c *Cell[T]) TryBorrow() (*Ref[T], error) {
	if err := c.check("borrow", false); err != nil {
		return nil, err
	}
	c.shared++
	return &Ref[T]{cell: c}, nil
}

// Borrow is TryBorrow that panics on conflict.
func (c *Cell[T]) Borrow() *Ref[T] {
	r, err := c.TryBorrow()
	if err != nil {
		panic(err)
	}
	return r
}

// TryBorrowMut returns an exclusive reference, or an error if any reference is live.
func (c *Cell[T]) TryBorrowMut() (*RefMut[T], error) {
	if err := c.check("borrow_mut", true); err != nil {
		return nil, err
	}
	c.exclusive = true
	return &RefMut[T]{cell: c}, nil
}

// BorrowMut is TryBorrowMut that panics on conflict.
func (c *Cell[T]) BorrowMut() *RefMut[T] {
	r, err := c.TryBorrowMut()
	if err != nil {
		panic(err)
	}
	return r
}

// TryGet reads the value as its owner. Allowed alongside shared references.
func (c *Cell[T]) TryGet() (T, error) {
	if err := c.check("get", false); err != nil {
		var zero T
		return zero, err
	}
	return c.value, nil
}

// Get is TryGet that panics on conflict.
func (c *Cell[T]) Get() T {
	v, err := c.TryGet()
	if err != nil {
		panic(err)
	}
	return v
}

// TrySet writes the value as its owner. Only allowed while no reference is live.
func (c *Cell[T]) TrySet(v T) error {
	if err := c.check("set", true); err != nil {
		return err
	}
	c.value = v
	return nil
}

// Set is TrySet that panics on conflict.
func (c *Cell[T]) Set(v T) {
	if err := c.TrySet(v); err != nil {
		panic(err)
	}
}

// TryMove transfers ownership to a new cell. The receiver rejects all later access.
func (c *Cell[T]) TryMove() (*Cell[T], error) {
	if err := c.check("move", true); err != nil {
		return nil, err
	}
	next := &Cell[T]{value: c.value}
	c.forget()
	return next, nil
}

// Move is TryMove that panics on conflict.
func (c *Cell[T]) Move() *Cell[T] {
	next, err := c.TryMove()
	if err != nil {
		panic(err)
	}
	return next
}

// TryTake consumes the cell and returns its value.
func (c *Cell[T]) TryTake() (T, error) {
	if err := c.check("take", true); err != nil {
		var zero T
		return zero, err
	}
	v := c.value
	c.forget()
	return v, nil
}

// Take is TryTake that panics on conflict.
func (c *Cell[T]) Take() T {
	v, err := c.TryTake()
	if err != nil {
		panic(err)
	}
	return v
}

func (c *Cell[T]) forget() {
	var zero T
	c.value = zero
	c.moved = true
}

// With runs fn with a shared reference that is released when fn returns.
func With[T any](c *Cell[T], fn func(T)) {
	r := c.Borrow()
	defer r.Release()
	fn(r.Get())
}

// WithMut runs fn with exclusive access that is released when fn returns.
func WithMut[T any](c *Cell[T], fn func(*T)) {
	r := c.BorrowMut()
	defer r.Release()
	r.Update(fn)
}
