package borrow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharedBorrowsCoexist(t *testing.T) {
	c := New("Hello, Rust!")
	b1 := c.Borrow()
	b2 := c.Borrow()

	assert.Equal(t, 2, c.Shared())
	assert.Equal(t, "Hello, Rust!", b1.Get())
	assert.Equal(t, "Hello, Rust!", b2.Get())
	assert.Equal(t, "Hello, Rust!", c.Get(), "owner may read alongside shared borrows")

	b1.Release()
	b2.Release()
	assert.Equal(t, 0, c.Shared())
}

func TestExclusiveRejectsEverythingElse(t *testing.T) {
	c := New(1)
	m := c.BorrowMut()

	_, err := c.TryBorrow()
	assert.ErrorIs(t, err, ErrMutablyBorrowed)

	_, err = c.TryBorrowMut()
	assert.ErrorIs(t, err, ErrMutablyBorrowed)

	_, err = c.TryGet()
	assert.ErrorIs(t, err, ErrMutablyBorrowed, "owner cannot read during an exclusive borrow")

	assert.ErrorIs(t, c.TrySet(2), ErrMutablyBorrowed)

	m.Set(5)
	m.Release()
	assert.Equal(t, 5, c.Get())
}

func TestSharedRejectsExclusiveAndOwnerWrite(t *testing.T) {
	c := New([]int{1})
	r := c.Borrow()

	_, err := c.TryBorrowMut()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBorrowed)

	var be *BorrowError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, "borrow_mut", be.Op)
	assert.Equal(t, 1, be.Shared)
	assert.False(t, be.Exclusive)
	assert.Equal(t, "borrow_mut: already borrowed (1 shared references live)", err.Error())

	assert.ErrorIs(t, c.TrySet(nil), ErrBorrowed)
	_, err = c.TryMove()
	assert.ErrorIs(t, err, ErrBorrowed)

	r.Release()
	assert.NoError(t, c.TrySet([]int{2}))
}

func TestSequentialExclusiveBorrows(t *testing.T) {
	c := New("Hello")
	first := c.BorrowMut()
	first.Update(func(s *string) { *s += ", world!" })
	first.Release()

	second := c.BorrowMut()
	second.Update(func(s *string) { *s += " Welcome to Rust!" })
	second.Release()

	assert.Equal(t, "Hello, world! Welcome to Rust!", c.Get())
}

func TestReleaseIsIdempotent(t *testing.T) {
	c := New(0)
	r := c.Borrow()
	r.Release()
	r.Release()
	assert.Equal(t, 0, c.Shared())

	m := c.BorrowMut()
	m.Release()
	m.Release()
	assert.False(t, c.Exclusive())

	// a second release of the first ref must not free someone else's borrow
	other := c.Borrow()
	r.Release()
	assert.Equal(t, 1, c.Shared())
	other.Release()
}

func TestUseAfterRelease(t *testing.T) {
	c := New(3)
	r := c.Borrow()
	r.Release()
	assert.PanicsWithError(t, "get: reference used after release", func() { r.Get() })

	m := c.BorrowMut()
	m.Release()
	assert.Panics(t, func() { m.Set(4) })
	assert.Panics(t, func() { m.Update(func(*int) {}) })
}

func TestMoveInvalidatesSource(t *testing.T) {
	s1 := New("test ownership")
	s2 := s1.Move()

	assert.True(t, s1.Moved())
	assert.Equal(t, "test ownership", s2.Get())

	_, err := s1.TryGet()
	assert.ErrorIs(t, err, ErrMoved)
	_, err = s1.TryBorrow()
	assert.ErrorIs(t, err, ErrMoved)
	_, err = s1.TryMove()
	assert.ErrorIs(t, err, ErrMoved)
	assert.Panics(t, func() { s1.Get() })
}

func TestTakeConsumes(t *testing.T) {
	c := New([]string{"one", "two"})
	v := c.Take()
	assert.Equal(t, []string{"one", "two"}, v)
	_, err := c.TryTake()
	assert.ErrorIs(t, err, ErrMoved)
}

func TestScopedHelpersRelease(t *testing.T) {
	c := New("Hi")
	WithMut(c, func(s *string) { *s += ", world!" })
	With(c, func(s string) { assert.Equal(t, "Hi, world!", s) })
	assert.Equal(t, 0, c.Shared())
	assert.False(t, c.Exclusive())

	assert.Panics(t, func() {
		WithMut(c, func(*string) { panic("boom") })
	})
	assert.False(t, c.Exclusive(), "borrow released during panic")
}

func TestPanickingVariantsCarryBorrowError(t *testing.T) {
	c := New(1)
	r := c.Borrow()
	defer r.Release()

	defer func() {
		rec := recover()
		err, ok := rec.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, ErrBorrowed)
	}()
	c.BorrowMut()
}

// Exclusive mutation through a reference touches every element exactly once.
func TestExclusiveArrayMutation(t *testing.T) {
	arr := New([5]int{1, 2, 3, 4, 5})
	m := arr.BorrowMut()
	m.Update(func(a *[5]int) {
		for i := range a {
			a[i] += 10
		}
	})
	m.Release()
	assert.Equal(t, [5]int{11, 12, 13, 14, 15}, arr.Get())
}

func TestSharedRefOfSliceAliasesOwner(t *testing.T) {
	c := New([]int{1, 2, 3})
	r := c.Borrow()

	_, err := c.TryBorrowMut()
	require.Error(t, err)

	// Writes through the returned slice are not tracked.
	r.Get()[0] = 99
	r.Release()
	assert.Equal(t, []int{99, 2, 3}, c.Get())
}
