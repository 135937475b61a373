package borrow

import (
	"errors"
	"fmt"
)

var (
	// ErrBorrowed is returned when exclusive access is requested while shared
	// references are live.
	ErrBorrowed = errors.New("already borrowed")
	// ErrMutablyBorrowed is returned when any access is requested while an exclusive
	// reference is live.
	ErrMutablyBorrowed = errors.New("already mutably borrowed")
	// ErrMoved is returned on any access to a cell whose value was moved out.
	ErrMoved = errors.New("value used after move")
	// ErrReleased is returned on access through a released reference.
	ErrReleased = errors.New("reference used after release")
	// ErrOutOfRange is returned for a slice view outside the parent's bounds.
	ErrOutOfRange = errors.New("range out of bounds")
)

// BorrowError describes a rejected access and the borrow state at that moment.
type BorrowError struct {
	Op        string // borrow, borrow_mut, get, set, move, take, view
	Shared    int    // live shared references
	Exclusive bool   // whether an exclusive reference was live
	Err       error
}

func (e *BorrowError) Error() string {
	switch {
	case e.Exclusive:
		return fmt.Sprintf("%s: %v (exclusive reference live)", e.Op, e.Err)
	case e.Shared > 0:
		return fmt.Sprintf("%s: %v (%d shared references live)", e.Op, e.Err, e.Shared)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *BorrowError) Unwrap() error { return e.Err }
