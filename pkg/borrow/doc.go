/*
Package borrow enforces exclusive/shared reference discipline at run time.

A Cell owns a value. Access goes through references obtained from the cell:

  - any number of shared references (Ref) may be live at once;
  - at most one exclusive reference (RefMut) may be live at a time;
  - shared and exclusive references are never live at the same time.

Violations are detected when a reference is requested. The Try* methods report them as
a *BorrowError; the plain methods panic with the same error. A reference stays live
until Release, so scoped helpers (With, WithMut) are the usual way in:

	name := borrow.New("Hello")
	borrow.WithMut(name, func(s *string) { *s += ", world!" })
	borrow.With(name, func(s string) { fmt.Println(s) })

Ownership moves are modelled by Move: the value is transferred to a new Cell and the
old one rejects every later access with ErrMoved.

The checker tracks references, not the memory behind them. When T is itself a reference
type (slice, map, pointer), Ref.Get hands out that reference, and writing through it is
not detected. Shared access to such values is read-only by convention only; use
WithMut or a RefMut to change them.

A Cell is not safe for concurrent use.
*/
package borrow
