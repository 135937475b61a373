package option

import (
	"errors"
	"fmt"

	"github.com/aretw0/ferrule/internal/debugfmt"
)

// ErrNone is the panic value of Unwrap on an absent Option.
var ErrNone = errors.New("called Unwrap on a None value")

// Option holds either a value of type T or nothing.
// The zero value is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns a present Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPair builds an Option from the comma-ok idiom.
func FromPair[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

func (o Option[T]) IsSome() bool { return o.ok }

func (o Option[T]) IsNone() bool { return !o.ok }

// Get returns the value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Unwrap returns the value or panics with ErrNone.
func (o Option[T]) Unwrap() T {
	if !o.ok {
		panic(ErrNone)
	}
	return o.value
}

// Expect returns the value or panics with msg.
func (o Option[T]) Expect(msg string) T {
	if !o.ok {
		panic(fmt.Errorf("%s: %w", msg, ErrNone))
	}
	return o.value
}

// UnwrapOr returns the value, or def when absent.
func (o Option[T]) UnwrapOr(def T) T {
	if !o.ok {
		return def
	}
	return o.value
}

// UnwrapOrElse returns the value, or the result of fn when absent.
// fn is not called when the value is present.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if !o.ok {
		return fn()
	}
	return o.value
}

// Filter keeps the value only if keep reports true.
func (o Option[T]) Filter(keep func(T) bool) Option[T] {
	if o.ok && keep(o.value) {
		return o
	}
	return None[T]()
}

// String renders Some(v) or None.
func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return "Some(" + debugfmt.Format(o.value) + ")"
}

// Map transforms a present value with fn. None maps to None without calling fn.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(fn(o.value))
}

// AndThen chains an operation that may itself yield None.
func AndThen[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return fn(o.value)
}
