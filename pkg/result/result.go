package result

import (
	"errors"
	"fmt"

	"github.com/aretw0/ferrule/internal/debugfmt"
	"github.com/aretw0/ferrule/pkg/option"
)

// ErrNilError is stored when Err is given a nil error.
var ErrNilError = errors.New("result: Err called with nil error")

// Result holds either a value of type T or an error.
// The zero value is Ok with the zero T.
type Result[T any] struct {
	value T
	err   error
}

// Ok returns a successful Result.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Err returns a failed Result carrying err.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = ErrNilError
	}
	return Result[T]{err: err}
}

// Errorf returns a failed Result with a formatted error.
func Errorf[T any](format string, args ...any) Result[T] {
	return Err[T](fmt.Errorf(format, args...))
}

// From adapts the (T, error) convention.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

// OkOr converts an Option, using err when it is absent.
func OkOr[T any](o option.Option[T], err error) Result[T] {
	if v, ok := o.Get(); ok {
		return Ok(v)
	}
	return Err[T](err)
}

func (r Result[T]) IsOk() bool { return r.err == nil }

func (r Result[T]) IsErr() bool { return r.err != nil }

// Get returns the value and the error, mirroring a (T, error) return.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Error returns the failure, or nil on success.
func (r Result[T]) Error() error {
	return r.err
}

// Ok discards the error and returns the value as an Option.
func (r Result[T]) Ok() option.Option[T] {
	if r.err != nil {
		return option.None[T]()
	}
	return option.Some(r.value)
}

// Unwrap returns the value or panics with the error.
func (r Result[T]) Unwrap() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.value
}

// Expect returns the value or panics with msg wrapping the error.
func (r Result[T]) Expect(msg string) T {
	if r.err != nil {
		panic(fmt.Errorf("%s: %w", msg, r.err))
	}
	return r.value
}

// UnwrapOr returns the value, or def on failure.
func (r Result[T]) UnwrapOr(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// MapErr transforms the error of a failed Result. Success passes through untouched.
func (r Result[T]) MapErr(fn func(error) error) Result[T] {
	if r.err == nil {
		return r
	}
	return Err[T](fn(r.err))
}

// String renders Ok(v) or Err("msg").
func (r Result[T]) String() string {
	if r.err != nil {
		return "Err(" + debugfmt.Format(r.err) + ")"
	}
	return "Ok(" + debugfmt.Format(r.value) + ")"
}

// Map transforms the value of a successful Result.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return Ok(fn(r.value))
}

// AndThen chains an operation that may itself fail.
// The first failure is returned as-is and fn is not called.
func AndThen[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return fn(r.value)
}
