package result

// Scope is the handle passed to a Try function. Check and Fail use it to abandon the
// enclosing Try with an error.
type Scope struct {
	done bool
}

// abort carries a failure out of a Try scope.
type abort struct {
	scope *Scope
	err   error
}

// Try runs fn and converts its outcome into a Result. A Check or Fail on s ends fn
// early and the error becomes the Err of the returned Result. Other panics are not
// intercepted.
func Try[T any](fn func(s *Scope) T) (res Result[T]) {
	s := &Scope{}
	defer func() {
		s.done = true
		if r := recover(); r != nil {
			a, ok := r.(abort)
			if !ok || a.scope != s {
				panic(r)
			}
			res = Err[T](a.err)
		}
	}()
	return Ok(fn(s))
}

// Check unwraps r, or abandons the scope with r's error.
func Check[T any](s *Scope, r Result[T]) T {
	if r.err != nil {
		Fail(s, r.err)
	}
	return r.value
}

// CheckErr is Check for the (T, error) convention.
func CheckErr[T any](s *Scope, v T, err error) T {
	if err != nil {
		Fail(s, err)
	}
	return v
}

// Fail abandons the scope with err.
func Fail(s *Scope, err error) {
	if s.done {
		panic("result: Fail called on a finished scope")
	}
	if err == nil {
		err = ErrNilError
	}
	panic(abort{scope: s, err: err})
}
