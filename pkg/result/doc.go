/*
Package result provides Result, a value that is either a success (Ok) or a failure (Err).

The failure payload is a plain Go error, so results interoperate with the (T, error)
convention through From and Get. Combinators run only on the matching side, and a chain
stops at the first failure while keeping its error unchanged.

Try offers early propagation: inside the scope function, Check unwraps a Result or
abandons the scope with its error, so each step does not need its own if-err branch.

	res := result.Try(func(s *result.Scope) int {
		n := result.CheckErr(s, strconv.Atoi(input))
		if n < 0 {
			result.Fail(s, errors.New("Number must be positive"))
		}
		return n * 10
	})
*/
package result
