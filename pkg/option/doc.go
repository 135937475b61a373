/*
Package option provides Option, a value that is either present (Some) or absent (None).

Option makes "might not exist" explicit without resorting to nil pointers or sentinel
values. The combinators never call their function on None, so a chain of operations
short-circuits at the first absence:

	half := func(n int) option.Option[int] {
		if n%2 != 0 {
			return option.None[int]()
		}
		return option.Some(n / 2)
	}

	option.AndThen(option.Some(10), half) // Some(5)
	option.AndThen(option.Some(11), half) // None
*/
package option
