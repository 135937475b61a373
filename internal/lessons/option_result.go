package lessons

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/aretw0/ferrule/pkg/option"
	"github.com/aretw0/ferrule/pkg/result"
)

func findFirstEven(numbers []int) option.Option[int] {
	for _, n := range numbers {
		if n%2 == 0 {
			return option.Some(n)
		}
	}
	return option.None[int]()
}

func halfIfEven(n int) option.Option[int] {
	if n%2 == 0 {
		return option.Some(n / 2)
	}
	return option.None[int]()
}

func divideFloat(numerator, denominator float64) option.Option[float64] {
	if denominator == 0 {
		return option.None[float64]()
	}
	return option.Some(numerator / denominator)
}

// OptionType handles absence as a value.
func OptionType(w io.Writer) {
	section(w, "Basic Option with Match")
	for _, nums := range [][]int{{1, 3, 5, 6, 7}, {1, 3, 5, 7, 9}} {
		if n, ok := findFirstEven(nums).Get(); ok {
			fmt.Fprintf(w, "Found even number: %d\n", n)
		} else {
			fmt.Fprintln(w, "No even number found")
		}
	}

	nextSection(w, "Option Combinators")
	someValue := option.Some(5)
	noValue := option.None[int]()
	double := func(x int) int { return x * 2 }

	fmt.Fprintf(w, "some_value.unwrap_or(0) = %d\n", someValue.UnwrapOr(0))
	fmt.Fprintf(w, "no_value.unwrap_or(0) = %d\n", noValue.UnwrapOr(0))
	fmt.Fprintf(w, "some_value.map(|x| x * 2) = %v\n", option.Map(someValue, double))
	fmt.Fprintf(w, "no_value.map(|x| x * 2) = %v\n", option.Map(noValue, double))

	chained := option.Map(
		option.Map(option.Map(option.Some(10), double), func(x int) int { return x + 5 }),
		strconv.Itoa,
	)
	fmt.Fprintf(w, "Chained maps: %v\n", chained)

	fmt.Fprintf(w, "Some(10).and_then(half_if_even) = %v\n", option.AndThen(option.Some(10), halfIfEven))
	fmt.Fprintf(w, "Some(11).and_then(half_if_even) = %v\n", option.AndThen(option.Some(11), halfIfEven))
	fmt.Fprintf(w, "None.and_then(half_if_even) = %v\n", option.AndThen(option.None[int](), halfIfEven))

	nextSection(w, "Real-World: Safe Division")
	for _, d := range []float64{2, 0} {
		if v, ok := divideFloat(10, d).Get(); ok {
			fmt.Fprintf(w, "10.0 / %.1f = %v\n", d, v)
		} else {
			fmt.Fprintln(w, "Cannot divide by zero!")
		}
	}

	doubled := option.Map(divideFloat(10, 2), func(v float64) float64 { return v * 2 }).UnwrapOr(0)
	fmt.Fprintf(w, "(10.0 / 2.0) * 2 = %v\n", doubled)
}

var (
	errDivideByZero = errors.New("Cannot divide by zero")
	errNegativeSqrt = errors.New("Cannot take sqrt of negative")
	errNotPositive  = errors.New("Number must be positive")
	errParseFailed  = errors.New("Parse failed")
	errOverflow     = errors.New("Overflow")
	errNegative     = errors.New("Negative number")
)

func divideInt(a, b int) result.Result[int] {
	if b == 0 {
		return result.Err[int](errDivideByZero)
	}
	return result.Ok(a / b)
}

// parseInt32 parses s as a 32-bit signed integer.
func parseInt32(s string) (int, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	return int(n), err
}

func parseAndDouble(s string) result.Result[int] {
	parsed := result.From(parseInt32(s)).MapErr(func(error) error {
		return fmt.Errorf("Failed to parse '%s'", s)
	})
	return result.Map(parsed, func(n int) int { return n * 2 })
}

func safeSqrt(n float64) result.Result[float64] {
	if n < 0 {
		return result.Err[float64](errNegativeSqrt)
	}
	return result.Ok(math.Sqrt(n))
}

func safeDivide(a, b float64) result.Result[float64] {
	if b == 0 {
		return result.Err[float64](errDivideByZero)
	}
	return result.Ok(a / b)
}

func processNumber(s string) result.Result[int] {
	return result.Try(func(sc *result.Scope) int {
		n := result.Check(sc, result.From(parseInt32(s)).MapErr(func(error) error {
			return fmt.Errorf("Invalid number: %s", s)
		}))
		if n < 0 {
			result.Fail(sc, errNotPositive)
		}
		return n * 10
	})
}

func checkedDouble(n int32) option.Option[int32] {
	if n > math.MaxInt32/2 || n < math.MinInt32/2 {
		return option.None[int32]()
	}
	return option.Some(n * 2)
}

func complexPipeline(input string) result.Result[string] {
	return result.Try(func(sc *result.Scope) string {
		n64, err := strconv.ParseInt(input, 10, 32)
		if err != nil {
			result.Fail(sc, errParseFailed)
		}
		doubled := result.Check(sc, result.OkOr(checkedDouble(int32(n64)), errOverflow))
		if doubled < 0 {
			result.Fail(sc, errNegative)
		}
		return fmt.Sprintf("Result: %.2f", math.Sqrt(float64(doubled)))
	})
}

// ResultType handles failure as a value and propagates it.
func ResultType(w io.Writer) {
	section(w, "Basic Result with Match")
	for _, b := range []int{2, 0} {
		if v, err := divideInt(10, b).Get(); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
		} else {
			fmt.Fprintf(w, "10 / %d = %d\n", b, v)
		}
	}

	nextSection(w, "Result Combinators")
	fmt.Fprintf(w, "parse_and_double(\"5\") = %v\n", parseAndDouble("5"))
	fmt.Fprintf(w, "parse_and_double(\"abc\") = %v\n", parseAndDouble("abc"))
	fmt.Fprintf(w, "safe_divide(16, 2).and_then(safe_sqrt) = %v\n", result.AndThen(safeDivide(16, 2), safeSqrt))
	fmt.Fprintf(w, "safe_divide(16, 0).and_then(safe_sqrt) = %v\n", result.AndThen(safeDivide(16, 0), safeSqrt))

	nextSection(w, "Error Propagation with ?")
	for _, s := range []string{"5", "-3", "abc"} {
		fmt.Fprintf(w, "process_number(%q) = %v\n", s, processNumber(s))
	}

	fmt.Fprintln(w, "\nComplex pipeline:")
	for _, s := range []string{"8", "abc"} {
		fmt.Fprintf(w, "  %q → %v\n", s, complexPipeline(s))
	}
}
