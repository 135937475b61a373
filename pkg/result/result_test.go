package result

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/aretw0/ferrule/pkg/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errDivZero = errors.New("Cannot divide by zero")
	errNegSqrt = errors.New("Cannot take sqrt of negative")
)

func safeDivide(a, b float64) Result[float64] {
	if b == 0 {
		return Err[float64](errDivZero)
	}
	return Ok(a / b)
}

func safeSqrt(n float64) Result[float64] {
	if n < 0 {
		return Err[float64](errNegSqrt)
	}
	return Ok(math.Sqrt(n))
}

func TestAndThenShortCircuitsWithSamePayload(t *testing.T) {
	got := AndThen(safeDivide(16, 2), safeSqrt)
	require.True(t, got.IsOk())
	assert.InDelta(t, 2.8284271247461903, got.Unwrap(), 1e-12)

	sqrtCalled := false
	failed := AndThen(safeDivide(16, 0), func(v float64) Result[float64] {
		sqrtCalled = true
		return safeSqrt(v)
	})
	assert.False(t, sqrtCalled)
	assert.Same(t, errDivZero, failed.Error())
	assert.Equal(t, `Err("Cannot divide by zero")`, failed.String())
}

func TestMapAndMapErr(t *testing.T) {
	parseAndDouble := func(s string) Result[int] {
		n := From(strconv.Atoi(s)).MapErr(func(error) error {
			return errors.New("Failed to parse '" + s + "'")
		})
		return Map(n, func(n int) int { return n * 2 })
	}

	assert.Equal(t, "Ok(10)", parseAndDouble("5").String())
	assert.Equal(t, `Err("Failed to parse 'abc'")`, parseAndDouble("abc").String())

	ok := Ok(3).MapErr(func(error) error { t.Fatal("MapErr ran on Ok"); return nil })
	assert.Equal(t, 3, ok.Unwrap())
}

func TestTryPropagatesFirstFailure(t *testing.T) {
	errNeg := errors.New("Number must be positive")
	process := func(s string) Result[int] {
		return Try(func(sc *Scope) int {
			n := Check(sc, From(strconv.Atoi(s)).MapErr(func(error) error {
				return errors.New("Invalid number: " + s)
			}))
			if n < 0 {
				Fail(sc, errNeg)
			}
			return n * 10
		})
	}

	assert.Equal(t, "Ok(50)", process("5").String())
	assert.Same(t, errNeg, process("-3").Error())
	assert.Equal(t, "Invalid number: abc", process("abc").Error().Error())
}

func TestTryStopsAtFirstCheck(t *testing.T) {
	first := errors.New("first")
	reached := false
	res := Try(func(s *Scope) string {
		CheckErr(s, 0, first)
		reached = true
		Check(s, Err[int](errors.New("second")))
		return "unreachable"
	})
	assert.False(t, reached)
	assert.Same(t, first, res.Error())
}

func TestTryRepanicsForeignPanics(t *testing.T) {
	assert.PanicsWithValue(t, "boom", func() {
		Try(func(*Scope) int { panic("boom") })
	})
}

func TestNestedTryKeepsScopes(t *testing.T) {
	inner := errors.New("inner")
	outer := Try(func(s *Scope) int {
		r := Try(func(*Scope) int {
			Fail(s, inner) // fails the outer scope through the inner one
			return 1
		})
		return r.UnwrapOr(0)
	})
	assert.Same(t, inner, outer.Error())
}

func TestConversions(t *testing.T) {
	assert.Equal(t, 4, OkOr(option.Some(4), errDivZero).Unwrap())
	assert.Same(t, errDivZero, OkOr(option.None[int](), errDivZero).Error())

	assert.True(t, Err[int](errDivZero).Ok().IsNone())
	assert.Equal(t, option.Some(2), Ok(2).Ok())

	assert.ErrorIs(t, Err[int](nil).Error(), ErrNilError)
	assert.Equal(t, 7, Err[int](errDivZero).UnwrapOr(7))

	v, err := Ok("x").Get()
	assert.NoError(t, err)
	assert.Equal(t, "x", v)
}

func TestUnwrapPanicsWithError(t *testing.T) {
	assert.PanicsWithError(t, "Cannot divide by zero", func() { safeDivide(1, 0).Unwrap() })
	assert.PanicsWithError(t, "ratio: Cannot divide by zero", func() { safeDivide(1, 0).Expect("ratio") })
}
