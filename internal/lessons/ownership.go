package lessons

import (
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/ferrule/internal/debugfmt"
	"github.com/aretw0/ferrule/pkg/borrow"
	"github.com/aretw0/ferrule/pkg/seq"
)

// Ownership contrasts copied values with moved ones.
func Ownership(w io.Writer) {
	section(w, "Copy Types (Integers)")
	a := 5
	b := a
	fmt.Fprintf(w, "a = %d, b = %d (both valid, copy occurred)\n", a, b)

	nextSection(w, "Move Semantics (String)")
	s1 := borrow.New("test ownership")
	s2 := s1.Move()
	fmt.Fprintf(w, "s2 = %s\n", s2.Get())
	if _, err := s1.TryGet(); errors.Is(err, borrow.ErrMoved) {
		fmt.Fprintf(w, "s1 is gone: %v\n", err)
	}

	nextSection(w, "Arrays of Copy Types")
	arr1 := [5]int{1, 2, 3, 4, 5}
	arr2 := arr1
	fmt.Fprintf(w, "arr1 = %s, arr2 = %s\n", debugfmt.Format(arr1), debugfmt.Format(arr2))

	nextSection(w, "Iteration: by value vs by reference")
	fmt.Fprintln(w, "for n in arr1 (by value):")
	for _, n := range arr1 {
		fmt.Fprintf(w, "  n = %d\n", n)
	}
	fmt.Fprintln(w, "for val in arr1.iter() (by reference):")
	for i := range arr1 {
		val := &arr1[i]
		fmt.Fprintf(w, "  val = %d\n", *val)
	}

	nextSection(w, "Arrays of Heap Types (String)")
	strArr1 := borrow.New([]string{"one", "two", "three"})
	strArr2 := strArr1.Move()

	fmt.Fprintln(w, "Iterating with .iter() (borrows):")
	ref := strArr2.Borrow()
	seq.ForEach(seq.Refs(ref), func(s string) {
		fmt.Fprintf(w, "  s = %s\n", s)
	})
	ref.Release()
	fmt.Fprintf(w, "Array still valid: %s\n", debugfmt.Format(strArr2.Get()))

	fmt.Fprintln(w, "\nDirect iteration (moves each element):")
	seq.ForEach(seq.IntoIter(strArr2), func(st string) {
		fmt.Fprintf(w, "  st = %s\n", st)
	})
	fmt.Fprintf(w, "Array moved out: %t\n", strArr2.Moved())
}

func addOne(n int) int {
	return n + 1
}

// takeOwnership receives the only handle to s and hands a new one back.
func takeOwnership(w io.Writer, s *borrow.Cell[string]) *borrow.Cell[string] {
	fmt.Fprintf(w, "Inside function: %s\n", s.Get())
	return s.Move()
}

// FunctionsOwnership passes a copied value and a moved value into functions.
func FunctionsOwnership(w io.Writer) {
	section(w, "Copy Types in Functions")
	x := 5
	y := addOne(x)
	fmt.Fprintf(w, "x = %d, y = %d (x still usable - Copy type)\n", x, y)

	nextSection(w, "Move Semantics in Functions")
	s := borrow.New("Hello")
	s2 := takeOwnership(w, s.Move())
	fmt.Fprintf(w, "s2 = %s\n", s2.Get())
	fmt.Fprintf(w, "s still valid: %t\n", !s.Moved())
}
