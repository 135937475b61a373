package lessons

import (
	"fmt"
	"io"

	"github.com/aretw0/ferrule/internal/debugfmt"
	"github.com/aretw0/ferrule/pkg/borrow"
)

// Borrowing shows shared and exclusive borrows and what the checker refuses.
func Borrowing(w io.Writer) {
	section(w, "Immutable Borrowing")
	original := borrow.New("Hello, Rust!")
	borrow1 := original.Borrow()
	borrow2 := original.Borrow()
	fmt.Fprintf(w, "original = %s\n", original.Get())
	fmt.Fprintf(w, "borrow1 = %s\n", borrow1.Get())
	fmt.Fprintf(w, "borrow2 = %s\n", borrow2.Get())

	if _, err := original.TryBorrowMut(); err != nil {
		fmt.Fprintf(w, "Exclusive borrow refused: %v\n", err)
	}
	borrow1.Release()
	borrow2.Release()

	nextSection(w, "Mutable Borrowing")
	mutable := borrow.New("Hello")
	first := mutable.BorrowMut()
	first.Update(func(s *string) { *s += ", world!" })

	if _, err := mutable.TryBorrow(); err != nil {
		fmt.Fprintf(w, "Shared borrow refused: %v\n", err)
	}
	first.Release()
	fmt.Fprintf(w, "After first mutable borrow: %s\n", mutable.Get())

	second := mutable.BorrowMut()
	second.Update(func(s *string) { *s += " Welcome to Rust!" })
	second.Release()
	fmt.Fprintf(w, "After second mutable borrow: %s\n", mutable.Get())
	fmt.Fprintf(w, "Owner still valid: %s\n", mutable.Get())

	nextSection(w, "Mutable Borrow of Array")
	arr := borrow.New([5]int{1, 2, 3, 4, 5})
	borrow.WithMut(arr, func(a *[5]int) {
		for i := range a {
			a[i] += 10
		}
	})
	fmt.Fprintf(w, "Modified array: %s\n", debugfmt.Format(arr.Get()))

	nextSection(w, "Owner Direct Mutation")
	arrTest := [5]int{12, 23, 34, 45, 56}
	arrTest[0]++
	fmt.Fprintf(w, "arr_test[0] = %d\n", arrTest[0])
}

func printLength(w io.Writer, s *borrow.Ref[string]) {
	fmt.Fprintf(w, "Length = %d\n", len(s.Get()))
}

func appendWorld(s *borrow.RefMut[string]) {
	s.Update(func(v *string) { *v += ", world!" })
}

// BorrowingFunctions lends values to functions instead of moving them.
func BorrowingFunctions(w io.Writer) {
	section(w, "Immutable Borrow in Function")
	original := borrow.New("Hello, Rust!")
	ref := original.Borrow()
	printLength(w, ref)
	ref.Release()
	fmt.Fprintf(w, "Original still valid: %s\n", original.Get())

	nextSection(w, "Mutable Borrow in Function")
	s2 := borrow.New("Hi")
	m := s2.BorrowMut()
	appendWorld(m)
	m.Release()
	fmt.Fprintf(w, "After first append: %s\n", s2.Get())

	m = s2.BorrowMut()
	appendWorld(m)
	m.Release()
	fmt.Fprintf(w, "After second append: %s\n", s2.Get())

	secondBorrow := s2.BorrowMut()
	fmt.Fprintf(w, "Through second_borrow: %s\n", secondBorrow.Get())
	secondBorrow.Release()
}
