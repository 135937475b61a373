package lessons

import (
	"fmt"
	"io"

	"github.com/aretw0/ferrule/internal/debugfmt"
	"github.com/aretw0/ferrule/pkg/borrow"
	"github.com/aretw0/ferrule/pkg/seq"
)

func isEven(n int) bool { return n%2 == 0 }

func square(n int) int { return n * n }

// Iterators builds lazy pipelines from small adapters.
func Iterators(w io.Writer) {
	section(w, "Three Ways to Iterate")
	threeWays(w)

	nextSection(w, "map(): Transform Elements")
	v := []int{1, 2, 3}
	fmt.Fprintf(w, "Original: %s\n", debugfmt.Format(v))
	fmt.Fprintf(w, "Squared:  %s\n", debugfmt.Format(seq.Collect(seq.Map(seq.Values(v), square))))
	strs := seq.Collect(seq.Map(seq.Values(v), func(x int) string { return fmt.Sprintf("num_%d", x) }))
	fmt.Fprintf(w, "As strings: %s\n", debugfmt.Format(strs))

	nextSection(w, "filter(): Select Elements")
	six := []int{1, 2, 3, 4, 5, 6}
	fmt.Fprintf(w, "Original: %s\n", debugfmt.Format(six))
	fmt.Fprintf(w, "Evens:    %s\n", debugfmt.Format(seq.Collect(seq.Filter(seq.Values(six), isEven))))
	above3 := seq.Collect(seq.Filter(seq.Values(six), func(x int) bool { return x > 3 }))
	fmt.Fprintf(w, "Greater than 3: %s\n", debugfmt.Format(above3))

	nextSection(w, "chain(): Concatenate Iterators")
	v1, v2 := []int{1, 2, 3}, []int{4, 5, 6}
	fmt.Fprintf(w, "v1: %s\n", debugfmt.Format(v1))
	fmt.Fprintf(w, "v2: %s\n", debugfmt.Format(v2))
	fmt.Fprintf(w, "Chained: %s\n", debugfmt.Format(seq.Collect(seq.Chain(seq.Values(v1), seq.Values(v2)))))

	nextSection(w, "Chaining Multiple Operations")
	tens := seq.Map(seq.Filter(seq.Values(six), isEven), func(x int) int { return x * 10 })
	fmt.Fprintf(w, "Original: %s\n", debugfmt.Format(six))
	fmt.Fprintf(w, "Evens × 10: %s\n", debugfmt.Format(seq.Collect(tens)))

	odd := seq.Filter(seq.Values(six), func(x int) bool { return !isEven(x) })
	big := seq.Filter(seq.Map(odd, square), func(x int) bool { return x > 5 })
	labels := seq.Map(big, func(x int) string { return fmt.Sprintf("val=%d", x) })
	fmt.Fprintf(w, "Complex pipeline: %s\n", debugfmt.Format(seq.Collect(labels)))

	nextSection(w, "enumerate(): Index + Value")
	fruits := []string{"apple", "banana", "cherry"}
	fmt.Fprintln(w, "Fruits with indices:")
	for i, fruit := range seq.All2(seq.Enumerate(seq.Values(fruits))) {
		fmt.Fprintf(w, "  [%d] = %s\n", i, fruit)
	}

	numbered := seq.Map(seq.Enumerate(seq.Values(fruits)), func(p seq.Indexed[string]) string {
		return fmt.Sprintf("%d. %s", p.Index+1, p.Value)
	})
	fmt.Fprintln(w, "\nNumbered list:")
	seq.ForEach(numbered, func(item string) {
		fmt.Fprintf(w, "  %s\n", item)
	})
}

func threeWays(w io.Writer) {
	v := borrow.New([]int{1, 2, 3})
	fmt.Fprintln(w, ".iter() - Immutable borrow:")
	ref := v.Borrow()
	seq.ForEach(seq.Refs(ref), func(x int) { fmt.Fprintf(w, "  x = %d\n", x) })
	ref.Release()
	fmt.Fprintf(w, "  v still valid: %s\n", debugfmt.Format(v.Get()))

	fmt.Fprintln(w, "\n.iter_mut() - Mutable borrow:")
	v2 := borrow.New([]int{1, 2, 3})
	m := v2.BorrowMut()
	seq.ForEach(seq.IterMut(m), func(x *int) { *x += 10 })
	m.Release()
	fmt.Fprintf(w, "  v2 after modification: %s\n", debugfmt.Format(v2.Get()))

	fmt.Fprintln(w, "\n.into_iter() - Takes ownership:")
	v3 := borrow.New([]int{1, 2, 3})
	seq.ForEach(seq.IntoIter(v3), func(x int) { fmt.Fprintf(w, "  x = %d\n", x) })
	if _, err := v3.TryGet(); err != nil {
		fmt.Fprintf(w, "  v3 consumed: %v\n", err)
	}
}
