package lessons

import (
	"fmt"
	"io"
)

var ordinals = [...]string{"First", "Second", "Third", "Fourth", "Fifth"}

// Arrays indexes and iterates a fixed-size array.
func Arrays(w io.Writer) {
	numbers := [5]int{10, 20, 30, 40, 50}

	section(w, "Direct Indexing")
	for i := range numbers {
		fmt.Fprintf(w, "%s number: %d\n", ordinals[i], numbers[i])
	}

	nextSection(w, "Iterating by Value")
	for _, n := range numbers {
		fmt.Fprintf(w, "number = %d\n", n)
	}

	m := numbers[0]
	m++
	fmt.Fprintf(w, "\nCopied and modified: m = %d\n", m)
	fmt.Fprintf(w, "Original unchanged: numbers[0] = %d\n", numbers[0])

	nextSection(w, "Iterating by Reference")
	for i := range numbers {
		k := &numbers[i]
		fmt.Fprintf(w, "k = %d\n", *k)
	}
}
