package lessons

import (
	"fmt"
	"io"

	"github.com/aretw0/ferrule/internal/debugfmt"
	"github.com/aretw0/ferrule/pkg/collections"
)

// Collections tours the standard containers.
func Collections(w io.Writer) {
	section(w, "Vector Example")
	var numbers []int
	numbers = append(numbers, 10, 20, 30)
	fmt.Fprintf(w, "Vector: %s\n", debugfmt.Format(numbers))

	fmt.Fprintln(w, "Iterating over vector:")
	for _, n := range numbers {
		fmt.Fprintf(w, "Number: %d\n", n)
	}
	for i := range numbers {
		numbers[i] += 5
	}
	fmt.Fprintf(w, "Modified Vector: %s\n", debugfmt.Format(numbers))

	nextSection(w, "String Example")
	greeting := "Hello"
	greeting += ", world!"
	fmt.Fprintf(w, "String: %s\n", greeting)

	nextSection(w, "HashMap Example")
	scores := collections.NewMap[string, int]()
	scores.Put("Alice", 50)
	scores.Put("Bob", 60)
	fmt.Fprintf(w, "HashMap: %v\n", scores)
	if score, ok := scores.Get("Alice").Get(); ok {
		fmt.Fprintf(w, "Alice's score: %d\n", score)
	}
	fmt.Fprintln(w, "Iterating over HashMap:")
	scores.Each(func(name string, score int) {
		fmt.Fprintf(w, "%s: %d\n", name, score)
	})

	nextSection(w, "HashSet Example")
	set := collections.NewSet[int]()
	for _, v := range []int{1, 2, 1} {
		if !set.Add(v) {
			fmt.Fprintf(w, "%d already present, ignored\n", v)
		}
	}
	fmt.Fprintf(w, "HashSet: %v\n", set)

	nextSection(w, "VecDeque Example")
	deque := collections.NewDeque[int]()
	deque.PushBack(1)
	deque.PushBack(2)
	deque.PushFront(0)
	fmt.Fprintf(w, "VecDeque: %v\n", deque)
}
