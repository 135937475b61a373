package lessons

import (
	"fmt"
	"io"

	"github.com/aretw0/ferrule/pkg/seq"
)

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "--- %s ---\n", title)
}

// nextSection separates a section from the previous one with a blank line.
func nextSection(w io.Writer, title string) {
	fmt.Fprintln(w)
	section(w, title)
}

// Variables shows immutable and mutable bindings.
func Variables(w io.Writer) {
	const x = 5
	fmt.Fprintf(w, "Immutable x = %d\n", x)

	y := 10
	fmt.Fprintf(w, "Mutable y (before) = %d\n", y)
	y += 3
	fmt.Fprintf(w, "Mutable y (after += 3) = %d\n", y)

	var z int32 = 20
	fmt.Fprintf(w, "Explicitly typed z: int32 = %d\n", z)

	temperature := 30
	fmt.Fprintf(w, "Temperature is %d degrees Celsius.\n", temperature)
	temperature += 5
	fmt.Fprintf(w, "Temperature is now %d degrees Celsius.\n", temperature)
}

// Arithmetic shows that operators produce new values and leave copied operands intact.
func Arithmetic(w io.Writer) {
	a, b := 10, 3

	sum := a + b
	diff := a - b
	prod := a * b
	div := a / b
	remainder := a % b

	fmt.Fprintf(w, "a = %d, b = %d\n", a, b)
	fmt.Fprintf(w, "sum (a + b) = %d\n", sum)
	fmt.Fprintf(w, "difference (a - b) = %d\n", diff)
	fmt.Fprintf(w, "product (a * b) = %d\n", prod)
	fmt.Fprintf(w, "division (a / b) = %d\n", div)
	fmt.Fprintf(w, "remainder (a %% b) = %d\n", remainder)
}

// Weather is the outcome of classifyTemperature.
type Weather int

const (
	Nice Weather = iota
	Hot
	Cold
)

func (w Weather) String() string {
	switch w {
	case Hot:
		return "It's a hot day! 🔥"
	case Cold:
		return "It's a cold day! ❄️"
	default:
		return "The weather is nice. 🌤️"
	}
}

// classifyTemperature is strict on both bounds: 30 and 15 are nice.
func classifyTemperature(celsius int) Weather {
	switch {
	case celsius > 30:
		return Hot
	case celsius < 15:
		return Cold
	default:
		return Nice
	}
}

// Conditionals branches three ways on a temperature.
func Conditionals(w io.Writer) {
	temperature := 40
	fmt.Fprintf(w, "Temperature is %d degrees\n", temperature)
	fmt.Fprintln(w, classifyTemperature(temperature))
}

// Loops shows the pre-condition loop, the unconditional loop and both range forms.
func Loops(w io.Writer) {
	section(w, "While Loop")
	count := 0
	for count < 5 {
		fmt.Fprintf(w, "Count is: %d\n", count)
		count++
	}

	nextSection(w, "Infinite Loop with Break")
	passes := 0
	for {
		if passes >= 2 {
			fmt.Fprintln(w, "Breaking the loop now.")
			break
		}
		fmt.Fprintln(w, "This will run forever unless we break.")
		passes++
	}

	nextSection(w, "For Loop (inclusive range 1..=6)")
	for i := range seq.All(seq.RangeInclusive(1, 6)) {
		fmt.Fprintf(w, "i = %d\n", i)
	}

	nextSection(w, "For Loop (even numbers in 1..10)")
	for i := range seq.All(seq.Range(1, 10)) {
		if i%2 == 0 {
			fmt.Fprintf(w, "even i = %d\n", i)
		}
	}
}
