package lessons

import (
	"fmt"
	"io"

	"github.com/aretw0/ferrule/internal/debugfmt"
	"github.com/aretw0/ferrule/pkg/borrow"
	"github.com/aretw0/ferrule/pkg/seq"
)

// Vectors walks growable sequences by reference, mutably and through slices.
func Vectors(w io.Writer) {
	section(w, "Vector of Strings")
	vec := borrow.New([]string{"one", "two", "three"})

	fmt.Fprintln(w, "Immutable iteration:")
	printAll(w, vec)

	fmt.Fprintln(w, "\nMutable iteration (appending ' modified'):")
	m := vec.BorrowMut()
	seq.ForEach(seq.IterMut(m), func(s *string) { *s += " modified" })
	m.Release()

	fmt.Fprintln(w, "\nAfter modification:")
	printAll(w, vec)

	vec.Set(append(vec.Get(), "four"))
	fmt.Fprintf(w, "\nAfter push: %s\n", debugfmt.Format(vec.Get()))

	nextSection(w, "Vector of Integers")
	ints := borrow.New([]int{1, 2, 3, 4, 5})
	fmt.Fprintf(w, "Before modifications: %s\n", debugfmt.Format(ints.Get()))
	borrow.WithMut(ints, func(v *[]int) {
		*v = append(*v, 6)
		(*v)[0] = 10
	})
	fmt.Fprintf(w, "After push and modify: %s\n", debugfmt.Format(ints.Get()))

	nextSection(w, "Slices (Borrowing a Portion)")
	view, err := borrow.View(ints, 1, 4)
	if err != nil {
		fmt.Fprintf(w, "view failed: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Slice [1..4]: %s\n", debugfmt.Format(view.Values()))
	if err := ints.TrySet(nil); err != nil {
		fmt.Fprintf(w, "Owner write refused while the slice is live: %v\n", err)
	}
	view.Release()

	borrow.WithMut(ints, func(v *[]int) { (*v)[2] = 100 })
	fmt.Fprintf(w, "After owner modification: %s\n", debugfmt.Format(ints.Get()))

	nextSection(w, "Mutable Slice")
	part, err := borrow.ViewMut(ints, 0, 3)
	if err != nil {
		fmt.Fprintf(w, "view failed: %v\n", err)
		return
	}
	part.Set(1, 20)
	fmt.Fprintf(w, "Mutable slice [0..3]: %s\n", debugfmt.Format(part.Values()))
	part.Release()
	fmt.Fprintf(w, "Full vector after slice modification: %s\n", debugfmt.Format(ints.Get()))

	borrowingLaw(w)
}

func printAll(w io.Writer, c *borrow.Cell[[]string]) {
	ref := c.Borrow()
	defer ref.Release()
	for s := range seq.All(seq.Refs(ref)) {
		fmt.Fprintf(w, "  %s\n", s)
	}
}

const borrowingLawTables = `
At any moment, ONE of these is allowed:
┌────────────────────────────────────┬─────────┐
│ Situation                          │ Allowed │
├────────────────────────────────────┼─────────┤
│ Any number of &T (immutable)       │   ✅    │
│ Exactly one &mut T (mutable)       │   ✅    │
│ Both at the same time              │   ❌    │
└────────────────────────────────────┴─────────┘

Owner access during active borrows:
┌──────────────────┬─────────────┬──────────────┐
│ Active Borrows   │ Owner Read? │ Owner Write? │
├──────────────────┼─────────────┼──────────────┤
│ None             │     ✅      │      ✅      │
│ One or more &T   │     ✅      │      ❌      │
│ One &mut T       │     ❌      │      ❌      │
└──────────────────┴─────────────┴──────────────┘

Why? To guarantee:
• No data races
• No dangling references
• No memory corruption
• Thread safety without garbage collection
`

func borrowingLaw(w io.Writer) {
	fmt.Fprintln(w, "\n============================================================")
	fmt.Fprintln(w, "📚 SUMMARY: The Borrowing Law")
	fmt.Fprintln(w, "============================================================")
	fmt.Fprint(w, borrowingLawTables+"\n")
}
