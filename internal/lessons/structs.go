package lessons

import (
	"fmt"
	"io"

	"github.com/aretw0/ferrule/pkg/borrow"
)

// Person owns its name.
type Person struct {
	Name string
	Age  uint32
}

func printPerson(w io.Writer, p *borrow.Ref[Person]) {
	v := p.Get()
	fmt.Fprintf(w, "Name: %s, Age: %d\n", v.Name, v.Age)
}

func updateAge(p *borrow.RefMut[Person], age uint32) {
	p.Update(func(v *Person) { v.Age = age })
}

// Structs applies the borrowing rules to a record type.
func Structs(w io.Writer) {
	person := borrow.New(Person{Name: "Alice", Age: 30})

	section(w, "Reading Struct (Immutable Borrow)")
	ref := person.Borrow()
	printPerson(w, ref)
	ref.Release()

	nextSection(w, "Modifying Struct (Mutable Borrow)")
	mut := person.BorrowMut()
	updateAge(mut, 31)
	mut.Release()

	ref = person.Borrow()
	printPerson(w, ref)
	ref.Release()
}
