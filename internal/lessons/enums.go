package lessons

import (
	"errors"
	"fmt"
	"io"
)

// ErrNonExhaustive is the panic value when a match leaves a variant unhandled.
var ErrNonExhaustive = errors.New("non-exhaustive match")

// Direction is a value-less union of the four compass points.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

var directionNames = [...]string{"North", "South", "East", "West"}

func (d Direction) String() string {
	if d < North || d > West {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Message returns the heading text for d.
func (d Direction) Message() string {
	switch d {
	case North:
		return "You are heading North!"
	case South:
		return "You are heading South!"
	case East:
		return "You are heading East!"
	case West:
		return "You are heading West!"
	}
	panic(fmt.Errorf("%w: %v", ErrNonExhaustive, d))
}

// DirectionCases holds one arm per variant. Match panics if the arm it needs is nil.
type DirectionCases struct {
	North, South, East, West func()
}

// Match runs the arm for d.
func (d Direction) Match(c DirectionCases) {
	var arm func()
	switch d {
	case North:
		arm = c.North
	case South:
		arm = c.South
	case East:
		arm = c.East
	case West:
		arm = c.West
	}
	if arm == nil {
		panic(fmt.Errorf("%w: no arm for %v", ErrNonExhaustive, d))
	}
	arm()
}

// DirectionVisitor must handle every variant to satisfy the interface.
type DirectionVisitor interface {
	VisitNorth()
	VisitSouth()
	VisitEast()
	VisitWest()
}

// Accept dispatches d to v.
func (d Direction) Accept(v DirectionVisitor) {
	d.Match(DirectionCases{
		North: v.VisitNorth,
		South: v.VisitSouth,
		East:  v.VisitEast,
		West:  v.VisitWest,
	})
}

type oppositeVisitor struct{ result Direction }

func (o *oppositeVisitor) VisitNorth() { o.result = South }
func (o *oppositeVisitor) VisitSouth() { o.result = North }
func (o *oppositeVisitor) VisitEast()  { o.result = West }
func (o *oppositeVisitor) VisitWest()  { o.result = East }

func opposite(d Direction) Direction {
	var v oppositeVisitor
	d.Accept(&v)
	return v.result
}

// Message is a union whose variants carry differently shaped data.
// The unexported marker keeps the set of variants closed.
type Message interface {
	isMessage()
	Accept(MessageVisitor)
}

type (
	Quit        struct{}
	Move        struct{ X, Y int32 }
	Write       struct{ Text string }
	ChangeColor struct{ R, G, B uint8 }
)

func (Quit) isMessage()        {}
func (Move) isMessage()        {}
func (Write) isMessage()       {}
func (ChangeColor) isMessage() {}

// MessageVisitor has one method per Message variant.
type MessageVisitor interface {
	VisitQuit(Quit)
	VisitMove(Move)
	VisitWrite(Write)
	VisitChangeColor(ChangeColor)
}

func (m Quit) Accept(v MessageVisitor)        { v.VisitQuit(m) }
func (m Move) Accept(v MessageVisitor)        { v.VisitMove(m) }
func (m Write) Accept(v MessageVisitor)       { v.VisitWrite(m) }
func (m ChangeColor) Accept(v MessageVisitor) { v.VisitChangeColor(m) }

func describeMessage(m Message) string {
	switch m := m.(type) {
	case Quit:
		return "Quit: No data, just a signal to exit"
	case Move:
		return fmt.Sprintf("Move: to position (%d, %d)", m.X, m.Y)
	case Write:
		return fmt.Sprintf("Write: message = '%s'", m.Text)
	case ChangeColor:
		return fmt.Sprintf("ChangeColor: RGB(%d, %d, %d)", m.R, m.G, m.B)
	default:
		panic(fmt.Errorf("%w: %T", ErrNonExhaustive, m))
	}
}

// debugVisitor renders a message the way a derived Debug would.
type debugVisitor struct{ out string }

func (d *debugVisitor) VisitQuit(Quit) { d.out = "Quit" }
func (d *debugVisitor) VisitMove(m Move) {
	d.out = fmt.Sprintf("Move { x: %d, y: %d }", m.X, m.Y)
}
func (d *debugVisitor) VisitWrite(m Write) { d.out = fmt.Sprintf("Write(%q)", m.Text) }
func (d *debugVisitor) VisitChangeColor(m ChangeColor) {
	d.out = fmt.Sprintf("ChangeColor(%d, %d, %d)", m.R, m.G, m.B)
}

func debugMessage(m Message) string {
	var v debugVisitor
	m.Accept(&v)
	return v.out
}

// Enums matches over a value-less union and a union with payloads.
func Enums(w io.Writer) {
	section(w, "Basic Enum Usage")
	fmt.Fprintln(w, East.Message())

	nextSection(w, "Pattern Matching")
	for _, dir := range []Direction{North, South, East, West} {
		dir.Match(DirectionCases{
			North: func() { fmt.Fprintln(w, "⬆️  North - Cold regions ahead") },
			South: func() { fmt.Fprintln(w, "⬇️  South - Warm weather coming") },
			East:  func() { fmt.Fprintln(w, "➡️  East - Sunrise direction") },
			West:  func() { fmt.Fprintln(w, "⬅️  West - Sunset direction") },
		})
	}
	for _, dir := range []Direction{North, East} {
		fmt.Fprintf(w, "Opposite of %v is %v\n", dir, opposite(dir))
	}

	nextSection(w, "Enums with Data")
	messages := []Message{
		Quit{},
		Move{X: 10, Y: 20},
		Write{Text: "Hello!"},
		ChangeColor{R: 255, G: 128, B: 0},
	}
	for _, msg := range messages {
		fmt.Fprintln(w, describeMessage(msg))
	}

	fmt.Fprintln(w)
	for _, msg := range messages {
		fmt.Fprintf(w, "Debug: %s\n", debugMessage(msg))
	}
}
