package domain

import "io"

// Phase groups lessons into the stages of the guide.
type Phase string

const (
	PhaseBasics         Phase = "basics"
	PhaseDataStructures Phase = "data-structures"
	PhaseOwnership      Phase = "ownership"
	PhaseCustomTypes    Phase = "custom-types"
	PhaseFunctional     Phase = "functional"
)

// LessonFunc is a demonstration procedure. It writes its narration to w.
type LessonFunc func(w io.Writer)

// Lesson is a catalog entry bound to its procedure.
type Lesson struct {
	ID       string
	Number   int
	Title    string
	Phase    Phase
	Concepts []string
	// Notes is the markdown reference shown by "explain" and "run --notes".
	Notes string
	Run   LessonFunc
}
