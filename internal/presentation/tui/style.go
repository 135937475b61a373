package tui

import (
	"io"
	"os"

	"github.com/aretw0/ferrule/pkg/runner"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Width returns the terminal width of w, or fallback when it is not a terminal.
func Width(w io.Writer, fallback int) int {
	f, ok := w.(*os.File)
	if !ok {
		return fallback
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

// NewDecorator colours the runner's framing for the terminal behind w.
// On a non-terminal the profile is Ascii and the text passes through unchanged.
func NewDecorator(w io.Writer) runner.Decorator {
	out := termenv.NewOutput(w)
	return func(part runner.Part, text string) string {
		s := out.String(text)
		switch part {
		case runner.PartHeader:
			s = s.Foreground(out.Color("#f97316")).Bold()
		case runner.PartFooter:
			s = s.Foreground(out.Color("#22c55e")).Bold()
		case runner.PartBanner:
			s = s.Foreground(out.Color("#60a5fa"))
		}
		return s.String()
	}
}
