package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the ferrule ASCII banner and version to w.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	// Rust-like gradient from ember to rust
	lines := []struct {
		text  string
		color string
	}{
		{"   __                      _      ", "#fdba74"},
		{"  / _| ___ _ __ _ __ _   _| | ___ ", "#fb923c"},
		{" | |_ / _ \\ '__| '__| | | | |/ _ \\", "#f97316"},
		{" |  _|  __/ |  | |  | |_| | |  __/", "#ea580c"},
		{" |_|  \\___|_|  |_|   \\__,_|_|\\___|", "#c2410c"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w, out.String(fmt.Sprintf("  ownership, one lesson at a time  %s", version)).Faint())
	fmt.Fprintln(w)
}
