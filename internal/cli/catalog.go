package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aretw0/ferrule"
	"github.com/aretw0/ferrule/internal/presentation/graph"
	"github.com/aretw0/ferrule/internal/presentation/tui"
)

// List writes the lesson table: number, id, phase and title.
func List(w io.Writer) error {
	guide, err := ferrule.New()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tPHASE\tTITLE")
	for _, e := range guide.Entries() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", e.Number, e.ID, e.Phase, e.Title)
	}
	return tw.Flush()
}

// Explain writes the notes of a lesson. On a terminal they are rendered with glamour,
// otherwise the raw markdown is written.
func Explain(w io.Writer, id string) error {
	guide, err := ferrule.New()
	if err != nil {
		return err
	}
	entry, err := guide.Entry(id)
	if err != nil {
		return err
	}

	notes := entry.Markdown()
	if tui.IsTerminal(w) {
		render, err := tui.NewRenderer(tui.Width(w, 80))
		if err != nil {
			return fmt.Errorf("failed to create renderer: %w", err)
		}
		if notes, err = render(notes); err != nil {
			return fmt.Errorf("failed to render notes: %w", err)
		}
	}
	_, err = io.WriteString(w, notes)
	return err
}

// Graph writes a Mermaid flowchart of the lesson path, highlighting the lessons the
// given selection would run.
func Graph(w io.Writer, opts RunOptions) error {
	guide, err := ferrule.New()
	if err != nil {
		return err
	}
	all, err := guide.Plan()
	if err != nil {
		return err
	}

	var overlay *graph.Overlay
	if len(opts.Only) > 0 || opts.From != "" {
		plan, err := selectPlan(guide, opts)
		if err != nil {
			return err
		}
		overlay = &graph.Overlay{}
		for _, l := range plan {
			overlay.Selected = append(overlay.Selected, l.ID)
		}
		overlay.Current = plan[0].ID
	}

	_, err = io.WriteString(w, graph.GenerateMermaid(all, overlay))
	return err
}
