package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/ferrule/pkg/domain"
)

// Overlay marks lessons on the rendered path.
type Overlay struct {
	Selected []string // lessons a plan would run
	Current  string
}

// GenerateMermaid produces a Mermaid flowchart of the lesson path.
// Lessons are grouped into one subgraph per phase and linked in run order;
// a link that crosses into a new phase is dotted.
func GenerateMermaid(lessons []domain.Lesson, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	var phase domain.Phase
	open := false
	for _, l := range lessons {
		if l.Phase != phase || !open {
			if open {
				sb.WriteString("    end\n")
			}
			phase = l.Phase
			fmt.Fprintf(&sb, "    subgraph %s[\"%s\"]\n", sanitizeMermaidID(string(phase)), phaseLabel(phase))
			open = true
		}
		fmt.Fprintf(&sb, "        %s[\"%d. %s\"]\n", sanitizeMermaidID(l.ID), l.Number, escape(l.Title))
	}
	if open {
		sb.WriteString("    end\n")
	}

	for i := 1; i < len(lessons); i++ {
		from, to := lessons[i-1], lessons[i]
		arrow := "-->"
		if from.Phase != to.Phase {
			arrow = "-.->"
		}
		fmt.Fprintf(&sb, "    %s %s %s\n", sanitizeMermaidID(from.ID), arrow, sanitizeMermaidID(to.ID))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high contrast regardless of theme
		sb.WriteString("    classDef selected fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, id := range overlay.Selected {
			safeID := sanitizeMermaidID(id)
			if !seen[safeID] && safeID != "" {
				seen[safeID] = true
				fmt.Fprintf(&sb, "    class %s selected;\n", safeID)
			}
		}
		if overlay.Current != "" {
			fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(overlay.Current))
		}
	}

	return sb.String()
}

func phaseLabel(p domain.Phase) string {
	if p == "" {
		return "unphased"
	}
	words := strings.Split(string(p), "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// escape keeps titles like "Option<T> Type" intact inside a quoted Mermaid label.
func escape(s string) string {
	r := strings.NewReplacer(`"`, "#quot;", "<", "#lt;", ">", "#gt;")
	return r.Replace(s)
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
