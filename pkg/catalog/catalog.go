package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/ferrule/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

//go:embed lessons.yaml
var embedded []byte

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid catalog")

// Entry describes one lesson.
type Entry struct {
	ID       string   `mapstructure:"id"`
	Number   int      `mapstructure:"number"`
	Title    string   `mapstructure:"title"`
	Phase    string   `mapstructure:"phase"`
	Summary  string   `mapstructure:"summary"`
	Concepts []string `mapstructure:"concepts"`
	Table    string   `mapstructure:"table"`
}

type document struct {
	Lessons []Entry `mapstructure:"lessons"`
}

// Catalog is the ordered list of lesson entries.
type Catalog struct {
	entries []Entry
	byID    map[string]int
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(embedded)
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	var doc document
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &doc,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return build(doc.Lessons)
}

func build(entries []Entry) (*Catalog, error) {
	c := &Catalog{entries: entries, byID: make(map[string]int, len(entries))}
	numbers := make(map[int]string, len(entries))

	for i, e := range entries {
		switch {
		case e.ID == "":
			return nil, fmt.Errorf("%w: entry %d has no id", ErrInvalid, i)
		case strings.TrimSpace(e.Title) == "":
			return nil, fmt.Errorf("%w: lesson %q has no title", ErrInvalid, e.ID)
		}
		if _, dup := c.byID[e.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate lesson id %q", ErrInvalid, e.ID)
		}
		if other, dup := numbers[e.Number]; dup {
			return nil, fmt.Errorf("%w: lessons %q and %q share number %d", ErrInvalid, other, e.ID, e.Number)
		}
		c.byID[e.ID] = i
		numbers[e.Number] = e.ID
	}
	return c, nil
}

// Entries returns the entries in run order.
func (c *Catalog) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Get returns the entry with the given id.
func (c *Catalog) Get(id string) (Entry, error) {
	i, ok := c.byID[id]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", domain.ErrUnknownLesson, id)
	}
	return c.entries[i], nil
}

// Len returns the number of lessons.
func (c *Catalog) Len() int { return len(c.entries) }

// Markdown renders the entry as a reference card.
func (e Entry) Markdown() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Lesson %d: %s\n\n", e.Number, e.Title)
	if e.Summary != "" {
		fmt.Fprintf(&sb, "%s\n\n", e.Summary)
	}
	if len(e.Concepts) > 0 {
		sb.WriteString("## Key Concepts\n\n")
		for _, c := range e.Concepts {
			fmt.Fprintf(&sb, "- %s\n", c)
		}
		sb.WriteString("\n")
	}
	if e.Table != "" {
		sb.WriteString(strings.TrimRight(e.Table, "\n"))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Lesson converts the entry into a domain lesson bound to run.
func (e Entry) Lesson(run domain.LessonFunc) domain.Lesson {
	return domain.Lesson{
		ID:       e.ID,
		Number:   e.Number,
		Title:    e.Title,
		Phase:    domain.Phase(e.Phase),
		Concepts: append([]string(nil), e.Concepts...),
		Notes:    e.Markdown(),
		Run:      run,
	}
}
