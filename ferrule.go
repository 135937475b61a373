package ferrule

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/ferrule/internal/lessons"
	"github.com/aretw0/ferrule/pkg/catalog"
	"github.com/aretw0/ferrule/pkg/domain"
	"github.com/aretw0/ferrule/pkg/registry"
)

var (
	// ErrUnknownLesson is returned for an id that is not in the catalog.
	ErrUnknownLesson = domain.ErrUnknownLesson
	// ErrUnboundLesson is returned when a catalog entry has no procedure.
	ErrUnboundLesson = domain.ErrUnboundLesson
)

// Guide is the high-level entry point: it joins the catalog with the registered
// lesson procedures and produces runnable plans.
type Guide struct {
	catalog  *catalog.Catalog
	registry *registry.Registry
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Guide.
type Option func(*Guide)

// WithCatalog replaces the embedded catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(g *Guide) {
		g.catalog = c
	}
}

// WithRegistry replaces the built-in lesson procedures.
func WithRegistry(r *registry.Registry) Option {
	return func(g *Guide) {
		g.registry = r
	}
}

// WithLogger sets a custom structured logger for the guide.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Guide) {
		g.logger = logger
	}
}

// New creates a Guide over the embedded catalog and the built-in lessons.
func New(opts ...Option) (*Guide, error) {
	g := &Guide{}
	for _, opt := range opts {
		opt(g)
	}

	if g.logger == nil {
		g.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if g.catalog == nil {
		c, err := catalog.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		g.catalog = c
	}
	if g.registry == nil {
		g.registry = registry.NewRegistry()
		lessons.Register(g.registry)
	}

	g.logger.Debug("guide ready", "lessons", g.catalog.Len(), "procedures", len(g.registry.IDs()))
	return g, nil
}

// Entries returns the catalog entries in run order.
func (g *Guide) Entries() []catalog.Entry {
	return g.catalog.Entries()
}

// Entry returns the catalog entry for id.
func (g *Guide) Entry(id string) (catalog.Entry, error) {
	return g.catalog.Get(id)
}

// Plan returns the lessons to run, in catalog order. With no ids it returns every
// lesson; otherwise only the named ones (duplicates are ignored).
func (g *Guide) Plan(only ...string) ([]domain.Lesson, error) {
	var keep map[string]bool
	if len(only) > 0 {
		keep = make(map[string]bool, len(only))
		for _, id := range only {
			if _, err := g.catalog.Get(id); err != nil {
				return nil, err
			}
			keep[id] = true
		}
	}

	var plan []domain.Lesson
	for _, e := range g.catalog.Entries() {
		if keep != nil && !keep[e.ID] {
			continue
		}
		l, err := g.bind(e)
		if err != nil {
			return nil, err
		}
		plan = append(plan, l)
	}
	return plan, nil
}

// From returns the lessons starting at id through the end of the catalog.
func (g *Guide) From(id string) ([]domain.Lesson, error) {
	all, err := g.Plan()
	if err != nil {
		return nil, err
	}
	for i, l := range all {
		if l.ID == id {
			return all[i:], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownLesson, id)
}

func (g *Guide) bind(e catalog.Entry) (domain.Lesson, error) {
	run, err := g.registry.Lookup(e.ID)
	if err != nil {
		return domain.Lesson{}, fmt.Errorf("%w: %s", ErrUnboundLesson, e.ID)
	}
	return e.Lesson(run), nil
}
