package runner

import (
	"io"
	"log/slog"

	"github.com/aretw0/ferrule/pkg/domain"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithWriter configures where lessons and framing are written.
func WithWriter(w io.Writer) Option {
	return func(r *Runner) {
		r.Writer = w
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithHooks adds lifecycle hooks. Repeated calls accumulate.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(r *Runner) {
		r.Hooks = r.Hooks.Merge(hooks)
	}
}

// WithRenderer configures the markdown renderer used for lesson notes.
func WithRenderer(renderer ContentRenderer) Option {
	return func(r *Runner) {
		r.Renderer = renderer
	}
}

// WithNotes prints each lesson's catalog notes before running it.
func WithNotes(enabled bool) Option {
	return func(r *Runner) {
		r.Notes = enabled
	}
}

// WithFrame toggles the header and footer boxes.
func WithFrame(enabled bool) Option {
	return func(r *Runner) {
		r.Frame = enabled
	}
}

// WithDecorator configures how framing parts are styled.
func WithDecorator(d Decorator) Option {
	return func(r *Runner) {
		r.Decorator = d
	}
}

// WithRunID tags every event and log line of the run.
func WithRunID(id string) Option {
	return func(r *Runner) {
		r.RunID = id
	}
}
