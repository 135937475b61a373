package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/aretw0/ferrule/pkg/domain"
)

// Runner executes lessons in order and reports on them through hooks.
type Runner struct {
	// Writer receives lesson output and framing. Defaults to Stdout.
	Writer io.Writer

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	Hooks domain.LifecycleHooks

	// Renderer transforms lesson notes (markdown) before printing.
	// If nil, notes are printed raw.
	Renderer ContentRenderer

	Notes     bool
	Frame     bool
	Decorator Decorator
	RunID     string

	now func() time.Time
}

// ContentRenderer is a function that transforms the content before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)

// NewRunner creates a Runner writing framed output to Stdout.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Writer:    os.Stdout,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Frame:     true,
		Decorator: plain,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if r.Decorator == nil {
		r.Decorator = plain
	}
	return r
}

// Run executes every lesson once, in the given order.
// It stops at the first lesson that panics (returning a *domain.LessonError) or when
// ctx is cancelled between lessons. The footer is only printed after a complete run.
func (r *Runner) Run(ctx context.Context, lessons []domain.Lesson) error {
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if r.RunID != "" {
		logger = logger.With("run_id", r.RunID)
	}

	if r.Frame {
		if err := r.println(r.decorate(PartHeader, Header())); err != nil {
			return fmt.Errorf("output error: %w", err)
		}
	}

	for _, lesson := range lessons {
		if err := ctx.Err(); err != nil {
			logger.Debug("run cancelled", "before", lesson.ID, "err", err)
			return fmt.Errorf("run interrupted before %s: %w", lesson.ID, err)
		}
		if err := r.runLesson(ctx, logger, lesson); err != nil {
			return err
		}
	}

	if r.Frame {
		if err := r.println("\n" + r.decorate(PartFooter, Footer())); err != nil {
			return fmt.Errorf("output error: %w", err)
		}
	}
	return nil
}

func (r *Runner) runLesson(ctx context.Context, logger *slog.Logger, lesson domain.Lesson) error {
	if lesson.Run == nil {
		return fmt.Errorf("%w: %s", domain.ErrUnboundLesson, lesson.ID)
	}

	start := r.clock()
	r.fire(ctx, r.Hooks.OnLessonEnter, &domain.LessonEvent{
		Timestamp: start,
		Type:      domain.EventLessonEnter,
		RunID:     r.RunID,
		LessonID:  lesson.ID,
		Number:    lesson.Number,
		Phase:     lesson.Phase,
	})

	err := r.execute(logger, lesson)

	end := r.clock()
	r.fire(ctx, r.Hooks.OnLessonLeave, &domain.LessonEvent{
		Timestamp: end,
		Type:      domain.EventLessonLeave,
		RunID:     r.RunID,
		LessonID:  lesson.ID,
		Number:    lesson.Number,
		Phase:     lesson.Phase,
		Duration:  end.Sub(start),
		IsError:   err != nil,
	})

	if err != nil {
		logger.Debug("lesson failed", "lesson", lesson.ID, "error", err)
	}
	return err
}

// execute prints the banner and notes, then runs the procedure, recovering a panic.
func (r *Runner) execute(logger *slog.Logger, lesson domain.Lesson) (err error) {
	if err := r.println("\n" + r.decorate(PartBanner, Banner(lesson.Number, lesson.Title)) + "\n"); err != nil {
		return fmt.Errorf("output error: %w", err)
	}

	if r.Notes && lesson.Notes != "" {
		if err := r.printNotes(logger, lesson.Notes); err != nil {
			return err
		}
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = &domain.LessonError{LessonID: lesson.ID, Cause: rec}
		}
	}()
	lesson.Run(r.Writer)
	return nil
}

func (r *Runner) printNotes(logger *slog.Logger, notes string) error {
	out := notes
	if r.Renderer != nil {
		rendered, err := r.Renderer(notes)
		if err != nil {
			logger.Warn("failed to render notes, printing raw", "error", err)
		} else {
			out = rendered
		}
	}
	return r.println(strings.TrimRight(out, "\n") + "\n")
}

func (r *Runner) fire(ctx context.Context, hook func(context.Context, *domain.LessonEvent), e *domain.LessonEvent) {
	if hook != nil {
		hook(ctx, e)
	}
}

func (r *Runner) decorate(part Part, text string) string {
	if r.Decorator == nil {
		return text
	}
	return r.Decorator(part, text)
}

func (r *Runner) clock() time.Time {
	if r.now == nil {
		return time.Now()
	}
	return r.now()
}

func (r *Runner) println(s string) error {
	_, err := fmt.Fprintln(r.Writer, s)
	return err
}
