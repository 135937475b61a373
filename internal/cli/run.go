package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/ferrule"
	"github.com/aretw0/ferrule/internal/presentation/tui"
	"github.com/aretw0/ferrule/pkg/domain"
	"github.com/aretw0/ferrule/pkg/observability"
	"github.com/aretw0/ferrule/pkg/runner"
	"github.com/google/uuid"
)

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	Only     []string
	From     string
	Notes    bool
	Stats    bool
	NoBanner bool
	Debug    bool

	// Out and Err default to Stdout and Stderr.
	Out io.Writer
	Err io.Writer
}

// Execute handles the 'run' command: it plans the lessons and runs them until done,
// failed or interrupted.
func Execute(ctx context.Context, opts RunOptions) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	if len(opts.Only) > 0 && opts.From != "" {
		return errors.New("--only and --from cannot be used together")
	}

	runID := uuid.NewString()
	logger := createLogger(opts.Debug, opts.Err)

	guide, err := ferrule.New(ferrule.WithLogger(logger.With("run_id", runID)))
	if err != nil {
		return fmt.Errorf("error initializing guide: %w", err)
	}

	plan, err := selectPlan(guide, opts)
	if err != nil {
		return err
	}

	tty := tui.IsTerminal(opts.Out)
	if !opts.NoBanner && tty {
		tui.PrintBanner(opts.Out, ferrule.Version)
	}

	metrics := observability.NewMetrics()
	hooks := metrics.Hooks()
	if opts.Debug {
		hooks = createDebugHooks(logger).Merge(hooks)
	}

	runnerOpts := []runner.Option{
		runner.WithWriter(opts.Out),
		runner.WithLogger(logger),
		runner.WithRunID(runID),
		runner.WithHooks(hooks),
		runner.WithNotes(opts.Notes),
		runner.WithDecorator(tui.NewDecorator(opts.Out)),
	}
	if opts.Notes && tty {
		render, err := tui.NewRenderer(tui.Width(opts.Out, 80))
		if err != nil {
			logger.Warn("markdown renderer unavailable", "error", err)
		} else {
			runnerOpts = append(runnerOpts, runner.WithRenderer(render))
		}
	}

	logger.Debug("run started", "run_id", runID, "lessons", len(plan))
	runErr := runner.NewRunner(runnerOpts...).Run(ctx, plan)

	if opts.Stats {
		fmt.Fprintln(opts.Out)
		if err := metrics.WriteSummary(opts.Out); err != nil {
			logger.Warn("failed to print stats", "error", err)
		}
	}

	return handleExecutionError(opts.Err, runErr)
}

func selectPlan(guide *ferrule.Guide, opts RunOptions) ([]domain.Lesson, error) {
	if opts.From != "" {
		return guide.From(opts.From)
	}
	return guide.Plan(opts.Only...)
}

func handleExecutionError(w io.Writer, err error) error {
	if err == nil {
		return nil
	}

	var lessonErr *domain.LessonError
	switch {
	case errors.As(err, &lessonErr):
		printSystemMessage(w, "Lesson '%s' aborted.", lessonErr.LessonID)
	case errors.Is(err, context.Canceled):
		printSystemMessage(w, "Interrupted.")
	}
	return err
}
