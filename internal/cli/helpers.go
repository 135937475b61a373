package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/ferrule/internal/logging"
	"github.com/aretw0/ferrule/pkg/domain"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	start  sync.Once
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
	done   chan struct{}
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
		done:    make(chan struct{}),
	}

	sc.start.Do(func() {
		signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			defer close(sc.done)
			select {
			case sig := <-sc.sigCh:
				sc.mu.Lock()
				sc.sigVal = sig
				sc.mu.Unlock()
				sc.Cancel()
			case <-sc.Context.Done():
				// Context cancelled elsewhere
			}
			sc.stop.Do(func() {
				signal.Stop(sc.sigCh)
			})
		}()
	})

	return sc
}

// Stop cancels the context and waits for the signal watcher to exit.
func (sc *SignalContext) Stop() {
	sc.Cancel()
	<-sc.done
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// createLogger configures the application logger.
// In debug mode, it writes to errOut (to separate from Stdout lesson output).
func createLogger(debug bool, errOut io.Writer) *slog.Logger {
	if debug {
		return logging.NewTo(errOut, slog.LevelDebug)
	}
	return logging.NewNop()
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnLessonEnter: func(ctx context.Context, e *domain.LessonEvent) {
			logger.Debug("Enter Lesson", "lesson", e.LessonID, "number", e.Number, "phase", e.Phase)
		},
		OnLessonLeave: func(ctx context.Context, e *domain.LessonEvent) {
			if e.IsError {
				logger.Debug("Leave Lesson (Error)", "lesson", e.LessonID, "duration", e.Duration)
			} else {
				logger.Debug("Leave Lesson", "lesson", e.LessonID, "duration", e.Duration)
			}
		},
	}
}
