package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventLessonEnter EventType = "lesson_enter"
	EventLessonLeave EventType = "lesson_leave"
)

// LessonEvent represents entry into or exit from a lesson.
type LessonEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	RunID     string    `json:"run_id,omitempty"`
	LessonID  string    `json:"lesson_id"`
	Number    int       `json:"number"`
	Phase     Phase     `json:"phase"`
	// Set on leave events only.
	Duration time.Duration `json:"duration,omitempty"`
	IsError  bool          `json:"is_error,omitempty"`
}

// LifecycleHooks defines callbacks for runner observability.
type LifecycleHooks struct {
	OnLessonEnter func(context.Context, *LessonEvent)
	OnLessonLeave func(context.Context, *LessonEvent)
}

// Merge returns hooks that call h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnLessonEnter: chain(h.OnLessonEnter, other.OnLessonEnter),
		OnLessonLeave: chain(h.OnLessonLeave, other.OnLessonLeave),
	}
}

func chain(a, b func(context.Context, *LessonEvent)) func(context.Context, *LessonEvent) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e *LessonEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}
