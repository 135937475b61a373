package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownLesson is returned when a lesson id is not in the catalog.
var ErrUnknownLesson = errors.New("unknown lesson")

// ErrUnboundLesson is returned when a catalog entry has no registered procedure.
var ErrUnboundLesson = errors.New("lesson has no registered procedure")

// LessonError reports a lesson that aborted while running.
type LessonError struct {
	LessonID string
	Cause    any // the recovered panic value
}

func (e *LessonError) Error() string {
	return fmt.Sprintf("lesson %q aborted: %v", e.LessonID, e.Cause)
}

// Unwrap exposes the panic value when it was an error.
func (e *LessonError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}
