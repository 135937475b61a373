// Package lessons holds the demonstration procedures, one per catalog entry.
//
// Every procedure has the domain.LessonFunc shape: it builds small literal values,
// writes what it observes to w and returns nothing. Failures are part of the
// narration and never escape a lesson.
package lessons
