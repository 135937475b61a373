/*
Package domain contains the core models of the ferrule guide.

It defines what a lesson is, how it is identified and how its execution is observed.
This package is kept free of I/O and presentation concerns; the runner and the CLI
depend on it, never the other way around.

# Key Entities

  - Lesson: a catalog entry (id, number, title, phase) bound to the procedure that
    demonstrates it.
  - LessonFunc: the procedure contract. It writes to an io.Writer and returns nothing.
  - LessonEvent: emitted when the runner enters or leaves a lesson.
  - LifecycleHooks: callbacks for logging and metrics.
*/
package domain
