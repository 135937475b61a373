/*
Package ferrule is a guided tour of ownership, borrowing and the types built around them.

The guide is a fixed sequence of lessons. Each lesson is a small procedure that builds
literal values and narrates what happens to them. The libraries the lessons teach with
live in their own packages and are usable on their own:

  - pkg/borrow: a run-time alias checker. Many readers or one writer, never both.
  - pkg/option and pkg/result: presence and failure as values, with combinators.
  - pkg/seq: lazy, fused pull iterators with map, filter, chain and enumerate.
  - pkg/collections: ordered map, ordered set and double-ended queue.

# Usage

A Guide joins the embedded lesson catalog with the registered procedures and produces
a plan; the runner executes it.

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/ferrule"
		"github.com/aretw0/ferrule/pkg/runner"
	)

	func main() {
		guide, err := ferrule.New()
		if err != nil {
			log.Fatal(err)
		}

		plan, err := guide.Plan("borrowing.basics", "enums.matching")
		if err != nil {
			log.Fatal(err)
		}

		if err := runner.NewRunner().Run(context.Background(), plan); err != nil {
			log.Fatal(err)
		}
	}
*/
package ferrule
