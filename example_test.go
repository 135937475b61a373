package ferrule_test

import (
	"context"
	"log"
	"os"

	"github.com/aretw0/ferrule"
	"github.com/aretw0/ferrule/pkg/runner"
)

// ExampleGuide_Plan runs a single lesson without the surrounding frame.
func ExampleGuide_Plan() {
	guide, err := ferrule.New()
	if err != nil {
		log.Fatal(err)
	}

	plan, err := guide.Plan("structs.ownership")
	if err != nil {
		log.Fatal(err)
	}

	r := runner.NewRunner(runner.WithWriter(os.Stdout), runner.WithFrame(false))
	if err := r.Run(context.Background(), plan); err != nil {
		log.Fatal(err)
	}

	// Output:
	// ============================================================
	// 📘 LESSON 10: Structs with Ownership & Borrowing
	// ============================================================
	//
	// --- Reading Struct (Immutable Borrow) ---
	// Name: Alice, Age: 30
	//
	// --- Modifying Struct (Mutable Borrow) ---
	// Name: Alice, Age: 31
}
