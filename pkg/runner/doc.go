/*
Package runner implements the driver that walks a plan of lessons.

It is the bridge between the lesson procedures and the outside world. The runner
frames the output, fires lifecycle hooks around every lesson for logging and metrics,
optionally renders the lesson notes, and turns a panicking lesson into an error.

# Usage

	r := runner.NewRunner(
		runner.WithWriter(os.Stdout),
		runner.WithHooks(metrics.Hooks()),
		runner.WithRunID(uuid.NewString()),
	)

	if err := r.Run(ctx, lessons); err != nil {
		log.Fatal(err)
	}
*/
package runner
