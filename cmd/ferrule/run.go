package main

import (
	"github.com/aretw0/ferrule/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the lessons",
	Long:  `Runs every lesson in order, or a selection of them with --only or --from.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := runOptions(cmd)
		if err != nil {
			return err
		}
		opts.Out = cmd.OutOrStdout()
		opts.Err = cmd.ErrOrStderr()

		sigCtx := cli.NewSignalContext(cmd.Context())
		defer sigCtx.Stop()

		return cli.Execute(sigCtx, opts)
	},
}

func runOptions(cmd *cobra.Command) (cli.RunOptions, error) {
	var opts cli.RunOptions
	var err error
	flags := cmd.Flags()

	if opts.Only, err = flags.GetStringSlice("only"); err != nil {
		return opts, err
	}
	if opts.From, err = flags.GetString("from"); err != nil {
		return opts, err
	}
	opts.Notes, _ = flags.GetBool("notes")
	opts.Stats, _ = flags.GetBool("stats")
	opts.NoBanner, _ = flags.GetBool("no-banner")
	opts.Debug, _ = flags.GetBool("debug")
	return opts, nil
}

func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("only", nil, "Run only these lesson ids (comma separated)")
	cmd.Flags().String("from", "", "Start at this lesson id and run to the end")
}

func init() {
	rootCmd.AddCommand(runCmd)

	for _, cmd := range []*cobra.Command{runCmd, rootCmd} {
		addSelectionFlags(cmd)
		cmd.Flags().Bool("notes", false, "Print each lesson's reference notes before it runs")
		cmd.Flags().Bool("stats", false, "Print per-lesson run statistics at the end")
		cmd.Flags().Bool("no-banner", false, "Do not print the banner")
		cmd.Flags().Bool("debug", false, "Write debug logs to stderr")
	}

	// 'run' is the default when no command is provided
	rootCmd.Args = cobra.NoArgs
	rootCmd.RunE = runCmd.RunE
}
