package main

import (
	"github.com/aretw0/ferrule/internal/cli"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the lessons",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.List(cmd.OutOrStdout())
	},
}

var explainCmd = &cobra.Command{
	Use:   "explain <lesson-id>",
	Short: "Show the reference notes of a lesson",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Explain(cmd.OutOrStdout(), args[0])
	},
}

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Print the lesson path as a Mermaid flowchart",
	Long:  `Prints the lesson path as a Mermaid flowchart. With --only or --from, the selected lessons are highlighted.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := runOptions(cmd)
		if err != nil {
			return err
		}
		return cli.Graph(cmd.OutOrStdout(), opts)
	},
}

func init() {
	rootCmd.AddCommand(listCmd, explainCmd, graphCmd)
	addSelectionFlags(graphCmd)
}
