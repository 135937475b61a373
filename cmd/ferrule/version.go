package main

import (
	"fmt"

	"github.com/aretw0/ferrule"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of ferrule",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "ferrule version %s\n", ferrule.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
