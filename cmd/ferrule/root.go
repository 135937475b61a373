package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ferrule",
	Short: "ferrule is a guided tour of ownership and borrowing",
	Long: `ferrule runs a sequence of narrated lessons on ownership, borrowing, enums,
Option/Result and iterators, and ships the small libraries those lessons use.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
