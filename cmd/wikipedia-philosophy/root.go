// Package main provides the entry point for the wikipedia-philosophy CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for wikipedia-philosophy.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wikipedia-philosophy",
		Short: "Follow first links on Wikipedia until they reach Philosophy",
		Long: `wikipedia-philosophy follows the first qualifying link of each Wikipedia
article, starting from a page of your choice, until the walk reaches
Philosophy, loops back to an article it has already visited, or finds an
article with no link to follow.

The folklore claim is that almost every article eventually leads to
Philosophy. Try it from a random page:

  wikipedia-philosophy trace --random`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewTraceCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
