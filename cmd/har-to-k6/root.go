package main

import (
	"github.com/spf13/cobra"
)

var (
	// Version is injected during build.
	Version = "dev"
	// Commit is injected during build.
	Commit = "none"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "har-to-k6",
		Short: "Convert recorded HTTP traffic into k6 scripts",
		Long: `har-to-k6 turns an HTTP archive into a k6 load test script.

Each archive entry becomes one request in the script's main function.
Entries may declare variables that extract values from a response for
use as ${name} in later requests.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newConvertCmd(),
		newValidateCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return root
}
