// Package commands wires the clarion CLI.
package commands

import (
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var verbose bool

// Root builds the clarion command tree.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:           "clarion",
		Short:         "Clarity notation tooling for simnet test suites",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(inspectCommand())
	root.AddCommand(manifestCommand())
	root.AddCommand(versionCommand())
	return root
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("clarion %s\n", version)
		},
	}
}
