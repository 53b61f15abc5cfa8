package cli

import (
	"io"

	"github.com/spf13/cobra"
)

// New builds the root command with all subcommands attached. The streams are
// injected so the whole CLI is testable without touching the process streams.
func New(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	c := newConsole(stdin, stdout, stderr)

	root := &cobra.Command{
		Use:          "comphost",
		Short:        "Manage Docker Compose projects cloned from git",
		Long:         "comphost keeps a set of named project configurations, clones the active ones from git, and starts or stops their Docker Compose projects on a shared bridge network.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(
		newAddCommand(c),
		newOnCommand(c),
		newOffCommand(c),
		newCloneCommand(c),
		newStartCommand(c),
		newStopCommand(c),
		newListNamesCommand(c),
		newHistoryCommand(c),
	)

	return root
}
