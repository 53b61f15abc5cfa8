package cli

import (
	"context"

	"github.com/comphost/comphost/internal"
	"github.com/spf13/cobra"
)

func newListNamesCommand(c *console) *cobra.Command {
	return &cobra.Command{
		Use:   "list-names",
		Short: "List configuration names for shell completion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return internal.Run(cmd.Context(), func(ctx context.Context, svc internal.Services) error {
				names, err := svc.Configurations.Names(ctx)
				if err != nil {
					return err
				}

				for _, name := range names {
					c.printf("%s\n", name)
				}

				return nil
			})
		},
	}
}
