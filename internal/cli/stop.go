package cli

import (
	"context"

	"github.com/comphost/comphost/internal"
	"github.com/spf13/cobra"
)

func newStopCommand(c *console) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop Docker Compose for active configurations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return internal.Run(cmd.Context(), func(ctx context.Context, svc internal.Services) error {
				results, err := svc.Configurations.Stop(ctx)
				if err != nil {
					return err
				}

				for _, result := range results {
					if result.Err == nil {
						c.printf("Stopped Docker Compose for '%s'\n", result.Name)
					} else {
						c.errorf("Failed to stop Docker Compose for '%s'\n", result.Name)
						c.errorf("%v\n", result.Err)
					}
				}

				return nil
			})
		},
	}
}
