package cli

import (
	"context"

	"github.com/comphost/comphost/internal"
	"github.com/spf13/cobra"
)

func newStartCommand(c *console) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start Docker Compose for active configurations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return internal.Run(cmd.Context(), func(ctx context.Context, svc internal.Services) error {
				report, err := svc.Configurations.Start(ctx)
				if err != nil {
					return err
				}

				network := svc.Configurations.NetworkName()
				if report.NetworkCreated {
					c.printf("Created %s network\n", network)
				}

				for _, result := range report.Results {
					if !result.Started {
						c.errorf("Failed to start Docker Compose for '%s'\n", result.Name)
						c.errorf("%v\n", result.Err)
						continue
					}

					c.printf("Started Docker Compose for '%s'\n", result.Name)

					if result.Err != nil {
						c.errorf("Failed to list containers for '%s'\n", result.Name)
						c.errorf("%v\n", result.Err)
						continue
					}

					for _, attach := range result.Attachments {
						if attach.Err == nil {
							c.printf("Attached container '%s' to %s network for '%s'\n",
								attach.ContainerID, network, result.Name)
						} else {
							c.errorf("Failed to attach container '%s' to %s network for '%s'\n",
								attach.ContainerID, network, result.Name)
							c.errorf("%v\n", attach.Err)
						}
					}
				}

				return nil
			})
		},
	}
}
