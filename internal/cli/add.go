package cli

import (
	"context"
	"fmt"

	"github.com/comphost/comphost/internal"
	"github.com/comphost/comphost/internal/configurations"
	"github.com/spf13/cobra"
)

func newAddCommand(c *console) *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME...",
		Short: "Add new configurations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			requests := make([]configurations.AddRequest, 0, len(args))
			for _, name := range args {
				url, err := c.prompt(fmt.Sprintf("Enter URL for '%s':", name))
				if err != nil {
					return err
				}

				// A record without a URL would be rejected on the next load
				if url == "" {
					c.errorf("URL for '%s' is empty, skipping.\n", name)
					continue
				}

				requests = append(requests, configurations.AddRequest{
					Name: name,
					URL:  url,
				})
			}

			return internal.Run(cmd.Context(), func(ctx context.Context, svc internal.Services) error {
				if err := svc.Configurations.Add(ctx, requests); err != nil {
					return err
				}

				for _, req := range requests {
					c.printf("Configuration '%s' added.\n", req.Name)
				}

				return nil
			})
		},
	}
}
