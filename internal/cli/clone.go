package cli

import (
	"context"
	"errors"

	"github.com/comphost/comphost/internal"
	"github.com/comphost/comphost/internal/configurations"
	"github.com/spf13/cobra"
)

func newCloneCommand(c *console) *cobra.Command {
	return &cobra.Command{
		Use:   "clone",
		Short: "Clone active configurations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dest, err := c.prompt("Enter the path where you want to clone:")
			if err != nil {
				return err
			}

			return internal.Run(cmd.Context(), func(ctx context.Context, svc internal.Services) error {
				results, err := svc.Configurations.Clone(ctx, dest)
				if err != nil {
					return err
				}

				for _, result := range results {
					switch {
					case result.Status == configurations.CloneStatusCloned:
						c.printf("Cloned '%s' from '%s' to '%s'\n", result.Name, result.URL, result.Path)
					case result.Status == configurations.CloneStatusSkipped:
						c.printf("Skipping '%s', folder already exists at '%s'\n", result.Name, result.Path)
					case errors.Is(result.Err, configurations.ErrNotADirectory):
						c.errorf("Path '%s' exists but is not a directory\n", result.Path)
					default:
						c.errorf("Failed to clone '%s' from '%s' to '%s'\n", result.Name, result.URL, result.Path)
						c.errorf("%v\n", result.Err)
					}
				}

				return nil
			})
		},
	}
}
