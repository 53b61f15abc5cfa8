package cli

import (
	"context"

	"github.com/comphost/comphost/internal"
	"github.com/spf13/cobra"
)

func newOnCommand(c *console) *cobra.Command {
	return newToggleCommand(c, "on", "Turn on configurations", true)
}

func newOffCommand(c *console) *cobra.Command {
	return newToggleCommand(c, "off", "Turn off configurations", false)
}

func newToggleCommand(c *console, state, short string, active bool) *cobra.Command {
	return &cobra.Command{
		Use:   state + " NAME...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return internal.Run(cmd.Context(), func(ctx context.Context, svc internal.Services) error {
				results, err := svc.Configurations.SetActive(ctx, args, active)
				if err != nil {
					return err
				}

				for _, result := range results {
					if result.Found {
						c.printf("Configuration '%s' turned %s.\n", result.Name, state)
					} else {
						c.errorf("Configuration '%s' not found.\n", result.Name)
					}
				}

				return nil
			})
		},
	}
}
