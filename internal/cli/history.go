package cli

import (
	"context"

	"github.com/comphost/comphost/internal"
	"github.com/spf13/cobra"
)

func newHistoryCommand(c *console) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent clone, start, and stop outcomes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return internal.Run(cmd.Context(), func(ctx context.Context, svc internal.Services) error {
				entries, err := svc.History.List(ctx, limit)
				if err != nil {
					return err
				}

				for _, entry := range entries {
					c.printf("%s  %-5s  %-7s  %s",
						entry.CreatedAt.Local().Format("2006-01-02 15:04:05"),
						entry.Command,
						entry.Outcome,
						entry.Name)
					if entry.Detail != "" {
						c.printf("  %s", entry.Detail)
					}
					c.printf("\n")
				}

				return nil
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of entries to show")

	return cmd
}
