package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newTestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Check that the template service is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			client := a.client()
			info(out, "Testing template service at %s...", client.BaseURL())

			count, err := client.Ping(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to connect to template service: %w", err)
			}
			success(out, "✓ Template service is accessible!")
			info(out, "Available templates: %d", count)
			return nil
		},
	}
}
