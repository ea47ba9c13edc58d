package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitignore-tui/internal/search"
)

const columnWidth = 20

func (a *app) newListCommand() *cobra.Command {
	var (
		filter  string
		columns int
	)
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List available templates",
		Long: `List the template names offered by the catalog service.

Examples:
  gitignore-tui list
  gitignore-tui list --filter python
  gitignore-tui list --columns 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := a.client().ListTemplates(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch templates: %w", err)
			}

			out := cmd.OutOrStdout()
			shown := search.Contains(names, filter)
			if filter != "" {
				info(out, "Found %d templates matching '%s':", len(shown), filter)
			} else {
				info(out, "Available GitIgnore Templates (%d total):", len(shown))
			}
			fmt.Fprintln(out)
			writeColumns(out, shown, columns, columnWidth)

			fmt.Fprintln(out)
			info(out, "Usage: gitignore-tui get <template1> <template2> ...")
			info(out, "Example: gitignore-tui get node python visualstudio")
			return nil
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "only show names containing PATTERN (case-insensitive)")
	cmd.Flags().IntVarP(&columns, "columns", "c", 4, "names per row")
	return cmd
}
