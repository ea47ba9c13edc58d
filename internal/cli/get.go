package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gitignore-tui/internal/catalog"
	"gitignore-tui/internal/domain"
	"gitignore-tui/internal/output"
	"gitignore-tui/internal/search"
)

func (a *app) newGetCommand() *cobra.Command {
	var appendMode, force bool
	cmd := &cobra.Command{
		Use:   "get NAME...",
		Short: "Print or save the merged content of templates",
		Long: `Fetch the merged .gitignore content for one or more templates.

The content goes to stdout unless --output, --append or --force is given, in
which case it is saved with a header. An existing file is never replaced
without --force, and --append adds the content after a separator.

Examples:
  gitignore-tui get go node
  gitignore-tui get python --output .gitignore
  gitignore-tui get macos --append`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := a.client()
			names := search.Alphabetical(args)
			a.suggest(cmd, client, names)

			content, err := client.FetchContent(cmd.Context(), names)
			if err != nil {
				return fmt.Errorf("failed to fetch gitignore: %w", err)
			}

			toFile := cmd.Flags().Changed("output") || appendMode || force
			if !toFile {
				out := cmd.OutOrStdout()
				fmt.Fprint(out, content)
				if !strings.HasSuffix(content, "\n") {
					fmt.Fprintln(out)
				}
				return nil
			}
			return a.save(cmd, names, content, appendMode, force)
		},
	}
	cmd.Flags().BoolVarP(&appendMode, "append", "a", false, "append to an existing output file")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing output file")
	cmd.MarkFlagsMutuallyExclusive("append", "force")
	return cmd
}

// suggest warns about names missing from the catalog. A catalog that cannot
// be listed only skips the check.
func (a *app) suggest(cmd *cobra.Command, client *catalog.Client, names []string) {
	known, err := client.ListTemplates(cmd.Context())
	if err != nil {
		warn(cmd.ErrOrStderr(), "Warning: could not check template names: %v", err)
		return
	}
	set := make(map[string]bool, len(known))
	for _, k := range known {
		set[strings.ToLower(k)] = true
	}
	for _, name := range names {
		if set[strings.ToLower(name)] {
			continue
		}
		msg := fmt.Sprintf("Warning: unknown template '%s'", name)
		if s := search.Suggest(name, known); len(s) > 0 {
			msg += fmt.Sprintf(" (did you mean: %s?)", strings.Join(s, ", "))
		}
		warn(cmd.ErrOrStderr(), "%s", msg)
	}
}

func (a *app) save(cmd *cobra.Command, names []string, content string, appendMode, force bool) error {
	w := output.NewWriter(a.cfg.Output.Path)
	exists, err := w.Exists()
	if err != nil {
		return fmt.Errorf("failed to save: %w", err)
	}

	mode := domain.SaveNew
	if exists {
		switch {
		case appendMode:
			mode = domain.SaveAppend
		case force:
			mode = domain.SaveOverwrite
		default:
			return fmt.Errorf("%s already exists (use --append or --force)", w.Path())
		}
	}

	res, err := w.Save(mode, names, content)
	if err != nil {
		return fmt.Errorf("failed to save: %w", err)
	}

	out := cmd.OutOrStdout()
	switch mode {
	case domain.SaveAppend:
		success(out, "✓ Appended to %s (%d chars)", w.Path(), res.Bytes)
	case domain.SaveOverwrite:
		success(out, "✓ Overwritten %s (%d chars)", w.Path(), res.Bytes)
	default:
		success(out, "✓ Saved to %s (%d chars)", w.Path(), res.Bytes)
	}
	return nil
}
