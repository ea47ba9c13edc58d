package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"gitignore-tui/internal/config"
	"gitignore-tui/internal/ui/input/keys"
)

// ResolveGlamourStyle turns "auto" into a concrete standard style. It may
// query the terminal, so call it before the program takes over the screen.
func ResolveGlamourStyle(name string) string {
	if name != "" && name != config.DefaultGlamourStyle {
		return name
	}
	if termenv.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

// infoMarkdown builds the information dialog text
func infoMarkdown(km keys.KeyMap, recent []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# GitIgnore TUI v%s\n\n", config.Version)
	b.WriteString("Text User Interface for GitIgnore Template Generator\n\n")

	b.WriteString("## Description\n\n")
	b.WriteString("Interactive tool for generating .gitignore files using templates from the gitignore.io API.\n\n")

	b.WriteString("## Controls\n\n")
	seen := map[string]bool{}
	for _, group := range km.FullHelp() {
		for _, kb := range group {
			h := kb.Help()
			line := fmt.Sprintf("- `%s` %s\n", h.Key, h.Desc)
			if seen[line] {
				continue
			}
			seen[line] = true
			b.WriteString(line)
		}
	}
	b.WriteString("\n")

	b.WriteString("## Features\n\n")
	b.WriteString("- ✓ Fuzzy search with usage-based ranking\n")
	b.WriteString("- ✓ Usage tracking and recently used templates\n")
	b.WriteString("- ✓ Alphabetical sorting for easy browsing\n\n")

	b.WriteString("## Recently used\n\n")
	if len(recent) == 0 {
		b.WriteString("Nothing yet\n")
	} else {
		b.WriteString(strings.Join(recent, ", ") + "\n")
	}
	return b.String()
}

// renderInfo renders the dialog markdown for a given wrap width, falling
// back to the raw text if glamour fails
func renderInfo(md, style string, width int) string {
	if width < 10 {
		width = 10
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}
