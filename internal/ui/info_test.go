package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gitignore-tui/internal/ui/input/keys"
)

func TestInfoMarkdownListsControlsAndRecent(t *testing.T) {
	md := infoMarkdown(keys.Default, []string{"go", "node"})

	assert.Contains(t, md, "# GitIgnore TUI v4.1.0")
	assert.Contains(t, md, "Tab")
	assert.Contains(t, md, "go, node")

	assert.Contains(t, infoMarkdown(keys.Default, nil), "Nothing yet")
}

func TestRenderInfoPlainStyle(t *testing.T) {
	out := renderInfo(infoMarkdown(keys.Default, []string{"go"}), "notty", 60)
	assert.Contains(t, out, "GitIgnore TUI v4.1.0")
	assert.Contains(t, out, "Recently used")
}

func TestResolveGlamourStyleKeepsExplicitStyle(t *testing.T) {
	assert.Equal(t, "light", ResolveGlamourStyle("light"))
	assert.Equal(t, "notty", ResolveGlamourStyle("notty"))
}
