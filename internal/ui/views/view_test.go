package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitignore-tui/internal/ui/input/keys"
	"gitignore-tui/internal/ui/input/types"
	"gitignore-tui/internal/ui/logic"
	"gitignore-tui/internal/ui/state"
)

func TestComputeLayout(t *testing.T) {
	l := ComputeLayout(90, 30)
	require.False(t, l.TooSmall)

	assert.Equal(t, Rect{X: 0, Y: 0, W: 30, H: 3}, l.Search)
	assert.Equal(t, Rect{X: 0, Y: 3, W: 30, H: 20}, l.Catalog)
	assert.Equal(t, Rect{X: 30, Y: 0, W: 60, H: 23}, l.Content)
	assert.Equal(t, Rect{X: 0, Y: 23, W: 90, H: 6}, l.Selected)
	assert.Equal(t, 29, l.StatusY)

	assert.Equal(t, 17, l.CatalogRows())
	assert.Equal(t, 4, l.SelectedRows())
	assert.Equal(t, 21, l.ContentRows())

	assert.True(t, ComputeLayout(20, 30).TooSmall)
	assert.True(t, ComputeLayout(90, 8).TooSmall)
}

func TestScrollInfo(t *testing.T) {
	assert.Equal(t, "Available Templates", ScrollInfo("Available Templates", 0, 10, 5, 40))
	assert.Equal(t, "Available Templates (11-20/300)", ScrollInfo("Available Templates", 10, 10, 300, 40))
	assert.Equal(t, "Available Templates (11-20)", ScrollInfo("Available Templates", 10, 10, 300, 34))
	assert.Equal(t, "Available Templates", ScrollInfo("Available Templates", 10, 10, 300, 28))
}

func TestScrollbar(t *testing.T) {
	assert.Nil(t, Scrollbar(10, 5, 10, 0))

	bar := Scrollbar(10, 100, 10, 0)
	require.Len(t, bar, 10)
	assert.Equal(t, thumbRune, bar[0])
	assert.Equal(t, trackRune, bar[1], "thumb is at least one cell")

	bar = Scrollbar(10, 20, 10, 10)
	assert.Equal(t, []string{trackRune, trackRune, trackRune, trackRune, trackRune,
		thumbRune, thumbRune, thumbRune, thumbRune, thumbRune}, bar)
}

func TestFrameHasExactSize(t *testing.T) {
	s := NewStyles()
	out := frame("Title", []string{"a very long line that must be cut", "b"}, 12, 5, s.Border, s.Title)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	for _, line := range lines {
		assert.Equal(t, 12, ansi.StringWidth(line))
	}
	assert.Contains(t, ansi.Strip(lines[0]), " Title ")
}

func baseState() ViewState {
	return ViewState{
		Width:         90,
		Height:        30,
		ActivePanel:   types.PanelCatalog,
		Filtered:      []string{"go", "node", "python"},
		Checked:       map[string]bool{"node": true},
		SelectedNames: []string{"node", "zig"},
		Stale:         map[string]bool{"zig": true},
		ContentLines:  []string{"node_modules/"},
		StatusMessage: "✓ Loaded 3 templates",
		Hints:         keys.Default.PanelHelp(types.PanelCatalog),
		HelpModel:     NewHelpModel(),
	}
}

func TestRenderShowsAllPanels(t *testing.T) {
	out := NewRenderer().Render(baseState())
	plain := ansi.Strip(out)

	lines := strings.Split(plain, "\n")
	require.Len(t, lines, 30)
	for _, line := range lines {
		assert.Equal(t, 90, ansi.StringWidth(line))
	}

	assert.Contains(t, plain, " Search ")
	assert.Contains(t, plain, " Available Templates ")
	assert.Contains(t, plain, "[3 templates]")
	assert.Contains(t, plain, "✓ node")
	assert.Contains(t, plain, " Selected Templates ")
	assert.Contains(t, plain, "• node")
	assert.Contains(t, plain, "• zig (not in catalog)")
	assert.Contains(t, plain, " Generated .gitignore ")
	assert.Contains(t, plain, "node_modules/")
	assert.Contains(t, lines[29], "[Templates] ↑↓ Nav")
	assert.Contains(t, lines[29], "✓ Loaded 3 templates")
}

func TestRenderEmptyStates(t *testing.T) {
	vs := baseState()
	vs.Filtered = nil
	vs.FilterText = "qqq"
	vs.SelectedNames = nil
	vs.ContentLines = nil
	plain := ansi.Strip(NewRenderer().Render(vs))

	assert.Contains(t, plain, "No matches for 'qqq'")
	assert.Contains(t, plain, "No templates selected")
	assert.Contains(t, plain, "Select templates to generate content")

	vs.Loading = true
	vs.Generating = true
	plain = ansi.Strip(NewRenderer().Render(vs))
	assert.Contains(t, plain, "Loading templates...")
	assert.Contains(t, plain, "Generated .gitignore (Generating...)")
}

func TestRenderCursorMarkers(t *testing.T) {
	vs := baseState()
	vs.ActivePanel = types.PanelSelected
	vs.SelectedCursor = logic.ListCursor{Index: 1}
	plain := ansi.Strip(NewRenderer().Render(vs))

	assert.Contains(t, plain, "► zig (not in catalog)")
	assert.Contains(t, plain, "• node")
	assert.NotContains(t, plain, "> _", "no text cursor while the search box is unfocused")
}

func TestRenderSearchActive(t *testing.T) {
	vs := baseState()
	vs.ActivePanel = types.PanelSearch
	vs.FilterText = "py"
	plain := ansi.Strip(NewRenderer().Render(vs))
	assert.Contains(t, plain, "> py_")
}

func TestRenderSaveDialogOverlay(t *testing.T) {
	vs := baseState()
	vs.Modal = state.ModalSaveConfirm
	vs.SaveTarget = ".gitignore"
	out := NewRenderer().Render(vs)
	plain := ansi.Strip(out)

	lines := strings.Split(plain, "\n")
	require.Len(t, lines, 30)
	assert.Contains(t, plain, " Save Confirmation ")
	assert.Contains(t, plain, ".gitignore file already exists!")
	assert.Contains(t, plain, "[A]ppend  - Add content to existing file")
	assert.Contains(t, plain, "Press Y, N, or A to choose...")
}

func TestRenderInfoDialog(t *testing.T) {
	vs := baseState()
	vs.Modal = state.ModalInfo
	vs.InfoBody = "GitIgnore TUI v4.1.0\n\nControls:\n  Tab Switch"
	plain := ansi.Strip(NewRenderer().Render(vs))

	assert.Contains(t, plain, " GitIgnore TUI - Information ")
	assert.Contains(t, plain, "GitIgnore TUI v4.1.0")
	assert.Contains(t, plain, "Press ANY key to close this dialog...")
}

func TestRenderTooSmall(t *testing.T) {
	vs := baseState()
	vs.Width, vs.Height = 10, 5
	assert.Contains(t, ansi.Strip(NewRenderer().Render(vs)), "Terminal too small")
}
