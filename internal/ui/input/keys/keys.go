// Package keys holds the key bindings shared by the input modes, the status
// bar hints and the information dialog.
package keys

import (
	"github.com/charmbracelet/bubbles/key"

	"gitignore-tui/internal/ui/input/types"
)

type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	NextPanel key.Binding
	PrevPanel key.Binding
	Search    key.Binding

	Select  key.Binding
	Remove  key.Binding
	Clear   key.Binding
	Refresh key.Binding
	Save    key.Binding
	Info    key.Binding
	Pager   key.Binding
	Copy    key.Binding

	Quit      key.Binding
	ForceQuit key.Binding

	// hint-only bindings for the search box
	Type      key.Binding
	Backspace key.Binding
	Scroll    key.Binding
	Leave     key.Binding
}

// Default is the key map used by the application
var Default = KeyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "Nav")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↑↓", "Nav")),
	PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("PgUp", "Page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("PgDn", "Page down")),
	Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("Home", "Top")),
	End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("End", "Bottom")),

	NextPanel: key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "Switch")),
	PrevPanel: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("Shift+Tab", "Switch back")),
	Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "Search")),

	Select:  key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("Space", "Select")),
	Remove:  key.NewBinding(key.WithKeys(" ", "space", "enter", "delete", "x"), key.WithHelp("Space", "Remove")),
	Clear:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "Clear all")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "Refresh")),
	Save:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "Save")),
	Info:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "Info")),
	Pager:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "View in pager")),
	Copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "Copy")),

	Quit:      key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "Quit")),
	ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("Ctrl+C", "Quit")),

	Type:      key.NewBinding(key.WithKeys("any"), key.WithHelp("Type", "to Search")),
	Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("Backspace", "Clear")),
	Scroll:    key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "Scroll")),
	Leave:     key.NewBinding(key.WithKeys("enter", "esc", "down"), key.WithHelp("Enter", "Done")),
}

// PanelHelp returns the hint bindings shown in the status bar for panel
func (k KeyMap) PanelHelp(panel types.Panel) []key.Binding {
	switch panel {
	case types.PanelSearch:
		return []key.Binding{k.Type, k.NextPanel, k.Backspace}
	case types.PanelCatalog:
		return []key.Binding{k.Up, k.Select, k.Info, k.Quit}
	case types.PanelSelected:
		return []key.Binding{k.Up, k.Remove, k.Save, k.Info, k.Quit}
	case types.PanelContent:
		return []key.Binding{k.Scroll, k.Save, k.Info, k.Quit}
	default:
		return nil
	}
}

// FullHelp groups every binding for the information dialog
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.PageUp, k.PageDown, k.Home, k.End},
		{k.NextPanel, k.PrevPanel, k.Search, k.Leave},
		{k.Select, k.Remove, k.Clear, k.Refresh},
		{k.Save, k.Pager, k.Copy, k.Info, k.Quit, k.ForceQuit},
	}
}
