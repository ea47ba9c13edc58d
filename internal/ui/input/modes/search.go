package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"gitignore-tui/internal/ui/input/types"
)

// SearchMode edits the filter query. Every printable key, q included, is
// text; only the keys below leave the box.
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", ti),
	}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyTab:
		return leaveSearch(types.PanelSearch.Next()), true
	case tea.KeyShiftTab:
		return leaveSearch(types.PanelSearch.Prev()), true
	case tea.KeyEnter, tea.KeyEsc, tea.KeyDown:
		return leaveSearch(types.PanelCatalog), true
	case tea.KeyUp:
		return nil, true
	case tea.KeyLeft, tea.KeyRight, tea.KeyHome, tea.KeyEnd,
		tea.KeyCtrlA, tea.KeyCtrlE, tea.KeyCtrlB, tea.KeyCtrlF,
		tea.KeyCtrlLeft, tea.KeyCtrlRight:
		// the query is only edited at its end
		return nil, true
	}
	if msg.Alt && msg.Type == tea.KeyRunes {
		return nil, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}

func leaveSearch(target types.Panel) []types.Action {
	return []types.Action{
		types.FocusPanelAction{Panel: target},
		types.ChangeModeAction{Mode: types.ModeBrowse},
	}
}
