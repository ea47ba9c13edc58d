package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"gitignore-tui/internal/ui/input/types"
)

// InfoMode closes the information dialog on any key
type InfoMode struct{}

func NewInfoMode() *InfoMode {
	return &InfoMode{}
}

func (m *InfoMode) Name() string {
	return "info"
}

func (m *InfoMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *InfoMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *InfoMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}
	return []types.Action{
		types.CloseInfoAction{},
		types.ChangeModeAction{Mode: types.ModeBrowse},
	}, true
}
