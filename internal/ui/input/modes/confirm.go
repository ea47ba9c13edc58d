package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"gitignore-tui/internal/ui/input/types"
)

// SaveConfirmMode answers the overwrite/append/cancel question. It swallows
// every other key while the dialog is open.
type SaveConfirmMode struct{}

func NewSaveConfirmMode() *SaveConfirmMode {
	return &SaveConfirmMode{}
}

func (m *SaveConfirmMode) Name() string {
	return "save-confirm"
}

func (m *SaveConfirmMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *SaveConfirmMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *SaveConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "y", "Y":
		return resolve(types.ChoiceOverwrite), true
	case "a", "A":
		return resolve(types.ChoiceAppend), true
	case "n", "N", "esc":
		return resolve(types.ChoiceCancel), true
	}
	return nil, true
}

func resolve(choice types.SaveChoice) []types.Action {
	return []types.Action{
		types.ResolveSaveAction{Choice: choice},
		types.ChangeModeAction{Mode: types.ModeBrowse},
	}
}
