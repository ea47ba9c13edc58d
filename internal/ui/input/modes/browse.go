package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"gitignore-tui/internal/ui/input/keys"
	"gitignore-tui/internal/ui/input/types"
)

// BrowseMode handles keys while a list or the content panel has focus
type BrowseMode struct {
	keys keys.KeyMap
}

func NewBrowseMode(km keys.KeyMap) *BrowseMode {
	return &BrowseMode{keys: km}
}

func (m *BrowseMode) Name() string {
	return "browse"
}

func (m *BrowseMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *BrowseMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *BrowseMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	panel := ctx.ActivePanel()

	switch {
	case key.Matches(msg, k.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, k.NextPanel):
		return focus(panel.Next(), ctx), true
	case key.Matches(msg, k.PrevPanel):
		return focus(panel.Prev(), ctx), true
	case key.Matches(msg, k.Search):
		return focus(types.PanelSearch, ctx), true

	case key.Matches(msg, k.Up):
		return navigate("up"), true
	case key.Matches(msg, k.Down):
		return navigate("down"), true
	case key.Matches(msg, k.PageUp):
		return navigate("pageup"), true
	case key.Matches(msg, k.PageDown):
		return navigate("pagedown"), true
	case key.Matches(msg, k.Home):
		return navigate("home"), true
	case key.Matches(msg, k.End):
		return navigate("end"), true

	case panel == types.PanelCatalog && key.Matches(msg, k.Select):
		return []types.Action{types.ToggleTemplateAction{}}, true
	case panel == types.PanelSelected && key.Matches(msg, k.Remove):
		return []types.Action{types.RemoveSelectedAction{}}, true

	case key.Matches(msg, k.Clear):
		return []types.Action{types.ClearSelectionAction{}}, true
	case key.Matches(msg, k.Refresh):
		return []types.Action{types.RefreshAction{}}, true
	case key.Matches(msg, k.Save):
		return []types.Action{types.SaveAction{}}, true
	case key.Matches(msg, k.Info):
		return []types.Action{
			types.ShowInfoAction{},
			types.ChangeModeAction{Mode: types.ModeInfo},
		}, true
	case key.Matches(msg, k.Pager):
		return []types.Action{types.OpenPagerAction{}}, true
	case key.Matches(msg, k.Copy):
		return []types.Action{types.CopyContentAction{}}, true
	}

	return nil, false
}

func navigate(direction string) []types.Action {
	return []types.Action{types.NavigateAction{Direction: direction}}
}

// focus moves to target, switching into the text mode when target is the
// search box
func focus(target types.Panel, ctx types.Context) []types.Action {
	actions := []types.Action{types.FocusPanelAction{Panel: target}}
	if target == types.PanelSearch {
		actions = append(actions, types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.FilterText()})
	}
	return actions
}
