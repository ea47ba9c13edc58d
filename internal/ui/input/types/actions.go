package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// FocusPanelAction moves focus to Panel
type FocusPanelAction struct {
	Panel Panel
}

func (a FocusPanelAction) Type() string { return "focus_panel" }

// Selection actions
type ToggleTemplateAction struct{}

func (a ToggleTemplateAction) Type() string { return "toggle_template" }

type RemoveSelectedAction struct{}

func (a RemoveSelectedAction) Type() string { return "remove_selected" }

type ClearSelectionAction struct{}

func (a ClearSelectionAction) Type() string { return "clear_selection" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // seeds the text input when entering a text mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// Command actions
type RefreshAction struct{}

func (a RefreshAction) Type() string { return "refresh" }

type SaveAction struct{}

func (a SaveAction) Type() string { return "save" }

// SaveChoice is the answer given in the save conflict dialog
type SaveChoice int

const (
	ChoiceCancel SaveChoice = iota
	ChoiceOverwrite
	ChoiceAppend
)

type ResolveSaveAction struct {
	Choice SaveChoice
}

func (a ResolveSaveAction) Type() string { return "resolve_save" }

type ShowInfoAction struct{}

func (a ShowInfoAction) Type() string { return "show_info" }

type CloseInfoAction struct{}

func (a CloseInfoAction) Type() string { return "close_info" }

type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

type CopyContentAction struct{}

func (a CopyContentAction) Type() string { return "copy_content" }

// System actions
type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
