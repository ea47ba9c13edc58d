package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeBrowse Mode = iota
	ModeSearch
	ModeSaveConfirm
	ModeInfo
)

// Panel identifies one of the four focusable regions
type Panel int

const (
	PanelSearch Panel = iota
	PanelCatalog
	PanelSelected
	PanelContent
)

const panelCount = 4

// Next returns the panel after p in focus order, wrapping around
func (p Panel) Next() Panel {
	return Panel((int(p) + 1) % panelCount)
}

// Prev returns the panel before p in focus order, wrapping around
func (p Panel) Prev() Panel {
	return Panel((int(p) + panelCount - 1) % panelCount)
}

func (p Panel) String() string {
	switch p {
	case PanelSearch:
		return "Search"
	case PanelCatalog:
		return "Templates"
	case PanelSelected:
		return "Selected"
	case PanelContent:
		return "Content"
	default:
		return "Unknown"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	ActivePanel() Panel
	FilterText() string
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	Enter(ctx Context) []Action
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
