package input

import (
	"gitignore-tui/internal/ui/input/types"
	"gitignore-tui/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
}

func (c *ModelContext) ActivePanel() types.Panel {
	return c.State.ActivePanel
}

func (c *ModelContext) FilterText() string {
	return c.State.FilterText
}
