package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"gitignore-tui/internal/ui/input/types"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(ctx *CommandContext) *Executor {
	return &Executor{ctx: ctx}
}

// Context returns the shared command context
func (e *Executor) Context() *CommandContext {
	return e.ctx
}

// ExecuteLoadCatalog creates and executes a catalog load
func (e *Executor) ExecuteLoadCatalog(refresh bool) tea.Cmd {
	return NewLoadCatalogCommand(e.ctx, refresh).Execute()
}

// ExecuteToggle creates and executes a toggle of name
func (e *Executor) ExecuteToggle(name string) tea.Cmd {
	return NewToggleTemplateCommand(e.ctx, name).Execute()
}

// ExecuteRemoveSelected creates and executes a removal by position
func (e *Executor) ExecuteRemoveSelected(index int) tea.Cmd {
	return NewRemoveSelectedCommand(e.ctx, index).Execute()
}

// ExecuteClearSelection creates and executes a clear
func (e *Executor) ExecuteClearSelection() tea.Cmd {
	return NewClearSelectionCommand(e.ctx).Execute()
}

// ExecuteSave creates and executes a save
func (e *Executor) ExecuteSave() tea.Cmd {
	return NewSaveCommand(e.ctx).Execute()
}

// ExecuteResolveSave creates and executes the conflict dialog answer
func (e *Executor) ExecuteResolveSave(choice types.SaveChoice) tea.Cmd {
	return NewResolveSaveCommand(e.ctx, choice).Execute()
}
