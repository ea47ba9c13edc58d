package commands

import (
	"context"
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitignore-tui/internal/domain"
	"gitignore-tui/internal/logging/events"
	"gitignore-tui/internal/ui/input/types"
	"gitignore-tui/internal/ui/state"
)

// CatalogSource lists templates and merges their content
type CatalogSource interface {
	ListTemplates(ctx context.Context) ([]string, error)
	FetchContent(ctx context.Context, names []string) (string, error)
}

// UsageTracker keeps selection counts and the recently-used list
type UsageTracker interface {
	Usage() map[string]int
	Recent() []string
	RecordUse(name string) (int, error)
}

// OutputWriter persists generated content
type OutputWriter interface {
	Name() string
	Exists() (bool, error)
	Save(mode domain.SaveMode, selected []string, content string) (domain.SaveResult, error)
}

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State        *state.AppState
	Catalog      CatalogSource
	Usage        UsageTracker
	Output       OutputWriter
	ErrorTimeout time.Duration

	// Ctx bounds background requests; nil means context.Background
	Ctx context.Context
}

func (c *CommandContext) requestContext() context.Context {
	if c.Ctx == nil {
		return context.Background()
	}
	return c.Ctx
}

// Fail shows msg as an error and returns the timer that clears it
func (c *CommandContext) Fail(msg string) tea.Cmd {
	seq := c.State.SetError(msg)
	timeout := c.ErrorTimeout
	if timeout <= 0 {
		return nil
	}
	return tea.Tick(timeout, func(time.Time) tea.Msg {
		return ClearErrorMsg{Seq: seq}
	})
}

// LoadCatalogCommand fetches the template list in the background
type LoadCatalogCommand struct {
	ctx     *CommandContext
	refresh bool
}

// NewLoadCatalogCommand creates a new catalog load; refresh only changes the
// status text
func NewLoadCatalogCommand(ctx *CommandContext, refresh bool) *LoadCatalogCommand {
	return &LoadCatalogCommand{ctx: ctx, refresh: refresh}
}

// Execute marks the catalog as loading and starts the request
func (c *LoadCatalogCommand) Execute() tea.Cmd {
	s := c.ctx.State
	seq := s.NextCatalogSeq()
	s.Loading = true
	if c.refresh {
		s.SetStatus(state.MsgRefreshing)
	} else {
		s.SetStatus(state.MsgLoading)
	}
	events.Catalog.Requested(seq)

	source, reqCtx := c.ctx.Catalog, c.ctx.requestContext()
	return func() tea.Msg {
		names, err := source.ListTemplates(reqCtx)
		return CatalogLoadedMsg{Seq: seq, Names: names, Err: err}
	}
}

// RegenerateCommand requests merged content for the current selection
type RegenerateCommand struct {
	ctx *CommandContext
}

// NewRegenerateCommand creates a new regeneration
func NewRegenerateCommand(ctx *CommandContext) *RegenerateCommand {
	return &RegenerateCommand{ctx: ctx}
}

// Execute starts a new generation. An empty selection clears the content
// without a request; the bumped generation still retires any request in
// flight.
func (c *RegenerateCommand) Execute() tea.Cmd {
	s := c.ctx.State
	names := s.SelectedNames()
	gen := s.NextGeneration()

	if len(names) == 0 {
		s.SetContent("", false)
		return nil
	}

	s.Generating = true
	s.SetStatus(fmt.Sprintf("Generating content for %d templates...", len(names)))
	events.Content.Requested(gen, names)

	source, reqCtx := c.ctx.Catalog, c.ctx.requestContext()
	return func() tea.Msg {
		content, err := source.FetchContent(reqCtx, names)
		return ContentGeneratedMsg{Generation: gen, Names: names, Content: content, Err: err}
	}
}

// ToggleTemplateCommand adds or removes a catalog template
type ToggleTemplateCommand struct {
	ctx  *CommandContext
	name string
}

// NewToggleTemplateCommand creates a new toggle
func NewToggleTemplateCommand(ctx *CommandContext, name string) *ToggleTemplateCommand {
	return &ToggleTemplateCommand{ctx: ctx, name: name}
}

// Execute toggles the template. Selecting records usage; a failed usage
// write is only a warning.
func (c *ToggleTemplateCommand) Execute() tea.Cmd {
	var usageErr error
	if c.ctx.State.Toggle(c.name) && c.ctx.Usage != nil {
		count, err := c.ctx.Usage.RecordUse(c.name)
		if err != nil {
			log.Printf("usage: %v", err)
			events.Usage.Failed(err)
			usageErr = err
		} else {
			events.Usage.Recorded(c.name, count)
		}
	}

	regen := NewRegenerateCommand(c.ctx).Execute()
	if usageErr != nil {
		// shown until the regenerated content replaces it
		return tea.Batch(regen, c.ctx.Fail(fmt.Sprintf("Warning: Could not save usage data: %v", usageErr)))
	}
	return regen
}

// RemoveSelectedCommand drops an entry of the selected list by position
type RemoveSelectedCommand struct {
	ctx   *CommandContext
	index int
}

// NewRemoveSelectedCommand creates a new removal
func NewRemoveSelectedCommand(ctx *CommandContext, index int) *RemoveSelectedCommand {
	return &RemoveSelectedCommand{ctx: ctx, index: index}
}

// Execute removes the entry and regenerates
func (c *RemoveSelectedCommand) Execute() tea.Cmd {
	if _, ok := c.ctx.State.RemoveSelectedAt(c.index); !ok {
		return nil
	}
	if n := len(c.ctx.State.Selected); c.ctx.State.SelectedCursor.Index >= n {
		c.ctx.State.SelectedCursor.Index = max(0, n-1)
	}
	return NewRegenerateCommand(c.ctx).Execute()
}

// ClearSelectionCommand empties the selection and the content
type ClearSelectionCommand struct {
	ctx *CommandContext
}

// NewClearSelectionCommand creates a new clear
func NewClearSelectionCommand(ctx *CommandContext) *ClearSelectionCommand {
	return &ClearSelectionCommand{ctx: ctx}
}

// Execute clears everything the selection produced
func (c *ClearSelectionCommand) Execute() tea.Cmd {
	c.ctx.State.ClearSelection()
	cmd := NewRegenerateCommand(c.ctx).Execute()
	c.ctx.State.SetStatus(state.MsgCleared)
	return cmd
}

// SaveCommand writes the content, or opens the conflict dialog when the
// target already exists
type SaveCommand struct {
	ctx *CommandContext
}

// NewSaveCommand creates a new save
func NewSaveCommand(ctx *CommandContext) *SaveCommand {
	return &SaveCommand{ctx: ctx}
}

// Execute saves a new file or asks how to handle the existing one
func (c *SaveCommand) Execute() tea.Cmd {
	s := c.ctx.State
	if !s.Savable() {
		return c.ctx.Fail(state.MsgNoContent)
	}

	exists, err := c.ctx.Output.Exists()
	if err != nil {
		return c.ctx.Fail(fmt.Sprintf("Failed to save: %v", err))
	}
	if exists {
		s.Modal = state.ModalSaveConfirm
		return nil
	}
	return write(c.ctx, domain.SaveNew)
}

// ResolveSaveCommand applies the answer from the conflict dialog
type ResolveSaveCommand struct {
	ctx    *CommandContext
	choice types.SaveChoice
}

// NewResolveSaveCommand creates a new resolution
func NewResolveSaveCommand(ctx *CommandContext, choice types.SaveChoice) *ResolveSaveCommand {
	return &ResolveSaveCommand{ctx: ctx, choice: choice}
}

// Execute closes the dialog and performs the chosen write
func (c *ResolveSaveCommand) Execute() tea.Cmd {
	c.ctx.State.Modal = state.ModalNone
	switch c.choice {
	case types.ChoiceOverwrite:
		return write(c.ctx, domain.SaveOverwrite)
	case types.ChoiceAppend:
		return write(c.ctx, domain.SaveAppend)
	default:
		c.ctx.State.SetStatus(state.MsgSaveCanceled)
		return nil
	}
}

func write(ctx *CommandContext, mode domain.SaveMode) tea.Cmd {
	s := ctx.State
	if !s.Savable() {
		return ctx.Fail(state.MsgNoContent)
	}

	res, err := ctx.Output.Save(mode, s.SelectedNames(), s.Content)
	if err != nil {
		log.Printf("save: %v", err)
		events.Save.Failed(res.Path, err)
		if mode == domain.SaveAppend {
			return ctx.Fail(fmt.Sprintf("Failed to append: %v", err))
		}
		return ctx.Fail(fmt.Sprintf("Failed to save: %v", err))
	}

	events.Save.Written(res.Path, res.Mode.String(), res.Bytes)
	name := ctx.Output.Name()
	switch mode {
	case domain.SaveOverwrite:
		s.SetStatus(fmt.Sprintf("✓ Overwritten %s (%d chars)", name, res.Bytes))
	case domain.SaveAppend:
		s.SetStatus(fmt.Sprintf("✓ Appended to %s (%d chars)", name, res.Bytes))
	default:
		s.SetStatus(fmt.Sprintf("✓ Saved to %s (%d chars)", name, res.Bytes))
	}
	return nil
}
