package ui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"gitignore-tui/internal/config"
	"gitignore-tui/internal/domain"
	"gitignore-tui/internal/logging"
	"gitignore-tui/internal/logging/events"
	"gitignore-tui/internal/ui/commands"
	"gitignore-tui/internal/ui/handlers"
	"gitignore-tui/internal/ui/input"
	"gitignore-tui/internal/ui/input/keys"
	inputtypes "gitignore-tui/internal/ui/input/types"
	"gitignore-tui/internal/ui/state"
	"gitignore-tui/internal/ui/viewmodels"
	"gitignore-tui/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	config *config.Config
	state  *state.AppState // centralized state

	// UI-specific state not in AppState
	width        int
	height       int
	inPagerMode  bool // tracks if we're currently in pager mode
	spinnerFrame int
	infoStyle    string
	lastFrame    string

	// task results that arrived while a dialog was open
	pending []tea.Msg

	// Handlers
	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
	keys         keys.KeyMap
	usage        commands.UsageTracker
	output       commands.OutputWriter

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(cfg *config.Config, catalog commands.CatalogSource, usage commands.UsageTracker, output commands.OutputWriter) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	appState := state.NewAppState()
	km := keys.Default

	cmdCtx := &commands.CommandContext{
		State:        appState,
		Catalog:      catalog,
		Usage:        usage,
		Output:       output,
		ErrorTimeout: cfg.UI.ErrorTimeout.Duration,
	}

	m := &Model{
		config:       cfg,
		state:        appState,
		infoStyle:    ResolveGlamourStyle(cfg.UI.GlamourStyle),
		renderer:     views.NewRenderer(),
		eventHandler: handlers.NewEventHandler(cmdCtx),
		viewModel:    viewmodels.NewViewModel(appState, km),
		cmdExecutor:  commands.NewExecutor(cmdCtx),
		inputHandler: input.New(km),
		keys:         km,
		usage:        usage,
		output:       output,
	}
	m.viewModel.SetSaveTarget(output.Name())
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// SetContext bounds catalog and content requests by ctx
func (m *Model) SetContext(ctx context.Context) {
	m.cmdExecutor.Context().Ctx = ctx
}

// Init starts the animation timer and the first catalog load
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.tick(), m.cmdExecutor.ExecuteLoadCatalog(false))
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		m.clamp()
		return m, nil

	case tea.KeyMsg:
		ctx := &input.ModelContext{State: m.state}
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		m.clamp()
		return m, tea.Batch(cmds...)

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI. A drawing failure keeps the previous frame on screen.
func (m *Model) View() (out string) {
	if m.width == 0 {
		return "Loading..."
	}
	defer func() {
		if r := recover(); r != nil {
			logging.Error(&domain.RenderError{Op: "view", Err: fmt.Errorf("%v", r)})
			out = m.lastFrame
		}
	}()

	m.viewModel.SetSpinnerFrame(spinner.Dot.Frames[m.spinnerFrame%len(spinner.Dot.Frames)])
	frame := m.renderer.Render(m.viewModel.BuildViewState())
	m.lastFrame = frame
	return frame
}

func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	log.Printf("processAction: %s", action.Type())
	s := m.state

	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.FocusPanelAction:
		s.ActivePanel = a.Panel
		if a.Panel == inputtypes.PanelSearch {
			s.SetStatus(state.MsgSearchMode)
		}

	case inputtypes.UpdateTextAction:
		s.SetFilter(a.Text, m.usage.Usage())
		events.Filter.Changed(a.Text, len(s.Filtered))

	case inputtypes.ToggleTemplateAction:
		if name, ok := s.CurrentTemplate(); ok {
			return m.cmdExecutor.ExecuteToggle(name)
		}

	case inputtypes.RemoveSelectedAction:
		if s.HasSelection() {
			return m.cmdExecutor.ExecuteRemoveSelected(s.SelectedCursor.Index)
		}

	case inputtypes.ClearSelectionAction:
		return m.cmdExecutor.ExecuteClearSelection()

	case inputtypes.RefreshAction:
		return m.cmdExecutor.ExecuteLoadCatalog(true)

	case inputtypes.SaveAction:
		cmd := m.cmdExecutor.ExecuteSave()
		if s.Modal == state.ModalSaveConfirm {
			m.viewModel.SetSaveTarget(m.output.Name())
			m.inputHandler.ChangeMode(inputtypes.ModeSaveConfirm, "", &input.ModelContext{State: s})
		}
		return cmd

	case inputtypes.ResolveSaveAction:
		cmd := m.cmdExecutor.ExecuteResolveSave(a.Choice)
		return tea.Batch(cmd, m.replayPending())

	case inputtypes.ShowInfoAction:
		w, _ := views.DialogSize(70, 26, m.width, m.height)
		m.viewModel.SetInfoBody(renderInfo(infoMarkdown(m.keys, m.usage.Recent()), m.infoStyle, w-6))
		s.Modal = state.ModalInfo

	case inputtypes.CloseInfoAction:
		s.Modal = state.ModalNone
		return m.replayPending()

	case inputtypes.OpenPagerAction:
		if !s.Savable() {
			return m.cmdExecutor.Context().Fail("No content to view - select templates first")
		}
		return m.openPager(s.Content)

	case inputtypes.CopyContentAction:
		if !s.Savable() {
			return m.cmdExecutor.Context().Fail("No content to copy - select templates first")
		}
		return copyToClipboard(s.Content)

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handlers.IsTaskResult(msg) && m.state.Modal != state.ModalNone {
		m.pending = append(m.pending, msg)
		return m, nil
	}
	if cmd, ok := m.eventHandler.HandleEvent(msg); ok {
		m.clamp()
		return m, cmd
	}

	switch msg := msg.(type) {
	case tickMsg:
		// Don't continue tick loop if we're in pager mode
		if m.inPagerMode {
			return m, nil
		}
		m.spinnerFrame++
		return m, m.tick()

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, m.tick()

	case pagerMsg:
		if msg.err != nil {
			log.Printf("Pager failed: %v", msg.err)
			return m, m.cmdExecutor.Context().Fail(fmt.Sprintf("Pager failed: %v", msg.err))
		}
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			return m, m.cmdExecutor.Context().Fail(fmt.Sprintf("Copy failed: %v", msg.err))
		}
		m.state.SetStatus(fmt.Sprintf("✓ Copied %d chars to clipboard", msg.size))
		return m, nil
	}
	return m, nil
}

// replayPending applies results that were held back while a dialog was open
func (m *Model) replayPending() tea.Cmd {
	if m.state.Modal != state.ModalNone || len(m.pending) == 0 {
		return nil
	}
	held := m.pending
	m.pending = nil

	var cmds []tea.Cmd
	for _, msg := range held {
		if cmd, _ := m.eventHandler.HandleEvent(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	m.clamp()
	return tea.Batch(cmds...)
}

func (m *Model) navigate(direction string) {
	l := views.ComputeLayout(m.width, m.height)
	s := m.state

	switch s.ActivePanel {
	case inputtypes.PanelCatalog:
		moveCursor(&s.CatalogCursor, direction, len(s.Filtered), l.CatalogRows())
	case inputtypes.PanelSelected:
		moveCursor(&s.SelectedCursor, direction, len(s.Selected), l.SelectedRows())
	case inputtypes.PanelContent:
		total, rows := len(s.ContentLines()), l.ContentRows()
		switch direction {
		case "up":
			s.ContentScroll.By(-1, total, rows)
		case "down":
			s.ContentScroll.By(1, total, rows)
		case "pageup":
			s.ContentScroll.By(-max(rows, 1), total, rows)
		case "pagedown":
			s.ContentScroll.By(max(rows, 1), total, rows)
		case "home":
			s.ContentScroll.Top()
		case "end":
			s.ContentScroll.Bottom(total, rows)
		}
	}
}

type cursor interface {
	Move(delta, total, visible int)
	PageUp(total, visible int)
	PageDown(total, visible int)
	Home(total, visible int)
	End(total, visible int)
}

func moveCursor(c cursor, direction string, total, rows int) {
	switch direction {
	case "up":
		c.Move(-1, total, rows)
	case "down":
		c.Move(1, total, rows)
	case "pageup":
		c.PageUp(total, rows)
	case "pagedown":
		c.PageDown(total, rows)
	case "home":
		c.Home(total, rows)
	case "end":
		c.End(total, rows)
	}
}

func (m *Model) clamp() {
	if m.width == 0 {
		return
	}
	l := views.ComputeLayout(m.width, m.height)
	m.state.Clamp(l.CatalogRows(), l.SelectedRows(), l.ContentRows())
}

// tick returns a command that sends a tick message after a delay
func (m *Model) tick() tea.Cmd {
	interval := m.config.UI.TickInterval.Duration
	if interval <= 0 {
		interval = config.DefaultTickInterval
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Status returns the current status bar text, error first
func (m *Model) Status() string {
	if m.state.ErrorMessage != "" {
		return m.state.ErrorMessage
	}
	return strings.TrimSpace(m.state.StatusMessage)
}
