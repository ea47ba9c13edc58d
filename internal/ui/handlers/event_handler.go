package handlers

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"gitignore-tui/internal/logging/events"
	"gitignore-tui/internal/ui/commands"
)

// EventHandler applies background task results to the state
type EventHandler struct {
	ctx *commands.CommandContext
}

// NewEventHandler creates a new event handler
func NewEventHandler(ctx *commands.CommandContext) *EventHandler {
	return &EventHandler{ctx: ctx}
}

// IsTaskResult reports whether msg is produced by a background task
func IsTaskResult(msg tea.Msg) bool {
	switch msg.(type) {
	case commands.CatalogLoadedMsg, commands.ContentGeneratedMsg:
		return true
	}
	return false
}

// HandleEvent processes a task result or timer message. The second return
// is false when msg is not one of ours.
func (h *EventHandler) HandleEvent(msg tea.Msg) (tea.Cmd, bool) {
	switch e := msg.(type) {
	case commands.CatalogLoadedMsg:
		return h.catalogLoaded(e), true
	case commands.ContentGeneratedMsg:
		return h.contentGenerated(e), true
	case commands.ClearErrorMsg:
		h.ctx.State.ClearError(e.Seq)
		return nil, true
	}
	return nil, false
}

func (h *EventHandler) catalogLoaded(e commands.CatalogLoadedMsg) tea.Cmd {
	s := h.ctx.State
	if e.Seq != s.CatalogSeq {
		events.Catalog.Stale(e.Seq, s.CatalogSeq)
		return nil
	}
	s.Loading = false

	if e.Err != nil {
		// the previous catalog, if any, stays usable
		log.Printf("catalog: %v", e.Err)
		events.Catalog.Failed(e.Seq, e.Err)
		return h.ctx.Fail(fmt.Sprintf("Failed to load templates: %v", e.Err))
	}

	var usage map[string]int
	if h.ctx.Usage != nil {
		usage = h.ctx.Usage.Usage()
	}
	s.SetCatalog(e.Names, usage)
	events.Catalog.Loaded(e.Seq, len(e.Names))
	s.SetStatus(fmt.Sprintf("✓ Loaded %d templates", len(e.Names)))
	return nil
}

func (h *EventHandler) contentGenerated(e commands.ContentGeneratedMsg) tea.Cmd {
	s := h.ctx.State
	if e.Generation != s.Generation {
		events.Content.Dropped(e.Generation, s.Generation)
		return nil
	}

	if e.Err != nil {
		log.Printf("generate: %v", e.Err)
		events.Content.Failed(e.Generation, e.Err)
		s.SetContent(fmt.Sprintf("# Error generating content: %v\n# Selected templates: %s",
			e.Err, strings.Join(e.Names, ", ")), true)
		return h.ctx.Fail(fmt.Sprintf("Generation failed: %v", e.Err))
	}

	s.SetContent(e.Content, false)
	events.Content.Generated(e.Generation, len(e.Content))
	s.SetStatus(fmt.Sprintf("✓ Generated content for %d templates", len(e.Names)))
	return nil
}
