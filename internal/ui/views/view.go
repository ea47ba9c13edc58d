package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"

	"gitignore-tui/internal/ui/input/types"
	"gitignore-tui/internal/ui/logic"
	"gitignore-tui/internal/ui/state"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	ActivePanel types.Panel
	FilterText  string

	Loading       bool
	Filtered      []string
	CatalogCursor logic.ListCursor
	Checked       map[string]bool

	SelectedNames  []string
	SelectedCursor logic.ListCursor
	Stale          map[string]bool

	ContentLines  []string
	ContentScroll int
	ContentError  bool
	Generating    bool

	StatusMessage string
	ErrorMessage  string
	Hints         []key.Binding
	HelpModel     help.Model
	Spinner       string

	Modal      state.Modal
	SaveTarget string
	InfoBody   string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewHelpModel returns a help model that renders hints as "key desc | key desc"
func NewHelpModel() help.Model {
	h := help.New()
	h.ShortSeparator = " | "
	h.Styles.ShortKey = lipgloss.NewStyle()
	h.Styles.ShortDesc = lipgloss.NewStyle()
	h.Styles.ShortSeparator = lipgloss.NewStyle()
	return h
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(vs ViewState) string {
	l := ComputeLayout(vs.Width, vs.Height)
	if l.TooSmall {
		return r.renderTooSmall(vs.Width, vs.Height)
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		r.renderSearch(vs, l.Search),
		r.renderCatalog(vs, l),
	)
	top := lipgloss.JoinHorizontal(lipgloss.Top, left, r.renderContent(vs, l))
	screen := lipgloss.JoinVertical(lipgloss.Left,
		top,
		r.renderSelected(vs, l),
		r.renderStatusBar(vs, vs.Width),
	)

	switch vs.Modal {
	case state.ModalSaveConfirm:
		return r.popupRender.RenderPopupOverlay(screen, r.renderSaveDialog(vs), vs.Width, vs.Height)
	case state.ModalInfo:
		return r.popupRender.RenderPopupOverlay(screen, r.renderInfoDialog(vs), vs.Width, vs.Height)
	}
	return screen
}

func (r *Renderer) renderTooSmall(w, h int) string {
	msg := fmt.Sprintf("Terminal too small (need %dx%d)", MinWidth, MinHeight)
	return lipgloss.Place(max(w, 1), max(h, 1), lipgloss.Center, lipgloss.Center, r.styles.ErrorText.Render(msg))
}

func (r *Renderer) renderSearch(vs ViewState, rect Rect) string {
	active := vs.ActivePanel == types.PanelSearch
	text := "> " + vs.FilterText
	style := r.styles.Search
	if active {
		text += "_"
		style = r.styles.SearchOn
	}
	inner := rect.W - 2
	row := " " + style.Render(fit(text, inner-2)) + " "

	border, title := r.styles.border(active)
	return frame("Search", []string{row}, rect.W, rect.H, border, title)
}

func (r *Renderer) renderCatalog(vs ViewState, l Layout) string {
	rect := l.Catalog
	active := vs.ActivePanel == types.PanelCatalog
	inner := rect.W - 2
	rows := l.CatalogRows()
	total := len(vs.Filtered)

	title := "Available Templates"
	if !vs.Loading {
		title = ScrollInfo(title, vs.CatalogCursor.Offset, rows, total, rect.W)
	}

	body := make([]string, 0, rect.H-2)
	switch {
	case vs.Loading:
		body = centered(body, rect.H-2, "  "+r.styles.Count.Render(strings.TrimSpace(vs.Spinner+" "+state.MsgLoading)))
	case total == 0:
		body = append(body, " "+r.styles.Count.Render(fmt.Sprintf("[%d templates]", total)))
		msg := "No templates found"
		if vs.FilterText != "" {
			msg = fmt.Sprintf("No matches for '%s'", vs.FilterText)
		}
		body = centered(body, rows, "  "+r.styles.ErrorText.Render(msg))
	default:
		body = append(body, " "+r.styles.Count.Render(fmt.Sprintf("[%d templates]", total)))
		bar := Scrollbar(rows, total, rows, vs.CatalogCursor.Offset)
		start, end := vs.CatalogCursor.Window(total, rows)
		for i := start; i < end; i++ {
			name := vs.Filtered[i]
			prefix := "  "
			if vs.Checked[name] {
				prefix = "✓ "
			}
			style := r.styles.Normal
			if active && i == vs.CatalogCursor.Index {
				style = r.styles.Cursor
			}
			body = append(body, listRow(prefix+name, inner, style, r.barCell(bar, i-start)))
		}
	}

	border, titleStyle := r.styles.border(active)
	return frame(title, body, rect.W, rect.H, border, titleStyle)
}

func (r *Renderer) renderSelected(vs ViewState, l Layout) string {
	rect := l.Selected
	active := vs.ActivePanel == types.PanelSelected
	inner := rect.W - 2
	rows := l.SelectedRows()
	total := len(vs.SelectedNames)

	title := ScrollInfo("Selected Templates", vs.SelectedCursor.Offset, rows, total, rect.W)

	var body []string
	if total == 0 {
		body = []string{"", "  " + r.styles.Count.Render("No templates selected")}
	} else {
		bar := Scrollbar(rows, total, rows, vs.SelectedCursor.Offset)
		start, end := vs.SelectedCursor.Window(total, rows)
		for i := start; i < end; i++ {
			name := vs.SelectedNames[i]
			text := "• " + name
			style := r.styles.Picked
			if vs.Stale[name] {
				text += " (not in catalog)"
				style = r.styles.Stale
			}
			if active && i == vs.SelectedCursor.Index {
				text = "► " + strings.TrimPrefix(text, "• ")
				style = r.styles.Cursor
			}
			body = append(body, listRow(text, inner, style, r.barCell(bar, i-start)))
		}
	}

	border, titleStyle := r.styles.border(active)
	return frame(title, body, rect.W, rect.H, border, titleStyle)
}

func (r *Renderer) renderContent(vs ViewState, l Layout) string {
	rect := l.Content
	active := vs.ActivePanel == types.PanelContent
	inner := rect.W - 2
	rows := l.ContentRows()
	total := len(vs.ContentLines)

	title := "Generated .gitignore"
	if vs.Generating {
		title += " (Generating...)"
	}
	title = ScrollInfo(title, vs.ContentScroll, rows, total, rect.W)

	var body []string
	if total == 0 {
		msg := "Select templates to generate content"
		if vs.Generating {
			msg = strings.TrimSpace(vs.Spinner + " Generating...")
		}
		body = centered(nil, rows, "  "+r.styles.Count.Render(msg))
	} else {
		style := r.styles.Normal
		if vs.ContentError {
			style = r.styles.ErrorText
		}
		bar := Scrollbar(rows, total, rows, vs.ContentScroll)
		end := min(vs.ContentScroll+rows, total)
		for i := vs.ContentScroll; i < end; i++ {
			body = append(body, listRow(vs.ContentLines[i], inner, style, r.barCell(bar, i-vs.ContentScroll)))
		}
	}

	border, titleStyle := r.styles.border(active)
	return frame(title, body, rect.W, rect.H, border, titleStyle)
}

func (r *Renderer) barCell(bar []string, i int) string {
	if i < 0 || i >= len(bar) {
		return ""
	}
	if bar[i] == thumbRune {
		return r.styles.Thumb.Render(bar[i])
	}
	return r.styles.Track.Render(bar[i])
}

// renderStatusBar puts the panel hints on the left and the latest message
// right-aligned on the right
func (r *Renderer) renderStatusBar(vs ViewState, width int) string {
	hints := fmt.Sprintf("[%s] %s", vs.ActivePanel, vs.HelpModel.ShortHelpView(vs.Hints))
	left := " " + r.styles.Status.Render(ansi.Truncate(hints, max(width/2-2, 0), ""))

	msg, style := vs.StatusMessage, r.styles.StatusInfo
	switch {
	case vs.ErrorMessage != "":
		msg, style = vs.ErrorMessage, r.styles.StatusError
	case strings.Contains(msg, "✓") || strings.Contains(msg, "Saved"):
		style = r.styles.StatusSuccess
	}
	right := ""
	if msg != "" {
		right = style.Render(ansi.Truncate(msg, max(width/2-5, 0), "")) + "  "
	}

	gap := width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 0 {
		return fit(left+right, width)
	}
	return left + strings.Repeat(" ", gap) + right
}

func (r *Renderer) renderSaveDialog(vs ViewState) string {
	w, h := DialogSize(60, 13, vs.Width, vs.Height)
	s := r.styles
	name := vs.SaveTarget
	if name == "" {
		name = ".gitignore"
	}

	lines := []struct {
		text  string
		style lipgloss.Style
	}{
		{"", s.Normal},
		{name + " file already exists!", s.DialogWarn},
		{"", s.Normal},
		{"What would you like to do?", s.DialogHeading},
		{"", s.Normal},
		{"Options:", s.DialogAccent},
		{"  [Y]es     - Overwrite the existing file", s.DialogOption},
		{"  [N]o      - Cancel the save operation", s.DialogOption},
		{"  [A]ppend  - Add content to existing file", s.DialogOption},
		{"", s.Normal},
		{"Press Y, N, or A to choose...", s.DialogFooter},
	}

	textWidth := max(w-4, 1)
	var body []string
	for _, l := range lines {
		for _, part := range strings.Split(wordwrap.String(l.text, textWidth), "\n") {
			body = append(body, l.style.Render(part))
		}
	}
	return r.popupRender.Dialog("Save Confirmation", body, w, h)
}

func (r *Renderer) renderInfoDialog(vs ViewState) string {
	w, h := DialogSize(70, 26, vs.Width, vs.Height)
	body := strings.Split(strings.TrimRight(vs.InfoBody, "\n"), "\n")
	footer := r.styles.DialogWarn.Render("Press ANY key to close this dialog...")
	if room := h - 3; room >= 0 && len(body) > room {
		body = body[:room]
	}
	body = append(body, footer)
	return r.popupRender.Dialog("GitIgnore TUI - Information", body, w, h)
}

// centered appends blank rows so msg lands in the middle of a block of
// height rows
func centered(body []string, height int, msg string) []string {
	for i := 0; i < height/2; i++ {
		body = append(body, "")
	}
	return append(body, msg)
}
