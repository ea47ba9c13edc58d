package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// DialogSize clamps a preferred dialog size to the screen, keeping a margin
func DialogSize(prefW, prefH, width, height int) (int, int) {
	w, h := prefW, prefH
	if w > width-4 {
		w = width - 4
	}
	if h > height-4 {
		h = height - 4
	}
	return max(w, 0), max(h, 0)
}

// Dialog draws a bordered popup with title
func (pr *PopupRenderer) Dialog(title string, body []string, w, h int) string {
	padded := make([]string, len(body))
	for i, line := range body {
		padded[i] = " " + line
	}
	return frame(title, padded, w, h, pr.styles.BorderActive, pr.styles.TitleActive)
}

// RenderPopupOverlay centers popup over base. The base is redrawn in a flat
// grey so the dialog stands out; cells outside the popup keep their text.
func (pr *PopupRenderer) RenderPopupOverlay(base, popup string, width, height int) string {
	popupLines := strings.Split(popup, "\n")
	pw := lipgloss.Width(popup)
	ph := len(popupLines)
	x := max((width-pw)/2, 0)
	y := max((height-ph)/2, 0)

	baseLines := strings.Split(base, "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}

	out := make([]string, len(baseLines))
	for i, line := range baseLines {
		plain := ansi.Strip(line)
		if i < y || i >= y+ph {
			out[i] = pr.styles.Overlay.Render(plain)
			continue
		}
		left := fit(ansi.Truncate(plain, x, ""), x)
		right := ansi.TruncateLeft(plain, x+pw, "")
		out[i] = pr.styles.Overlay.Render(left) + popupLines[i-y] + pr.styles.Overlay.Render(right)
	}
	return strings.Join(out, "\n")
}
