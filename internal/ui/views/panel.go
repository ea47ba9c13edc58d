package views

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	thumbRune = "█"
	trackRune = "░"
)

var box = lipgloss.NormalBorder()

// frame draws a bordered block of exactly w×h cells. Body lines are placed
// inside the border, cut or padded to the inner width; missing lines are
// blank.
func frame(title string, body []string, w, h int, border, titleStyle lipgloss.Style) string {
	if w < 2 || h < 2 {
		return blank(max(w, 0), max(h, 0))
	}
	inner := w - 2

	lines := make([]string, 0, h)
	lines = append(lines, topBorder(title, inner, border, titleStyle))
	side := border.Render(box.Left)
	rside := border.Render(box.Right)
	for i := 0; i < h-2; i++ {
		row := ""
		if i < len(body) {
			row = body[i]
		}
		lines = append(lines, side+fit(row, inner)+rside)
	}
	lines = append(lines, border.Render(box.BottomLeft+strings.Repeat(box.Bottom, inner)+box.BottomRight))
	return strings.Join(lines, "\n")
}

func topBorder(title string, inner int, border, titleStyle lipgloss.Style) string {
	if title == "" || inner < 3 {
		return border.Render(box.TopLeft + strings.Repeat(box.Top, inner) + box.TopRight)
	}
	label := " " + ansi.Truncate(title, inner-2, "") + " "
	lw := ansi.StringWidth(label)
	before := (inner - lw) / 2
	after := inner - lw - before
	return border.Render(box.TopLeft+strings.Repeat(box.Top, before)) +
		titleStyle.Render(label) +
		border.Render(strings.Repeat(box.Top, after)+box.TopRight)
}

// fit cuts s to width cells and pads it with spaces
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

func blank(w, h int) string {
	if h == 0 {
		return ""
	}
	row := strings.Repeat(" ", w)
	rows := make([]string, h)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

// ScrollInfo appends a "(first-last/total)" annotation to title when the
// list overflows, dropping the total and then the whole annotation when the
// panel is too narrow
func ScrollInfo(title string, offset, visible, total, width int) string {
	if total <= visible || visible <= 0 {
		return title
	}
	first := offset + 1
	last := min(offset+visible, total)

	info := fmt.Sprintf(" (%d-%d/%d)", first, last, total)
	if len(title)+len(info) > width-6 {
		info = fmt.Sprintf(" (%d-%d)", first, last)
		if len(title)+len(info) > width-6 {
			info = ""
		}
	}
	return title + info
}

// Scrollbar returns one cell per track row, or nil when everything fits
func Scrollbar(track, total, visible, offset int) []string {
	if total <= visible || track <= 0 {
		return nil
	}
	thumb := int(math.Round(float64(visible) / float64(total) * float64(track)))
	thumb = min(max(thumb, 1), track)

	span := total - visible
	pos := int(math.Round(float64(offset) / float64(span) * float64(track-thumb)))
	pos = min(max(pos, 0), track-thumb)

	cells := make([]string, track)
	for i := range cells {
		if i >= pos && i < pos+thumb {
			cells[i] = thumbRune
		} else {
			cells[i] = trackRune
		}
	}
	return cells
}

// listRow lays out one inner row: a margin, the text, a margin and the
// scrollbar cell
func listRow(text string, inner int, style lipgloss.Style, bar string) string {
	if bar == "" {
		bar = " "
	}
	return " " + style.Render(fit(text, inner-3)) + " " + bar
}
