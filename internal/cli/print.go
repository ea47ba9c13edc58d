package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func info(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, infoStyle.Render(fmt.Sprintf(format, args...)))
}

func success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, successStyle.Render(fmt.Sprintf(format, args...)))
}

func warn(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf(format, args...)))
}

// writeColumns prints names left-aligned in fixed-width cells, columns per row
func writeColumns(w io.Writer, names []string, columns, width int) {
	if columns < 1 {
		columns = 1
	}
	for i, name := range names {
		fmt.Fprintf(w, "%-*s", width, name)
		if (i+1)%columns == 0 {
			fmt.Fprintln(w)
		}
	}
	if len(names)%columns != 0 {
		fmt.Fprintln(w)
	}
}
