package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// pagerMsg contains the result of a pager session
type pagerMsg struct {
	err error
}

// clipboardMsg contains the result of a clipboard copy
type clipboardMsg struct {
	size int
	err  error
}

// openPager returns a command that shows content in the ov pager, pausing
// our rendering while it owns the terminal
func (m *Model) openPager(content string) tea.Cmd {
	program := m.program
	return func() tea.Msg {
		if program == nil {
			return pagerMsg{err: fmt.Errorf("program not set")}
		}
		program.Send(pauseRenderingMsg{})
		err := showInPager(program, content)
		program.Send(resumeRenderingMsg{})
		return pagerMsg{err: err}
	}
}

func showInPager(program *tea.Program, content string) error {
	if err := program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	cfg := oviewer.NewConfig()
	cfg.IsWriteOnExit = false
	cfg.IsWriteOriginal = false
	root.SetConfig(cfg)

	return root.Run()
}

// copyToClipboard returns a command that puts content on the system clipboard
func copyToClipboard(content string) tea.Cmd {
	return func() tea.Msg {
		err := clipboard.WriteAll(content)
		return clipboardMsg{size: len([]rune(content)), err: err}
	}
}
