package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Border       lipgloss.Style
	BorderActive lipgloss.Style
	Title        lipgloss.Style
	TitleActive  lipgloss.Style

	Normal    lipgloss.Style
	Cursor    lipgloss.Style // highlighted row in the focused list
	Picked    lipgloss.Style // entries in the selected band
	Stale     lipgloss.Style
	Count     lipgloss.Style
	Dim       lipgloss.Style
	Search    lipgloss.Style
	SearchOn  lipgloss.Style
	ErrorText lipgloss.Style

	Thumb lipgloss.Style
	Track lipgloss.Style

	Status        lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusInfo    lipgloss.Style

	DialogWarn    lipgloss.Style
	DialogHeading lipgloss.Style
	DialogAccent  lipgloss.Style
	DialogOption  lipgloss.Style
	DialogFooter  lipgloss.Style

	Overlay lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Border:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		BorderActive: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Title:        lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		TitleActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),

		Normal:    lipgloss.NewStyle(),
		Cursor:    lipgloss.NewStyle().Background(lipgloss.Color("238")).Foreground(lipgloss.Color("226")).Bold(true),
		Picked:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Stale:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Count:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:       lipgloss.NewStyle().Faint(true),
		Search:    lipgloss.NewStyle(),
		SearchOn:  lipgloss.NewStyle().Background(lipgloss.Color("238")).Bold(true),
		ErrorText: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red

		Thumb: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		Track: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		StatusInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")),

		DialogWarn:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		DialogHeading: lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		DialogAccent:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		DialogOption:  lipgloss.NewStyle().Bold(true),
		DialogFooter:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),

		Overlay: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

func (s *Styles) border(active bool) (lipgloss.Style, lipgloss.Style) {
	if active {
		return s.BorderActive, s.TitleActive
	}
	return s.Border, s.Title
}
