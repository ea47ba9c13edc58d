package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"

	"gitignore-tui/internal/ui/input/keys"
	"gitignore-tui/internal/ui/state"
	"gitignore-tui/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state      *state.AppState
	keys       keys.KeyMap
	width      int
	height     int
	help       help.Model
	spinner    string
	infoBody   string
	saveTarget string
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, km keys.KeyMap) *ViewModel {
	return &ViewModel{
		state: appState,
		keys:  km,
		help:  views.NewHelpModel(),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetSpinnerFrame sets the busy indicator frame
func (vm *ViewModel) SetSpinnerFrame(frame string) {
	vm.spinner = frame
}

// SetInfoBody sets the rendered information dialog text
func (vm *ViewModel) SetInfoBody(body string) {
	vm.infoBody = body
}

// SetSaveTarget sets the file name shown in the save dialog
func (vm *ViewModel) SetSaveTarget(name string) {
	vm.saveTarget = name
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	s := vm.state
	selected := s.SelectedNames()

	var stale map[string]bool
	if !s.Loading || len(s.Catalog) > 0 {
		for _, name := range selected {
			if !s.InCatalog(name) {
				if stale == nil {
					stale = make(map[string]bool)
				}
				stale[name] = true
			}
		}
	}

	return views.ViewState{
		Width:          vm.width,
		Height:         vm.height,
		ActivePanel:    s.ActivePanel,
		FilterText:     s.FilterText,
		Loading:        s.Loading,
		Filtered:       s.Filtered,
		CatalogCursor:  s.CatalogCursor,
		Checked:        s.Selected,
		SelectedNames:  selected,
		SelectedCursor: s.SelectedCursor,
		Stale:          stale,
		ContentLines:   s.ContentLines(),
		ContentScroll:  s.ContentScroll.Offset,
		ContentError:   s.ContentError,
		Generating:     s.Generating,
		StatusMessage:  s.StatusMessage,
		ErrorMessage:   s.ErrorMessage,
		Hints:          vm.keys.PanelHelp(s.ActivePanel),
		HelpModel:      vm.help,
		Spinner:        vm.spinner,
		Modal:          s.Modal,
		SaveTarget:     vm.saveTarget,
		InfoBody:       vm.infoBody,
	}
}
