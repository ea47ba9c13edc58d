package state

import (
	"strings"

	"gitignore-tui/internal/catalog"
	"gitignore-tui/internal/search"
	"gitignore-tui/internal/ui/input/types"
	"gitignore-tui/internal/ui/logic"
)

// Modal identifies which dialog, if any, is drawn over the panels
type Modal int

const (
	ModalNone Modal = iota
	ModalSaveConfirm
	ModalInfo
)

// Status messages shared by the model and the views
const (
	MsgLoading      = "Loading templates..."
	MsgNoContent    = "No content to save - select templates first"
	MsgCleared      = "Cleared all selections"
	MsgSearchMode   = "Search mode - Type to filter templates"
	MsgSaveCanceled = "Save cancelled"
	MsgRefreshing   = "Refreshing templates..."
)

// AppState contains all the application state
type AppState struct {
	// Catalog data
	Catalog    []string // names as served, alphabetical
	catalogSet map[string]bool
	Filtered   []string // ranked view of Catalog for FilterText
	FilterText string
	Loading    bool

	// Selection state
	Selected map[string]bool

	// Generated content
	Content      string
	ContentError bool // Content is an error block, not a real result
	Generating   bool

	// Focus and scrolling
	ActivePanel    types.Panel
	CatalogCursor  logic.ListCursor
	SelectedCursor logic.ListCursor
	ContentScroll  logic.Scroll

	// Status bar
	StatusMessage string
	ErrorMessage  string
	errorSeq      int

	// Ordering counters for async results
	Generation int
	CatalogSeq int

	Modal Modal
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Selected:      make(map[string]bool),
		Loading:       true,
		ActivePanel:   types.PanelCatalog,
		StatusMessage: MsgLoading,
	}
}

// Catalog operations

// SetCatalog replaces the template list and re-applies the current filter
func (s *AppState) SetCatalog(names []string, usage map[string]int) {
	s.Catalog = search.Alphabetical(names)
	s.catalogSet = make(map[string]bool, len(names))
	for _, n := range names {
		s.catalogSet[n] = true
	}
	s.Loading = false
	s.Refilter(usage)
}

// SetFilter changes the query. The catalog cursor returns to the top when the
// query actually changes.
func (s *AppState) SetFilter(text string, usage map[string]int) {
	if text == s.FilterText {
		return
	}
	s.FilterText = text
	s.Refilter(usage)
	s.CatalogCursor.Reset()
}

// Refilter recomputes Filtered with fresh usage counts
func (s *AppState) Refilter(usage map[string]int) {
	s.Filtered = search.Rank(s.Catalog, s.FilterText, usage)
	if s.CatalogCursor.Index >= len(s.Filtered) {
		s.CatalogCursor.Index = len(s.Filtered) - 1
	}
	if s.CatalogCursor.Index < 0 {
		s.CatalogCursor.Index = 0
	}
}

// CurrentTemplate returns the highlighted catalog row
func (s *AppState) CurrentTemplate() (string, bool) {
	i := s.CatalogCursor.Index
	if i < 0 || i >= len(s.Filtered) {
		return "", false
	}
	return s.Filtered[i], true
}

// InCatalog reports whether name is part of the loaded catalog
func (s *AppState) InCatalog(name string) bool {
	return s.catalogSet[name]
}

// Selection operations

// Toggle flips name in the selection and reports whether it is now selected
func (s *AppState) Toggle(name string) bool {
	if s.Selected[name] {
		delete(s.Selected, name)
		return false
	}
	s.Selected[name] = true
	return true
}

// SelectedNames returns the selection in display and request order
func (s *AppState) SelectedNames() []string {
	names := make([]string, 0, len(s.Selected))
	for n := range s.Selected {
		names = append(names, n)
	}
	return search.Alphabetical(names)
}

// RemoveSelectedAt drops the i-th entry of SelectedNames
func (s *AppState) RemoveSelectedAt(i int) (string, bool) {
	names := s.SelectedNames()
	if i < 0 || i >= len(names) {
		return "", false
	}
	delete(s.Selected, names[i])
	return names[i], true
}

// ClearSelection empties the selection
func (s *AppState) ClearSelection() {
	s.Selected = make(map[string]bool)
	s.SelectedCursor.Reset()
}

// HasSelection returns true if any template is selected
func (s *AppState) HasSelection() bool {
	return len(s.Selected) > 0
}

// Content operations

// SetContent stores a generation result and returns the scroll to the top
func (s *AppState) SetContent(content string, isError bool) {
	s.Content = content
	s.ContentError = isError
	s.Generating = false
	s.ContentScroll.Top()
}

// ContentLines splits Content for display
func (s *AppState) ContentLines() []string {
	if s.Content == "" {
		return nil
	}
	return strings.Split(strings.TrimRight(s.Content, "\n"), "\n")
}

// Savable reports whether Content may be written to disk
func (s *AppState) Savable() bool {
	if s.Generating || s.ContentError {
		return false
	}
	switch strings.TrimSpace(s.Content) {
	case "", catalog.NoSelectionPlaceholder, catalog.NoValidPlaceholder:
		return false
	}
	return true
}

// NextGeneration starts a new content request and returns its number
func (s *AppState) NextGeneration() int {
	s.Generation++
	return s.Generation
}

// NextCatalogSeq starts a new catalog request and returns its number
func (s *AppState) NextCatalogSeq() int {
	s.CatalogSeq++
	return s.CatalogSeq
}

// Status operations

// SetStatus shows an informational message and clears any error
func (s *AppState) SetStatus(msg string) {
	s.StatusMessage = msg
	s.ErrorMessage = ""
}

// SetError shows an error and clears the status message. The returned
// sequence number identifies this error for ClearError.
func (s *AppState) SetError(msg string) int {
	s.ErrorMessage = msg
	s.StatusMessage = ""
	s.errorSeq++
	return s.errorSeq
}

// ClearError removes the error if it is still the one identified by seq
func (s *AppState) ClearError(seq int) bool {
	if seq != s.errorSeq || s.ErrorMessage == "" {
		return false
	}
	s.ErrorMessage = ""
	return true
}

// Clamp keeps cursors and scroll inside their lists for the given viewport
// heights
func (s *AppState) Clamp(catalogRows, selectedRows, contentRows int) {
	s.CatalogCursor.Clamp(len(s.Filtered), catalogRows)
	s.SelectedCursor.Clamp(len(s.Selected), selectedRows)
	s.ContentScroll.Clamp(len(s.ContentLines()), contentRows)
}
