package views

const (
	searchHeight   = 3
	selectedHeight = 6
	statusHeight   = 1

	// MinWidth and MinHeight are the smallest terminal the panels fit in
	MinWidth  = 30
	MinHeight = 14
)

// Rect is a panel's position and size in terminal cells
type Rect struct {
	X, Y, W, H int
}

// Layout holds the four panel rectangles for one terminal size
type Layout struct {
	Width, Height int

	Search   Rect
	Catalog  Rect
	Content  Rect
	Selected Rect
	StatusY  int

	TooSmall bool
}

// ComputeLayout splits the terminal into a search band and catalog column on
// the left, a content column on the right and a full-width selected band
// above the status bar
func ComputeLayout(width, height int) Layout {
	l := Layout{Width: width, Height: height}
	if width < MinWidth || height < MinHeight {
		l.TooSmall = true
		return l
	}

	left := width / 3
	top := height - selectedHeight - statusHeight

	l.Search = Rect{X: 0, Y: 0, W: left, H: searchHeight}
	l.Catalog = Rect{X: 0, Y: searchHeight, W: left, H: top - searchHeight}
	l.Content = Rect{X: left, Y: 0, W: width - left, H: top}
	l.Selected = Rect{X: 0, Y: top, W: width, H: selectedHeight}
	l.StatusY = height - 1
	return l
}

// CatalogRows is the number of template rows visible below the count line
func (l Layout) CatalogRows() int {
	return max(0, l.Catalog.H-3)
}

// SelectedRows is the number of visible selected entries
func (l Layout) SelectedRows() int {
	return max(0, l.Selected.H-2)
}

// ContentRows is the number of visible content lines
func (l Layout) ContentRows() int {
	return max(0, l.Content.H-2)
}
