package commands

// CatalogLoadedMsg carries the result of a catalog request
type CatalogLoadedMsg struct {
	Seq   int
	Names []string
	Err   error
}

// ContentGeneratedMsg carries the result of a content request
type ContentGeneratedMsg struct {
	Generation int
	Names      []string
	Content    string
	Err        error
}

// ClearErrorMsg expires the error identified by Seq
type ClearErrorMsg struct {
	Seq int
}
