package ecotab

// ExtractResult holds the main content of a catalog page.
type ExtractResult struct {
	Title string

	// ContentHTML is the main content with navigation, footers and other
	// boilerplate removed. Tables are kept.
	ContentHTML string
}

// Extractor isolates the main content of an HTML page.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
