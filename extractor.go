package mensafeed

// Extractor extracts the weekly menu from the HTML of a menu page.
type Extractor interface {
	// Extract parses raw HTML and returns the meals in document order.
	// Returns EMENUSTRUCTURE if the page contains no weekday sections.
	Extract(html string) (*Menu, error)
}
