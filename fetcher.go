package mensafeed

import "context"

// MaxPageSize is the largest menu page a Fetcher reads, in bytes. Longer
// pages are truncated.
const MaxPageSize = 5 << 20

// Fetcher retrieves the HTML of a menu page.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
