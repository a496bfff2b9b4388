package mock

import "github.com/fwojciec/mensafeed"

var _ mensafeed.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of mensafeed.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*mensafeed.Menu, error)
}

func (e *Extractor) Extract(html string) (*mensafeed.Menu, error) {
	return e.ExtractFn(html)
}
