package mock

import "github.com/fwojciec/mensafeed"

var _ mensafeed.FeedBuilder = (*FeedBuilder)(nil)

// FeedBuilder is a mock implementation of mensafeed.FeedBuilder.
type FeedBuilder struct {
	BuildFn func(records []mensafeed.MealRecord, prices mensafeed.PriceTable, meta mensafeed.FeedMetadata) (string, error)
}

func (b *FeedBuilder) Build(records []mensafeed.MealRecord, prices mensafeed.PriceTable, meta mensafeed.FeedMetadata) (string, error) {
	return b.BuildFn(records, prices, meta)
}
