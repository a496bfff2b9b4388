package mock

import (
	"context"

	"github.com/fwojciec/mensafeed"
)

var _ mensafeed.FeedWriter = (*FeedWriter)(nil)

// FeedWriter is a mock implementation of mensafeed.FeedWriter.
type FeedWriter struct {
	WriteFeedFn func(ctx context.Context, feed string) error
}

func (w *FeedWriter) WriteFeed(ctx context.Context, feed string) error {
	return w.WriteFeedFn(ctx, feed)
}
