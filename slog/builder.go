package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/mensafeed"
)

// Ensure LoggingFeedBuilder implements mensafeed.FeedBuilder.
var _ mensafeed.FeedBuilder = (*LoggingFeedBuilder)(nil)

// LoggingFeedBuilder wraps a FeedBuilder with logging.
type LoggingFeedBuilder struct {
	next   mensafeed.FeedBuilder
	logger *slog.Logger
}

// NewLoggingFeedBuilder creates a new LoggingFeedBuilder.
func NewLoggingFeedBuilder(next mensafeed.FeedBuilder, logger *slog.Logger) *LoggingFeedBuilder {
	return &LoggingFeedBuilder{next: next, logger: logger}
}

// Build delegates to the wrapped builder and logs the result.
func (b *LoggingFeedBuilder) Build(records []mensafeed.MealRecord, prices mensafeed.PriceTable, meta mensafeed.FeedMetadata) (feed string, err error) {
	defer func(begin time.Time) {
		b.logger.Info("build",
			"canteen", meta.Canteen.Name,
			"week", meta.Week.Monday.Format("2006-01-02"),
			"records", len(records),
			"bytes", len(feed),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return b.next.Build(records, prices, meta)
}
