package slog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/mensafeed"
)

// Ensure LoggingFeedWriter implements mensafeed.FeedWriter.
var _ mensafeed.FeedWriter = (*LoggingFeedWriter)(nil)

// LoggingFeedWriter wraps a FeedWriter with logging. Each write is logged
// with a checksum of the feed so published versions can be told apart.
type LoggingFeedWriter struct {
	next   mensafeed.FeedWriter
	dest   string
	logger *slog.Logger
}

// NewLoggingFeedWriter creates a new LoggingFeedWriter. dest names the
// destination in log lines.
func NewLoggingFeedWriter(next mensafeed.FeedWriter, dest string, logger *slog.Logger) *LoggingFeedWriter {
	return &LoggingFeedWriter{next: next, dest: dest, logger: logger}
}

// WriteFeed delegates to the wrapped writer and logs the result.
func (w *LoggingFeedWriter) WriteFeed(ctx context.Context, feed string) (err error) {
	defer func(begin time.Time) {
		w.logger.InfoContext(ctx, "write feed",
			"dest", w.dest,
			"bytes", len(feed),
			"checksum", Checksum(feed),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteFeed(ctx, feed)
}

// Checksum returns the xxhash digest of feed as 16 hex digits.
func Checksum(feed string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(feed))
}
