package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/mensafeed"
)

// Ensure LoggingFetcher implements mensafeed.Fetcher.
var _ mensafeed.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   mensafeed.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next mensafeed.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the menu page size and delegates to the wrapped fetcher. A page
// that reaches mensafeed.MaxPageSize was cut off and is logged as a warning.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		msg := "menu page fetched"
		switch {
		case err != nil:
			level, msg = slog.LevelError, "menu page fetch failed"
		case len(html) >= mensafeed.MaxPageSize:
			level, msg = slog.LevelWarn, "menu page truncated at size limit"
		}
		f.logger.Log(ctx, level, msg,
			slog.String("url", url),
			slog.Int("bytes", len(html)),
			slog.Int("limit", mensafeed.MaxPageSize),
			slog.Duration("duration", time.Since(begin)),
			slog.Any("err", err),
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close logs failures to release the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	err := f.next.Close()
	if err != nil {
		f.logger.Error("closing fetcher", slog.Any("err", err))
	}
	return err
}
