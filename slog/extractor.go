package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/mensafeed"
)

// Ensure LoggingExtractor implements mensafeed.Extractor.
var _ mensafeed.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   mensafeed.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next mensafeed.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs what it found.
// Each unclassified line is logged at debug level.
func (e *LoggingExtractor) Extract(html string) (menu *mensafeed.Menu, err error) {
	defer func(begin time.Time) {
		attrs := []any{"bytes", len(html), "duration", time.Since(begin), "err", err}
		if menu != nil {
			attrs = append(attrs,
				"week", menu.WeekInfo,
				"days", len(menu.Days),
				"meals", len(menu.Meals),
				"weekly", menu.Weekly != nil,
				"closed", len(menu.Closed),
				"unclassified", len(menu.Unclassified),
			)
			for _, line := range menu.Unclassified {
				e.logger.Debug("unclassified line", "text", line)
			}
		}
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.Extract(html)
}
