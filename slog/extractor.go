package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/healthpulse"
)

// Ensure LoggingPageExtractor implements healthpulse.PageExtractor.
var _ healthpulse.PageExtractor = (*LoggingPageExtractor)(nil)

// LoggingPageExtractor wraps a PageExtractor with logging.
type LoggingPageExtractor struct {
	next   healthpulse.PageExtractor
	logger *slog.Logger
}

// NewLoggingPageExtractor creates a new LoggingPageExtractor.
func NewLoggingPageExtractor(next healthpulse.PageExtractor, logger *slog.Logger) *LoggingPageExtractor {
	return &LoggingPageExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
// Failures are logged as warnings.
func (e *LoggingPageExtractor) Extract(ctx context.Context, url string, selectors []string) (result *healthpulse.ExtractionResult) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"selectors", len(selectors),
			"duration", time.Since(begin),
		}
		if result == nil {
			e.logger.Warn("page extraction", append(attrs, "err", "no result")...)
			return
		}
		attrs = append(attrs,
			"strategy", result.Strategy,
			"chars", len(result.Content),
			"image", result.ImageURL != "",
		)
		if result.Failure != nil {
			e.logger.Warn("page extraction", append(attrs, "failure", string(result.Failure.Kind), "err", result.Failure.Err)...)
			return
		}
		e.logger.Info("page extraction", attrs...)
	}(time.Now())
	return e.next.Extract(ctx, url, selectors)
}
