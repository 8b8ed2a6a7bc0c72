// Package slog provides logging decorators for healthpulse interfaces
// using the standard library's log/slog.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/healthpulse"
)

// Ensure LoggingFetcher implements healthpulse.Fetcher.
var _ healthpulse.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   healthpulse.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next healthpulse.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (body string, err error) {
	defer func(begin time.Time) {
		f.logger.Debug("fetch",
			"url", url,
			"bytes", len(body),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
