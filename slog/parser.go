package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/healthpulse"
)

// Ensure LoggingFeedParser implements healthpulse.FeedParser.
var _ healthpulse.FeedParser = (*LoggingFeedParser)(nil)

// LoggingFeedParser wraps a FeedParser with logging. Each warning is
// logged on its own line.
type LoggingFeedParser struct {
	next   healthpulse.FeedParser
	logger *slog.Logger
}

// NewLoggingFeedParser creates a new LoggingFeedParser.
func NewLoggingFeedParser(next healthpulse.FeedParser, logger *slog.Logger) *LoggingFeedParser {
	return &LoggingFeedParser{next: next, logger: logger}
}

// ParseFeed delegates to the wrapped parser and logs the operation.
func (p *LoggingFeedParser) ParseFeed(ctx context.Context, feedURL string) (result *healthpulse.FeedResult, err error) {
	defer func(begin time.Time) {
		var records, extracted int
		if result != nil {
			records = len(result.Records)
			for _, rec := range result.Records {
				if rec.Extracted {
					extracted++
				}
			}
			for _, w := range result.Warnings {
				p.logger.Warn("feed warning", "url", feedURL, "err", w)
			}
		}
		p.logger.Info("parse feed",
			"url", feedURL,
			"records", records,
			"extracted", extracted,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.ParseFeed(ctx, feedURL)
}
