package mock

import (
	"context"

	"github.com/fwojciec/healthpulse"
)

var _ healthpulse.FeedSource = (*FeedSource)(nil)

// FeedSource is a mock implementation of healthpulse.FeedSource.
type FeedSource struct {
	FetchFeedFn func(ctx context.Context, url string) (*healthpulse.DecodedFeed, error)
}

func (s *FeedSource) FetchFeed(ctx context.Context, url string) (*healthpulse.DecodedFeed, error) {
	return s.FetchFeedFn(ctx, url)
}

var _ healthpulse.FeedParser = (*FeedParser)(nil)

// FeedParser is a mock implementation of healthpulse.FeedParser.
type FeedParser struct {
	ParseFeedFn func(ctx context.Context, feedURL string) (*healthpulse.FeedResult, error)
}

func (p *FeedParser) ParseFeed(ctx context.Context, feedURL string) (*healthpulse.FeedResult, error) {
	return p.ParseFeedFn(ctx, feedURL)
}

var _ healthpulse.SummaryCleaner = (*SummaryCleaner)(nil)

// SummaryCleaner is a mock implementation of healthpulse.SummaryCleaner.
type SummaryCleaner struct {
	CleanSummaryFn func(summary string) string
}

func (c *SummaryCleaner) CleanSummary(summary string) string {
	return c.CleanSummaryFn(summary)
}

var _ healthpulse.Pacer = (*Pacer)(nil)

// Pacer is a mock implementation of healthpulse.Pacer.
type Pacer struct {
	WaitFn func(ctx context.Context) error
}

func (p *Pacer) Wait(ctx context.Context) error {
	return p.WaitFn(ctx)
}

var _ healthpulse.SelectorResolver = (*SelectorResolver)(nil)

// SelectorResolver is a mock implementation of healthpulse.SelectorResolver.
type SelectorResolver struct {
	ResolveFn func(link string) []string
}

func (r *SelectorResolver) Resolve(link string) []string {
	return r.ResolveFn(link)
}
