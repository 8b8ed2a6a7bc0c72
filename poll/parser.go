// Package poll turns feeds into article records and stores the new ones.
// Parser handles a single feed; Poller schedules many.
package poll

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/healthpulse"
)

var _ healthpulse.FeedParser = (*Parser)(nil)

// Parser reads a feed and fills short entries with text extracted from
// their article pages.
type Parser struct {
	Feeds     healthpulse.FeedSource
	Resolver  healthpulse.SelectorResolver
	Extractor healthpulse.PageExtractor
	Summaries healthpulse.SummaryCleaner

	// Threshold is the trimmed summary length, in characters, below which
	// the article page is fetched. Defaults to
	// healthpulse.DefaultSummaryThreshold.
	Threshold int

	// NewPacer returns the pacer used for one ParseFeed call. Defaults to
	// an IntervalPacer with healthpulse.DefaultFetchDelay.
	NewPacer func() healthpulse.Pacer
}

// ParseFeed fetches feedURL and returns one record per entry in feed
// order. Page fetches for the same call are separated by the pacer.
func (p *Parser) ParseFeed(ctx context.Context, feedURL string) (*healthpulse.FeedResult, error) {
	pacer := p.pacer()
	if err := pacer.Wait(ctx); err != nil {
		return nil, err
	}

	feed, err := p.Feeds.FetchFeed(ctx, feedURL)
	if err != nil {
		return nil, err
	}

	result := &healthpulse.FeedResult{
		URL:     feedURL,
		Title:   feed.Title,
		Records: make([]*healthpulse.ArticleRecord, 0, len(feed.Entries)),
	}
	if feed.Malformed != nil {
		result.Warnings = append(result.Warnings, feed.Malformed)
	}

	for _, entry := range feed.Entries {
		rec, warn := p.parseEntry(ctx, pacer, entry)
		result.Records = append(result.Records, rec)
		if warn != nil {
			result.Warnings = append(result.Warnings, warn)
		}
	}
	return result, nil
}

// parseEntry builds the record for one entry. The returned error is a
// warning; the record is always usable. A panic in any collaborator is
// recovered into a warning and the summary is kept as content.
func (p *Parser) parseEntry(ctx context.Context, pacer healthpulse.Pacer, entry *healthpulse.FeedEntry) (rec *healthpulse.ArticleRecord, warn error) {
	rec = &healthpulse.ArticleRecord{
		Title:       strings.TrimSpace(entry.Title),
		Link:        strings.TrimSpace(entry.Link),
		Summary:     entry.Summary,
		PublishedAt: entry.PublishedAt,
	}
	if rec.Title == "" {
		rec.Title = healthpulse.DefaultTitle
	}

	defer func() {
		if r := recover(); r != nil {
			if !rec.Extracted && rec.Content == "" {
				rec.Content = strings.Join(strings.Fields(entry.Summary), " ")
			}
			warn = fmt.Errorf("entry %q: panic: %v", rec.Title, r)
		}
	}()

	rec.Content = p.Summaries.CleanSummary(entry.Summary)

	if rec.Link == "" || !p.isShort(entry.Summary) {
		return rec, nil
	}
	selectors := p.Resolver.Resolve(rec.Link)
	if len(selectors) == 0 {
		return rec, nil
	}

	if err := pacer.Wait(ctx); err != nil {
		return rec, fmt.Errorf("pace %s: %w", rec.Link, err)
	}

	res := p.Extractor.Extract(ctx, rec.Link, selectors)
	if res == nil {
		return rec, nil
	}
	if !res.OK() {
		if res.Failure != nil {
			return rec, fmt.Errorf("extract %s: %w", rec.Link, res.Failure)
		}
		return rec, nil
	}

	rec.Content = res.Content
	rec.ImageURL = res.ImageURL
	rec.Extracted = true
	return rec, nil
}

func (p *Parser) isShort(summary string) bool {
	threshold := p.Threshold
	if threshold <= 0 {
		threshold = healthpulse.DefaultSummaryThreshold
	}
	return utf8.RuneCountInString(strings.TrimSpace(summary)) < threshold
}

func (p *Parser) pacer() healthpulse.Pacer {
	if p.NewPacer != nil {
		return p.NewPacer()
	}
	return NewIntervalPacer(healthpulse.DefaultFetchDelay)
}

// PacerFactory returns a NewPacer function producing IntervalPacers.
func PacerFactory(interval time.Duration) func() healthpulse.Pacer {
	return func() healthpulse.Pacer {
		return NewIntervalPacer(interval)
	}
}
