package poll

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/fwojciec/healthpulse"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of feeds polled at once.
const DefaultConcurrency = 4

// Poller polls due feeds and stores the articles it has not seen before.
type Poller struct {
	Feeds    healthpulse.FeedService
	Articles healthpulse.ArticleService
	Parser   healthpulse.FeedParser

	// Seen, if set, skips the existence query for links that are certainly
	// new. Call Warm to load stored links into it.
	Seen healthpulse.LinkFilter

	Concurrency int
	Now         func() time.Time
}

// Report holds the outcome of polling one feed.
type Report struct {
	Feed     *healthpulse.Feed
	Title    string
	Found    int
	Created  int
	Skipped  int
	Warnings []error

	// Err is set when the feed could not be fetched or decoded.
	Err error
}

// Warm adds every stored source URL to Seen.
func (p *Poller) Warm(ctx context.Context) error {
	if p.Seen == nil {
		return nil
	}
	links, err := p.Articles.FindSourceURLs(ctx)
	if err != nil {
		return fmt.Errorf("load stored links: %w", err)
	}
	for _, link := range links {
		p.Seen.Add(link)
	}
	return nil
}

// PollDue polls every active feed whose interval has elapsed, or every
// active feed when force is set. Reports are returned in feed order. A
// failing feed does not stop the others.
func (p *Poller) PollDue(ctx context.Context, force bool) ([]*Report, error) {
	active := true
	feeds, err := p.Feeds.FindFeeds(ctx, healthpulse.FeedFilter{Active: &active})
	if err != nil {
		return nil, fmt.Errorf("find active feeds: %w", err)
	}

	now := p.now()
	var due []*healthpulse.Feed
	for _, feed := range feeds {
		if force || feed.Due(now) {
			due = append(due, feed)
		}
	}

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	reports := make([]*Report, len(due))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, feed := range due {
		g.Go(func() error {
			reports[i] = p.PollFeed(gctx, feed)
			return nil
		})
	}
	_ = g.Wait()

	return reports, ctx.Err()
}

// PollFeed parses one feed, stores records whose link is not yet stored
// and records the poll time on the feed.
func (p *Poller) PollFeed(ctx context.Context, feed *healthpulse.Feed) *Report {
	report := &Report{Feed: feed}

	result, err := p.Parser.ParseFeed(ctx, feed.URL)
	if err != nil {
		report.Err = err
		return report
	}
	report.Title = result.Title
	report.Found = len(result.Records)
	report.Warnings = append(report.Warnings, result.Warnings...)

	sourceName := hostOf(feed.URL)
	for _, rec := range result.Records {
		created, err := p.store(ctx, feed, sourceName, rec)
		if err != nil {
			report.Warnings = append(report.Warnings, fmt.Errorf("store %s: %w", rec.Link, err))
			continue
		}
		if created {
			report.Created++
		} else {
			report.Skipped++
		}
	}

	now := p.now()
	if _, err := p.Feeds.UpdateFeed(ctx, feed.ID, healthpulse.FeedUpdate{LastFetchedAt: &now}); err != nil {
		report.Warnings = append(report.Warnings, fmt.Errorf("update feed: %w", err))
	}
	return report
}

// store creates an article for rec unless one with the same link exists.
func (p *Poller) store(ctx context.Context, feed *healthpulse.Feed, sourceName string, rec *healthpulse.ArticleRecord) (bool, error) {
	if rec.Link == "" {
		return false, nil
	}

	exists, err := p.exists(ctx, rec.Link)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	publishedAt := p.now()
	if rec.PublishedAt != nil {
		publishedAt = *rec.PublishedAt
	}
	article := &healthpulse.Article{
		Title:           rec.Title,
		OriginalContent: rec.Content,
		SourceURL:       rec.Link,
		SourceName:      sourceName,
		ImageURL:        rec.ImageURL,
		PublishedAt:     publishedAt,
		Category:        feed.Category,
		Published:       false,
	}

	err = p.Articles.CreateArticle(ctx, article)
	if healthpulse.ErrorCode(err) == healthpulse.ECONFLICT {
		p.markSeen(rec.Link)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	p.markSeen(rec.Link)
	return true, nil
}

func (p *Poller) exists(ctx context.Context, link string) (bool, error) {
	if p.Seen != nil && !p.Seen.Test(link) {
		return false, nil
	}
	found, err := p.Articles.FindArticles(ctx, healthpulse.ArticleFilter{SourceURL: &link, Limit: 1})
	if err != nil {
		return false, err
	}
	return len(found) > 0, nil
}

func (p *Poller) markSeen(link string) {
	if p.Seen != nil {
		p.Seen.Add(link)
	}
}

func (p *Poller) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
