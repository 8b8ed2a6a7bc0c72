package healthpulse

import (
	"context"
	"time"
)

// DefaultTitle is used for feed entries that carry no title.
const DefaultTitle = "untitled"

// DefaultSummaryThreshold is the summary length, in characters, below which
// the article page is fetched for full content.
const DefaultSummaryThreshold = 200

// FeedEntry is one item read from a feed document.
type FeedEntry struct {
	Title   string
	Link    string
	Summary string // raw text or HTML snippet

	// PublishedAt is nil when the feed provides no date for the entry.
	PublishedAt *time.Time
}

// DecodedFeed is a feed document decoded into entries.
type DecodedFeed struct {
	Title   string
	Entries []*FeedEntry

	// Malformed is set when the document was technically invalid but
	// could still be read after repair.
	Malformed error
}

// FeedSource fetches and decodes feed documents.
type FeedSource interface {
	// FetchFeed retrieves the feed at url and decodes its entries in
	// document order. An error means no entries could be read.
	FetchFeed(ctx context.Context, url string) (*DecodedFeed, error)
}

// ArticleRecord is the output of the pipeline for one feed entry.
type ArticleRecord struct {
	Title   string
	Link    string
	Summary string

	// Content is plain text: either the text extracted from the article
	// page or the cleaned summary.
	Content  string
	ImageURL string

	PublishedAt *time.Time

	// Extracted reports whether Content came from the article page.
	Extracted bool
}

// FeedResult holds the records produced from one feed poll.
type FeedResult struct {
	URL     string
	Title   string
	Records []*ArticleRecord

	// Warnings lists non-fatal problems met while processing the feed,
	// such as a repaired document or a failed page extraction.
	Warnings []error
}

// FeedParser turns a feed URL into article records.
type FeedParser interface {
	// ParseFeed fetches the feed and returns one record per readable entry,
	// in feed order. Only a failure to fetch or decode the feed is returned
	// as an error; problems with single entries end up in Warnings.
	ParseFeed(ctx context.Context, feedURL string) (*FeedResult, error)
}

// SummaryCleaner converts a feed summary into plain text.
type SummaryCleaner interface {
	CleanSummary(summary string) string
}

// Pacer separates consecutive fetches made on behalf of the same feed.
type Pacer interface {
	// Wait blocks until the next fetch may start.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context) error
}
