package healthpulse

import (
	"context"
	"time"
)

// Category groups feeds and their articles for display.
type Category string

// Supported categories.
const (
	CategoryMedicine  Category = "medicine"
	CategoryFitness   Category = "fitness"
	CategoryNutrition Category = "nutrition"
	CategoryLifestyle Category = "lifestyle"
)

// Categories lists every supported category in display order.
var Categories = []Category{CategoryMedicine, CategoryFitness, CategoryNutrition, CategoryLifestyle}

// Valid reports whether c is one of the supported categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// DefaultPollInterval is how often a feed is polled unless configured otherwise.
const DefaultPollInterval = 30 * time.Minute

// Feed represents an RSS or Atom feed that is polled for new articles.
type Feed struct {
	ID            string        `json:"id"`
	URL           string        `json:"url"`
	Category      Category      `json:"category"`
	Active        bool          `json:"active"`
	PollInterval  time.Duration `json:"pollInterval"`
	LastFetchedAt *time.Time    `json:"lastFetchedAt,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// Validate returns an error if the feed contains invalid fields.
func (f *Feed) Validate() error {
	if f.URL == "" {
		return Errorf(EINVALID, "feed URL required")
	}
	if !f.Category.Valid() {
		return Errorf(EINVALID, "feed category %q is not supported", f.Category)
	}
	if f.PollInterval < 0 {
		return Errorf(EINVALID, "feed poll interval must not be negative")
	}
	return nil
}

// Due reports whether an active feed should be polled at now.
// A feed that was never fetched is always due.
func (f *Feed) Due(now time.Time) bool {
	if !f.Active {
		return false
	}
	if f.LastFetchedAt == nil {
		return true
	}
	return now.Sub(*f.LastFetchedAt) >= f.PollInterval
}

// FeedService represents a service for managing feeds.
type FeedService interface {
	// CreateFeed creates a new feed.
	// Returns ECONFLICT if a feed with the same URL exists.
	CreateFeed(ctx context.Context, feed *Feed) error

	// FindFeedByID retrieves a feed by ID.
	// Returns ENOTFOUND if feed does not exist.
	FindFeedByID(ctx context.Context, id string) (*Feed, error)

	// FindFeeds retrieves feeds matching the filter.
	FindFeeds(ctx context.Context, filter FeedFilter) ([]*Feed, error)

	// UpdateFeed updates an existing feed.
	// Returns ENOTFOUND if feed does not exist.
	UpdateFeed(ctx context.Context, id string, upd FeedUpdate) (*Feed, error)

	// DeleteFeed permanently removes a feed. Stored articles are kept.
	// Returns ENOTFOUND if feed does not exist.
	DeleteFeed(ctx context.Context, id string) error
}

// FeedFilter represents a filter for FindFeeds.
type FeedFilter struct {
	ID     *string `json:"id"`
	URL    *string `json:"url"`
	Active *bool   `json:"active"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// FeedUpdate represents fields that can be updated on a feed.
type FeedUpdate struct {
	Category      *Category      `json:"category"`
	Active        *bool          `json:"active"`
	PollInterval  *time.Duration `json:"pollInterval"`
	LastFetchedAt *time.Time     `json:"lastFetchedAt"`
}
