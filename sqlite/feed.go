package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/healthpulse"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ healthpulse.FeedService = (*FeedService)(nil)

// FeedService implements healthpulse.FeedService using SQLite.
type FeedService struct {
	db *DB
}

// NewFeedService creates a new FeedService.
func NewFeedService(db *DB) *FeedService {
	return &FeedService{db: db}
}

const feedColumns = "id, url, category, active, poll_interval_seconds, last_fetched_at, created_at"

// CreateFeed creates a new feed. A zero poll interval is replaced by
// healthpulse.DefaultPollInterval.
func (s *FeedService) CreateFeed(ctx context.Context, feed *healthpulse.Feed) error {
	if err := feed.Validate(); err != nil {
		return err
	}
	if feed.PollInterval == 0 {
		feed.PollInterval = healthpulse.DefaultPollInterval
	}

	feed.ID = uuid.New().String()
	feed.CreatedAt = time.Now().UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO feeds (`+feedColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, feed.ID, feed.URL, string(feed.Category), boolToInt(feed.Active), int64(feed.PollInterval/time.Second),
		formatNullTime(feed.LastFetchedAt), formatTime(feed.CreatedAt))

	if isUniqueViolation(err, "feeds.url") {
		return healthpulse.Errorf(healthpulse.ECONFLICT, "feed %s already exists", feed.URL)
	}
	return err
}

// FindFeedByID retrieves a feed by ID.
func (s *FeedService) FindFeedByID(ctx context.Context, id string) (*healthpulse.Feed, error) {
	feed, err := scanFeed(s.db.QueryRowContext(ctx, "SELECT "+feedColumns+" FROM feeds WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, healthpulse.Errorf(healthpulse.ENOTFOUND, "feed not found")
	}
	if err != nil {
		return nil, err
	}
	return feed, nil
}

// FindFeeds retrieves feeds matching the filter, oldest first.
func (s *FeedService) FindFeeds(ctx context.Context, filter healthpulse.FeedFilter) ([]*healthpulse.Feed, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + feedColumns + " FROM feeds WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.Active != nil {
		query.WriteString(" AND active = ?")
		args = append(args, boolToInt(*filter.Active))
	}

	query.WriteString(" ORDER BY created_at, rowid")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feeds []*healthpulse.Feed
	for rows.Next() {
		feed, err := scanFeed(rows)
		if err != nil {
			return nil, err
		}
		feeds = append(feeds, feed)
	}

	return feeds, rows.Err()
}

// UpdateFeed updates an existing feed.
func (s *FeedService) UpdateFeed(ctx context.Context, id string, upd healthpulse.FeedUpdate) (*healthpulse.Feed, error) {
	feed, err := s.FindFeedByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Category != nil {
		feed.Category = *upd.Category
	}
	if upd.Active != nil {
		feed.Active = *upd.Active
	}
	if upd.PollInterval != nil {
		feed.PollInterval = *upd.PollInterval
	}
	if upd.LastFetchedAt != nil {
		t := upd.LastFetchedAt.UTC().Truncate(time.Second)
		feed.LastFetchedAt = &t
	}

	if err := feed.Validate(); err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE feeds
		SET category = ?, active = ?, poll_interval_seconds = ?, last_fetched_at = ?
		WHERE id = ?
	`, string(feed.Category), boolToInt(feed.Active), int64(feed.PollInterval/time.Second),
		formatNullTime(feed.LastFetchedAt), id)
	if err != nil {
		return nil, err
	}

	return feed, nil
}

// DeleteFeed permanently removes a feed.
func (s *FeedService) DeleteFeed(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM feeds WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return healthpulse.Errorf(healthpulse.ENOTFOUND, "feed not found")
	}

	return nil
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanFeed(row scanner) (*healthpulse.Feed, error) {
	var feed healthpulse.Feed
	var category, createdAt string
	var intervalSeconds int64
	var lastFetchedAt sql.NullString

	if err := row.Scan(&feed.ID, &feed.URL, &category, &feed.Active, &intervalSeconds,
		&lastFetchedAt, &createdAt); err != nil {
		return nil, err
	}

	feed.Category = healthpulse.Category(category)
	feed.PollInterval = time.Duration(intervalSeconds) * time.Second

	var err error
	if feed.LastFetchedAt, err = parseNullRFC3339(lastFetchedAt, "last_fetched_at"); err != nil {
		return nil, err
	}
	if feed.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	return &feed, nil
}
