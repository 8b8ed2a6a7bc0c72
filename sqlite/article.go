package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/healthpulse"
	"github.com/google/uuid"
)

// maxSlugAttempts bounds the numeric suffixes tried for a colliding slug.
const maxSlugAttempts = 100

// Compile-time interface verification.
var _ healthpulse.ArticleService = (*ArticleService)(nil)

// ArticleService implements healthpulse.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

const articleColumns = `id, title, original_content, processed_content, summary, source_url, source_name,
	image_url, published_at, category, published, slug, tags, content_hash, created_at`

// CreateArticle creates a new article. The slug is derived from the title
// (or the preset slug) and gets a numeric suffix when already taken.
func (s *ArticleService) CreateArticle(ctx context.Context, article *healthpulse.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	article.ID = uuid.New().String()
	article.CreatedAt = time.Now().UTC().Truncate(time.Second)
	article.PublishedAt = article.PublishedAt.UTC().Truncate(time.Second)
	article.ContentHash = hashContent(article.OriginalContent)

	base := article.Slug
	if base == "" {
		base = article.Title
	}
	base = healthpulse.Slugify(base)

	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		article.Slug = base
		if attempt > 1 {
			article.Slug = fmt.Sprintf("%s-%d", base, attempt)
		}

		_, err := s.db.ExecContext(ctx, `
			INSERT INTO articles (`+articleColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, article.ID, article.Title, article.OriginalContent, article.ProcessedContent, article.Summary,
			article.SourceURL, article.SourceName, article.ImageURL, formatTime(article.PublishedAt),
			string(article.Category), boolToInt(article.Published), article.Slug, article.Tags,
			article.ContentHash, formatTime(article.CreatedAt))

		switch {
		case err == nil:
			return nil
		case isUniqueViolation(err, "articles.source_url"):
			return healthpulse.Errorf(healthpulse.ECONFLICT, "article %s already exists", article.SourceURL)
		case isUniqueViolation(err, "articles.slug"):
			continue
		default:
			return err
		}
	}

	return healthpulse.Errorf(healthpulse.ECONFLICT, "no free slug for %q", base)
}

// FindArticleByID retrieves an article by ID.
func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*healthpulse.Article, error) {
	article, err := scanArticle(s.db.QueryRowContext(ctx, "SELECT "+articleColumns+" FROM articles WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, healthpulse.Errorf(healthpulse.ENOTFOUND, "article not found")
	}
	if err != nil {
		return nil, err
	}
	return article, nil
}

// FindArticles retrieves articles matching the filter, newest first.
func (s *ArticleService) FindArticles(ctx context.Context, filter healthpulse.ArticleFilter) ([]*healthpulse.Article, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + articleColumns + " FROM articles WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.Slug != nil {
		query.WriteString(" AND slug = ?")
		args = append(args, *filter.Slug)
	}
	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, string(*filter.Category))
	}
	if filter.Published != nil {
		query.WriteString(" AND published = ?")
		args = append(args, boolToInt(*filter.Published))
	}

	query.WriteString(" ORDER BY published_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*healthpulse.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}

	return articles, rows.Err()
}

// FindSourceURLs returns the source URL of every stored article.
func (s *ArticleService) FindSourceURLs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT source_url FROM articles")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, err
		}
		urls = append(urls, u)
	}
	return urls, rows.Err()
}

// UpdateArticle updates an existing article.
func (s *ArticleService) UpdateArticle(ctx context.Context, id string, upd healthpulse.ArticleUpdate) (*healthpulse.Article, error) {
	article, err := s.FindArticleByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Published != nil {
		article.Published = *upd.Published
	}
	if upd.ProcessedContent != nil {
		article.ProcessedContent = *upd.ProcessedContent
	}
	if upd.Summary != nil {
		article.Summary = *upd.Summary
	}
	if upd.Tags != nil {
		article.Tags = *upd.Tags
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE articles
		SET published = ?, processed_content = ?, summary = ?, tags = ?
		WHERE id = ?
	`, boolToInt(article.Published), article.ProcessedContent, article.Summary, article.Tags, id)
	if err != nil {
		return nil, err
	}

	return article, nil
}

// DeleteArticle permanently removes an article.
func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM articles WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return healthpulse.Errorf(healthpulse.ENOTFOUND, "article not found")
	}

	return nil
}

func scanArticle(row scanner) (*healthpulse.Article, error) {
	var a healthpulse.Article
	var category, publishedAt, createdAt string

	if err := row.Scan(&a.ID, &a.Title, &a.OriginalContent, &a.ProcessedContent, &a.Summary,
		&a.SourceURL, &a.SourceName, &a.ImageURL, &publishedAt, &category, &a.Published,
		&a.Slug, &a.Tags, &a.ContentHash, &createdAt); err != nil {
		return nil, err
	}

	a.Category = healthpulse.Category(category)

	var err error
	if a.PublishedAt, err = parseRFC3339(publishedAt, "published_at"); err != nil {
		return nil, err
	}
	if a.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	return &a, nil
}
