package healthpulse

import (
	"context"
	"time"
)

// Article represents a stored article awaiting review or already published.
type Article struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	OriginalContent  string    `json:"originalContent"`
	ProcessedContent string    `json:"processedContent"`
	Summary          string    `json:"summary"`
	SourceURL        string    `json:"sourceUrl"`
	SourceName       string    `json:"sourceName"`
	ImageURL         string    `json:"imageUrl,omitempty"`
	PublishedAt      time.Time `json:"publishedAt"`
	Category         Category  `json:"category"`
	Published        bool      `json:"published"`
	Slug             string    `json:"slug"`
	Tags             string    `json:"tags,omitempty"`
	ContentHash      string    `json:"contentHash"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.Title == "" {
		return Errorf(EINVALID, "article title required")
	}
	if a.SourceURL == "" {
		return Errorf(EINVALID, "article source URL required")
	}
	if !a.Category.Valid() {
		return Errorf(EINVALID, "article category %q is not supported", a.Category)
	}
	return nil
}

// ArticleService represents a service for managing articles.
type ArticleService interface {
	// CreateArticle creates a new article and assigns it a unique slug.
	// Returns ECONFLICT if an article with the same source URL exists.
	CreateArticle(ctx context.Context, article *Article) error

	// FindArticleByID retrieves an article by ID.
	// Returns ENOTFOUND if article does not exist.
	FindArticleByID(ctx context.Context, id string) (*Article, error)

	// FindArticles retrieves articles matching the filter, newest first.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)

	// FindSourceURLs returns the source URL of every stored article.
	FindSourceURLs(ctx context.Context) ([]string, error)

	// UpdateArticle updates an existing article.
	// Returns ENOTFOUND if article does not exist.
	UpdateArticle(ctx context.Context, id string, upd ArticleUpdate) (*Article, error)

	// DeleteArticle permanently removes an article.
	// Returns ENOTFOUND if article does not exist.
	DeleteArticle(ctx context.Context, id string) error
}

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	ID        *string   `json:"id"`
	SourceURL *string   `json:"sourceUrl"`
	Slug      *string   `json:"slug"`
	Category  *Category `json:"category"`
	Published *bool     `json:"published"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ArticleUpdate represents fields that can be updated on an article.
type ArticleUpdate struct {
	Published        *bool   `json:"published"`
	ProcessedContent *string `json:"processedContent"`
	Summary          *string `json:"summary"`
	Tags             *string `json:"tags"`
}

// ArticleWriter exports articles outside the database.
type ArticleWriter interface {
	WriteArticle(ctx context.Context, article *Article) error
}

// LinkFilter is a probabilistic set of article links. Test may report
// false positives but never false negatives.
type LinkFilter interface {
	Add(link string)
	Test(link string) bool
}
