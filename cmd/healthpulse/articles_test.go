package main_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/healthpulse"
	main "github.com/fwojciec/healthpulse/cmd/healthpulse"
	"github.com/fwojciec/healthpulse/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedArticle(id, title string, published bool) *healthpulse.Article {
	return &healthpulse.Article{
		ID:              id,
		Title:           title,
		Slug:            healthpulse.Slugify(title),
		SourceURL:       "https://example.com/" + id,
		Category:        healthpulse.CategoryNutrition,
		OriginalContent: "Body of " + title,
		PublishedAt:     time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC),
		Published:       published,
	}
}

func TestArticlesCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("passes filter and lists articles", func(t *testing.T) {
		t.Parallel()

		var got healthpulse.ArticleFilter
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Articles = &mock.ArticleService{
			FindArticlesFn: func(_ context.Context, filter healthpulse.ArticleFilter) ([]*healthpulse.Article, error) {
				got = filter
				return []*healthpulse.Article{storedArticle("a1", "Fiber and gut health", false)}, nil
			},
		}

		err := (&main.ArticlesCmd{Category: "nutrition", Limit: 5, Unpublished: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 5, got.Limit)
		require.NotNil(t, got.Category)
		assert.Equal(t, healthpulse.CategoryNutrition, *got.Category)
		require.NotNil(t, got.Published)
		assert.False(t, *got.Published)
		assert.Contains(t, stdout.String(), "2025-02-03")
		assert.Contains(t, stdout.String(), "draft")
		assert.Contains(t, stdout.String(), "Fiber and gut health")
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Articles = &mock.ArticleService{}

		err := (&main.ArticlesCmd{Category: "gossip"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, healthpulse.EINVALID, healthpulse.ErrorCode(err))
	})

	t.Run("shows helpful message when empty", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Articles = &mock.ArticleService{
			FindArticlesFn: func(_ context.Context, _ healthpulse.ArticleFilter) ([]*healthpulse.Article, error) {
				return nil, nil
			},
		}

		err := (&main.ArticlesCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No articles found")
	})
}

func TestPublishCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("marks article published", func(t *testing.T) {
		t.Parallel()

		var got healthpulse.ArticleUpdate
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Articles = &mock.ArticleService{
			UpdateArticleFn: func(_ context.Context, id string, upd healthpulse.ArticleUpdate) (*healthpulse.Article, error) {
				got = upd
				return storedArticle(id, "Fiber and gut health", true), nil
			},
		}

		err := (&main.PublishCmd{ID: "a1"}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, got.Published)
		assert.True(t, *got.Published)
		assert.Contains(t, stdout.String(), "fiber-and-gut-health")
	})

	t.Run("reports missing article", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Articles = &mock.ArticleService{
			UpdateArticleFn: func(_ context.Context, _ string, _ healthpulse.ArticleUpdate) (*healthpulse.Article, error) {
				return nil, healthpulse.Errorf(healthpulse.ENOTFOUND, "article not found")
			},
		}

		err := (&main.PublishCmd{ID: "nope"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "'healthpulse articles'")
	})
}

func TestExportCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("exports published articles", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "site")
		var got healthpulse.ArticleFilter
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Articles = &mock.ArticleService{
			FindArticlesFn: func(_ context.Context, filter healthpulse.ArticleFilter) ([]*healthpulse.Article, error) {
				got = filter
				return []*healthpulse.Article{storedArticle("a1", "Fiber and gut health", true)}, nil
			},
		}

		err := (&main.ExportCmd{Dir: dir}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, got.Published)
		assert.True(t, *got.Published)
		_, err = os.Stat(filepath.Join(dir, "nutrition", "fiber-and-gut-health.md"))
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Exported 1 articles")
	})

	t.Run("all includes unpublished", func(t *testing.T) {
		t.Parallel()

		var got healthpulse.ArticleFilter
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Articles = &mock.ArticleService{
			FindArticlesFn: func(_ context.Context, filter healthpulse.ArticleFilter) ([]*healthpulse.Article, error) {
				got = filter
				return nil, nil
			},
		}

		err := (&main.ExportCmd{Dir: filepath.Join(t.TempDir(), "site"), All: true}).Run(deps)

		require.NoError(t, err)
		assert.Nil(t, got.Published)
	})

	t.Run("invalid article aborts export", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Articles = &mock.ArticleService{
			FindArticlesFn: func(_ context.Context, _ healthpulse.ArticleFilter) ([]*healthpulse.Article, error) {
				return []*healthpulse.Article{
					storedArticle("a1", "Fine", true),
					{ID: "a2", Title: "Broken"},
				}, nil
			},
		}

		err := (&main.ExportCmd{Dir: filepath.Join(base, "site")}).Run(deps)

		require.Error(t, err)
		entries, err := os.ReadDir(base)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("returns error when FindArticles fails", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("database locked")
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Articles = &mock.ArticleService{
			FindArticlesFn: func(_ context.Context, _ healthpulse.ArticleFilter) ([]*healthpulse.Article, error) {
				return nil, dbErr
			},
		}

		err := (&main.ExportCmd{Dir: filepath.Join(t.TempDir(), "site")}).Run(deps)

		require.ErrorIs(t, err, dbErr)
	})
}
