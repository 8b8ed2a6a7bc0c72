package mock

import (
	"context"

	"github.com/fwojciec/healthpulse"
)

var _ healthpulse.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of healthpulse.ArticleService.
type ArticleService struct {
	CreateArticleFn   func(ctx context.Context, article *healthpulse.Article) error
	FindArticleByIDFn func(ctx context.Context, id string) (*healthpulse.Article, error)
	FindArticlesFn    func(ctx context.Context, filter healthpulse.ArticleFilter) ([]*healthpulse.Article, error)
	FindSourceURLsFn  func(ctx context.Context) ([]string, error)
	UpdateArticleFn   func(ctx context.Context, id string, upd healthpulse.ArticleUpdate) (*healthpulse.Article, error)
	DeleteArticleFn   func(ctx context.Context, id string) error
}

func (s *ArticleService) CreateArticle(ctx context.Context, article *healthpulse.Article) error {
	return s.CreateArticleFn(ctx, article)
}

func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*healthpulse.Article, error) {
	return s.FindArticleByIDFn(ctx, id)
}

func (s *ArticleService) FindArticles(ctx context.Context, filter healthpulse.ArticleFilter) ([]*healthpulse.Article, error) {
	return s.FindArticlesFn(ctx, filter)
}

func (s *ArticleService) FindSourceURLs(ctx context.Context) ([]string, error) {
	return s.FindSourceURLsFn(ctx)
}

func (s *ArticleService) UpdateArticle(ctx context.Context, id string, upd healthpulse.ArticleUpdate) (*healthpulse.Article, error) {
	return s.UpdateArticleFn(ctx, id, upd)
}

func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	return s.DeleteArticleFn(ctx, id)
}

var _ healthpulse.ArticleWriter = (*ArticleWriter)(nil)

// ArticleWriter is a mock implementation of healthpulse.ArticleWriter.
type ArticleWriter struct {
	WriteArticleFn func(ctx context.Context, article *healthpulse.Article) error
}

func (w *ArticleWriter) WriteArticle(ctx context.Context, article *healthpulse.Article) error {
	return w.WriteArticleFn(ctx, article)
}

var _ healthpulse.LinkFilter = (*LinkFilter)(nil)

// LinkFilter is a mock implementation of healthpulse.LinkFilter.
type LinkFilter struct {
	AddFn  func(link string)
	TestFn func(link string) bool
}

func (f *LinkFilter) Add(link string) {
	f.AddFn(link)
}

func (f *LinkFilter) Test(link string) bool {
	return f.TestFn(link)
}
