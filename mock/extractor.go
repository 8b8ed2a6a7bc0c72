package mock

import (
	"context"

	"github.com/fwojciec/healthpulse"
)

var _ healthpulse.PageExtractor = (*PageExtractor)(nil)

// PageExtractor is a mock implementation of healthpulse.PageExtractor.
type PageExtractor struct {
	ExtractFn func(ctx context.Context, url string, selectors []string) *healthpulse.ExtractionResult
}

func (e *PageExtractor) Extract(ctx context.Context, url string, selectors []string) *healthpulse.ExtractionResult {
	return e.ExtractFn(ctx, url, selectors)
}

var _ healthpulse.ContentLocator = (*ContentLocator)(nil)

// ContentLocator is a mock implementation of healthpulse.ContentLocator.
type ContentLocator struct {
	NameFn   func() string
	LocateFn func(page *healthpulse.Page, selectors []string) (string, error)
}

func (l *ContentLocator) Name() string {
	return l.NameFn()
}

func (l *ContentLocator) Locate(page *healthpulse.Page, selectors []string) (string, error) {
	return l.LocateFn(page, selectors)
}

var _ healthpulse.ContentCleaner = (*ContentCleaner)(nil)

// ContentCleaner is a mock implementation of healthpulse.ContentCleaner.
type ContentCleaner struct {
	CleanFn func(contentHTML string, pageURL string) (*healthpulse.CleanedContent, error)
}

func (c *ContentCleaner) Clean(contentHTML string, pageURL string) (*healthpulse.CleanedContent, error) {
	return c.CleanFn(contentHTML, pageURL)
}

var _ healthpulse.MetaImageFinder = (*MetaImageFinder)(nil)

// MetaImageFinder is a mock implementation of healthpulse.MetaImageFinder.
type MetaImageFinder struct {
	FindMetaImageFn func(page *healthpulse.Page) string
}

func (f *MetaImageFinder) FindMetaImage(page *healthpulse.Page) string {
	return f.FindMetaImageFn(page)
}
