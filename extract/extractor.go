// Package extract implements the page content extraction pipeline: one
// fetch, then an ordered chain of content locators whose regions are
// cleaned and normalized until one yields text.
package extract

import (
	"context"
	"errors"
	"fmt"

	"github.com/fwojciec/healthpulse"
)

// Ensure PageExtractor implements healthpulse.PageExtractor at compile time.
var _ healthpulse.PageExtractor = (*PageExtractor)(nil)

// PageExtractor extracts the main text and image of an article page.
type PageExtractor struct {
	Fetcher    healthpulse.Fetcher
	Cleaner    healthpulse.ContentCleaner
	MetaImages healthpulse.MetaImageFinder

	// Locators are tried in order; the first whose cleaned region has
	// text wins. Selector-based locators come before structural ones.
	Locators []healthpulse.ContentLocator
}

// NewPageExtractor creates a PageExtractor.
func NewPageExtractor(fetcher healthpulse.Fetcher, cleaner healthpulse.ContentCleaner, meta healthpulse.MetaImageFinder, locators ...healthpulse.ContentLocator) *PageExtractor {
	return &PageExtractor{
		Fetcher:    fetcher,
		Cleaner:    cleaner,
		MetaImages: meta,
		Locators:   locators,
	}
}

// Extract fetches url once and runs the locator chain over the page.
//
// The image is taken from the first region that has one, in chain order,
// falling back to the page's og:image or twitter:image. A fetch error
// yields FailureFetch with no content and no image. A locator that panics
// is skipped; if nothing yields text the failure is FailureInternal when a
// locator panicked and FailureEmpty otherwise.
func (e *PageExtractor) Extract(ctx context.Context, url string, selectors []string) *healthpulse.ExtractionResult {
	body, err := e.Fetcher.Fetch(ctx, url)
	if err != nil {
		return &healthpulse.ExtractionResult{
			Failure: &healthpulse.ExtractionFailure{Kind: healthpulse.FailureFetch, Err: err},
		}
	}
	page := &healthpulse.Page{URL: url, HTML: body}

	var (
		result   healthpulse.ExtractionResult
		errs     []error
		panicked bool
	)
	for _, loc := range e.Locators {
		cleaned, err := e.run(loc, page, selectors)
		if err != nil {
			var perr *panicError
			if errors.As(err, &perr) {
				panicked = true
			}
			errs = append(errs, fmt.Errorf("%s: %w", loc.Name(), err))
			continue
		}
		if cleaned == nil {
			continue
		}
		if result.ImageURL == "" {
			result.ImageURL = cleaned.ImageURL
		}
		if cleaned.Text != "" {
			result.Content = cleaned.Text
			result.ContentHTML = cleaned.HTML
			result.Strategy = loc.Name()
			break
		}
	}

	if result.ImageURL == "" && e.MetaImages != nil {
		result.ImageURL = e.metaImage(page)
	}

	if result.Content == "" {
		kind := healthpulse.FailureEmpty
		if panicked {
			kind = healthpulse.FailureInternal
		}
		result.Failure = &healthpulse.ExtractionFailure{Kind: kind, Err: errors.Join(errs...)}
	}
	return &result
}

// run locates and cleans one region. A nil result means the locator found
// nothing.
func (e *PageExtractor) run(loc healthpulse.ContentLocator, page *healthpulse.Page, selectors []string) (cleaned *healthpulse.CleanedContent, err error) {
	defer func() {
		if r := recover(); r != nil {
			cleaned, err = nil, &panicError{value: r}
		}
	}()

	region, err := loc.Locate(page, selectors)
	if err != nil {
		return nil, err
	}
	if region == "" {
		return nil, nil
	}
	return e.Cleaner.Clean(region, page.URL)
}

func (e *PageExtractor) metaImage(page *healthpulse.Page) (img string) {
	defer func() {
		if r := recover(); r != nil {
			img = ""
		}
	}()
	return e.MetaImages.FindMetaImage(page)
}

// panicError reports a recovered panic from a locator.
type panicError struct {
	value any
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}
