package healthpulse

import (
	"context"
	"fmt"
)

// Page is a fetched HTML document together with the URL it came from.
type Page struct {
	URL  string
	HTML string
}

// ContentLocator finds the main-content region of a page.
type ContentLocator interface {
	// Name identifies the strategy in logs and results.
	Name() string

	// Locate returns the HTML of the main-content region, or an empty
	// string when the strategy finds nothing. Selectors are only used by
	// strategies that match on CSS selectors.
	Locate(page *Page, selectors []string) (string, error)
}

// CleanedContent is a content region after sanitization and normalization.
type CleanedContent struct {
	HTML     string
	Text     string
	ImageURL string // absolute, or empty
}

// ContentCleaner sanitizes a located content region and extracts its text
// and first image.
type ContentCleaner interface {
	// Clean sanitizes contentHTML and returns its normalized visible text.
	// Relative image URLs are resolved against pageURL.
	Clean(contentHTML string, pageURL string) (*CleanedContent, error)
}

// MetaImageFinder finds the representative image declared in page metadata.
type MetaImageFinder interface {
	// FindMetaImage returns the absolute og:image or twitter:image URL,
	// or an empty string.
	FindMetaImage(page *Page) string
}

// FailureKind classifies why page extraction produced no content.
type FailureKind string

// Extraction failure kinds.
const (
	FailureFetch    FailureKind = "fetch"
	FailureEmpty    FailureKind = "empty"
	FailureInternal FailureKind = "internal"
)

// ExtractionFailure describes a failed page extraction.
type ExtractionFailure struct {
	Kind FailureKind
	Err  error
}

// Error implements the error interface.
func (f *ExtractionFailure) Error() string {
	if f.Err == nil {
		return fmt.Sprintf("extraction failed: %s", f.Kind)
	}
	return fmt.Sprintf("extraction failed: %s: %v", f.Kind, f.Err)
}

// Unwrap returns the underlying error.
func (f *ExtractionFailure) Unwrap() error {
	return f.Err
}

// ExtractionResult holds the outcome of extracting a single article page.
type ExtractionResult struct {
	// Content is sanitized, normalized plain text. Empty on failure.
	Content string

	// ContentHTML is the sanitized HTML of the region Content came from.
	ContentHTML string

	// ImageURL is an absolute URL, or empty.
	ImageURL string

	// Strategy names the ContentLocator that produced Content.
	Strategy string

	// Failure is nil when Content is non-empty.
	Failure *ExtractionFailure
}

// OK reports whether extraction produced content.
func (r *ExtractionResult) OK() bool {
	return r != nil && r.Failure == nil && r.Content != ""
}

// PageExtractor extracts article text and image from a page URL.
type PageExtractor interface {
	// Extract fetches the page once and extracts its main content, trying
	// selectors first and structural inference second. It never fails:
	// problems are reported through ExtractionResult.Failure.
	Extract(ctx context.Context, url string, selectors []string) *ExtractionResult
}
