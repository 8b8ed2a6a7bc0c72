// Package readability locates article content with go-readability's
// density scoring. It is the first structural fallback after CSS selectors.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/healthpulse"
	"github.com/go-shiori/go-readability"
)

// Ensure Locator implements healthpulse.ContentLocator at compile time.
var _ healthpulse.ContentLocator = (*Locator)(nil)

// Locator wraps go-readability to find the main content of a page.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Name returns the strategy's identifier.
func (l *Locator) Name() string {
	return healthpulse.FallbackReadability
}

// Locate scores the page's blocks and returns the HTML of the densest
// region. Selectors are ignored.
func (l *Locator) Locate(page *healthpulse.Page, _ []string) (string, error) {
	if strings.TrimSpace(page.HTML) == "" {
		return "", healthpulse.Errorf(healthpulse.EINVALID, "empty HTML input")
	}

	var pageURL *url.URL
	if u, err := url.Parse(page.URL); err == nil && u.IsAbs() {
		pageURL = u
	}

	article, err := readability.FromReader(strings.NewReader(page.HTML), pageURL)
	if err != nil {
		return "", err
	}
	return article.Content, nil
}
