// Package trafilatura locates article content with go-trafilatura. It is
// the last structural fallback.
package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/fwojciec/healthpulse"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Locator implements healthpulse.ContentLocator at compile time.
var _ healthpulse.ContentLocator = (*Locator)(nil)

// Locator wraps go-trafilatura to find the main content of a page.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Name returns the strategy's identifier.
func (l *Locator) Name() string {
	return healthpulse.FallbackTrafilatura
}

// Locate returns the HTML of the content node trafilatura settles on.
// Selectors are ignored.
func (l *Locator) Locate(page *healthpulse.Page, _ []string) (string, error) {
	if strings.TrimSpace(page.HTML) == "" {
		return "", healthpulse.Errorf(healthpulse.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if u, err := url.Parse(page.URL); err == nil && u.IsAbs() {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(page.HTML), opts)
	if err != nil {
		return "", err
	}
	if result.ContentNode == nil {
		return "", nil
	}
	return renderNode(result.ContentNode)
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
