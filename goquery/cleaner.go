package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/healthpulse"
)

// Ensure Cleaner implements healthpulse.ContentCleaner at compile time.
var _ healthpulse.ContentCleaner = (*Cleaner)(nil)

// Cleaner sanitizes content regions and extracts their text and image.
type Cleaner struct {
	sanitizer  *Sanitizer
	normalizer *healthpulse.Normalizer
}

// NewCleaner creates a Cleaner.
func NewCleaner(sanitizer *Sanitizer, normalizer *healthpulse.Normalizer) *Cleaner {
	return &Cleaner{sanitizer: sanitizer, normalizer: normalizer}
}

// Clean sanitizes contentHTML, extracts its visible text and normalizes it.
// The first image left in the region becomes ImageURL, resolved against
// pageURL. Empty input yields an empty result.
func (c *Cleaner) Clean(contentHTML string, pageURL string) (*healthpulse.CleanedContent, error) {
	if strings.TrimSpace(contentHTML) == "" {
		return &healthpulse.CleanedContent{}, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(contentHTML))
	if err != nil {
		return nil, healthpulse.Errorf(healthpulse.EINVALID, "failed to parse content HTML: %v", err)
	}

	// Top-level elements are the located regions; their subtrees are cleaned.
	body := doc.Find("body")
	for _, n := range body.Nodes {
		removeComments(n)
	}
	c.sanitizer.Sanitize(body.Children())

	cleanedHTML, err := body.Html()
	if err != nil {
		return nil, err
	}

	return &healthpulse.CleanedContent{
		HTML:     strings.TrimSpace(cleanedHTML),
		Text:     c.normalizer.Normalize(VisibleText(body)),
		ImageURL: FirstImage(body, pageURL),
	}, nil
}

// FirstImage returns the absolute URL of the first image in sel that has a
// usable src or data-src attribute.
func FirstImage(sel *goquery.Selection, pageURL string) string {
	var found string
	sel.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		for _, attr := range []string{"src", "data-src"} {
			if src, ok := img.Attr(attr); ok {
				if resolved := ResolveURL(pageURL, src); resolved != "" {
					found = resolved
					return false
				}
			}
		}
		return true
	})
	return found
}
