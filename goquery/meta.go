package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/healthpulse"
)

// Ensure MetaImageFinder implements healthpulse.MetaImageFinder at compile time.
var _ healthpulse.MetaImageFinder = (*MetaImageFinder)(nil)

// MetaImageFinder reads the Open Graph and Twitter card image of a page.
type MetaImageFinder struct{}

// NewMetaImageFinder creates a new MetaImageFinder.
func NewMetaImageFinder() *MetaImageFinder {
	return &MetaImageFinder{}
}

// FindMetaImage returns og:image if present, otherwise twitter:image,
// resolved against the page URL. Returns an empty string when neither is set.
func (f *MetaImageFinder) FindMetaImage(page *healthpulse.Page) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
	if err != nil {
		return ""
	}

	for _, selector := range []string{
		`meta[property="og:image"]`,
		`meta[name="twitter:image"], meta[property="twitter:image"]`,
	} {
		if img := metaContent(doc, selector, page.URL); img != "" {
			return img
		}
	}
	return ""
}

func metaContent(doc *goquery.Document, selector, pageURL string) string {
	var found string
	doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		content, _ := s.Attr("content")
		found = ResolveURL(pageURL, content)
		return found == ""
	})
	return found
}
