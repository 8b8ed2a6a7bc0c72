// Package gofeed decodes RSS and Atom documents with mmcdole/gofeed.
package gofeed

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/healthpulse"
	"github.com/mmcdole/gofeed"
)

// Ensure Source implements healthpulse.FeedSource at compile time.
var _ healthpulse.FeedSource = (*Source)(nil)

// Source fetches feed documents and decodes them into entries.
type Source struct {
	fetcher healthpulse.Fetcher
}

// NewSource creates a Source that downloads documents with fetcher.
func NewSource(fetcher healthpulse.Fetcher) *Source {
	return &Source{fetcher: fetcher}
}

// FetchFeed downloads and decodes the feed at url.
func (s *Source) FetchFeed(ctx context.Context, url string) (*healthpulse.DecodedFeed, error) {
	body, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", url, err)
	}
	return Decode(body)
}

// Decode parses an RSS or Atom document. A document that fails to parse is
// repaired by dropping characters XML does not allow and parsed again. If
// that still fails, the document is cut after its last complete item and
// closed, so the entries read before a transfer broke off are kept. When a
// repaired document parses, the original error is kept in
// DecodedFeed.Malformed.
func Decode(body string) (*healthpulse.DecodedFeed, error) {
	feed, err := gofeed.NewParser().ParseString(body)
	if err == nil {
		return decoded(feed, nil), nil
	}

	repaired := Repair(body)
	for _, candidate := range []string{repaired, Truncate(repaired)} {
		if candidate == "" || candidate == body {
			continue
		}
		if feed, rerr := gofeed.NewParser().ParseString(candidate); rerr == nil {
			return decoded(feed, fmt.Errorf("malformed feed: %w", err)), nil
		}
	}
	return nil, healthpulse.Errorf(healthpulse.EINVALID, "decode feed: %v", err)
}

// Truncate cuts body after its last complete RSS item or Atom entry and
// closes the enclosing elements. It returns an empty string when body has
// no complete item.
func Truncate(body string) string {
	cut, closing := -1, ""
	if i := strings.LastIndex(body, "</item>"); i >= 0 {
		cut = i + len("</item>")
		closing = "</channel></rss>"
		if strings.Contains(body, "<rdf:RDF") {
			// RSS 1.0 items are siblings of the channel.
			closing = "</rdf:RDF>"
		}
	}
	if i := strings.LastIndex(body, "</entry>"); i >= 0 && i+len("</entry>") > cut {
		cut = i + len("</entry>")
		closing = "</feed>"
	}
	if cut < 0 {
		return ""
	}
	return body[:cut] + closing
}

// Repair removes a byte order mark, leading whitespace, invalid UTF-8 and
// characters outside the XML 1.0 character range.
func Repair(body string) string {
	body = strings.TrimPrefix(body, "\ufeff")
	body = strings.TrimLeft(body, " \t\r\n")
	if !utf8.ValidString(body) {
		body = strings.ToValidUTF8(body, "")
	}
	return strings.Map(func(r rune) rune {
		if isXMLChar(r) {
			return r
		}
		return -1
	}, body)
}

func isXMLChar(r rune) bool {
	switch {
	case r == '\t', r == '\n', r == '\r':
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	}
	return false
}

func decoded(feed *gofeed.Feed, malformed error) *healthpulse.DecodedFeed {
	out := &healthpulse.DecodedFeed{
		Title:     strings.TrimSpace(feed.Title),
		Entries:   make([]*healthpulse.FeedEntry, 0, len(feed.Items)),
		Malformed: malformed,
	}
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		out.Entries = append(out.Entries, entry(item))
	}
	return out
}

func entry(item *gofeed.Item) *healthpulse.FeedEntry {
	e := &healthpulse.FeedEntry{
		Title:       strings.TrimSpace(item.Title),
		Link:        strings.TrimSpace(item.Link),
		Summary:     item.Description,
		PublishedAt: publishedAt(item),
	}
	if e.Title == "" {
		e.Title = healthpulse.DefaultTitle
	}
	if e.Link == "" {
		for _, l := range item.Links {
			if l = strings.TrimSpace(l); l != "" {
				e.Link = l
				break
			}
		}
	}
	if strings.TrimSpace(e.Summary) == "" {
		e.Summary = item.Content
	}
	return e
}

func publishedAt(item *gofeed.Item) *time.Time {
	switch {
	case item.PublishedParsed != nil:
		t := item.PublishedParsed.UTC()
		return &t
	case item.UpdatedParsed != nil:
		t := item.UpdatedParsed.UTC()
		return &t
	}
	return nil
}
