// Package goquery implements selector-based content location, HTML
// sanitization and image discovery on top of PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/healthpulse"
	"golang.org/x/net/html"
)

// Sanitizer removes navigation, ads and other non-article blocks from a
// content region. It is safe for concurrent use.
type Sanitizer struct {
	tags    map[string]bool
	markers []string
}

// NewSanitizer creates a Sanitizer from the configured denylists.
// Tag names and markers are matched case-insensitively.
func NewSanitizer(cfg healthpulse.SanitizerConfig) *Sanitizer {
	s := &Sanitizer{tags: make(map[string]bool, len(cfg.Tags))}
	for _, tag := range cfg.Tags {
		if tag = strings.ToLower(strings.TrimSpace(tag)); tag != "" {
			s.tags[tag] = true
		}
	}
	for _, marker := range cfg.Markers {
		if marker = strings.ToLower(strings.TrimSpace(marker)); marker != "" {
			s.markers = append(s.markers, marker)
		}
	}
	return s
}

// DefaultSanitizer returns a Sanitizer using the default denylists.
func DefaultSanitizer() *Sanitizer {
	return NewSanitizer(healthpulse.DefaultConfig().Sanitizer)
}

// Sanitize cleans the descendants of every node in sel in place and returns
// sel for chaining. The selected nodes themselves are kept. In order it
// removes denylisted tags, elements whose class or id contains a denylisted
// marker, comments, and elements left without visible text. Elements that
// are or contain an image survive the last step.
//
// A nil or empty selection is a no-op. Sanitizing twice has the same
// effect as sanitizing once.
func (s *Sanitizer) Sanitize(sel *goquery.Selection) *goquery.Selection {
	if sel == nil || sel.Length() == 0 {
		return sel
	}

	sel.Find("*").FilterFunction(func(_ int, e *goquery.Selection) bool {
		return s.tags[strings.ToLower(goquery.NodeName(e))]
	}).Remove()

	sel.Find("*").FilterFunction(func(_ int, e *goquery.Selection) bool {
		return s.hasMarker(e, "class") || s.hasMarker(e, "id")
	}).Remove()

	for _, n := range sel.Nodes {
		removeComments(n)
	}

	sel.Find("*").FilterFunction(func(_ int, e *goquery.Selection) bool {
		if goquery.NodeName(e) == "img" || e.Find("img").Length() > 0 {
			return false
		}
		return strings.TrimSpace(e.Text()) == ""
	}).Remove()

	return sel
}

func (s *Sanitizer) hasMarker(e *goquery.Selection, attr string) bool {
	val, ok := e.Attr(attr)
	if !ok || val == "" {
		return false
	}
	val = strings.ToLower(val)
	for _, marker := range s.markers {
		if strings.Contains(val, marker) {
			return true
		}
	}
	return false
}

// removeComments detaches every comment node below n.
func removeComments(n *html.Node) {
	var comments []*html.Node
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.CommentNode {
				comments = append(comments, c)
				continue
			}
			walk(c)
		}
	}
	walk(n)

	for _, c := range comments {
		c.Parent.RemoveChild(c)
	}
}
