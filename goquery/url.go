package goquery

import (
	"net/url"
	"strings"
)

// ResolveURL resolves href against base and returns an absolute URL.
// Returns an empty string if href is empty, cannot be parsed, or cannot be
// made absolute.
func ResolveURL(base, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if ref.IsAbs() {
		return ref.String()
	}

	b, err := url.Parse(base)
	if err != nil || !b.IsAbs() {
		return ""
	}
	return b.ResolveReference(ref).String()
}
