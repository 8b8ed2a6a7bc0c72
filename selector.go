package healthpulse

import (
	"net/url"
	"strings"
)

// DomainSelectors maps a domain substring to an ordered list of CSS
// selectors for the main-content container of that site's articles.
type DomainSelectors struct {
	Domain    string
	Selectors []string
}

// DefaultSelectors is the built-in selector table for known sources.
var DefaultSelectors = []DomainSelectors{
	{Domain: "sciencedaily.com", Selectors: []string{"article", ".content", ".story", ".post-content"}},
	{Domain: "webmd.com", Selectors: []string{".article-content", ".post-content", "article", ".content"}},
	{Domain: "reuters.com", Selectors: []string{`[data-testid="BodyWrapper"]`, ".resizeableText", ".StandardArticleBody_body"}},
	{Domain: "medicalnewstoday.com", Selectors: []string{".content", ".article-body", "article"}},
	{Domain: "healthline.com", Selectors: []string{".content", ".article-body", ".structured-content", "article"}},
	{Domain: "mindbodygreen.com", Selectors: []string{".content", ".article-body", ".post-content", "article"}},
	{Domain: "hsph.harvard.edu", Selectors: []string{".post-content", ".content", "article", ".entry-content"}},
}

// SelectorResolver returns the candidate content selectors for a link.
type SelectorResolver interface {
	// Resolve returns selectors in priority order, or an empty slice when
	// the link's domain is unknown.
	Resolve(link string) []string
}

var _ SelectorResolver = (*SelectorTable)(nil)

// SelectorTable is a static, ordered domain-to-selectors table.
// It is read-only after construction and safe for concurrent use.
type SelectorTable struct {
	entries []DomainSelectors
}

// NewSelectorTable creates a SelectorTable from entries. Entries are copied;
// earlier entries win when several domains match the same host.
func NewSelectorTable(entries []DomainSelectors) *SelectorTable {
	return &SelectorTable{entries: copySelectors(entries)}
}

// Resolve returns the selectors of the first entry whose domain is a
// substring of the link's host.
func (t *SelectorTable) Resolve(link string) []string {
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return []string{}
	}
	host := strings.ToLower(u.Host)

	for _, entry := range t.entries {
		if entry.Domain == "" {
			continue
		}
		if strings.Contains(host, strings.ToLower(entry.Domain)) {
			return append([]string{}, entry.Selectors...)
		}
	}
	return []string{}
}

// Entries returns a copy of the table.
func (t *SelectorTable) Entries() []DomainSelectors {
	return copySelectors(t.entries)
}

// MergeSelectors returns base with extra applied on top: an extra entry
// replaces the base entry for the same domain in place, and entries for
// new domains are appended in order.
func MergeSelectors(base, extra []DomainSelectors) []DomainSelectors {
	merged := copySelectors(base)
	index := make(map[string]int, len(merged))
	for i, entry := range merged {
		index[strings.ToLower(entry.Domain)] = i
	}

	for _, entry := range extra {
		entry.Selectors = append([]string{}, entry.Selectors...)
		key := strings.ToLower(entry.Domain)
		if i, ok := index[key]; ok {
			merged[i] = entry
			continue
		}
		index[key] = len(merged)
		merged = append(merged, entry)
	}
	return merged
}

func copySelectors(entries []DomainSelectors) []DomainSelectors {
	out := make([]DomainSelectors, len(entries))
	for i, entry := range entries {
		out[i] = DomainSelectors{
			Domain:    entry.Domain,
			Selectors: append([]string{}, entry.Selectors...),
		}
	}
	return out
}
