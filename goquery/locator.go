package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/healthpulse"
)

// Ensure SelectorLocator implements healthpulse.ContentLocator at compile time.
var _ healthpulse.ContentLocator = (*SelectorLocator)(nil)

// SelectorLocator finds the main-content region using CSS selectors.
type SelectorLocator struct{}

// NewSelectorLocator creates a new SelectorLocator.
func NewSelectorLocator() *SelectorLocator {
	return &SelectorLocator{}
}

// Name returns the strategy's identifier.
func (l *SelectorLocator) Name() string {
	return "selector"
}

// Locate returns the outer HTML of the first element matched by the first
// selector that matches anything. Later selectors are not tried once one
// matches. Invalid selectors are skipped.
func (l *SelectorLocator) Locate(page *healthpulse.Page, selectors []string) (string, error) {
	if len(selectors) == 0 {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
	if err != nil {
		return "", healthpulse.Errorf(healthpulse.EINVALID, "failed to parse HTML: %v", err)
	}

	for _, selector := range selectors {
		matcher, err := cascadia.Compile(selector)
		if err != nil {
			continue
		}
		match := doc.FindMatcher(matcher).First()
		if match.Length() == 0 {
			continue
		}
		return goquery.OuterHtml(match)
	}

	return "", nil
}

// ValidateSelector returns EINVALID if selector is not valid CSS.
func ValidateSelector(selector string) error {
	if _, err := cascadia.Compile(selector); err != nil {
		return healthpulse.Errorf(healthpulse.EINVALID, "invalid selector %q: %v", selector, err)
	}
	return nil
}
