// Package bluemonday converts feed summaries to plain text using
// microcosm-cc/bluemonday's strict policy.
package bluemonday

import (
	"html"
	"strings"

	"github.com/fwojciec/healthpulse"
	"github.com/microcosm-cc/bluemonday"
)

// Ensure SummaryCleaner implements healthpulse.SummaryCleaner at compile time.
var _ healthpulse.SummaryCleaner = (*SummaryCleaner)(nil)

// SummaryCleaner strips markup from summaries and normalizes the text.
type SummaryCleaner struct {
	policy     *bluemonday.Policy
	normalizer *healthpulse.Normalizer
}

// NewSummaryCleaner creates a SummaryCleaner. A nil normalizer uses the
// default boilerplate patterns.
func NewSummaryCleaner(normalizer *healthpulse.Normalizer) *SummaryCleaner {
	if normalizer == nil {
		normalizer = healthpulse.DefaultNormalizer()
	}
	policy := bluemonday.StrictPolicy()
	policy.AddSpaceWhenStrippingTag(true)
	return &SummaryCleaner{
		policy:     policy,
		normalizer: normalizer,
	}
}

// CleanSummary returns summary as normalized plain text. If normalization
// removes everything from a non-empty summary, the summary with collapsed
// whitespace is returned instead so an entry never loses its only text.
func (c *SummaryCleaner) CleanSummary(summary string) string {
	if strings.TrimSpace(summary) == "" {
		return ""
	}

	text := html.UnescapeString(c.policy.Sanitize(summary))
	if cleaned := c.normalizer.Normalize(text); cleaned != "" {
		return cleaned
	}
	return strings.Join(strings.Fields(summary), " ")
}
