package slog

import (
	"log/slog"

	"github.com/fwojciec/healthpulse"
)

// Ensure LoggingSelectorResolver implements healthpulse.SelectorResolver.
var _ healthpulse.SelectorResolver = (*LoggingSelectorResolver)(nil)

// LoggingSelectorResolver wraps a SelectorResolver with debug logging.
type LoggingSelectorResolver struct {
	next   healthpulse.SelectorResolver
	logger *slog.Logger
}

// NewLoggingSelectorResolver creates a new LoggingSelectorResolver.
func NewLoggingSelectorResolver(next healthpulse.SelectorResolver, logger *slog.Logger) *LoggingSelectorResolver {
	return &LoggingSelectorResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs how many selectors
// the link's domain has.
func (r *LoggingSelectorResolver) Resolve(link string) []string {
	selectors := r.next.Resolve(link)
	r.logger.Debug("resolve selectors",
		"link", link,
		"selectors", len(selectors),
	)
	return selectors
}
