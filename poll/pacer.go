package poll

import (
	"context"
	"time"

	"github.com/fwojciec/healthpulse"
	"golang.org/x/time/rate"
)

var _ healthpulse.Pacer = (*IntervalPacer)(nil)

// IntervalPacer spaces calls to Wait at least interval apart using a token
// bucket with a burst of 1. The first Wait returns immediately.
type IntervalPacer struct {
	limiter *rate.Limiter
}

// NewIntervalPacer creates an IntervalPacer. A non-positive interval
// disables pacing.
func NewIntervalPacer(interval time.Duration) *IntervalPacer {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &IntervalPacer{limiter: rate.NewLimiter(limit, 1)}
}

// Wait blocks until the next fetch may start.
// Returns an error if the context is canceled before the wait completes.
func (p *IntervalPacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
