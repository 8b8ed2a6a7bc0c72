// Package bloom provides a probabilistic set of article links backed by
// bits-and-blooms/bloom.
package bloom

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/healthpulse"
)

// Default sizing used by the poller.
const (
	DefaultCapacity = 100_000
	DefaultFPRate   = 0.001
)

// Ensure Filter implements healthpulse.LinkFilter at compile time.
var _ healthpulse.LinkFilter = (*Filter)(nil)

// Filter is a Bloom filter of article links. It is safe for concurrent use.
type Filter struct {
	mu sync.RWMutex
	f  *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected links
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a link to the filter.
func (f *Filter) Add(link string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.f.AddString(link)
}

// Test returns true if the link might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(link string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.f.TestString(link)
}

// EstimatedCount returns the approximate number of links in the filter.
func (f *Filter) EstimatedCount() uint {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return uint(f.f.ApproximatedSize())
}
