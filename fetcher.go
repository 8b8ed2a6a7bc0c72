package healthpulse

import "context"

// Fetcher retrieves documents over HTTP.
type Fetcher interface {
	// Fetch performs one bounded GET request and returns the body.
	// Non-success statuses are returned as errors.
	// The context controls cancellation; the timeout is the implementation's.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
