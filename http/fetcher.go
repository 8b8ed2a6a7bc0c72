// Package http provides an HTTP implementation of healthpulse.Fetcher for
// feed documents and article pages. It does not execute JavaScript.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/healthpulse"
)

// MaxBodySize caps how much of a response body is read.
const MaxBodySize = 10 << 20

// Ensure Fetcher implements healthpulse.Fetcher at compile time.
var _ healthpulse.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves documents with plain GET requests. Every request is
// bounded by the configured timeout and there are no retries.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to healthpulse.DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithClient replaces the underlying HTTP client. The client's own
// timeout is overridden by the Fetcher's.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a new HTTP Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   healthpulse.DefaultFetchTimeout,
		userAgent: healthpulse.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{}
	}
	f.client.Timeout = f.timeout

	return f
}

// Fetch retrieves the body of the document at url. Non-2xx responses are
// errors. Bodies larger than MaxBodySize are truncated.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", healthpulse.Errorf(healthpulse.EINVALID, "invalid URL %q: %v", url, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return "", fmt.Errorf("read body of %s: %w", url, err)
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
