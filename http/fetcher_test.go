package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/healthpulse"
	hphttp "github.com/fwojciec/healthpulse/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns HTML body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		fetcher := hphttp.NewFetcher()
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hello World</body></html>", html)
	})

	t.Run("sends configured user agent", func(t *testing.T) {
		t.Parallel()

		got := make(chan string, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got <- r.Header.Get("User-Agent")
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		fetcher := hphttp.NewFetcher(hphttp.WithUserAgent("healthpulse-test/1.0"))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "healthpulse-test/1.0", <-got)
	})

	t.Run("sends default user agent", func(t *testing.T) {
		t.Parallel()

		got := make(chan string, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got <- r.Header.Get("User-Agent")
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		_, err := hphttp.NewFetcher().Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, healthpulse.DefaultUserAgent, <-got)
	})

	t.Run("accepts any 2xx status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNonAuthoritativeInfo)
			_, _ = w.Write([]byte("partial"))
		}))
		defer server.Close()

		body, err := hphttp.NewFetcher().Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "partial", body)
	})

	t.Run("truncates oversized bodies", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(strings.Repeat("a", hphttp.MaxBodySize+100)))
		}))
		defer server.Close()

		body, err := hphttp.NewFetcher().Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Len(t, body, hphttp.MaxBodySize)
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := hphttp.NewFetcher(hphttp.WithTimeout(10 * time.Millisecond))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := hphttp.NewFetcher().Fetch(ctx, server.URL)
		require.Error(t, err)
	})

	t.Run("returns error for non-existent host", func(t *testing.T) {
		t.Parallel()

		fetcher := hphttp.NewFetcher(hphttp.WithTimeout(100 * time.Millisecond))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), "http://non-existent-host.invalid/page")
		require.Error(t, err)
	})

	t.Run("returns error for non-2xx status codes", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("404 Not Found"))
		}))
		defer server.Close()

		_, err := hphttp.NewFetcher().Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("rejects malformed URL", func(t *testing.T) {
		t.Parallel()

		_, err := hphttp.NewFetcher().Fetch(context.Background(), "http://bad host/\x7f")
		require.Error(t, err)
		assert.Equal(t, healthpulse.EINVALID, healthpulse.ErrorCode(err))
	})
}
