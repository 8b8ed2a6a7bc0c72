package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/healthpulse/mock"
	hpslog "github.com/fwojciec/healthpulse/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>content</html>", nil
			},
		}

		fetcher := hpslog.NewLoggingFetcher(inner, debugLogger(&buf))
		html, err := fetcher.Fetch(context.Background(), "https://example.com/news")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", html)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://example.com/news")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("network error")
			},
		}

		fetcher := hpslog.NewLoggingFetcher(inner, debugLogger(&buf))
		_, err := fetcher.Fetch(context.Background(), "https://example.com/news")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"network error\"")
	})

	t.Run("is silent above debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "ok", nil
			},
		}

		_, err := hpslog.NewLoggingFetcher(inner, logger).Fetch(context.Background(), "https://example.com/")

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	t.Run("delegates to inner fetcher", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		closeCalled := false
		inner := &mock.Fetcher{
			CloseFn: func() error {
				closeCalled = true
				return nil
			},
		}

		fetcher := hpslog.NewLoggingFetcher(inner, debugLogger(&buf))
		err := fetcher.Close()

		require.NoError(t, err)
		assert.True(t, closeCalled)
	})
}
