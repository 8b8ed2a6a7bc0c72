package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/healthpulse"
	main "github.com/fwojciec/healthpulse/cmd/healthpulse"
	"github.com/fwojciec/healthpulse/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints records and warnings", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Parser = &mock.FeedParser{
			ParseFeedFn: func(_ context.Context, feedURL string) (*healthpulse.FeedResult, error) {
				return &healthpulse.FeedResult{
					URL:   feedURL,
					Title: "Health News",
					Records: []*healthpulse.ArticleRecord{
						{Title: "Sleep study", Link: "https://example.com/sleep", Content: "Sleep matters.", Extracted: true},
					},
					Warnings: []error{errors.New("feed was repaired")},
				}, nil
			},
		}

		err := (&main.ParseCmd{URL: "https://example.com/rss"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "# Health News")
		assert.Contains(t, stdout.String(), "## Sleep study")
		assert.Contains(t, stdout.String(), "Source: page")
		assert.Contains(t, stderr.String(), "warning: feed was repaired")
	})

	t.Run("returns feed error", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Parser = &mock.FeedParser{
			ParseFeedFn: func(_ context.Context, _ string) (*healthpulse.FeedResult, error) {
				return nil, healthpulse.Errorf(healthpulse.EINVALID, "not a feed")
			},
		}

		err := (&main.ParseCmd{URL: "https://example.com/"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "not a feed")
		assert.Empty(t, stdout.String())
	})
}

func TestExtractCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("tries flag selectors before configured ones", func(t *testing.T) {
		t.Parallel()

		var gotSelectors []string
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Resolver = &mock.SelectorResolver{
			ResolveFn: func(_ string) []string { return []string{"div#text"} },
		}
		deps.Extractor = &mock.PageExtractor{
			ExtractFn: func(_ context.Context, _ string, selectors []string) *healthpulse.ExtractionResult {
				gotSelectors = selectors
				return &healthpulse.ExtractionResult{
					Content:  "Walking helps.",
					ImageURL: "https://example.com/walk.jpg",
					Strategy: "selector",
				}
			},
		}

		err := (&main.ExtractCmd{URL: "https://example.com/a", Selector: []string{"main"}}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"main", "div#text"}, gotSelectors)
		assert.Contains(t, stdout.String(), "Strategy: selector")
		assert.Contains(t, stdout.String(), "Image: https://example.com/walk.jpg")
		assert.Contains(t, stdout.String(), "Walking helps.")
	})

	t.Run("renders markdown", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Resolver = &mock.SelectorResolver{ResolveFn: func(_ string) []string { return nil }}
		deps.Extractor = &mock.PageExtractor{
			ExtractFn: func(_ context.Context, _ string, _ []string) *healthpulse.ExtractionResult {
				return &healthpulse.ExtractionResult{Content: "Title", ContentHTML: "<h2>Title</h2>", Strategy: "readability"}
			},
		}
		deps.Converter = &mock.Converter{
			ConvertFn: func(html, pageURL string) (string, error) {
				assert.Equal(t, "<h2>Title</h2>", html)
				assert.Equal(t, "https://example.com/a", pageURL)
				return "## Title", nil
			},
		}

		err := (&main.ExtractCmd{URL: "https://example.com/a", Markdown: true}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "## Title")
	})

	t.Run("reports extraction failure", func(t *testing.T) {
		t.Parallel()

		fetchErr := errors.New("status 404")
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Resolver = &mock.SelectorResolver{ResolveFn: func(_ string) []string { return nil }}
		deps.Extractor = &mock.PageExtractor{
			ExtractFn: func(_ context.Context, _ string, _ []string) *healthpulse.ExtractionResult {
				return &healthpulse.ExtractionResult{
					Failure: &healthpulse.ExtractionFailure{Kind: healthpulse.FailureFetch, Err: fetchErr},
				}
			},
		}

		err := (&main.ExtractCmd{URL: "https://example.com/missing"}).Run(deps)

		require.ErrorIs(t, err, fetchErr)
		assert.Contains(t, stderr.String(), "status 404")
		assert.Empty(t, stdout.String())
	})
}
