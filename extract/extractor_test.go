package extract_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/healthpulse"
	"github.com/fwojciec/healthpulse/extract"
	"github.com/fwojciec/healthpulse/goquery"
	"github.com/fwojciec/healthpulse/mock"
	"github.com/fwojciec/healthpulse/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticFetcher(html string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(context.Context, string) (string, error) {
			return html, nil
		},
	}
}

func locator(name, region string) *mock.ContentLocator {
	return &mock.ContentLocator{
		NameFn: func() string { return name },
		LocateFn: func(*healthpulse.Page, []string) (string, error) {
			return region, nil
		},
	}
}

// textCleaner treats the region string as its text and "img:" prefixed
// regions as image-only.
func textCleaner() *mock.ContentCleaner {
	return &mock.ContentCleaner{
		CleanFn: func(region, _ string) (*healthpulse.CleanedContent, error) {
			if len(region) > 4 && region[:4] == "img:" {
				return &healthpulse.CleanedContent{ImageURL: region[4:]}, nil
			}
			return &healthpulse.CleanedContent{Text: region, HTML: "<p>" + region + "</p>"}, nil
		},
	}
}

func noMeta() *mock.MetaImageFinder {
	return &mock.MetaImageFinder{
		FindMetaImageFn: func(*healthpulse.Page) string { return "" },
	}
}

func TestPageExtractor_FirstStrategyWithTextWins(t *testing.T) {
	t.Parallel()

	ext := extract.NewPageExtractor(staticFetcher("<html></html>"), textCleaner(), noMeta(),
		locator("selector", ""),
		locator("readability", "fallback text"),
		locator("trafilatura", "never used"),
	)

	result := ext.Extract(context.Background(), "https://example.com/a", []string{"article"})

	require.True(t, result.OK())
	assert.Equal(t, "fallback text", result.Content)
	assert.Equal(t, "<p>fallback text</p>", result.ContentHTML)
	assert.Equal(t, "readability", result.Strategy)
	assert.Nil(t, result.Failure)
}

func TestPageExtractor_PassesSelectorsAndPage(t *testing.T) {
	t.Parallel()

	var gotPage *healthpulse.Page
	var gotSelectors []string
	loc := &mock.ContentLocator{
		NameFn: func() string { return "selector" },
		LocateFn: func(page *healthpulse.Page, selectors []string) (string, error) {
			gotPage, gotSelectors = page, selectors
			return "text", nil
		},
	}

	ext := extract.NewPageExtractor(staticFetcher("<html>body</html>"), textCleaner(), noMeta(), loc)
	ext.Extract(context.Background(), "https://example.com/a", []string{".content", "article"})

	require.NotNil(t, gotPage)
	assert.Equal(t, "https://example.com/a", gotPage.URL)
	assert.Equal(t, "<html>body</html>", gotPage.HTML)
	assert.Equal(t, []string{".content", "article"}, gotSelectors)
}

func TestPageExtractor_FetchFailure(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("timeout")
	fetcher := &mock.Fetcher{
		FetchFn: func(context.Context, string) (string, error) {
			return "", fetchErr
		},
	}
	meta := &mock.MetaImageFinder{
		FindMetaImageFn: func(*healthpulse.Page) string {
			t.Fatal("meta images must not be read after a failed fetch")
			return ""
		},
	}

	result := extract.NewPageExtractor(fetcher, textCleaner(), meta, locator("selector", "x")).
		Extract(context.Background(), "https://example.com/a", nil)

	assert.False(t, result.OK())
	assert.Empty(t, result.Content)
	assert.Empty(t, result.ImageURL)
	require.NotNil(t, result.Failure)
	assert.Equal(t, healthpulse.FailureFetch, result.Failure.Kind)
	assert.ErrorIs(t, result.Failure, fetchErr)
}

func TestPageExtractor_NoContent(t *testing.T) {
	t.Parallel()

	locErr := errors.New("nothing scored")
	failing := &mock.ContentLocator{
		NameFn: func() string { return "readability" },
		LocateFn: func(*healthpulse.Page, []string) (string, error) {
			return "", locErr
		},
	}

	result := extract.NewPageExtractor(staticFetcher(""), textCleaner(), noMeta(), locator("selector", ""), failing).
		Extract(context.Background(), "https://example.com/a", nil)

	assert.Empty(t, result.Content)
	require.NotNil(t, result.Failure)
	assert.Equal(t, healthpulse.FailureEmpty, result.Failure.Kind)
	assert.ErrorIs(t, result.Failure, locErr)
}

func TestPageExtractor_RecoversPanickingStrategy(t *testing.T) {
	t.Parallel()

	panicky := &mock.ContentLocator{
		NameFn: func() string { return "selector" },
		LocateFn: func(*healthpulse.Page, []string) (string, error) {
			panic("boom")
		},
	}

	t.Run("chain continues", func(t *testing.T) {
		t.Parallel()

		result := extract.NewPageExtractor(staticFetcher("<html></html>"), textCleaner(), noMeta(), panicky, locator("readability", "recovered text")).
			Extract(context.Background(), "https://example.com/a", nil)

		require.True(t, result.OK())
		assert.Equal(t, "recovered text", result.Content)
	})

	t.Run("internal failure when nothing else works", func(t *testing.T) {
		t.Parallel()

		result := extract.NewPageExtractor(staticFetcher("<html></html>"), textCleaner(), noMeta(), panicky).
			Extract(context.Background(), "https://example.com/a", nil)

		require.NotNil(t, result.Failure)
		assert.Equal(t, healthpulse.FailureInternal, result.Failure.Kind)
		assert.Contains(t, result.Failure.Error(), "boom")
	})
}

func TestPageExtractor_ImagePriority(t *testing.T) {
	t.Parallel()

	meta := &mock.MetaImageFinder{
		FindMetaImageFn: func(*healthpulse.Page) string { return "https://example.com/og.jpg" },
	}

	t.Run("region image before meta image", func(t *testing.T) {
		t.Parallel()

		cleaner := &mock.ContentCleaner{
			CleanFn: func(region, _ string) (*healthpulse.CleanedContent, error) {
				return &healthpulse.CleanedContent{Text: region, ImageURL: "https://example.com/region.jpg"}, nil
			},
		}
		result := extract.NewPageExtractor(staticFetcher("x"), cleaner, meta, locator("selector", "text")).
			Extract(context.Background(), "https://example.com/a", nil)

		assert.Equal(t, "https://example.com/region.jpg", result.ImageURL)
	})

	t.Run("earlier region image is kept when a later region wins", func(t *testing.T) {
		t.Parallel()

		result := extract.NewPageExtractor(staticFetcher("x"), textCleaner(), meta,
			locator("selector", "img:https://example.com/selector.jpg"),
			locator("readability", "text"),
		).Extract(context.Background(), "https://example.com/a", nil)

		assert.Equal(t, "text", result.Content)
		assert.Equal(t, "https://example.com/selector.jpg", result.ImageURL)
	})

	t.Run("meta image when regions have none", func(t *testing.T) {
		t.Parallel()

		result := extract.NewPageExtractor(staticFetcher("x"), textCleaner(), meta, locator("selector", "text")).
			Extract(context.Background(), "https://example.com/a", nil)

		assert.Equal(t, "https://example.com/og.jpg", result.ImageURL)
	})
}

func TestPageExtractor_Integration(t *testing.T) {
	t.Parallel()

	cleaner := goquery.NewCleaner(goquery.DefaultSanitizer(), healthpulse.DefaultNormalizer())
	meta := goquery.NewMetaImageFinder()

	t.Run("ad banner removed and relative image resolved", func(t *testing.T) {
		t.Parallel()

		page := `<html><body><div class="ad-banner">Buy now</div><article><p>Exercise improves sleep.</p><img src="/img/a.jpg"></article></body></html>`
		ext := extract.NewPageExtractor(staticFetcher(page), cleaner, meta, goquery.NewSelectorLocator())

		result := ext.Extract(context.Background(), "https://example.com/news/1", []string{"article"})

		require.True(t, result.OK())
		assert.Equal(t, "Exercise improves sleep.", result.Content)
		assert.Equal(t, "https://example.com/img/a.jpg", result.ImageURL)
		assert.Equal(t, "selector", result.Strategy)
	})

	t.Run("selector priority", func(t *testing.T) {
		t.Parallel()

		page := `<html><body><article><p>From article</p></article><div class="content"><p>From content</p></div></body></html>`
		ext := extract.NewPageExtractor(staticFetcher(page), cleaner, meta, goquery.NewSelectorLocator())

		result := ext.Extract(context.Background(), "https://example.com/a", []string{".content", "article"})

		assert.Equal(t, "From content", result.Content)
	})

	t.Run("og image when content has none", func(t *testing.T) {
		t.Parallel()

		page := `<html><head><meta property="og:image" content="https://cdn.example.com/x.jpg"></head>
<body><article><p>Body text without pictures.</p></article></body></html>`
		ext := extract.NewPageExtractor(staticFetcher(page), cleaner, meta, goquery.NewSelectorLocator())

		result := ext.Extract(context.Background(), "https://example.com/a", []string{"article"})

		assert.Equal(t, "https://cdn.example.com/x.jpg", result.ImageURL)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		ext := extract.NewPageExtractor(staticFetcher(""), cleaner, meta, goquery.NewSelectorLocator(), readability.NewLocator())

		result := ext.Extract(context.Background(), "https://example.com/a", []string{"article"})

		assert.Empty(t, result.Content)
		require.NotNil(t, result.Failure)
		assert.Equal(t, healthpulse.FailureEmpty, result.Failure.Kind)
	})
}
