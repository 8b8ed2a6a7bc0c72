package main

import (
	"log/slog"

	"github.com/fwojciec/healthpulse"
	"github.com/fwojciec/healthpulse/bluemonday"
	"github.com/fwojciec/healthpulse/extract"
	"github.com/fwojciec/healthpulse/gofeed"
	"github.com/fwojciec/healthpulse/goquery"
	"github.com/fwojciec/healthpulse/htmltomarkdown"
	hphttp "github.com/fwojciec/healthpulse/http"
	"github.com/fwojciec/healthpulse/poll"
	"github.com/fwojciec/healthpulse/readability"
	hpslog "github.com/fwojciec/healthpulse/slog"
	"github.com/fwojciec/healthpulse/trafilatura"
)

// pipeline holds the extraction components built from a Config.
type pipeline struct {
	Fetcher   healthpulse.Fetcher
	Resolver  healthpulse.SelectorResolver
	Extractor healthpulse.PageExtractor
	Parser    healthpulse.FeedParser
	Converter healthpulse.Converter
}

func newPipeline(cfg *healthpulse.Config, logger *slog.Logger) (*pipeline, error) {
	normalizer, err := healthpulse.NewNormalizer(cfg.Boilerplate)
	if err != nil {
		return nil, err
	}

	fetcher := hpslog.NewLoggingFetcher(
		hphttp.NewFetcher(
			hphttp.WithTimeout(cfg.FetchTimeout),
			hphttp.WithUserAgent(cfg.UserAgent),
		),
		logger,
	)

	locators := []healthpulse.ContentLocator{goquery.NewSelectorLocator()}
	for _, name := range cfg.Fallbacks {
		switch name {
		case healthpulse.FallbackReadability:
			locators = append(locators, readability.NewLocator())
		case healthpulse.FallbackTrafilatura:
			locators = append(locators, trafilatura.NewLocator())
		}
	}

	cleaner := goquery.NewCleaner(goquery.NewSanitizer(cfg.Sanitizer), normalizer)
	extractor := hpslog.NewLoggingPageExtractor(
		extract.NewPageExtractor(fetcher, cleaner, goquery.NewMetaImageFinder(), locators...),
		logger,
	)
	resolver := hpslog.NewLoggingSelectorResolver(healthpulse.NewSelectorTable(cfg.Selectors), logger)

	parser := hpslog.NewLoggingFeedParser(&poll.Parser{
		Feeds:     gofeed.NewSource(fetcher),
		Resolver:  resolver,
		Extractor: extractor,
		Summaries: bluemonday.NewSummaryCleaner(normalizer),
		Threshold: cfg.SummaryThreshold,
		NewPacer:  poll.PacerFactory(cfg.FetchDelay),
	}, logger)

	return &pipeline{
		Fetcher:   fetcher,
		Resolver:  resolver,
		Extractor: extractor,
		Parser:    parser,
		Converter: htmltomarkdown.NewConverter(),
	}, nil
}

// Close releases the fetcher.
func (p *pipeline) Close() error {
	return p.Fetcher.Close()
}
