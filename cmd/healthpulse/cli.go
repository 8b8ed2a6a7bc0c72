package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/healthpulse"
	"github.com/fwojciec/healthpulse/bloom"
	"github.com/fwojciec/healthpulse/poll"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Config    *healthpulse.Config
	Feeds     healthpulse.FeedService
	Articles  healthpulse.ArticleService
	Resolver  healthpulse.SelectorResolver
	Extractor healthpulse.PageExtractor
	Parser    healthpulse.FeedParser
	Converter healthpulse.Converter
	Poller    *poll.Poller

	// Seen is the link filter shared with Poller.
	Seen *bloom.Filter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `type:"path" env:"HEALTHPULSE_CONFIG" help:"YAML config file"`
	DB      string `name:"db" type:"path" env:"HEALTHPULSE_DB" help:"SQLite database path"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Feed     FeedCmd     `cmd:"" help:"Manage polled feeds"`
	Poll     PollCmd     `cmd:"" help:"Poll due feeds and store new articles"`
	Parse    ParseCmd    `cmd:"" help:"Parse a feed and print its records without storing them"`
	Extract  ExtractCmd  `cmd:"" help:"Extract the main content of an article page"`
	Articles ArticlesCmd `cmd:"" help:"List stored articles"`
	Publish  PublishCmd  `cmd:"" help:"Mark an article as published"`
	Export   ExportCmd   `cmd:"" help:"Export articles as markdown files"`
	ShowConf ConfigCmd   `cmd:"" name:"config" help:"Print the effective configuration"`
}

// FeedCmd groups the feed subcommands.
type FeedCmd struct {
	Add     FeedAddCmd     `cmd:"" help:"Add a feed"`
	List    FeedListCmd    `cmd:"" help:"List feeds"`
	Delete  FeedDeleteCmd  `cmd:"" help:"Delete a feed"`
	Enable  FeedEnableCmd  `cmd:"" help:"Resume polling a feed"`
	Disable FeedDisableCmd `cmd:"" help:"Stop polling a feed"`
}

// FeedAddCmd is the "feed add" subcommand.
type FeedAddCmd struct {
	URL      string        `arg:"" help:"Feed URL"`
	Category string        `short:"c" required:"" enum:"medicine,fitness,nutrition,lifestyle" help:"Article category (medicine, fitness, nutrition, lifestyle)"`
	Interval time.Duration `short:"i" default:"30m" help:"Poll interval"`
}

// FeedListCmd is the "feed list" subcommand.
type FeedListCmd struct{}

// FeedDeleteCmd is the "feed delete" subcommand.
type FeedDeleteCmd struct {
	ID    string `arg:"" help:"Feed ID"`
	Force bool   `help:"Confirm deletion"`
}

// FeedEnableCmd is the "feed enable" subcommand.
type FeedEnableCmd struct {
	ID string `arg:"" help:"Feed ID"`
}

// FeedDisableCmd is the "feed disable" subcommand.
type FeedDisableCmd struct {
	ID string `arg:"" help:"Feed ID"`
}

// PollCmd is the "poll" subcommand.
type PollCmd struct {
	Force       bool `short:"f" help:"Poll every active feed regardless of interval"`
	Concurrency int  `short:"c" default:"4" help:"Feeds polled at once"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	URL string `arg:"" help:"Feed URL"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL      string   `arg:"" help:"Article page URL"`
	Selector []string `short:"s" help:"CSS selector to try before the configured ones (repeatable)"`
	Markdown bool     `short:"m" help:"Print the cleaned region as Markdown"`
}

// ArticlesCmd is the "articles" subcommand.
type ArticlesCmd struct {
	Category    string `short:"c" help:"Only show this category"`
	Limit       int    `short:"n" default:"20" help:"Maximum number of articles"`
	Unpublished bool   `short:"u" help:"Only show unpublished articles"`
}

// PublishCmd is the "publish" subcommand.
type PublishCmd struct {
	ID string `arg:"" help:"Article ID"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir string `arg:"" type:"path" help:"Output directory (replaced on success)"`
	All bool   `help:"Include unpublished articles"`
}

// ConfigCmd is the "config" subcommand.
type ConfigCmd struct{}
