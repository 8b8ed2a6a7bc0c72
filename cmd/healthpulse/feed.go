package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/healthpulse"
)

// Run executes the feed add command.
func (c *FeedAddCmd) Run(deps *Dependencies) error {
	feed := &healthpulse.Feed{
		URL:          c.URL,
		Category:     healthpulse.Category(c.Category),
		Active:       true,
		PollInterval: c.Interval,
	}
	if err := deps.Feeds.CreateFeed(deps.Ctx, feed); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", healthpulse.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added feed %s (%s)\n", feed.URL, feed.ID)
	return nil
}

// Run executes the feed list command.
func (c *FeedListCmd) Run(deps *Dependencies) error {
	feeds, err := deps.Feeds.FindFeeds(deps.Ctx, healthpulse.FeedFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", healthpulse.ErrorMessage(err))
		return err
	}

	if len(feeds) == 0 {
		fmt.Fprintln(deps.Stdout, "No feeds found. Use 'healthpulse feed add' to create one.")
		return nil
	}

	for _, f := range feeds {
		state := "active"
		if !f.Active {
			state = "disabled"
		}
		last := "never"
		if f.LastFetchedAt != nil {
			last = f.LastFetchedAt.UTC().Format(time.RFC3339)
		}
		fmt.Fprintf(deps.Stdout, "%s  %-9s  %-8s  every %s  last %s  %s\n",
			f.ID, f.Category, state, f.PollInterval, last, f.URL)
	}

	return nil
}

// Run executes the feed delete command.
func (c *FeedDeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return healthpulse.Errorf(healthpulse.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Feeds.DeleteFeed(deps.Ctx, c.ID); err != nil {
		if healthpulse.ErrorCode(err) == healthpulse.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: feed %q not found. Use 'healthpulse feed list' to see available feeds.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", healthpulse.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted feed %s\n", c.ID)
	return nil
}

// Run executes the feed enable command.
func (c *FeedEnableCmd) Run(deps *Dependencies) error {
	return setFeedActive(deps, c.ID, true)
}

// Run executes the feed disable command.
func (c *FeedDisableCmd) Run(deps *Dependencies) error {
	return setFeedActive(deps, c.ID, false)
}

func setFeedActive(deps *Dependencies, id string, active bool) error {
	feed, err := deps.Feeds.UpdateFeed(deps.Ctx, id, healthpulse.FeedUpdate{Active: &active})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", healthpulse.ErrorMessage(err))
		return err
	}

	verb := "Enabled"
	if !active {
		verb = "Disabled"
	}
	fmt.Fprintf(deps.Stdout, "%s feed %s\n", verb, feed.URL)
	return nil
}
