package main

import (
	"fmt"

	"github.com/fwojciec/healthpulse"
)

// Run executes the poll command.
func (c *PollCmd) Run(deps *Dependencies) error {
	deps.Poller.Concurrency = c.Concurrency

	if err := deps.Poller.Warm(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", healthpulse.ErrorMessage(err))
		return err
	}
	if deps.Seen != nil {
		deps.Logger.Debug("warmed link filter", "links", deps.Seen.EstimatedCount())
	}

	reports, err := deps.Poller.PollDue(deps.Ctx, c.Force)
	if err != nil && reports == nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", healthpulse.ErrorMessage(err))
		return err
	}

	if len(reports) == 0 {
		fmt.Fprintln(deps.Stdout, "No feeds due.")
		return err
	}

	var created, failed int
	for _, r := range reports {
		if r.Err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s: %v\n", r.Feed.URL, r.Err)
			continue
		}
		created += r.Created
		fmt.Fprintf(deps.Stdout, "%s: %d entries, %d new, %d already stored\n",
			r.Feed.URL, r.Found, r.Created, r.Skipped)
		for _, w := range r.Warnings {
			fmt.Fprintf(deps.Stderr, "  warning: %v\n", w)
		}
	}
	fmt.Fprintf(deps.Stdout, "Polled %d feeds, stored %d new articles\n", len(reports), created)

	if err != nil {
		return err
	}
	if failed > 0 {
		return healthpulse.Errorf(healthpulse.EINTERNAL, "%d of %d feeds failed", failed, len(reports))
	}
	return nil
}
