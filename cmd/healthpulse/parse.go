package main

import (
	"fmt"

	"github.com/fwojciec/healthpulse"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	result, err := deps.Parser.ParseFeed(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", healthpulse.ErrorMessage(err))
		return err
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(deps.Stderr, "warning: %v\n", w)
	}

	fmt.Fprintf(deps.Stdout, "# %s\n\n", result.Title)
	if len(result.Records) == 0 {
		fmt.Fprintln(deps.Stdout, "No entries found.")
		return nil
	}
	fmt.Fprintln(deps.Stdout, healthpulse.FormatRecords(result.Records))
	return nil
}
