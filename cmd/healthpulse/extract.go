package main

import (
	"fmt"

	"github.com/fwojciec/healthpulse"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	selectors := append(append([]string{}, c.Selector...), deps.Resolver.Resolve(c.URL)...)

	result := deps.Extractor.Extract(deps.Ctx, c.URL, selectors)
	if !result.OK() {
		var err error = healthpulse.Errorf(healthpulse.EINTERNAL, "no content extracted")
		if result.Failure != nil {
			err = result.Failure
		}
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	content := result.Content
	if c.Markdown {
		md, err := deps.Converter.Convert(result.ContentHTML, c.URL)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", healthpulse.ErrorMessage(err))
			return err
		}
		content = md
	}

	fmt.Fprintf(deps.Stdout, "Strategy: %s\n", result.Strategy)
	if result.ImageURL != "" {
		fmt.Fprintf(deps.Stdout, "Image: %s\n", result.ImageURL)
	}
	fmt.Fprintf(deps.Stdout, "\n%s\n", content)
	return nil
}
