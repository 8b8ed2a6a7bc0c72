package main

import (
	"fmt"

	"github.com/fwojciec/healthpulse"
)

// Run executes the articles command.
func (c *ArticlesCmd) Run(deps *Dependencies) error {
	filter := healthpulse.ArticleFilter{Limit: c.Limit}
	if c.Category != "" {
		category := healthpulse.Category(c.Category)
		if !category.Valid() {
			fmt.Fprintf(deps.Stderr, "error: unknown category %q\n", c.Category)
			return healthpulse.Errorf(healthpulse.EINVALID, "unknown category %q", c.Category)
		}
		filter.Category = &category
	}
	if c.Unpublished {
		published := false
		filter.Published = &published
	}

	articles, err := deps.Articles.FindArticles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", healthpulse.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found. Use 'healthpulse poll' to fetch some.")
		return nil
	}

	for _, a := range articles {
		state := "draft"
		if a.Published {
			state = "published"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %-9s  %-9s  %s\n    %s\n",
			a.ID, a.PublishedAt.UTC().Format("2006-01-02"), a.Category, state, a.Title, a.SourceURL)
	}

	return nil
}

// Run executes the publish command.
func (c *PublishCmd) Run(deps *Dependencies) error {
	published := true
	article, err := deps.Articles.UpdateArticle(deps.Ctx, c.ID, healthpulse.ArticleUpdate{Published: &published})
	if err != nil {
		if healthpulse.ErrorCode(err) == healthpulse.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: article %q not found. Use 'healthpulse articles' to see stored articles.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", healthpulse.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Published %q (%s)\n", article.Title, article.Slug)
	return nil
}
