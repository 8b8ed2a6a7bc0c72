package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/healthpulse"
	"github.com/fwojciec/healthpulse/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	filter := healthpulse.ArticleFilter{}
	if !c.All {
		published := true
		filter.Published = &published
	}

	articles, err := deps.Articles.FindArticles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", healthpulse.ErrorMessage(err))
		return err
	}

	dir := filepath.Clean(c.Dir)
	export := fs.NewExport(filepath.Dir(dir), filepath.Base(dir))
	for _, a := range articles {
		if err := export.WriteArticle(deps.Ctx, a); err != nil {
			_ = export.Abort()
			fmt.Fprintf(deps.Stderr, "error: export %q: %s\n", a.Title, healthpulse.ErrorMessage(err))
			return err
		}
	}
	if err := export.Commit(); err != nil {
		_ = export.Abort()
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d articles to %s\n", len(articles), dir)
	return nil
}
