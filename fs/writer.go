// Package fs exports articles as markdown files with YAML front matter.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/healthpulse"
	yaml "gopkg.in/yaml.v3"
)

// frontMatter is the metadata block written at the top of each file.
type frontMatter struct {
	Title       string   `yaml:"title"`
	Slug        string   `yaml:"slug"`
	Source      string   `yaml:"source"`
	SourceName  string   `yaml:"sourceName,omitempty"`
	Category    string   `yaml:"category"`
	Published   string   `yaml:"published"`
	IsPublished bool     `yaml:"isPublished"`
	Image       string   `yaml:"image,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
	Summary     string   `yaml:"summary,omitempty"`
}

// ArticlePath returns the relative file path for an article:
// <category>/<slug>.md. Articles without a slug use their slugified title.
func ArticlePath(article *healthpulse.Article) string {
	slug := article.Slug
	if slug == "" {
		slug = healthpulse.Slugify(article.Title)
	}
	category := string(article.Category)
	if category == "" {
		category = "uncategorized"
	}
	return filepath.Join(category, slug+".md")
}

// FormatArticle formats an article with YAML front matter. The body is the
// processed content when present, otherwise the original content.
func FormatArticle(article *healthpulse.Article) (string, error) {
	fm := frontMatter{
		Title:       article.Title,
		Slug:        article.Slug,
		Source:      article.SourceURL,
		SourceName:  article.SourceName,
		Category:    string(article.Category),
		Published:   article.PublishedAt.UTC().Format(time.RFC3339),
		IsPublished: article.Published,
		Image:       article.ImageURL,
		Tags:        splitTags(article.Tags),
		Summary:     article.Summary,
	}
	meta, err := yaml.Marshal(&fm)
	if err != nil {
		return "", err
	}

	body := article.ProcessedContent
	if body == "" {
		body = article.OriginalContent
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(meta)
	b.WriteString("---\n\n")
	b.WriteString(body)
	return b.String(), nil
}

func splitTags(tags string) []string {
	var out []string
	for _, t := range strings.Split(tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Ensure Writer implements healthpulse.ArticleWriter at compile time.
var _ healthpulse.ArticleWriter = (*Writer)(nil)

// Writer writes articles as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteArticle writes an article to disk as a markdown file.
func (w *Writer) WriteArticle(ctx context.Context, article *healthpulse.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, ArticlePath(article))

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	content, err := FormatArticle(article)
	if err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(content), 0644)
}
