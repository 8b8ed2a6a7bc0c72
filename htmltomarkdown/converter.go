// Package htmltomarkdown renders extracted article regions as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/strikethrough"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/healthpulse"
)

// Ensure Converter implements healthpulse.Converter at compile time.
var _ healthpulse.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter with commonmark, strikethrough and
// table support.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			strikethrough.NewStrikethroughPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms an article region into Markdown.
func (c *Converter) Convert(html, pageURL string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", healthpulse.Errorf(healthpulse.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html, converter.WithDomain(pageURL))
	if err != nil {
		return "", healthpulse.Errorf(healthpulse.EINTERNAL, "convert article: %v", err)
	}

	return strings.TrimSpace(result), nil
}
