package healthpulse

import (
	"strings"
	"time"
)

// FormatRecords formats article records for display.
// Each record starts with its title, followed by metadata lines and content.
// Records are separated by blank lines.
func FormatRecords(records []*ArticleRecord) string {
	if len(records) == 0 {
		return ""
	}

	parts := make([]string, 0, len(records))
	for _, r := range records {
		var b strings.Builder
		b.WriteString("## ")
		b.WriteString(r.Title)
		b.WriteString("\n")
		if r.Link != "" {
			b.WriteString("Link: " + r.Link + "\n")
		}
		if r.PublishedAt != nil {
			b.WriteString("Published: " + r.PublishedAt.UTC().Format(time.RFC3339) + "\n")
		}
		if r.ImageURL != "" {
			b.WriteString("Image: " + r.ImageURL + "\n")
		}
		if r.Extracted {
			b.WriteString("Source: page\n")
		} else {
			b.WriteString("Source: summary\n")
		}
		b.WriteString(r.Content)
		parts = append(parts, b.String())
	}

	return strings.Join(parts, "\n\n")
}
