package healthpulse

import (
	"strings"
	"unicode"
)

// Slugify creates a URL-safe slug from an article title.
// Converts to lowercase, replaces runs of other characters with single
// hyphens and trims hyphens from both ends. Returns "article" when nothing
// usable remains.
func Slugify(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if !prevHyphen && sb.Len() > 0 {
			sb.WriteRune('-')
			prevHyphen = true
		}
	}

	result := strings.TrimSuffix(sb.String(), "-")
	if result == "" {
		return "article"
	}
	return result
}
