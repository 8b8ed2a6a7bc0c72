package healthpulse

// Converter renders sanitized article HTML as Markdown.
type Converter interface {
	// Convert transforms a cleaned content region (ExtractionResult.ContentHTML)
	// into Markdown. Relative links and images are resolved against pageURL.
	Convert(html, pageURL string) (string, error)
}
