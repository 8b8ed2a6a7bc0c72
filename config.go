package healthpulse

import "time"

// Fallback strategy names accepted in Config.Fallbacks.
const (
	FallbackReadability = "readability"
	FallbackTrafilatura = "trafilatura"
)

// Defaults used by DefaultConfig.
const (
	DefaultFetchDelay   = time.Second
	DefaultFetchTimeout = 10 * time.Second
	DefaultUserAgent    = "Mozilla/5.0 (compatible; healthpulse/1.0; +https://github.com/fwojciec/healthpulse)"
)

// DefaultUnwantedTags are removed from content regions with their subtrees.
var DefaultUnwantedTags = []string{
	"script", "style", "aside", "nav", "footer", "header", "form", "input",
	"button", "select", "textarea", "iframe", "embed", "object", "noscript", "svg",
}

// DefaultUnwantedMarkers are class/id substrings that mark non-article blocks.
var DefaultUnwantedMarkers = []string{
	"ad", "advertisement", "ads", "promo", "social-share", "share",
	"comments", "comment", "related", "sidebar", "widget", "newsletter",
	"subscribe", "popup", "modal", "cookie", "consent", "sticky", "mobile-only",
}

// SanitizerConfig holds the denylists used to clean content regions.
type SanitizerConfig struct {
	Tags    []string
	Markers []string
}

// Config holds the externally editable settings of the extraction pipeline.
type Config struct {
	Selectors   []DomainSelectors
	Sanitizer   SanitizerConfig
	Boilerplate []string

	// SummaryThreshold is the summary length below which pages are fetched.
	SummaryThreshold int

	// FetchDelay separates consecutive fetches made for the same feed.
	FetchDelay   time.Duration
	FetchTimeout time.Duration
	UserAgent    string

	// Fallbacks lists the structural-inference strategies tried, in order,
	// when no selector yields content.
	Fallbacks []string
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Selectors: copySelectors(DefaultSelectors),
		Sanitizer: SanitizerConfig{
			Tags:    append([]string{}, DefaultUnwantedTags...),
			Markers: append([]string{}, DefaultUnwantedMarkers...),
		},
		Boilerplate:      append([]string{}, DefaultBoilerplatePatterns...),
		SummaryThreshold: DefaultSummaryThreshold,
		FetchDelay:       DefaultFetchDelay,
		FetchTimeout:     DefaultFetchTimeout,
		UserAgent:        DefaultUserAgent,
		Fallbacks:        []string{FallbackReadability, FallbackTrafilatura},
	}
}

// Validate returns an error if the configuration cannot drive the pipeline.
// Selector syntax is checked by the package that loads the configuration.
func (c *Config) Validate() error {
	if c.SummaryThreshold <= 0 {
		return Errorf(EINVALID, "summary threshold must be positive")
	}
	if c.FetchDelay < 0 {
		return Errorf(EINVALID, "fetch delay must not be negative")
	}
	if c.FetchTimeout <= 0 {
		return Errorf(EINVALID, "fetch timeout must be positive")
	}
	for _, entry := range c.Selectors {
		if entry.Domain == "" {
			return Errorf(EINVALID, "selector entry without domain")
		}
	}
	for _, name := range c.Fallbacks {
		switch name {
		case FallbackReadability, FallbackTrafilatura:
		default:
			return Errorf(EINVALID, "unknown fallback strategy %q", name)
		}
	}
	return nil
}
