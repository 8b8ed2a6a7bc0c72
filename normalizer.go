package healthpulse

import (
	"regexp"
	"strings"
	"unicode"
)

// DefaultBoilerplatePatterns are the phrases deleted from extracted text.
// Matching is case-insensitive. Deletion is blunt: a legitimate sentence
// such as "read more about treatment options" loses its first two words.
var DefaultBoilerplatePatterns = []string{
	`sign up for.*?newsletter`,
	`subscribe.*?here`,
	`click.*?more`,
	`read more`,
	`advertisement`,
	`sponsored content`,
}

// Normalizer collapses whitespace and deletes boilerplate phrases from
// extracted text. It is safe for concurrent use.
type Normalizer struct {
	patterns []*regexp.Regexp
}

// NewNormalizer compiles the given boilerplate patterns.
// Returns EINVALID if a pattern is not a valid regular expression.
func NewNormalizer(patterns []string) (*Normalizer, error) {
	n := &Normalizer{patterns: make([]*regexp.Regexp, 0, len(patterns))}
	for _, p := range patterns {
		if strings.TrimSpace(p) == "" {
			continue
		}
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, Errorf(EINVALID, "invalid boilerplate pattern %q: %v", p, err)
		}
		n.patterns = append(n.patterns, re)
	}
	return n, nil
}

// DefaultNormalizer returns a Normalizer using DefaultBoilerplatePatterns.
func DefaultNormalizer() *Normalizer {
	n, err := NewNormalizer(DefaultBoilerplatePatterns)
	if err != nil {
		panic(err)
	}
	return n
}

// Normalize returns s with whitespace runs collapsed to single spaces,
// boilerplate phrases removed and surrounding space trimmed. Text made only
// of punctuation or symbols becomes empty.
//
// Deletion can join fragments into a new match, so rules are applied until
// the text stops changing. Normalize(Normalize(s)) == Normalize(s).
func (n *Normalizer) Normalize(s string) string {
	s = collapseWhitespace(s)
	for {
		out := s
		for _, re := range n.patterns {
			out = re.ReplaceAllString(out, "")
		}
		out = collapseWhitespace(out)
		if !hasWordRune(out) {
			out = ""
		}
		if out == s {
			return out
		}
		s = out
	}
}

// collapseWhitespace replaces every run of Unicode whitespace with a single
// space and trims the ends.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func hasWordRune(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
