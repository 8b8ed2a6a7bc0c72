package healthpulse_test

import (
	"testing"

	"github.com/fwojciec/healthpulse"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"lowercases and hyphenates", "Vitamin D and Bone Health", "vitamin-d-and-bone-health"},
		{"collapses punctuation runs", "Sleep: why it matters -- a lot!", "sleep-why-it-matters-a-lot"},
		{"trims leading punctuation", "  ...Walking daily", "walking-daily"},
		{"keeps non-ASCII letters", "Здоровое питание", "здоровое-питание"},
		{"falls back for empty title", "???", "article"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, healthpulse.Slugify(tt.title))
		})
	}
}
