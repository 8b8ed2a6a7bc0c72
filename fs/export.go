package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/healthpulse"
)

// Ensure Export implements healthpulse.ArticleWriter at compile time.
var _ healthpulse.ArticleWriter = (*Export)(nil)

// Export writes articles with atomic update semantics. Files are written
// to baseDir/name.tmp and moved to baseDir/name on Commit, replacing any
// previous export.
type Export struct {
	baseDir string
	name    string
	writer  *Writer
}

// NewExport creates a new Export.
func NewExport(baseDir, name string) *Export {
	e := &Export{baseDir: baseDir, name: name}
	e.writer = NewWriter(e.tempDir())
	return e
}

func (e *Export) tempDir() string {
	return filepath.Join(e.baseDir, e.name+".tmp")
}

func (e *Export) finalDir() string {
	return filepath.Join(e.baseDir, e.name)
}

// WriteArticle writes an article into the pending export.
func (e *Export) WriteArticle(ctx context.Context, article *healthpulse.Article) error {
	return e.writer.WriteArticle(ctx, article)
}

// Commit replaces the final directory with the pending export.
func (e *Export) Commit() error {
	if err := os.MkdirAll(e.tempDir(), 0755); err != nil {
		return err
	}

	// Remove existing final directory if present
	if err := os.RemoveAll(e.finalDir()); err != nil {
		return err
	}

	return os.Rename(e.tempDir(), e.finalDir())
}

// Abort discards the pending export.
func (e *Export) Abort() error {
	return os.RemoveAll(e.tempDir())
}
