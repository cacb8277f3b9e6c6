package solutions

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// DefaultDir is where solution write-ups land unless configured otherwise.
const DefaultDir = "solutions"

// Dir stores one markdown file per problem slug.
type Dir struct {
	path string
}

// NewDir returns a Dir rooted at path. The directory is created lazily on
// the first write.
func NewDir(path string) Dir {
	if path == "" {
		path = DefaultDir
	}
	return Dir{path: path}
}

// Root returns the directory path.
func (d Dir) Root() string { return d.path }

// Path returns the file path for a slug.
func (d Dir) Path(slug string) string {
	return filepath.Join(d.path, slug+".md")
}

// Exists reports whether a write-up is stored for the slug.
func (d Dir) Exists(slug string) bool {
	_, err := os.Stat(d.Path(slug))
	return err == nil
}

// Write stores content for the slug, replacing any previous file. The
// write is atomic so a crash never leaves a half-written document.
func (d Dir) Write(slug, content string) (string, error) {
	if err := os.MkdirAll(d.path, 0o755); err != nil {
		return "", fmt.Errorf("create solutions dir: %w", err)
	}
	path := d.Path(slug)
	if err := renameio.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write solution %s: %w", slug, err)
	}
	return path, nil
}

// Read returns the stored write-up for the slug.
func (d Dir) Read(slug string) (string, error) {
	data, err := os.ReadFile(d.Path(slug))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
