package docstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Dir serves documents from a directory on the local filesystem, the way the
// upload layer stores resumes under its web root.
type Dir struct {
	root string
}

// NewDir creates a Dir store rooted at the given directory.
func NewDir(root string) (*Dir, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("store root is empty")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve store root %s: %w", root, err)
	}
	return &Dir{root: abs}, nil
}

// Stat returns the document's size and modification time.
func (d *Dir) Stat(_ context.Context, path string) (Info, error) {
	full, err := d.resolve(path)
	if err != nil {
		return Info{}, err
	}
	fi, err := os.Stat(full)
	if err != nil {
		return Info{}, fmt.Errorf("failed to stat document %s: %w", path, err)
	}
	return Info{Path: path, Size: fi.Size(), ModTime: fi.ModTime()}, nil
}

// Open opens the document for reading.
func (d *Dir) Open(_ context.Context, path string) (io.ReadCloser, error) {
	full, err := d.resolve(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(full)
	if err != nil {
		return nil, fmt.Errorf("failed to open document %s: %w", path, err)
	}
	return f, nil
}

// resolve maps a document locator to a filesystem path under the root.
// Web-style locators ("/uploads/resume.pdf") are relative to the root, not
// the filesystem root. Paths escaping the root are rejected.
func (d *Dir) resolve(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("document path is empty")
	}
	candidate := strings.TrimPrefix(path, "/")
	full := filepath.Join(d.root, filepath.FromSlash(candidate))
	rel, err := filepath.Rel(d.root, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("document path %s escapes store root", path)
	}
	return full, nil
}
