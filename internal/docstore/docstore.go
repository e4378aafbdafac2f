// Package docstore abstracts read access to uploaded resume documents.
package docstore

import (
	"context"
	"io"
	"time"
)

// Info describes a stored document at a point in time. ModTime doubles as the
// document's cache-validity fingerprint: when the underlying file changes, the
// fingerprint changes with it.
type Info struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// Store provides read-only access to uploaded documents. The upload layer owns
// validation (extension allow-list, size limits, content signatures); readers
// must tolerate whatever bytes they are handed.
type Store interface {
	Stat(ctx context.Context, path string) (Info, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}
