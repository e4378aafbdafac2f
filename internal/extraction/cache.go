package extraction

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/jonathan/ats-engine/internal/docstore"
)

// Cache memoizes extracted text per document path, keyed case-insensitively
// and invalidated when the document's modification time changes. Entries are
// immutable once written and replaced wholesale on staleness. Two callers
// racing on a miss may both extract; extraction is a pure function of the
// same bytes, so last write wins and no lock is held across I/O. Growth is
// unbounded: one entry per distinct document ever scored.
type Cache struct {
	store     docstore.Store
	extractor *Extractor
	entries   sync.Map // lowercased path → *cacheEntry
}

type cacheEntry struct {
	fingerprint int64 // document mod time in unix nanoseconds
	text        string
}

// NewCache creates a Cache extracting from the given document store.
func NewCache(store docstore.Store, logger *slog.Logger) *Cache {
	return &Cache{store: store, extractor: New(store, logger)}
}

// Text returns the extracted text for path, re-extracting only when the
// stored fingerprint no longer matches the document's current modification
// time. A missing or unreadable document yields "".
func (c *Cache) Text(ctx context.Context, path string) string {
	if strings.TrimSpace(path) == "" {
		return ""
	}

	info, err := c.store.Stat(ctx, path)
	if err != nil {
		c.extractor.log.Debug("resume stat failed", slog.String("path", path), slog.Any("error", err))
		return ""
	}

	key := strings.ToLower(path)
	fingerprint := info.ModTime.UnixNano()
	if v, ok := c.entries.Load(key); ok {
		if entry := v.(*cacheEntry); entry.fingerprint == fingerprint {
			return entry.text
		}
	}

	text := c.extractor.Text(ctx, path)
	c.entries.Store(key, &cacheEntry{fingerprint: fingerprint, text: text})
	return text
}
