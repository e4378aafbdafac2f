// Package extraction turns stored resume documents into plain text and
// memoizes the result per document.
package extraction

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/jonathan/ats-engine/internal/docstore"
)

// Extractor decodes documents from a store into plain text. Extraction never
// fails toward scoring callers: unreadable, corrupt or unsupported content
// degrades to empty text, logged at the boundary.
type Extractor struct {
	store docstore.Store
	log   *slog.Logger
}

// New creates an Extractor over the given document store.
func New(store docstore.Store, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{store: store, log: logger}
}

// Text extracts plain text for the document at path, dispatching on the file
// extension. A missing or completely unreadable document yields "" — the
// quality scorer treats that as "score 0, suggest re-upload".
func (e *Extractor) Text(ctx context.Context, path string) string {
	if strings.TrimSpace(path) == "" {
		return ""
	}

	data, err := e.read(ctx, path)
	if err != nil {
		e.log.Warn("resume read failed", slog.String("path", path), slog.Any("error", err))
		return ""
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		text, err := pdfText(data)
		if err != nil || strings.TrimSpace(text) == "" {
			// Scanned or corrupt PDFs fall back to the raw bytes; stray text
			// fragments in the stream still beat an empty result.
			e.log.Debug("pdf extraction degraded to raw bytes",
				slog.String("path", path), slog.Any("error", &UnreadableError{Path: path, Cause: err}))
			return string(data)
		}
		return text
	case ".docx":
		text, err := docxText(data)
		if err != nil {
			e.log.Warn("docx extraction failed", slog.Any("error", &UnreadableError{Path: path, Cause: err}))
			return ""
		}
		return text
	default:
		return string(data)
	}
}

func (e *Extractor) read(ctx context.Context, path string) ([]byte, error) {
	rc, err := e.store.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
