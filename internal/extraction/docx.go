package extraction

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// docxTextRunRe matches the text runs of the main document part.
var docxTextRunRe = regexp.MustCompile(`<w:t[^>]*>([^<]*)</w:t>`)

// docxText opens the word-processing package from memory and concatenates its
// text runs in document order, one per line.
func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	content := doc.Editable().GetContent()
	runs := docxTextRunRe.FindAllStringSubmatch(content, -1)
	if len(runs) == 0 {
		return "", nil
	}

	var b strings.Builder
	for _, run := range runs {
		b.WriteString(html.UnescapeString(run[1]))
		b.WriteString("\n")
	}
	return b.String(), nil
}
