package normalisers

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/precis-cli/internal/core/domain"
	"github.com/custodia-labs/precis-cli/internal/core/ports/driven"
)

// Metadata keys set on every normalised document.
const (
	MetaMIMEType = "mime_type"
	MetaFormat   = "format"
)

var (
	trailingSpace = regexp.MustCompile(`[ \t]+\n`)
	blankRuns     = regexp.MustCompile(`\n{3,}`)
)

// NewResult builds the normalisation result for raw with the given title,
// extracted text and format name. Metadata is copied from raw.
func NewResult(raw *domain.RawDocument, title, content, format string) *driven.NormaliseResult {
	metadata := CopyMetadata(raw.Metadata)
	if metadata == nil {
		metadata = make(map[string]any)
	}
	metadata[MetaMIMEType] = raw.MIMEType
	metadata[MetaFormat] = format

	return &driven.NormaliseResult{
		Document: domain.Document{
			ID:        uuid.New().String(),
			URI:       raw.URI,
			Title:     title,
			Content:   content,
			Metadata:  metadata,
			CreatedAt: time.Now(),
		},
	}
}

// TitleFromURI derives a readable title from a file name:
// "/docs/annual_report-2024.pdf" becomes "annual report 2024".
// Metadata["title"] takes precedence when set.
func TitleFromURI(uri string, metadata map[string]any) string {
	if title, ok := metadata["title"].(string); ok && title != "" {
		return title
	}

	name := filepath.Base(uri)
	if name == "." || name == "/" || name == "-" {
		return ""
	}
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	return strings.TrimSpace(name)
}

// CopyMetadata returns a shallow copy of src, or nil when src is nil.
func CopyMetadata(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// TidyText normalises line endings, drops trailing spaces on each line,
// collapses runs of blank lines to one and trims the result.
func TidyText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\u00a0", " ")
	text = trailingSpace.ReplaceAllString(text, "\n")
	text = blankRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
