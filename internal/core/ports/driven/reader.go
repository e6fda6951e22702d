package driven

import (
	"context"

	"github.com/custodia-labs/precis-cli/internal/core/domain"
)

// DocumentReader loads a document's bytes and detects its MIME type.
type DocumentReader interface {
	// Read returns the raw document at path.
	// Returns domain.ErrNotFound if the path does not exist.
	Read(ctx context.Context, path string) (*domain.RawDocument, error)
}
