package driving

import (
	"context"

	"github.com/custodia-labs/precis-cli/internal/core/domain"
)

// DocumentService summarises documents stored in files.
type DocumentService interface {
	// SummariseFile reads and normalises the file at path, then summarises
	// its text content.
	SummariseFile(ctx context.Context, path string, opts domain.SummaryOptions) (*domain.DocumentSummary, error)

	// SummariseRaw normalises an already loaded raw document and summarises it.
	SummariseRaw(ctx context.Context, raw *domain.RawDocument, opts domain.SummaryOptions) (*domain.DocumentSummary, error)

	// SupportedMIMETypes returns the document formats that can be summarised.
	SupportedMIMETypes() []string
}
