package driving

import (
	"context"

	"github.com/custodia-labs/precis-cli/internal/core/domain"
)

// SummaryService produces extractive summaries of plain text.
type SummaryService interface {
	// Summarise selects up to opts.SentenceCount sentences from text and
	// returns them in original document order.
	// Returns an empty summary and domain.ErrEmptyInput when the text
	// yields no usable sentence.
	Summarise(ctx context.Context, text string, opts domain.SummaryOptions) (*domain.Summary, error)
}
