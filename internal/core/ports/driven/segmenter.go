package driven

import "github.com/custodia-labs/precis-cli/internal/core/domain"

// Segmenter splits raw text into an ordered sequence of sentences,
// each carrying its normalised scoring tokens.
type Segmenter interface {
	// Kind identifies the segmentation strategy.
	Kind() domain.SegmenterKind

	// Segment splits text into sentences for the given language.
	// Returns domain.ErrEmptyInput when no sentence has at least one token.
	// Sentences without tokens are otherwise retained.
	Segment(text string, lang domain.Language, opts domain.TokenOptions) ([]domain.Sentence, error)
}
