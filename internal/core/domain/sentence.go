package domain

// Sentence is one sentence of a document.
// Sentences are produced once by a segmenter and never mutated afterwards
// except to attach a Score during ranking.
type Sentence struct {
	// Position is the zero-based ordinal of the sentence in the document.
	Position int

	// Text is the surface text, trimmed, with whitespace runs collapsed.
	Text string

	// Tokens are the normalised terms used for scoring.
	// May be empty when every word was a stop word.
	Tokens []string

	// Score is the centrality score attached by ranking.
	Score float64
}

// HasTokens returns true if the sentence carries at least one scoring term.
func (s Sentence) HasTokens() bool {
	return len(s.Tokens) > 0
}
