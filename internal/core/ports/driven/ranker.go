package driven

import "github.com/custodia-labs/precis-cli/internal/core/domain"

// Ranker scores sentences by their importance within the document.
// Implementations must be deterministic for identical input.
type Ranker interface {
	// Name identifies the ranking algorithm for logging.
	Name() string

	// Rank returns one non-negative score per sentence, in sentence order.
	Rank(sentences []domain.Sentence, opts domain.RankOptions) (*RankResult, error)
}

// RankResult contains the scores produced by a Ranker.
type RankResult struct {
	// Scores holds one score per sentence index; they sum to 1 when non-empty.
	Scores []float64

	// Iterations is the number of iterations performed.
	Iterations int

	// Converged is false when the iteration cap was reached first.
	Converged bool
}
