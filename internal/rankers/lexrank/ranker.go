package lexrank

import (
	"fmt"

	"github.com/custodia-labs/precis-cli/internal/core/domain"
	"github.com/custodia-labs/precis-cli/internal/core/ports/driven"
)

// Ensure Ranker implements the interface.
var _ driven.Ranker = (*Ranker)(nil)

// Name is the algorithm identifier reported by Ranker.Name.
const Name = "lexrank"

// Ranker implements driven.Ranker with LexRank.
type Ranker struct{}

// New creates a LexRank ranker.
func New() *Ranker {
	return &Ranker{}
}

// Name returns "lexrank".
func (r *Ranker) Name() string {
	return Name
}

// Rank scores sentences by eigenvector centrality in their similarity graph.
func (r *Ranker) Rank(sentences []domain.Sentence, opts domain.RankOptions) (*driven.RankResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("lexrank: %w", err)
	}

	docs := make([][]string, len(sentences))
	for i, s := range sentences {
		docs[i] = s.Tokens
	}

	matrix := BuildGraph(Weigh(docs), opts.Threshold)
	scores, iterations, converged := Iterate(matrix, opts.Damping, opts.Epsilon, opts.MaxIterations)

	return &driven.RankResult{
		Scores:     scores,
		Iterations: iterations,
		Converged:  converged,
	}, nil
}
