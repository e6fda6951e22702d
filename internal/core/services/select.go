package services

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/precis-cli/internal/core/domain"
)

// SelectSentences returns the k highest scoring sentences in document order.
//
// Sentences are ranked by Score descending; equal scores keep the earlier
// position. A k larger than the number of sentences returns all of them.
// A negative k returns domain.ErrInvalidParameter. The input is not modified.
func SelectSentences(sentences []domain.Sentence, k int) ([]domain.Sentence, error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: sentence count %d", domain.ErrInvalidParameter, k)
	}
	if k > len(sentences) {
		k = len(sentences)
	}

	ranked := make([]domain.Sentence, len(sentences))
	copy(ranked, sentences)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Position < ranked[j].Position
	})

	chosen := ranked[:k]
	sort.Slice(chosen, func(i, j int) bool {
		return chosen[i].Position < chosen[j].Position
	})
	return chosen, nil
}
