package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/precis-cli/internal/core/domain"
	"github.com/custodia-labs/precis-cli/internal/rankers/lexrank"
)

func scored(scores ...float64) []domain.Sentence {
	out := make([]domain.Sentence, len(scores))
	for i, s := range scores {
		out[i] = domain.Sentence{Position: i, Text: string(rune('A' + i)), Score: s}
	}
	return out
}

func positions(sentences []domain.Sentence) []int {
	out := make([]int, len(sentences))
	for i, s := range sentences {
		out[i] = s.Position
	}
	return out
}

func TestSelectSentences(t *testing.T) {
	tests := []struct {
		name     string
		scores   []float64
		k        int
		expected []int
	}{
		{"top two in document order", []float64{0.1, 0.4, 0.2, 0.3}, 2, []int{1, 3}},
		{"ties prefer earlier position", []float64{0.2, 0.2, 0.2, 0.2, 0.2}, 2, []int{0, 1}},
		{"tie at the cut", []float64{0.5, 0.1, 0.2, 0.2}, 2, []int{0, 2}},
		{"k equals n", []float64{0.3, 0.1, 0.6}, 3, []int{0, 1, 2}},
		{"k larger than n", []float64{0.3, 0.1}, 10, []int{0, 1}},
		{"k zero", []float64{0.3, 0.1}, 0, []int{}},
		{"empty input", nil, 3, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chosen, err := SelectSentences(scored(tt.scores...), tt.k)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, positions(chosen))
		})
	}
}

func TestSelectSentences_NegativeCount(t *testing.T) {
	_, err := SelectSentences(scored(0.5), -1)
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestSelectSentences_DoesNotModifyInput(t *testing.T) {
	input := scored(0.1, 0.9, 0.5)

	_, err := SelectSentences(input, 2)

	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, positions(input))
}

func TestSelectSentences_UniformGraphKeepsFirstK(t *testing.T) {
	const n = 7
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		for j := range matrix[i] {
			if i != j {
				matrix[i][j] = 0.3
			}
		}
	}
	scores, _, converged := lexrank.Iterate(matrix, 0, 1e-4, 200)
	require.True(t, converged)

	for k := 0; k <= n; k++ {
		selected, err := SelectSentences(scored(scores...), k)
		require.NoError(t, err)

		want := make([]int, k)
		for i := range want {
			want[i] = i
		}
		assert.Equal(t, want, positions(selected), "k=%d", k)
	}
}
