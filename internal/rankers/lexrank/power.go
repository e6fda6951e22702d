package lexrank

import "math"

// Iterate runs power iteration over the row-normalised matrix and returns
// the stationary scores, the number of iterations run and whether the L1
// change fell below epsilon before maxIterations.
//
// A row that sums to zero is treated as linking uniformly to every node,
// itself included. With damping d in (0,1) each step becomes
// (1-d)/N + d·step. Scores are renormalised to sum to 1 after every step.
func Iterate(matrix [][]float64, damping, epsilon float64, maxIterations int) ([]float64, int, bool) {
	n := len(matrix)
	if n == 0 {
		return []float64{}, 0, true
	}

	rowSums := make([]float64, n)
	for i, row := range matrix {
		for _, w := range row {
			rowSums[i] += w
		}
	}

	uniform := 1 / float64(n)
	scores := make([]float64, n)
	for i := range scores {
		scores[i] = uniform
	}
	next := make([]float64, n)

	for iter := 1; iter <= maxIterations; iter++ {
		// Mass from rows with no edges is spread evenly.
		var dangling float64
		for j := 0; j < n; j++ {
			if rowSums[j] == 0 {
				dangling += scores[j]
			}
		}
		dangling *= uniform

		for i := 0; i < n; i++ {
			sum := dangling
			for j := 0; j < n; j++ {
				if rowSums[j] != 0 && matrix[j][i] != 0 {
					sum += matrix[j][i] / rowSums[j] * scores[j]
				}
			}
			if damping > 0 {
				sum = (1-damping)*uniform + damping*sum
			}
			next[i] = sum
		}

		normalise(next)

		var delta float64
		for i := range next {
			delta += math.Abs(next[i] - scores[i])
		}
		scores, next = next, scores

		if delta < epsilon {
			return scores, iter, true
		}
	}
	return scores, maxIterations, false
}

func normalise(v []float64) {
	var sum float64
	for _, x := range v {
		sum += x
	}
	if sum == 0 {
		return
	}
	for i := range v {
		v[i] /= sum
	}
}
