package lexrank

// BuildGraph returns the dense similarity matrix of vectors. The matrix is
// symmetric with a zero diagonal.
//
// With a positive threshold the graph is discrete: pairs whose similarity
// exceeds the threshold get weight 1 and all others 0.
func BuildGraph(vectors []Vector, threshold float64) [][]float64 {
	n := len(vectors)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sim := Cosine(vectors[i], vectors[j])
			if threshold > 0 {
				if sim > threshold {
					sim = 1
				} else {
					sim = 0
				}
			}
			matrix[i][j] = sim
			matrix[j][i] = sim
		}
	}
	return matrix
}
