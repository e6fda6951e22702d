package lexrank

import (
	"math"
	"sort"
)

// Term is one non-zero entry of a sparse vector.
type Term struct {
	// Index is the position of the term in the document vocabulary.
	Index int

	// Weight is tf × idf.
	Weight float64
}

// Vector is a sparse TF-IDF vector with entries sorted by Index.
type Vector []Term

// Norm returns the Euclidean length of the vector.
func (v Vector) Norm() float64 {
	var sum float64
	for _, t := range v {
		sum += t.Weight * t.Weight
	}
	return math.Sqrt(sum)
}

// Weigh builds one vector per token list. The vocabulary is numbered by
// first appearance so the result depends only on the input order.
//
// tf is the raw count of a term in its sentence and
// idf = ln((1+N)/(1+df)), where N is the number of token lists and df the
// number of lists containing the term. Terms present in every list weigh 0
// and are left out of the vectors.
func Weigh(docs [][]string) []Vector {
	vocab := make(map[string]int)
	df := make([]int, 0)
	counts := make([]map[int]int, len(docs))

	for i, tokens := range docs {
		tf := make(map[int]int, len(tokens))
		for _, tok := range tokens {
			idx, ok := vocab[tok]
			if !ok {
				idx = len(df)
				vocab[tok] = idx
				df = append(df, 0)
			}
			if tf[idx] == 0 {
				df[idx]++
			}
			tf[idx]++
		}
		counts[i] = tf
	}

	n := float64(len(docs))
	idf := make([]float64, len(df))
	for idx, d := range df {
		idf[idx] = math.Log((1 + n) / (1 + float64(d)))
	}

	vectors := make([]Vector, len(docs))
	for i, tf := range counts {
		vec := make(Vector, 0, len(tf))
		for idx, c := range tf {
			if w := float64(c) * idf[idx]; w > 0 {
				vec = append(vec, Term{Index: idx, Weight: w})
			}
		}
		sort.Slice(vec, func(a, b int) bool { return vec[a].Index < vec[b].Index })
		vectors[i] = vec
	}
	return vectors
}

// Cosine returns the cosine similarity of a and b clamped to [0,1].
// Zero vectors have similarity 0 with everything.
func Cosine(a, b Vector) float64 {
	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}

	var dot float64
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Index == b[j].Index:
			dot += a[i].Weight * b[j].Weight
			i++
			j++
		case a[i].Index < b[j].Index:
			i++
		default:
			j++
		}
	}

	sim := dot / (na * nb)
	switch {
	case sim < 0:
		return 0
	case sim > 1:
		return 1
	default:
		return sim
	}
}
