// Package lexrank scores sentences by their centrality in a cosine
// similarity graph of TF-IDF vectors.
//
// The pipeline is: Weigh turns token lists into sparse vectors, BuildGraph
// computes the pairwise similarity matrix and Iterate runs power iteration
// over the row-normalised matrix. Ranker ties the three together behind the
// driven.Ranker port.
package lexrank
