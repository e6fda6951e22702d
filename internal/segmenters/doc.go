// Package segmenters provides the helpers shared by the driven.Segmenter
// implementations: paragraph splitting, whitespace normalisation and
// turning sentence texts into domain.Sentence values with tokens.
//
// Implementations live in subpackages:
//   - rules: punctuation with abbreviation and decimal exceptions (default)
//   - punkt: trained Punkt model for English
package segmenters
