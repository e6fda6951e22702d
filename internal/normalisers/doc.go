// Package normalisers provides implementations of the Normaliser interface
// for various document formats. Each normaliser extracts the readable text
// of one family of MIME types, with paragraph breaks preserved as blank
// lines so the segmenters can treat headings and list items as sentences.
//
// Normalisers are registered with the NormaliserRegistry at startup.
// This package holds the helpers they share.
package normalisers
