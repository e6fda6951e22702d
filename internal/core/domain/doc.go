// Package domain defines the core business entities for Precis.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Sentence: A unit of a document with its position, text and tokens
//   - Summary: The ordered subset of sentences selected for a document
//   - Document: Plain text content extracted from a source file
//   - RawDocument: Opaque bytes read from a file before normalisation
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
