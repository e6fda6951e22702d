// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Segmenter: Splits text into sentences and scoring tokens
//   - Ranker: Scores sentences by centrality
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These are only needed for the document path (files rather than raw text):
//
//   - DocumentReader: Reads a file into a RawDocument
//   - Normaliser: Extracts plain text from one document format
//   - NormaliserRegistry: Selects the appropriate normaliser
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, segmenter, ranker or normaliser package
package driven
