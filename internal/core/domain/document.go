package domain

import "time"

// Document represents a source file after normalisation.
// It is the canonical plain-text representation handed to the summariser.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// URI is the original location (file path, "-" for stdin).
	URI string

	// Title is the human-readable title.
	Title string

	// Content is the full text content after normalisation.
	Content string

	// Metadata contains arbitrary key-value pairs such as the MIME type.
	Metadata map[string]any

	// CreatedAt is when the document was normalised.
	CreatedAt time.Time
}

// DocumentSummary pairs a normalised document with its summary.
type DocumentSummary struct {
	// Document is the normalised source document.
	Document Document

	// Summary is the extractive summary of Document.Content.
	Summary *Summary
}
