package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrEmptyInput indicates the text yielded no sentence with at least one token.
	// Callers treat it as recoverable and report that there is not enough text.
	ErrEmptyInput = errors.New("empty input: no sentences to summarise")

	// ErrInvalidParameter indicates a caller supplied an unusable parameter,
	// such as a negative sentence count or a damping factor outside [0,1).
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown MIME type, segmenter or output format.
	ErrUnsupportedType = errors.New("unsupported type")
)
