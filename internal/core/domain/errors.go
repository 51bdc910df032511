package domain

import "errors"

// Domain errors represent caller-input failures.
// Absence of data (word not found, no lemma match, token skipped) is never
// an error; it is communicated through ok-style returns and empty results.
var (
	// ErrUnknownPOSTag indicates a POS code that is not in the closed catalog.
	ErrUnknownPOSTag = errors.New("unknown POS tag")

	// ErrInvalidLevel indicates a CEFR ordinal outside 1..6 or a label that
	// is not one of the six recognised strings.
	ErrInvalidLevel = errors.New("invalid CEFR level")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
