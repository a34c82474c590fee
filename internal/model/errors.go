package model

import "errors"

// Error kinds raised by parsing, classification and word building.
// Callers branch on them with errors.Is; context is attached with %w.
var (
	// ErrUnrecognizedStemFamily is returned when the declared stem family
	// is not one the engine can conjugate (today only "g-stem").
	ErrUnrecognizedStemFamily = errors.New("unrecognized stem family")

	// ErrInvalidRootLength is returned for roots that do not have 2 or 3 consonants.
	ErrInvalidRootLength = errors.New("invalid root length")

	// ErrUnknownPhoneme is returned when a character is outside the closed
	// phoneme inventory expected at that position.
	ErrUnknownPhoneme = errors.New("unknown phoneme")

	// ErrUnrecognizedVerbType is returned for a declared type other than
	// "active" or "adjectival".
	ErrUnrecognizedVerbType = errors.New("unrecognized verb type")
)

// IsInputError reports whether err is one of the engine's error kinds,
// i.e. the dictionary record itself is malformed.
func IsInputError(err error) bool {
	return errors.Is(err, ErrUnrecognizedStemFamily) ||
		errors.Is(err, ErrInvalidRootLength) ||
		errors.Is(err, ErrUnknownPhoneme) ||
		errors.Is(err, ErrUnrecognizedVerbType)
}
