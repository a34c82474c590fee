// Package dictionary looks up verb entries by spelling.
//
// Two backends implement Finder: FileFinder reads per-initial-letter files
// (p.json, n.yaml, ...) from a directory, SQLiteStore reads a table the
// Importer fills from the same files.
package dictionary

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/ppiankov/akkad/internal/model"
)

var (
	// ErrNotFound is returned when no entry matches the verb.
	ErrNotFound = errors.New("verb not found")

	// ErrNoDictionary is returned when no letter file exists for the verb's
	// initial. It wraps ErrNotFound.
	ErrNoDictionary = fmt.Errorf("no dictionary for initial letter: %w", ErrNotFound)
)

// Finder is the lookup service the conjugation pipeline depends on
type Finder interface {
	Find(ctx context.Context, verb string) (*model.Entry, error)
}

// NormalizeVerb returns the lookup key for a spelling: trimmed and NFC, so that
// a macron typed as a combining mark matches the precomposed letter.
func NormalizeVerb(verb string) string {
	return norm.NFC.String(strings.TrimSpace(verb))
}

// Initial returns the first letter of a normalized verb, which names its letter file.
func Initial(verb string) (string, error) {
	verb = NormalizeVerb(verb)
	if verb == "" {
		return "", fmt.Errorf("empty verb: %w", ErrNotFound)
	}
	r, _ := utf8.DecodeRuneInString(verb)
	if r == utf8.RuneError {
		return "", fmt.Errorf("verb %q is not valid UTF-8: %w", verb, ErrNotFound)
	}
	return string(r), nil
}

// cloneEntry returns a deep copy so callers never share slices with the cache.
func cloneEntry(e model.Entry) *model.Entry {
	c := e
	c.Root = append([]string(nil), e.Root...)
	c.Meaning = append(model.Meanings(nil), e.Meaning...)
	return &c
}
