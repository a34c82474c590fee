package conjugate

import (
	"fmt"
	"unicode/utf8"

	"github.com/ppiankov/akkad/internal/model"
	"github.com/ppiankov/akkad/internal/phonology"
)

// ParseEntry validates a raw dictionary entry and builds the record the
// engine reads. Root length is left to the classifier.
func ParseEntry(e model.Entry) (*model.VerbRecord, error) {
	vt, err := model.ParseVerbType(e.Type)
	if err != nil {
		return nil, fmt.Errorf("type: %w", err)
	}

	root := make(model.Root, 0, len(e.Root))
	for i, s := range e.Root {
		c, err := singleRune(s)
		if err != nil {
			return nil, fmt.Errorf("root[%d]: %w", i, err)
		}
		if phonology.IsVowel(c) {
			return nil, fmt.Errorf("root[%d]: %q is a vowel: %w", i, s, model.ErrUnknownPhoneme)
		}
		root = append(root, c)
	}

	theme, err := stemVowel(e.ThemeVowel)
	if err != nil {
		return nil, fmt.Errorf("theme_vowel: %w", err)
	}
	adj, err := stemVowel(e.AdjectivalVowel)
	if err != nil {
		return nil, fmt.Errorf("adjectival_vowel: %w", err)
	}

	meaning := make([]string, len(e.Meaning))
	copy(meaning, e.Meaning)

	return &model.VerbRecord{
		Transcription: e.Transcription,
		Type:          vt,
		StemFamily:    e.Stem,
		Root:          root,
		Phonetics: model.PhoneticParameters{
			ThemeVowel:      theme,
			AdjectivalVowel: adj,
		},
		Meaning: meaning,
	}, nil
}

func singleRune(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%q is not a single character: %w", s, model.ErrUnknownPhoneme)
	}
	c, _ := utf8.DecodeRuneInString(s)
	if c == utf8.RuneError {
		return 0, fmt.Errorf("%q is not valid UTF-8: %w", s, model.ErrUnknownPhoneme)
	}
	return c, nil
}

func stemVowel(s string) (rune, error) {
	c, err := singleRune(s)
	if err != nil {
		return 0, err
	}
	if !phonology.IsStemVowel(c) {
		return 0, fmt.Errorf("%q is not a short or long vowel: %w", s, model.ErrUnknownPhoneme)
	}
	return c, nil
}
