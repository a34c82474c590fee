// Package conjugate builds the G-stem preterite and verbal adjective of a
// classified root.
package conjugate

import (
	"fmt"
	"strings"

	"github.com/ppiankov/akkad/internal/affix"
	"github.com/ppiankov/akkad/internal/classify"
	"github.com/ppiankov/akkad/internal/model"
	"github.com/ppiankov/akkad/internal/phonology"
)

// Conjugate classifies rec's root and builds the full bundle for verb.
// The first error aborts the request; no partial bundle is returned.
func Conjugate(verb string, rec *model.VerbRecord) (*model.ConjugatedVerb, error) {
	if rec == nil {
		return nil, fmt.Errorf("conjugate %q: nil record", verb)
	}

	variant, err := classify.Classify(rec.Root, rec.StemFamily)
	if err != nil {
		return nil, fmt.Errorf("classify %q: %w", verb, err)
	}

	preterite, err := Preterite(variant, rec.Root, rec.Phonetics.ThemeVowel)
	if err != nil {
		return nil, fmt.Errorf("preterite of %q: %w", verb, err)
	}

	adjective, err := Adjective(rec.Root, rec.Type, rec.Phonetics.AdjectivalVowel)
	if err != nil {
		return nil, fmt.Errorf("adjective of %q: %w", verb, err)
	}

	return &model.ConjugatedVerb{
		Verb:      verb,
		Stem:      variant,
		Preterite: preterite,
		Adjective: adjective,
		Source:    rec,
	}, nil
}

// Entry parses a raw dictionary entry and conjugates it.
func Entry(verb string, e model.Entry) (*model.ConjugatedVerb, error) {
	rec, err := ParseEntry(e)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", verb, err)
	}
	return Conjugate(verb, rec)
}

// Preterite builds the eight person forms for a classified root.
func Preterite(variant model.StemVariant, root model.Root, theme rune) (model.PreteriteForms, error) {
	var forms model.PreteriteForms

	switch variant {
	case model.Strong:
		if !classify.IsTriliteral(root) {
			return forms, fmt.Errorf("strong stem with root %s: %w", root, model.ErrInvalidRootLength)
		}
		for _, p := range model.Persons {
			forms[p] = strongForm(affix.For(affix.ATheme, p), root, theme)
		}

	case model.WeakInitialN:
		if !classify.IsTriliteral(root) {
			return forms, fmt.Errorf("initial-n stem with root %s: %w", root, model.ErrInvalidRootLength)
		}
		rewritten := AssimilateInitialN(root)
		for _, p := range model.Persons {
			forms[p] = strongForm(affix.For(affix.ATheme, p), rewritten, theme)
		}

	case model.WeakFinalRoot:
		if !classify.IsBiliteral(root) {
			return forms, fmt.Errorf("final-weak stem with root %s: %w", root, model.ErrInvalidRootLength)
		}
		table := affix.ThemeFor(theme)
		for _, p := range model.Persons {
			f, err := weakFinalForm(affix.For(table, p), root, theme)
			if err != nil {
				return model.PreteriteForms{}, fmt.Errorf("%s: %w", p, err)
			}
			forms[p] = f
		}

	default:
		return forms, fmt.Errorf("stem variant %d: %w", variant, model.ErrUnrecognizedStemFamily)
	}

	return forms, nil
}

// AssimilateInitialN rewrites a root whose n was lost before R2: [n, R2, R3] → [R2, R2, R3].
func AssimilateInitialN(root model.Root) model.Root {
	if !classify.IsTriliteral(root) {
		return root
	}
	r1, r2 := phonology.AssimilateN(root[0], root[1])
	return model.Root{r1, r2, root[2]}
}

// strongForm: prefix + R1 + R2 + θ + R3 + suffix.
func strongForm(a affix.Affix, root model.Root, theme rune) string {
	var b strings.Builder
	b.WriteString(a.Prefix)
	b.WriteRune(root[0])
	b.WriteRune(root[1])
	b.WriteRune(theme)
	b.WriteRune(root[2])
	b.WriteString(a.Suffix)
	return b.String()
}

// weakFinalForm: prefix + R1 + R2 + θ, with θ contracting into a vocalic suffix.
func weakFinalForm(a affix.Affix, root model.Root, theme rune) (string, error) {
	var b strings.Builder
	b.WriteString(a.Prefix)
	b.WriteRune(root[0])
	b.WriteRune(root[1])

	if a.Suffix == "" {
		b.WriteRune(theme)
		return b.String(), nil
	}

	suffix := []rune(a.Suffix)
	contracted, err := phonology.ContractVowels(theme, suffix[0])
	if err != nil {
		return "", err
	}
	b.WriteString(string(contracted))
	b.WriteString(string(suffix[1:]))
	return b.String(), nil
}
