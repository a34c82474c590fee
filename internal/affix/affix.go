// Package affix holds the preterite person affixes of the G-stem.
package affix

import "github.com/ppiankov/akkad/internal/model"

// Theme selects a prefix table.
type Theme int

const (
	// ATheme is the default prefix set (a-, ta-, i-, ni-).
	ATheme Theme = iota
	// ETheme is used by weak-final roots whose theme vowel is e (e-, te-, i-, ni-).
	ETheme
)

func (t Theme) String() string {
	if t == ETheme {
		return "e-theme"
	}
	return "a-theme"
}

// Affix is the prefix/suffix pair of one person slot.
type Affix struct {
	Prefix string
	Suffix string
}

var aPrefixes = [model.NumPersons]string{"a", "ta", "ta", "i", "ni", "ta", "i", "i"}

var ePrefixes = [model.NumPersons]string{"e", "te", "te", "i", "ni", "te", "i", "i"}

var suffixes = [model.NumPersons]string{"", "", "ī", "", "", "ā", "ū", "ā"}

// Prefix returns the person prefix for p in table t.
func Prefix(t Theme, p model.Person) string {
	if !p.Valid() {
		return ""
	}
	if t == ETheme {
		return ePrefixes[p]
	}
	return aPrefixes[p]
}

// Suffix returns the person suffix for p. Suffixes do not depend on the theme.
func Suffix(p model.Person) string {
	if !p.Valid() {
		return ""
	}
	return suffixes[p]
}

// For returns the affix pair of p in table t.
func For(t Theme, p model.Person) Affix {
	return Affix{Prefix: Prefix(t, p), Suffix: Suffix(p)}
}

// ThemeFor picks the prefix table for a weak-final root from its theme vowel.
func ThemeFor(themeVowel rune) Theme {
	if themeVowel == 'e' {
		return ETheme
	}
	return ATheme
}

// Adjective templates. The masculine and feminine endings of the verbal
// adjective; the feminine ending follows the stem consonant cluster.
const (
	// AdjStemVowel is the vowel between R1 and R2.
	AdjStemVowel = "a"
	// MascEnding closes a triliteral masculine adjective.
	MascEnding = "um"
	// FemGeminateEnding closes the feminine of a geminate adjectival root (dannatum).
	FemGeminateEnding = "atum"
	// FemEnding closes the feminine after the t of the feminine marker.
	FemEnding = "tum"
	// WeakMascEnding closes a biliteral masculine adjective (šaqûm).
	WeakMascEnding = "ûm"
)
