// Package phonology implements the Akkadian sound changes applied at
// morpheme boundaries: n-assimilation, vowel contraction and vowel lengthening.
//
// Vowels come in three lengths: short (a e i u), long with a macron
// (ā ē ī ū) and over-long/contracted with a circumflex (â ê î û).
package phonology

import (
	"fmt"

	"github.com/ppiankov/akkad/internal/model"
)

// Length is the quantity of a vowel.
type Length int

const (
	NotVowel Length = iota
	Short
	Long
	OverLong
)

type vowelInfo struct {
	quality rune // short vowel of the same quality
	length  Length
}

// vowels is the closed vowel inventory.
var vowels = map[rune]vowelInfo{
	'a': {'a', Short}, 'e': {'e', Short}, 'i': {'i', Short}, 'u': {'u', Short},
	'ā': {'a', Long}, 'ē': {'e', Long}, 'ī': {'i', Long}, 'ū': {'u', Long},
	'â': {'a', OverLong}, 'ê': {'e', OverLong}, 'î': {'i', OverLong}, 'û': {'u', OverLong},
}

// lengthened maps each vowel to the next longer vowel of the same quality.
var lengthened = map[rune]rune{
	'a': 'ā', 'e': 'ē', 'i': 'ī', 'u': 'ū',
	'ā': 'â', 'ē': 'ê', 'ī': 'î', 'ū': 'û',
}

var shortened = map[rune]rune{'ā': 'a', 'ē': 'e', 'ī': 'i', 'ū': 'u'}

var overLong = map[rune]rune{'a': 'â', 'e': 'ê', 'i': 'î', 'u': 'û'}

// IsVowel reports whether c belongs to the vowel inventory.
func IsVowel(c rune) bool {
	_, ok := vowels[c]
	return ok
}

// VowelLength returns the quantity of c, or NotVowel.
func VowelLength(c rune) Length {
	return vowels[c].length
}

// Quality returns the short vowel sharing c's quality (ā → a, î → i).
// ok is false for non-vowels.
func Quality(c rune) (q rune, ok bool) {
	v, ok := vowels[c]
	return v.quality, ok
}

// IsStemVowel reports whether c can be a theme or adjectival vowel:
// short or long, never over-long.
func IsStemVowel(c rune) bool {
	_, ok := lengthened[c]
	return ok
}

// IsDental reports whether c is a dental stop that assimilates a following t.
func IsDental(c rune) bool {
	return c == 'd' || c == 'ṭ'
}

// IsSibilant reports whether c is a sibilant that becomes š before t.
func IsSibilant(c rune) bool {
	return c == 's' || c == 'ṣ' || c == 'z'
}

// AssimilateN assimilates n completely to a following consonant,
// which is then doubled (nC → CC). Any other pair is returned unchanged.
func AssimilateN(c1, c2 rune) (rune, rune) {
	if c1 == 'n' {
		return c2, c2
	}
	return c1, c2
}

// ContractVowels resolves two adjacent vowels into their surface form.
// Pairs where neither character is a vowel come back unchanged.
func ContractVowels(v1, v2 rune) ([]rune, error) {
	first, firstOK := vowels[v1]
	second, secondOK := vowels[v2]
	if !firstOK && !secondOK {
		return []rune{v1, v2}, nil
	}

	secondIsA := secondOK && second.quality == 'a' && second.length != OverLong
	frontFirst := firstOK && (first.quality == 'e' || first.quality == 'i')

	switch {
	// Short e or i before short or long a stays uncontracted.
	case frontFirst && first.length == Short && secondIsA:
		return []rune{v1, v2}, nil
	// Long ē or ī before a is shortened and stays uncontracted.
	case frontFirst && first.length == Long && secondIsA:
		return []rune{shortened[v1], v2}, nil
	// Long ā or ē before i contracts to ê.
	case (v1 == 'ā' || v1 == 'ē') && (v2 == 'i' || v2 == 'ī'):
		return []rune{'ê'}, nil
	}

	// Everything else contracts to an over-long vowel of the second vowel's quality.
	if !secondOK {
		return nil, fmt.Errorf("contract %q+%q: second character is not a vowel: %w", v1, v2, model.ErrUnknownPhoneme)
	}
	return []rune{overLong[second.quality]}, nil
}

// LengthenVowel maps a short vowel to its long counterpart and a long vowel
// to its over-long counterpart.
func LengthenVowel(v rune) (rune, error) {
	l, ok := lengthened[v]
	if !ok {
		return 0, fmt.Errorf("lengthen %q: %w", v, model.ErrUnknownPhoneme)
	}
	return l, nil
}
