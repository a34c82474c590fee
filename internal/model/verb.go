package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// GStem is the only stem family the engine conjugates.
const GStem = "g-stem"

// Entry is the raw dictionary record returned by a lookup, before validation.
type Entry struct {
	Transcription   string   `json:"transcription" yaml:"transcription"`
	Type            string   `json:"type" yaml:"type"`
	Stem            string   `json:"stem" yaml:"stem"`
	ThemeVowel      string   `json:"theme_vowel" yaml:"theme_vowel"`
	AdjectivalVowel string   `json:"adjectival_vowel" yaml:"adjectival_vowel"`
	Root            []string `json:"root" yaml:"root"`
	Meaning         Meanings `json:"meaning" yaml:"meaning"`
}

// Meanings holds the free-text glosses of a verb. Older dictionary files
// store a single string; both shapes decode into a list.
type Meanings []string

// UnmarshalJSON accepts either a string or a list of strings.
func (m *Meanings) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*m = Meanings{s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("meaning must be a string or a list of strings: %w", err)
	}
	*m = list
	return nil
}

// UnmarshalYAML accepts either a scalar or a sequence of scalars.
func (m *Meanings) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*m = Meanings{value.Value}
		return nil
	}
	var list []string
	if err := value.Decode(&list); err != nil {
		return fmt.Errorf("meaning must be a string or a list of strings: %w", err)
	}
	*m = list
	return nil
}

// VerbType is declared by the dictionary, never inferred.
type VerbType int

const (
	Active VerbType = iota
	Adjectival
)

// VerbTypes lists every verb type, for exhaustiveness tests.
var VerbTypes = []VerbType{Active, Adjectival}

// ParseVerbType maps the dictionary spelling to a VerbType.
func ParseVerbType(s string) (VerbType, error) {
	switch s {
	case "active":
		return Active, nil
	case "adjectival":
		return Adjectival, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnrecognizedVerbType)
	}
}

func (t VerbType) String() string {
	switch t {
	case Active:
		return "active"
	case Adjectival:
		return "adjectival"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t VerbType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// StemVariant is the construction rule family derived from a root.
type StemVariant int

const (
	Strong StemVariant = iota
	WeakInitialN
	WeakFinalRoot
)

// StemVariants lists every variant, for exhaustiveness tests.
var StemVariants = []StemVariant{Strong, WeakInitialN, WeakFinalRoot}

func (v StemVariant) String() string {
	switch v {
	case Strong:
		return "strong"
	case WeakInitialN:
		return "weak-initial-n"
	case WeakFinalRoot:
		return "weak-final-root"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (v StemVariant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Root is the consonant skeleton of a verb.
type Root []rune

func (r Root) String() string {
	parts := make([]string, len(r))
	for i, c := range r {
		parts[i] = string(c)
	}
	return strings.Join(parts, "-")
}

func (r Root) strings() []string {
	out := make([]string, len(r))
	for i, c := range r {
		out[i] = string(c)
	}
	return out
}

// MarshalJSON encodes the root as a list of one-character strings,
// the same shape the dictionary uses.
func (r Root) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.strings())
}

// MarshalYAML encodes the root as a sequence of one-character strings.
func (r Root) MarshalYAML() (interface{}, error) {
	return r.strings(), nil
}

// PhoneticParameters are supplied by the dictionary, not derived.
type PhoneticParameters struct {
	ThemeVowel      rune `json:"-" yaml:"-"`
	AdjectivalVowel rune `json:"-" yaml:"-"`
}

// MarshalJSON encodes the vowels as strings.
func (p PhoneticParameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.view())
}

// MarshalYAML encodes the vowels as strings.
func (p PhoneticParameters) MarshalYAML() (interface{}, error) {
	return p.view(), nil
}

type phoneticView struct {
	ThemeVowel      string `json:"theme_vowel" yaml:"theme_vowel"`
	AdjectivalVowel string `json:"adjectival_vowel" yaml:"adjectival_vowel"`
}

func (p PhoneticParameters) view() phoneticView {
	return phoneticView{ThemeVowel: string(p.ThemeVowel), AdjectivalVowel: string(p.AdjectivalVowel)}
}

// VerbRecord is a validated dictionary record. The engine only reads it.
type VerbRecord struct {
	Transcription string             `json:"transcription" yaml:"transcription"`
	Type          VerbType           `json:"type" yaml:"type"`
	StemFamily    string             `json:"stem" yaml:"stem"`
	Root          Root               `json:"root" yaml:"root"`
	Phonetics     PhoneticParameters `json:"phonetics" yaml:"phonetics"`
	Meaning       []string           `json:"meaning" yaml:"meaning"`
}

// PreteriteForms holds one generated word per person slot.
type PreteriteForms [NumPersons]string

// At returns the form for slot p.
func (f PreteriteForms) At(p Person) string {
	if !p.Valid() {
		return ""
	}
	return f[p]
}

// MarshalJSON encodes the paradigm as an object keyed by person code,
// in paradigm order.
func (f PreteriteForms) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range Persons {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, _ := json.Marshal(p.String())
		v, err := json.Marshal(f[p])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the paradigm as an ordered mapping keyed by person code.
func (f PreteriteForms) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, p := range Persons {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: p.String()},
			&yaml.Node{Kind: yaml.ScalarNode, Value: f[p]},
		)
	}
	return node, nil
}

// AdjectiveForms holds the verbal adjective.
type AdjectiveForms struct {
	Masculine string `json:"masculine" yaml:"masculine"`
	Feminine  string `json:"feminine" yaml:"feminine"`
}

// ConjugatedVerb is the finished bundle for one request.
type ConjugatedVerb struct {
	Verb      string         `json:"verb" yaml:"verb"`
	Stem      StemVariant    `json:"stem_variant" yaml:"stem_variant"`
	Preterite PreteriteForms `json:"preterite" yaml:"preterite"`
	Adjective AdjectiveForms `json:"adjective" yaml:"adjective"`
	Source    *VerbRecord    `json:"source" yaml:"source"`
}
