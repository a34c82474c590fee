package model

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMeaningsUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Meanings
	}{
		{"single string", `{"meaning":"to cut"}`, Meanings{"to cut"}},
		{"list", `{"meaning":["to cut","to decide"]}`, Meanings{"to cut", "to decide"}},
		{"empty list", `{"meaning":[]}`, Meanings{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Entry
			require.NoError(t, json.Unmarshal([]byte(tt.in), &e))
			assert.Equal(t, tt.want, e.Meaning)
		})
	}

	var e Entry
	assert.Error(t, json.Unmarshal([]byte(`{"meaning":42}`), &e))
}

func TestMeaningsUnmarshalYAML(t *testing.T) {
	var e Entry
	require.NoError(t, yaml.Unmarshal([]byte("meaning: to give\n"), &e))
	assert.Equal(t, Meanings{"to give"}, e.Meaning)

	require.NoError(t, yaml.Unmarshal([]byte("meaning:\n  - to give\n  - to sell\n"), &e))
	assert.Equal(t, Meanings{"to give", "to sell"}, e.Meaning)
}

func TestParseVerbType(t *testing.T) {
	for _, vt := range VerbTypes {
		got, err := ParseVerbType(vt.String())
		require.NoError(t, err)
		assert.Equal(t, vt, got)
	}

	_, err := ParseVerbType("stative")
	assert.True(t, errors.Is(err, ErrUnrecognizedVerbType))
	assert.True(t, IsInputError(err))
}

func TestStemVariantStrings(t *testing.T) {
	seen := map[string]bool{}
	for _, v := range StemVariants {
		s := v.String()
		assert.NotEqual(t, "unknown", s)
		assert.False(t, seen[s], "duplicate name %q", s)
		seen[s] = true
	}
	assert.Equal(t, "unknown", StemVariant(99).String())
}

func TestPersons(t *testing.T) {
	for i, p := range Persons {
		assert.Equal(t, Person(i), p)
		back, ok := ParsePerson(p.String())
		require.True(t, ok)
		assert.Equal(t, p, back)
		assert.NotEqual(t, "unknown", p.Label())
	}
	_, ok := ParsePerson("4cs")
	assert.False(t, ok)
	assert.False(t, Person(NumPersons).Valid())
}

func TestPreteriteFormsJSONOrder(t *testing.T) {
	f := PreteriteForms{"aprus", "taprus", "taprusī", "iprus", "niprus", "taprusā", "iprusū", "iprusā"}
	data, err := json.Marshal(f)
	require.NoError(t, err)

	s := string(data)
	assert.True(t, strings.HasPrefix(s, `{"1cs":"aprus","2ms":"taprus"`), s)
	assert.True(t, strings.Index(s, `"3mp"`) < strings.Index(s, `"3fp"`))

	var back map[string]string
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, "iprus", back["3cs"])
	assert.Equal(t, "iprusū", f.At(ThirdMascPlural))
	assert.Equal(t, "", f.At(Person(-1)))
}

func TestPreteriteFormsYAML(t *testing.T) {
	f := PreteriteForms{"a", "b", "c", "d", "e", "f", "g", "h"}
	data, err := yaml.Marshal(f)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "1cs: a\n2ms: b\n"), string(data))
}

func TestRootMarshal(t *testing.T) {
	r := Root{'š', 'q'}
	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `["š","q"]`, string(data))
	assert.Equal(t, "š-q", r.String())
}

func TestConjugatedVerbJSON(t *testing.T) {
	cv := ConjugatedVerb{
		Verb: "parāsum",
		Stem: Strong,
		Source: &VerbRecord{
			Type:      Active,
			Root:      Root{'p', 'r', 's'},
			Phonetics: PhoneticParameters{ThemeVowel: 'u', AdjectivalVowel: 'i'},
		},
	}
	data, err := json.Marshal(cv)
	require.NoError(t, err)

	var back map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, "strong", back["stem_variant"])
	src := back["source"].(map[string]interface{})
	assert.Equal(t, "active", src["type"])
	ph := src["phonetics"].(map[string]interface{})
	assert.Equal(t, "u", ph["theme_vowel"])
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, BackendFiles, cfg.Dictionary.Backend)
	assert.Greater(t, cfg.Concurrency.Workers, 0)
	assert.NotEmpty(t, cfg.Server.Addr)
	assert.Equal(t, "text", cfg.Output.Format)
}

func TestConfig_YAMLDuration(t *testing.T) {
	data, err := yaml.Marshal(DefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, string(data), "cache_ttl: 30m0s")
	assert.Contains(t, string(data), "db_path: akkad.db")
}
