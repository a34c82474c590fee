package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/ppiankov/akkad/internal/dictionary"
	"github.com/ppiankov/akkad/internal/model"
)

// mapFinder serves entries from memory
type mapFinder map[string]model.Entry

func (m mapFinder) Find(ctx context.Context, verb string) (*model.Entry, error) {
	e, ok := m[dictionary.NormalizeVerb(verb)]
	if !ok {
		return nil, fmt.Errorf("%q: %w", verb, dictionary.ErrNotFound)
	}
	return &e, nil
}

var testEntries = mapFinder{
	"parāsum": {
		Transcription: "parāsum", Type: "active", Stem: "g-stem",
		ThemeVowel: "u", AdjectivalVowel: "i",
		Root: []string{"p", "r", "s"}, Meaning: model.Meanings{"to cut"},
	},
	"šemûm": {
		Transcription: "šemûm", Type: "active", Stem: "g-stem",
		ThemeVowel: "e", AdjectivalVowel: "i",
		Root: []string{"š", "m"}, Meaning: model.Meanings{"to hear"},
	},
	"broken": {
		Type: "active", Stem: "d-stem", ThemeVowel: "a", AdjectivalVowel: "i",
		Root: []string{"p", "r", "s"},
	},
	"badtype": {
		Type: "stative", Stem: "g-stem", ThemeVowel: "a", AdjectivalVowel: "i",
		Root: []string{"p", "r", "s"},
	},
}

func TestPipeline_ConjugateVerb(t *testing.T) {
	p := NewPipeline(testEntries, nil)
	ctx := context.Background()

	tests := []struct {
		verb    string
		variant model.StemVariant
		third   string
		plural  string
	}{
		{"parāsum", model.Strong, "iprus", "iprusū"},
		{"  parāsum ", model.Strong, "iprus", "iprusū"},
		{"šemûm", model.WeakFinalRoot, "išme", "išmû"},
	}

	for _, tt := range tests {
		cv, err := p.ConjugateVerb(ctx, tt.verb)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tt.verb, err)
		}
		if cv.Stem != tt.variant {
			t.Errorf("%q: expected %v, got %v", tt.verb, tt.variant, cv.Stem)
		}
		if got := cv.Preterite.At(model.ThirdCommonSingular); got != tt.third {
			t.Errorf("%q: expected 3cs %s, got %s", tt.verb, tt.third, got)
		}
		if got := cv.Preterite.At(model.ThirdMascPlural); got != tt.plural {
			t.Errorf("%q: expected 3mp %s, got %s", tt.verb, tt.plural, got)
		}
		if cv.Source == nil || len(cv.Source.Meaning) == 0 {
			t.Errorf("%q: expected source record with meanings", tt.verb)
		}
	}
}

func TestPipeline_Errors(t *testing.T) {
	p := NewPipeline(testEntries, nil)
	ctx := context.Background()

	tests := []struct {
		verb string
		want error
	}{
		{"nakārum", dictionary.ErrNotFound},
		{"broken", model.ErrUnrecognizedStemFamily},
		{"badtype", model.ErrUnrecognizedVerbType},
	}

	for _, tt := range tests {
		cv, err := p.ConjugateVerb(ctx, tt.verb)
		if !errors.Is(err, tt.want) {
			t.Errorf("%q: expected %v, got %v", tt.verb, tt.want, err)
		}
		if cv != nil {
			t.Errorf("%q: expected no partial result", tt.verb)
		}
	}
}

func TestPipeline_Lookup(t *testing.T) {
	p := NewPipeline(testEntries, nil)

	e, err := p.Lookup(context.Background(), "parāsum")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.ThemeVowel != "u" {
		t.Errorf("expected theme vowel u, got %s", e.ThemeVowel)
	}

	if _, err := p.Lookup(context.Background(), "x"); !errors.Is(err, dictionary.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// The shipped sample dictionary must conjugate end to end.
func TestPipeline_ShippedDictionary(t *testing.T) {
	dir := filepath.Join("..", "..", "data", "verbs")
	p := NewPipeline(dictionary.NewFileFinder(dir, nil, 0, nil), nil)
	ctx := context.Background()

	tests := []struct {
		verb      string
		first     string
		masculine string
		feminine  string
	}{
		{"parāsum", "aprus", "parsum", "parištum"},
		{"palāḫum", "aplaḫ", "palḫum", "paliḫtum"},
		{"nadānum", "addin", "nadnum", "nadittum"},
		{"naqārum", "aqqur", "naqrum", "naqirtum"},
		{"šaqûm", "ašqi", "šaqûm", "šaqītum"},
		{"šemûm", "ešme", "šamûm", "šamītum"},
		{"kašādum", "akšud", "kašdum", "kašittum"},
		{"marāṣum", "amraṣ", "marṣum", "marištum"},
		{"manûm", "amnu", "manûm", "manātum"},
		{"damāqum", "admiq", "damqum", "damiqtum"},
		{"danānum", "adnin", "dannum", "dannatum"},
	}

	for _, tt := range tests {
		cv, err := p.ConjugateVerb(ctx, tt.verb)
		if err != nil {
			t.Errorf("%s: %v", tt.verb, err)
			continue
		}
		if got := cv.Preterite.At(model.FirstCommonSingular); got != tt.first {
			t.Errorf("%s: expected 1cs %s, got %s", tt.verb, tt.first, got)
		}
		if cv.Adjective.Masculine != tt.masculine || cv.Adjective.Feminine != tt.feminine {
			t.Errorf("%s: expected %s/%s, got %s/%s", tt.verb, tt.masculine, tt.feminine,
				cv.Adjective.Masculine, cv.Adjective.Feminine)
		}
	}
}
