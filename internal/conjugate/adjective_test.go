package conjugate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/akkad/internal/model"
	"github.com/ppiankov/akkad/internal/phonology"
)

func TestAdjective(t *testing.T) {
	tests := []struct {
		name     string
		root     string
		vt       model.VerbType
		adj      rune
		wantCase AdjectiveCase
		masc     string
		fem      string
	}{
		{"geminate adjectival", "dnn", model.Adjectival, 'i', AdjGeminate, "dannum", "dannatum"},
		{"geminate active falls through", "dnn", model.Active, 'i', AdjGeneral, "dannum", "danittum"},
		{"dental d", "kšd", model.Active, 'i', AdjDental, "kašdum", "kašittum"},
		{"dental ṭ", "šlṭ", model.Adjectival, 'i', AdjDental, "šalṭum", "šalittum"},
		// A final s takes the sibilant ending, so the feminine is paruštum
		// and not the unassimilated parustum.
		{"sibilant s", "prs", model.Active, 'u', AdjSibilant, "parsum", "paruštum"},
		{"sibilant ṣ", "mrṣ", model.Adjectival, 'i', AdjSibilant, "marṣum", "marištum"},
		{"sibilant z", "ḫrz", model.Active, 'i', AdjSibilant, "ḫarzum", "ḫarištum"},
		{"general", "dmq", model.Adjectival, 'i', AdjGeneral, "damqum", "damiqtum"},
		{"general k", "prk", model.Active, 'u', AdjGeneral, "parkum", "paruktum"},
		{"general final n", "škn", model.Active, 'i', AdjGeneral, "šaknum", "šakittum"},
		{"biliteral", "šq", model.Active, 'i', AdjBiliteral, "šaqûm", "šaqītum"},
		{"biliteral long vowel", "bn", model.Active, 'ū', AdjBiliteral, "banûm", "banûtum"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := model.Root([]rune(tt.root))
			c, err := AdjectiveCaseFor(root, tt.vt)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCase, c)

			got, err := Adjective(root, tt.vt, tt.adj)
			require.NoError(t, err)
			assert.Equal(t, tt.masc, got.Masculine)
			assert.Equal(t, tt.fem, got.Feminine)
		})
	}
}

func TestAdjectiveMasculineTriliteral(t *testing.T) {
	for _, r := range []string{"prs", "kšd", "dmq", "dnn", "ndn"} {
		for _, vt := range model.VerbTypes {
			root := model.Root([]rune(r))
			got, err := Adjective(root, vt, 'i')
			require.NoError(t, err)
			want := string(root[0]) + "a" + string(root[1]) + string(root[2]) + "um"
			assert.Equal(t, want, got.Masculine, "%s/%s", r, vt)
		}
	}
}

func TestAdjectiveBiliteralFeminine(t *testing.T) {
	for _, v := range []rune("aeiuāēīū") {
		got, err := Adjective(model.Root{'š', 'q'}, model.Active, v)
		require.NoError(t, err)
		long, err := phonology.LengthenVowel(v)
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(got.Feminine, string(long)+"tum"), got.Feminine)
		assert.Equal(t, "šaqûm", got.Masculine)
	}
}

func TestAdjectiveErrors(t *testing.T) {
	_, err := Adjective(model.Root{'p'}, model.Active, 'i')
	assert.True(t, errors.Is(err, model.ErrInvalidRootLength))

	_, err = Adjective(model.Root{'p', 'r', 's', 'm'}, model.Adjectival, 'i')
	assert.True(t, errors.Is(err, model.ErrInvalidRootLength))

	_, err = Adjective(model.Root{'p', 'r', 's'}, model.VerbType(3), 'i')
	assert.True(t, errors.Is(err, model.ErrUnrecognizedVerbType))

	_, err = Adjective(model.Root{'š', 'q'}, model.Active, 'x')
	assert.True(t, errors.Is(err, model.ErrUnknownPhoneme))
}

func TestAdjectiveCaseStrings(t *testing.T) {
	for c := AdjGeminate; c <= AdjBiliteral; c++ {
		assert.NotEqual(t, "unknown", c.String())
	}
	assert.Equal(t, "unknown", AdjectiveCase(99).String())
}
