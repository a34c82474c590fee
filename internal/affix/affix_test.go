package affix

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ppiankov/akkad/internal/model"
)

func TestATheme(t *testing.T) {
	want := map[model.Person]Affix{
		model.FirstCommonSingular: {"a", ""},
		model.SecondMascSingular:  {"ta", ""},
		model.SecondFemSingular:   {"ta", "ī"},
		model.ThirdCommonSingular: {"i", ""},
		model.FirstCommonPlural:   {"ni", ""},
		model.SecondCommonPlural:  {"ta", "ā"},
		model.ThirdMascPlural:     {"i", "ū"},
		model.ThirdFemPlural:      {"i", "ā"},
	}
	for _, p := range model.Persons {
		assert.Equal(t, want[p], For(ATheme, p), p.String())
	}
}

func TestEThemeDiffersOnlyInA(t *testing.T) {
	for _, p := range model.Persons {
		a, e := Prefix(ATheme, p), Prefix(ETheme, p)
		switch a {
		case "a":
			assert.Equal(t, "e", e)
		case "ta":
			assert.Equal(t, "te", e)
		default:
			assert.Equal(t, a, e, p.String())
		}
		assert.Equal(t, Suffix(p), For(ETheme, p).Suffix)
	}
}

func TestThemeFor(t *testing.T) {
	assert.Equal(t, ETheme, ThemeFor('e'))
	for _, v := range []rune{'a', 'i', 'u', 'ē'} {
		assert.Equal(t, ATheme, ThemeFor(v), string(v))
	}
	assert.Equal(t, "e-theme", ETheme.String())
	assert.Equal(t, "a-theme", ATheme.String())
}

func TestInvalidPerson(t *testing.T) {
	assert.Equal(t, Affix{}, For(ATheme, model.Person(8)))
}
