package conjugate

import (
	"fmt"
	"strings"

	"github.com/ppiankov/akkad/internal/affix"
	"github.com/ppiankov/akkad/internal/classify"
	"github.com/ppiankov/akkad/internal/model"
	"github.com/ppiankov/akkad/internal/phonology"
)

// AdjectiveCase is the template chosen for the verbal adjective.
type AdjectiveCase int

const (
	AdjGeminate  AdjectiveCase = iota // adjectival R2 = R3: dannum, dannatum
	AdjDental                         // R3 d/ṭ: kašdum, kašittum
	AdjSibilant                       // R3 s/ṣ/z: parsum, parištum
	AdjGeneral                        // damqum, damiqtum
	AdjBiliteral                      // šaqûm, šaqītum
)

func (c AdjectiveCase) String() string {
	switch c {
	case AdjGeminate:
		return "geminate"
	case AdjDental:
		return "dental"
	case AdjSibilant:
		return "sibilant"
	case AdjGeneral:
		return "general"
	case AdjBiliteral:
		return "biliteral"
	default:
		return "unknown"
	}
}

// AdjectiveCaseFor selects the adjective template from the root shape and verb type.
func AdjectiveCaseFor(root model.Root, vt model.VerbType) (AdjectiveCase, error) {
	switch vt {
	case model.Active, model.Adjectival:
	default:
		return 0, fmt.Errorf("verb type %d: %w", vt, model.ErrUnrecognizedVerbType)
	}

	switch {
	case classify.IsBiliteral(root):
		return AdjBiliteral, nil
	case !classify.IsTriliteral(root):
		return 0, fmt.Errorf("root %s has %d consonants: %w", root, len(root), model.ErrInvalidRootLength)
	case vt == model.Adjectival && classify.IsGeminate(root):
		return AdjGeminate, nil
	case phonology.IsDental(root[2]):
		return AdjDental, nil
	case phonology.IsSibilant(root[2]):
		return AdjSibilant, nil
	default:
		return AdjGeneral, nil
	}
}

// Adjective builds the masculine and feminine verbal adjective.
func Adjective(root model.Root, vt model.VerbType, adjVowel rune) (model.AdjectiveForms, error) {
	c, err := AdjectiveCaseFor(root, vt)
	if err != nil {
		return model.AdjectiveForms{}, err
	}

	// R1 a R2
	base := string(root[0]) + affix.AdjStemVowel + string(root[1])

	if c == AdjBiliteral {
		long, err := phonology.LengthenVowel(adjVowel)
		if err != nil {
			return model.AdjectiveForms{}, fmt.Errorf("adjectival vowel: %w", err)
		}
		return model.AdjectiveForms{
			Masculine: base + affix.WeakMascEnding,
			Feminine:  base + string(long) + affix.FemEnding,
		}, nil
	}

	r3 := root[2]
	masc := base + string(r3) + affix.MascEnding

	var fem strings.Builder
	fem.WriteString(base)
	switch c {
	case AdjGeminate:
		fem.WriteRune(r3)
		fem.WriteString(affix.FemGeminateEnding)
	case AdjDental:
		// the dental assimilates to the t of the feminine marker
		fem.WriteRune(adjVowel)
		fem.WriteRune('t')
		fem.WriteString(affix.FemEnding)
	case AdjSibilant:
		fem.WriteRune(adjVowel)
		fem.WriteRune('š')
		fem.WriteString(affix.FemEnding)
	case AdjGeneral:
		c1, c2 := phonology.AssimilateN(r3, 't')
		fem.WriteRune(adjVowel)
		fem.WriteRune(c1)
		fem.WriteRune(c2)
		fem.WriteString(affix.MascEnding)
	default:
		return model.AdjectiveForms{}, fmt.Errorf("adjective case %s: %w", c, model.ErrInvalidRootLength)
	}

	return model.AdjectiveForms{Masculine: masc, Feminine: fem.String()}, nil
}
