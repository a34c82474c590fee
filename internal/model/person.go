package model

// Person is one of the eight person/number/gender slots of the preterite.
type Person int

const (
	FirstCommonSingular Person = iota // 1cs
	SecondMascSingular                // 2ms
	SecondFemSingular                 // 2fs
	ThirdCommonSingular               // 3cs
	FirstCommonPlural                 // 1cp
	SecondCommonPlural                // 2cp
	ThirdMascPlural                   // 3mp
	ThirdFemPlural                    // 3fp

	// NumPersons is the number of preterite slots.
	NumPersons = 8
)

// Persons lists every slot in paradigm order.
var Persons = [NumPersons]Person{
	FirstCommonSingular,
	SecondMascSingular,
	SecondFemSingular,
	ThirdCommonSingular,
	FirstCommonPlural,
	SecondCommonPlural,
	ThirdMascPlural,
	ThirdFemPlural,
}

var personCodes = [NumPersons]string{"1cs", "2ms", "2fs", "3cs", "1cp", "2cp", "3mp", "3fp"}

var personLabels = [NumPersons]string{
	"1st common singular",
	"2nd masculine singular",
	"2nd feminine singular",
	"3rd common singular",
	"1st common plural",
	"2nd common plural",
	"3rd masculine plural",
	"3rd feminine plural",
}

// Valid reports whether p is one of the eight slots.
func (p Person) Valid() bool {
	return p >= 0 && p < NumPersons
}

// String returns the short code, e.g. "3cs".
func (p Person) String() string {
	if !p.Valid() {
		return "unknown"
	}
	return personCodes[p]
}

// Label returns the long grammatical description, e.g. "3rd common singular".
func (p Person) Label() string {
	if !p.Valid() {
		return "unknown"
	}
	return personLabels[p]
}

// ParsePerson maps a short code back to its slot.
func ParsePerson(code string) (Person, bool) {
	for i, c := range personCodes {
		if c == code {
			return Person(i), true
		}
	}
	return 0, false
}
