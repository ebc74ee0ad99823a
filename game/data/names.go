package data

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	speciesByName = map[string]SpeciesID{}
	movesByName   = map[string]MoveID{}
)

func init() {
	for i := range moves {
		if moves[i].ID != MoveNone {
			movesByName[NormalizeName(moves[i].Name)] = moves[i].ID
		}
	}
}

var genderMarks = strings.NewReplacer("♀", "f", "♂", "m")

// NormalizeName folds a display name to the key used for lookups: accents
// stripped, lower case, letters and digits only.
func NormalizeName(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, genderMarks.Replace(name))
	if err != nil {
		folded = name
	}
	var b strings.Builder
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// LookupSpecies finds a species by display name.
func LookupSpecies(name string) (*Species, bool) {
	id, ok := speciesByName[NormalizeName(name)]
	if !ok {
		return nil, false
	}
	return species[id], true
}

// LookupMove finds a move by display name.
func LookupMove(name string) (*Move, bool) {
	id, ok := movesByName[NormalizeName(name)]
	if !ok {
		return nil, false
	}
	return GetMove(id), true
}
