package data

// Type is a generation I elemental type.
type Type uint8

const (
	Normal Type = iota
	Fighting
	Flying
	Poison
	Ground
	Rock
	Bug
	Ghost
	Fire
	Water
	Grass
	Electric
	Psychic
	Ice
	Dragon

	// Typeless marks damage with no type (confusion self-hits).
	Typeless Type = 0xFF
)

var typeNames = [...]string{
	"Normal", "Fighting", "Flying", "Poison", "Ground", "Rock", "Bug", "Ghost",
	"Fire", "Water", "Grass", "Electric", "Psychic", "Ice", "Dragon",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "???"
}

// Special reports whether moves of this type use the Special stat.
func (t Type) Special() bool {
	return t >= Fire && t != Typeless
}

// Effectiveness multipliers in tenths.
const (
	Immune           = 0
	NotVeryEffective = 5
	Neutral          = 10
	SuperEffective   = 20
)

// chart lists the non-neutral matchups; anything missing is Neutral.
var chart = map[Type]map[Type]uint8{
	Normal:   {Rock: 5, Ghost: 0},
	Fighting: {Normal: 20, Flying: 5, Poison: 5, Rock: 20, Bug: 5, Ghost: 0, Psychic: 5, Ice: 20},
	Flying:   {Fighting: 20, Rock: 5, Bug: 20, Grass: 20, Electric: 5},
	Poison:   {Poison: 5, Ground: 5, Rock: 5, Bug: 20, Ghost: 5, Grass: 20},
	Ground:   {Flying: 0, Poison: 20, Rock: 20, Bug: 5, Fire: 20, Grass: 5, Electric: 20},
	Rock:     {Fighting: 5, Flying: 20, Ground: 5, Bug: 20, Fire: 20, Ice: 20},
	Bug:      {Fighting: 5, Flying: 5, Poison: 20, Ghost: 5, Fire: 5, Grass: 20, Psychic: 20},
	Ghost:    {Normal: 0, Ghost: 20, Psychic: 0},
	Fire:     {Rock: 5, Bug: 20, Fire: 5, Water: 5, Grass: 20, Ice: 20, Dragon: 5},
	Water:    {Ground: 20, Rock: 20, Fire: 20, Water: 5, Grass: 5, Dragon: 5},
	Grass:    {Flying: 5, Poison: 5, Ground: 20, Rock: 20, Bug: 5, Fire: 5, Water: 20, Grass: 5, Dragon: 5},
	Electric: {Flying: 20, Ground: 0, Water: 20, Grass: 5, Electric: 5, Dragon: 5},
	Psychic:  {Fighting: 20, Poison: 20, Psychic: 5},
	Ice:      {Flying: 20, Ground: 20, Water: 5, Grass: 20, Ice: 5, Dragon: 20},
	Dragon:   {Dragon: 20},
}

// Effectiveness returns the multiplier, in tenths, of an attack of type
// attacker against a single defending type.
func Effectiveness(attacker, defender Type) uint8 {
	if attacker == Typeless {
		return Neutral
	}
	if e, ok := chart[attacker][defender]; ok {
		return e
	}
	return Neutral
}

// Types is a pair of types. Mono-typed species repeat the same type.
type Types [2]Type

// Has reports whether t is one of the pair.
func (ts Types) Has(t Type) bool { return ts[0] == t || ts[1] == t }

// Effectiveness returns the combined multiplier against both types in
// hundredths (100 = neutral).
func (ts Types) Effectiveness(attacker Type) int {
	e := int(Effectiveness(attacker, ts[0]))
	if ts[1] == ts[0] {
		return e * Neutral
	}
	return e * int(Effectiveness(attacker, ts[1]))
}
