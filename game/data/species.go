package data

// SpeciesID is a national dex number.
type SpeciesID uint8

const (
	SpeciesNone       SpeciesID = 0
	SpeciesBulbasaur  SpeciesID = 1
	SpeciesVenusaur   SpeciesID = 3
	SpeciesCharmander SpeciesID = 4
	SpeciesCharizard  SpeciesID = 6
	SpeciesSquirtle   SpeciesID = 7
	SpeciesBlastoise  SpeciesID = 9
	SpeciesButterfree SpeciesID = 12
	SpeciesBeedrill   SpeciesID = 15
	SpeciesPidgeot    SpeciesID = 18
	SpeciesRattata    SpeciesID = 19
	SpeciesRaticate   SpeciesID = 20
	SpeciesPikachu    SpeciesID = 25
	SpeciesRaichu     SpeciesID = 26
	SpeciesSandslash  SpeciesID = 28
	SpeciesNidoranF   SpeciesID = 29
	SpeciesNidoqueen  SpeciesID = 31
	SpeciesNidoranM   SpeciesID = 32
	SpeciesNidoking   SpeciesID = 34
	SpeciesClefable   SpeciesID = 36
	SpeciesNinetales  SpeciesID = 38
	SpeciesJigglypuff SpeciesID = 39
	SpeciesWigglytuff SpeciesID = 40
	SpeciesGolbat     SpeciesID = 42
	SpeciesVileplume  SpeciesID = 45
	SpeciesParasect   SpeciesID = 47
	SpeciesVenomoth   SpeciesID = 49
	SpeciesDugtrio    SpeciesID = 51
	SpeciesPersian    SpeciesID = 53
	SpeciesGolduck    SpeciesID = 55
	SpeciesPrimeape   SpeciesID = 57
	SpeciesArcanine   SpeciesID = 59
	SpeciesPoliwrath  SpeciesID = 62
	SpeciesAbra       SpeciesID = 63
	SpeciesAlakazam   SpeciesID = 65
	SpeciesMachamp    SpeciesID = 68
	SpeciesVictreebel SpeciesID = 71
	SpeciesTentacruel SpeciesID = 73
	SpeciesGolem      SpeciesID = 76
	SpeciesRapidash   SpeciesID = 78
	SpeciesSlowbro    SpeciesID = 80
	SpeciesMagneton   SpeciesID = 82
	SpeciesFarfetchd  SpeciesID = 83
	SpeciesDodrio     SpeciesID = 85
	SpeciesDewgong    SpeciesID = 87
	SpeciesMuk        SpeciesID = 89
	SpeciesCloyster   SpeciesID = 91
	SpeciesGastly     SpeciesID = 92
	SpeciesHaunter    SpeciesID = 93
	SpeciesGengar     SpeciesID = 94
	SpeciesOnix       SpeciesID = 95
	SpeciesHypno      SpeciesID = 97
	SpeciesKingler    SpeciesID = 99
	SpeciesElectrode  SpeciesID = 101
	SpeciesExeggutor  SpeciesID = 103
	SpeciesMarowak    SpeciesID = 105
	SpeciesHitmonlee  SpeciesID = 106
	SpeciesHitmonchan SpeciesID = 107
	SpeciesLickitung  SpeciesID = 108
	SpeciesWeezing    SpeciesID = 110
	SpeciesRhydon     SpeciesID = 112
	SpeciesChansey    SpeciesID = 113
	SpeciesTangela    SpeciesID = 114
	SpeciesKangaskhan SpeciesID = 115
	SpeciesStarmie    SpeciesID = 121
	SpeciesMrMime     SpeciesID = 122
	SpeciesScyther    SpeciesID = 123
	SpeciesJynx       SpeciesID = 124
	SpeciesElectabuzz SpeciesID = 125
	SpeciesMagmar     SpeciesID = 126
	SpeciesPinsir     SpeciesID = 127
	SpeciesTauros     SpeciesID = 128
	SpeciesMagikarp   SpeciesID = 129
	SpeciesGyarados   SpeciesID = 130
	SpeciesLapras     SpeciesID = 131
	SpeciesDitto      SpeciesID = 132
	SpeciesEevee      SpeciesID = 133
	SpeciesVaporeon   SpeciesID = 134
	SpeciesJolteon    SpeciesID = 135
	SpeciesFlareon    SpeciesID = 136
	SpeciesPorygon    SpeciesID = 137
	SpeciesOmastar    SpeciesID = 139
	SpeciesKabutops   SpeciesID = 141
	SpeciesAerodactyl SpeciesID = 142
	SpeciesSnorlax    SpeciesID = 143
	SpeciesArticuno   SpeciesID = 144
	SpeciesZapdos     SpeciesID = 145
	SpeciesMoltres    SpeciesID = 146
	SpeciesDragonite  SpeciesID = 149
	SpeciesMewtwo     SpeciesID = 150
	SpeciesMew        SpeciesID = 151
)

// BaseStats are a species' base stats. Generation I has a single Special.
type BaseStats struct {
	HP, Atk, Def, Spe, Spc uint8
}

// Species is an entry of the species table.
type Species struct {
	ID    SpeciesID
	Name  string
	Base  BaseStats
	Types Types
}

var species = map[SpeciesID]*Species{}

func sp(id SpeciesID, name string, hp, atk, def, spe, spc uint8, t1, t2 Type) {
	species[id] = &Species{ID: id, Name: name, Base: BaseStats{hp, atk, def, spe, spc}, Types: Types{t1, t2}}
	speciesByName[NormalizeName(name)] = id
}

func init() {
	sp(SpeciesBulbasaur, "Bulbasaur", 45, 49, 49, 45, 65, Grass, Poison)
	sp(SpeciesVenusaur, "Venusaur", 80, 82, 83, 80, 100, Grass, Poison)
	sp(SpeciesCharmander, "Charmander", 39, 52, 43, 65, 50, Fire, Fire)
	sp(SpeciesCharizard, "Charizard", 78, 84, 78, 100, 85, Fire, Flying)
	sp(SpeciesSquirtle, "Squirtle", 44, 48, 65, 43, 50, Water, Water)
	sp(SpeciesBlastoise, "Blastoise", 79, 83, 100, 78, 85, Water, Water)
	sp(SpeciesButterfree, "Butterfree", 60, 45, 50, 70, 80, Bug, Flying)
	sp(SpeciesBeedrill, "Beedrill", 65, 80, 40, 75, 45, Bug, Poison)
	sp(SpeciesPidgeot, "Pidgeot", 83, 80, 75, 91, 70, Normal, Flying)
	sp(SpeciesRattata, "Rattata", 30, 56, 35, 72, 25, Normal, Normal)
	sp(SpeciesRaticate, "Raticate", 55, 81, 60, 97, 50, Normal, Normal)
	sp(SpeciesPikachu, "Pikachu", 35, 55, 30, 90, 50, Electric, Electric)
	sp(SpeciesRaichu, "Raichu", 60, 90, 55, 100, 90, Electric, Electric)
	sp(SpeciesSandslash, "Sandslash", 75, 100, 110, 65, 55, Ground, Ground)
	sp(SpeciesNidoranF, "Nidoran♀", 55, 47, 52, 41, 40, Poison, Poison)
	sp(SpeciesNidoqueen, "Nidoqueen", 90, 82, 87, 76, 75, Poison, Ground)
	sp(SpeciesNidoranM, "Nidoran♂", 46, 57, 40, 50, 40, Poison, Poison)
	sp(SpeciesNidoking, "Nidoking", 81, 92, 77, 85, 75, Poison, Ground)
	sp(SpeciesClefable, "Clefable", 95, 70, 73, 60, 85, Normal, Normal)
	sp(SpeciesNinetales, "Ninetales", 73, 76, 75, 100, 100, Fire, Fire)
	sp(SpeciesJigglypuff, "Jigglypuff", 115, 45, 20, 20, 25, Normal, Normal)
	sp(SpeciesWigglytuff, "Wigglytuff", 140, 70, 45, 45, 50, Normal, Normal)
	sp(SpeciesGolbat, "Golbat", 75, 80, 70, 90, 75, Poison, Flying)
	sp(SpeciesVileplume, "Vileplume", 75, 80, 85, 50, 100, Grass, Poison)
	sp(SpeciesParasect, "Parasect", 60, 95, 80, 30, 80, Bug, Grass)
	sp(SpeciesVenomoth, "Venomoth", 70, 65, 60, 90, 90, Bug, Poison)
	sp(SpeciesDugtrio, "Dugtrio", 35, 80, 50, 120, 70, Ground, Ground)
	sp(SpeciesPersian, "Persian", 65, 70, 60, 115, 65, Normal, Normal)
	sp(SpeciesGolduck, "Golduck", 80, 82, 78, 85, 80, Water, Water)
	sp(SpeciesPrimeape, "Primeape", 65, 105, 60, 95, 60, Fighting, Fighting)
	sp(SpeciesArcanine, "Arcanine", 90, 110, 80, 95, 80, Fire, Fire)
	sp(SpeciesPoliwrath, "Poliwrath", 90, 85, 95, 70, 70, Water, Fighting)
	sp(SpeciesAbra, "Abra", 25, 20, 15, 90, 105, Psychic, Psychic)
	sp(SpeciesAlakazam, "Alakazam", 55, 50, 45, 120, 135, Psychic, Psychic)
	sp(SpeciesMachamp, "Machamp", 90, 130, 80, 55, 65, Fighting, Fighting)
	sp(SpeciesVictreebel, "Victreebel", 80, 105, 65, 70, 100, Grass, Poison)
	sp(SpeciesTentacruel, "Tentacruel", 80, 70, 65, 100, 120, Water, Poison)
	sp(SpeciesGolem, "Golem", 80, 110, 130, 45, 55, Rock, Ground)
	sp(SpeciesRapidash, "Rapidash", 65, 100, 70, 105, 80, Fire, Fire)
	sp(SpeciesSlowbro, "Slowbro", 95, 75, 110, 30, 80, Water, Psychic)
	sp(SpeciesMagneton, "Magneton", 50, 60, 95, 70, 120, Electric, Electric)
	sp(SpeciesFarfetchd, "Farfetch’d", 52, 65, 55, 60, 58, Normal, Flying)
	sp(SpeciesDodrio, "Dodrio", 60, 110, 70, 100, 60, Normal, Flying)
	sp(SpeciesDewgong, "Dewgong", 90, 70, 80, 70, 95, Water, Ice)
	sp(SpeciesMuk, "Muk", 105, 105, 75, 50, 65, Poison, Poison)
	sp(SpeciesCloyster, "Cloyster", 50, 95, 180, 70, 85, Water, Ice)
	sp(SpeciesGastly, "Gastly", 30, 35, 30, 80, 100, Ghost, Poison)
	sp(SpeciesHaunter, "Haunter", 45, 50, 45, 95, 115, Ghost, Poison)
	sp(SpeciesGengar, "Gengar", 60, 65, 60, 110, 130, Ghost, Poison)
	sp(SpeciesOnix, "Onix", 35, 45, 160, 70, 30, Rock, Ground)
	sp(SpeciesHypno, "Hypno", 85, 73, 70, 67, 115, Psychic, Psychic)
	sp(SpeciesKingler, "Kingler", 55, 130, 115, 75, 50, Water, Water)
	sp(SpeciesElectrode, "Electrode", 60, 50, 70, 140, 80, Electric, Electric)
	sp(SpeciesExeggutor, "Exeggutor", 95, 95, 85, 55, 125, Grass, Psychic)
	sp(SpeciesMarowak, "Marowak", 60, 80, 110, 45, 50, Ground, Ground)
	sp(SpeciesHitmonlee, "Hitmonlee", 50, 120, 53, 87, 35, Fighting, Fighting)
	sp(SpeciesHitmonchan, "Hitmonchan", 50, 105, 79, 76, 35, Fighting, Fighting)
	sp(SpeciesLickitung, "Lickitung", 90, 55, 75, 30, 60, Normal, Normal)
	sp(SpeciesWeezing, "Weezing", 65, 90, 120, 60, 85, Poison, Poison)
	sp(SpeciesRhydon, "Rhydon", 105, 130, 120, 40, 45, Ground, Rock)
	sp(SpeciesChansey, "Chansey", 250, 5, 5, 50, 105, Normal, Normal)
	sp(SpeciesTangela, "Tangela", 65, 55, 115, 60, 100, Grass, Grass)
	sp(SpeciesKangaskhan, "Kangaskhan", 105, 95, 80, 90, 40, Normal, Normal)
	sp(SpeciesStarmie, "Starmie", 60, 75, 85, 115, 100, Water, Psychic)
	sp(SpeciesMrMime, "Mr. Mime", 40, 45, 65, 90, 100, Psychic, Psychic)
	sp(SpeciesScyther, "Scyther", 70, 110, 80, 105, 55, Bug, Flying)
	sp(SpeciesJynx, "Jynx", 65, 50, 35, 95, 95, Ice, Psychic)
	sp(SpeciesElectabuzz, "Electabuzz", 65, 83, 57, 105, 85, Electric, Electric)
	sp(SpeciesMagmar, "Magmar", 65, 95, 57, 93, 85, Fire, Fire)
	sp(SpeciesPinsir, "Pinsir", 65, 125, 100, 85, 55, Bug, Bug)
	sp(SpeciesTauros, "Tauros", 75, 100, 95, 110, 70, Normal, Normal)
	sp(SpeciesMagikarp, "Magikarp", 20, 10, 55, 80, 20, Water, Water)
	sp(SpeciesGyarados, "Gyarados", 95, 125, 79, 81, 100, Water, Flying)
	sp(SpeciesLapras, "Lapras", 130, 85, 80, 60, 95, Water, Ice)
	sp(SpeciesDitto, "Ditto", 48, 48, 48, 48, 48, Normal, Normal)
	sp(SpeciesEevee, "Eevee", 55, 55, 50, 55, 65, Normal, Normal)
	sp(SpeciesVaporeon, "Vaporeon", 130, 65, 60, 65, 110, Water, Water)
	sp(SpeciesJolteon, "Jolteon", 65, 65, 60, 130, 110, Electric, Electric)
	sp(SpeciesFlareon, "Flareon", 65, 130, 60, 65, 110, Fire, Fire)
	sp(SpeciesPorygon, "Porygon", 65, 60, 70, 40, 75, Normal, Normal)
	sp(SpeciesOmastar, "Omastar", 70, 60, 125, 55, 115, Rock, Water)
	sp(SpeciesKabutops, "Kabutops", 60, 115, 105, 80, 70, Rock, Water)
	sp(SpeciesAerodactyl, "Aerodactyl", 80, 105, 65, 130, 60, Rock, Flying)
	sp(SpeciesSnorlax, "Snorlax", 160, 110, 65, 30, 65, Normal, Normal)
	sp(SpeciesArticuno, "Articuno", 90, 85, 100, 85, 125, Ice, Flying)
	sp(SpeciesZapdos, "Zapdos", 90, 90, 85, 100, 125, Electric, Flying)
	sp(SpeciesMoltres, "Moltres", 90, 100, 90, 90, 125, Fire, Flying)
	sp(SpeciesDragonite, "Dragonite", 91, 134, 95, 80, 100, Dragon, Flying)
	sp(SpeciesMewtwo, "Mewtwo", 106, 110, 90, 130, 154, Psychic, Psychic)
	sp(SpeciesMew, "Mew", 100, 100, 100, 100, 100, Psychic, Psychic)
}

// GetSpecies returns the table entry for id, or nil if it is not in the roster.
func GetSpecies(id SpeciesID) *Species {
	return species[id]
}

// AllSpecies returns every species in the roster ordered by dex number.
func AllSpecies() []*Species {
	out := make([]*Species, 0, len(species))
	for i := 1; i <= 151; i++ {
		if s, ok := species[SpeciesID(i)]; ok {
			out = append(out, s)
		}
	}
	return out
}

func (id SpeciesID) String() string {
	if s := GetSpecies(id); s != nil {
		return s.Name
	}
	return "(none)"
}
