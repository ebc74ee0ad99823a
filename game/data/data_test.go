package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveTable_Indexed(t *testing.T) {
	for i := 1; i <= MoveCount; i++ {
		m := GetMove(MoveID(i))
		require.NotNil(t, m, "move %d", i)
		assert.Equal(t, MoveID(i), m.ID, m.Name)
		assert.NotZero(t, m.PP, m.Name)
	}
	assert.Nil(t, GetMove(MoveNone))
	assert.Nil(t, GetMove(MoveID(MoveCount+1)))
}

func TestMoveTable_Entries(t *testing.T) {
	qa := GetMove(MoveQuickAttack)
	assert.Equal(t, int8(1), qa.Priority)
	assert.Equal(t, int8(-1), GetMove(MoveCounter).Priority)
	assert.Equal(t, uint8(35), GetMove(MoveTackle).Power)
	assert.Equal(t, 242, GetMove(MoveTackle).AccuracyByte())
	assert.Equal(t, 216, GetMove(MoveFireBlast).AccuracyByte())
	assert.True(t, GetMove(MoveSlash).HighCrit)
	assert.True(t, GetMove(MoveSwordsDance).SelfTargeting())
	assert.False(t, GetMove(MoveThunderWave).Damaging())
	assert.True(t, GetMove(MoveSeismicToss).Damaging())
}

func TestEffectiveness(t *testing.T) {
	assert.Equal(t, uint8(Immune), Effectiveness(Ghost, Psychic))
	assert.Equal(t, uint8(SuperEffective), Effectiveness(Bug, Poison))
	assert.Equal(t, uint8(SuperEffective), Effectiveness(Poison, Bug))
	assert.Equal(t, uint8(Neutral), Effectiveness(Ice, Fire))
	assert.Equal(t, uint8(Immune), Effectiveness(Normal, Ghost))
	assert.Equal(t, uint8(Neutral), Effectiveness(Typeless, Ghost))

	golem := GetSpecies(SpeciesGolem).Types
	assert.Equal(t, 400, golem.Effectiveness(Water))
	assert.Equal(t, 0, golem.Effectiveness(Electric))
	assert.Equal(t, 100, Types{Normal, Normal}.Effectiveness(Normal))
}

func TestCalcStats_Golden(t *testing.T) {
	exp := StatExp{65025, 65025, 65025, 65025, 65025}

	raticate := CalcStats(GetSpecies(SpeciesRaticate).Base, MaxDVs, exp, 100)
	assert.Equal(t, Stats{HP: 313, Atk: 260, Def: 218, Spe: 292, Spc: 198}, raticate)

	chansey := CalcStats(GetSpecies(SpeciesChansey).Base, MaxDVs, exp, 100)
	assert.Equal(t, Stats{HP: 703, Atk: 108, Def: 108, Spe: 198, Spc: 308}, chansey)
}

func TestCalcStat_ExpBonus(t *testing.T) {
	assert.Equal(t, uint16(5+2*15*50/100), CalcStat(0, 15, 0, 50))
	assert.Equal(t, CalcStat(100, 15, 65025, 100), CalcStat(100, 15, MaxStatExp, 100))
	assert.Equal(t, uint16(100+10+(2*(48+15)+0)*100/100), CalcHP(48, 15, 0, 100))
}

func TestDVs_HP(t *testing.T) {
	assert.Equal(t, uint8(15), MaxDVs.HP())
	assert.Equal(t, uint8(0), DVs{14, 14, 14, 14}.HP())
	assert.Equal(t, uint8(9), DVs{1, 0, 0, 1}.HP())
}

func TestLookup(t *testing.T) {
	for name, want := range map[string]SpeciesID{
		"Raticate":   SpeciesRaticate,
		"  chansey ": SpeciesChansey,
		"Farfetch'd": SpeciesFarfetchd,
		"farfetchd":  SpeciesFarfetchd,
		"Nidoran♀":   SpeciesNidoranF,
		"nidoran-m":  SpeciesNidoranM,
		"MR. MIME":   SpeciesMrMime,
	} {
		s, ok := LookupSpecies(name)
		require.True(t, ok, name)
		assert.Equal(t, want, s.ID, name)
	}
	_, ok := LookupSpecies("Pichu")
	assert.False(t, ok)

	m, ok := LookupMove("double-edge")
	require.True(t, ok)
	assert.Equal(t, MoveDoubleEdge, m.ID)
	m, ok = LookupMove("Psychic")
	require.True(t, ok)
	assert.Equal(t, MovePsychic, m.ID)
	assert.Equal(t, "pokemon", NormalizeName("Pokémon"))
}

func TestAllSpecies_Ordered(t *testing.T) {
	all := AllSpecies()
	require.NotEmpty(t, all)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ID, all[i].ID)
	}
}
