package battle

import (
	"testing"

	"github.com/kasuganosora/pkmnsim/game/data"
	"github.com/kasuganosora/pkmnsim/game/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statBlock(atk, def, spc uint16) *Combatant {
	st := data.Stats{HP: 300, Atk: atk, Def: def, Spe: 100, Spc: spc}
	return &Combatant{Level: 100, Stored: st, Stats: st, HP: 300}
}

func TestRawDamage_Basic(t *testing.T) {
	d, ok := rawDamage{attacker: statBlock(260, 100, 100), defender: statBlock(100, 108, 100), power: 35}.calc(Compat)
	require.True(t, ok)
	assert.Equal(t, uint32(72), d)
}

func TestRawDamage_ReflectOverflow(t *testing.T) {
	att, def := statBlock(200, 100, 100), statBlock(100, 600, 100)
	side := &Side{Conditions: Conditions{Reflect: true}}
	r := rawDamage{attacker: att, defender: def, defSide: side, power: 100}

	// 1200/4 = 300 truncates to 44 on the cartridge
	d, ok := r.calc(Compat)
	require.True(t, ok)
	assert.Equal(t, uint32(97), d)

	d, ok = r.calc(Strict)
	require.True(t, ok)
	assert.Equal(t, uint32(16), d)
}

func TestRawDamage_CritIgnoresScreensAndStages(t *testing.T) {
	att, def := statBlock(200, 100, 100), statBlock(100, 100, 100)
	def.Stats.Def = 400
	side := &Side{Conditions: Conditions{Reflect: true}}
	crit, ok := rawDamage{attacker: att, defender: def, defSide: side, power: 50, crit: true}.calc(Compat)
	require.True(t, ok)
	plain, ok := rawDamage{attacker: att, defender: def, defSide: side, power: 50}.calc(Compat)
	require.True(t, ok)
	assert.Greater(t, crit, plain*2)
}

func TestRawDamage_DivideByZero(t *testing.T) {
	r := rawDamage{attacker: statBlock(300, 100, 100), defender: statBlock(100, 3, 100), power: 250, explode: true}
	_, ok := r.calc(Compat)
	assert.False(t, ok)

	d, ok := r.calc(Strict)
	require.True(t, ok)
	assert.Equal(t, uint32(999), d)
}

func TestModify(t *testing.T) {
	normal := data.Types{data.Normal, data.Normal}
	rockGround := data.Types{data.Rock, data.Ground}
	water := data.Types{data.Water, data.Water}

	d, eff := modify(100, water, data.Water, rockGround)
	assert.Equal(t, uint32(600), d)
	assert.Equal(t, 400, eff)

	d, eff = modify(100, normal, data.Normal, rockGround)
	assert.Equal(t, uint32(75), d)
	assert.Equal(t, 50, eff)

	_, eff = modify(100, normal, data.Normal, data.Types{data.Ghost, data.Poison})
	assert.Equal(t, 0, eff)

	d, eff = modify(100, normal, data.Typeless, rockGround)
	assert.Equal(t, uint32(100), d)
	assert.Equal(t, 100, eff)
}

func TestVary_SkipsSmallDamage(t *testing.T) {
	src := rng.NewFixed(rng.Max)
	b := &Battle{rng: rng.New(src)}
	assert.Equal(t, uint32(1), b.vary(1))
	assert.Equal(t, 0, src.Used())
	assert.Equal(t, uint32(100), b.vary(100))
	assert.Equal(t, 1, src.Used())
}

func TestHitChance(t *testing.T) {
	b, _, _ := scripted(t, Team{mon("Raticate", "Quick Attack", "Tackle")}, Team{mon("Magikarp", "Splash")}, Compat)
	qa, tackle := data.GetMove(data.MoveQuickAttack), data.GetMove(data.MoveTackle)
	assert.Equal(t, uint16(255), b.hitChance(P1, qa, uint16(qa.AccuracyByte())))
	assert.Equal(t, uint16(242), b.hitChance(P1, tackle, uint16(tackle.AccuracyByte())))

	b.Side(P2).Active().Boosts[data.StatEvasion] = 1
	assert.Equal(t, uint16(159), b.hitChance(P1, tackle, uint16(tackle.AccuracyByte())))

	b.mode = Strict
	b.Side(P2).Active().Boosts[data.StatEvasion] = 0
	assert.Equal(t, uint16(256), b.hitChance(P1, qa, uint16(qa.AccuracyByte())))
	assert.Equal(t, uint16(242), b.hitChance(P1, tackle, uint16(tackle.AccuracyByte())))
}

func TestRollCrit_FocusEnergy(t *testing.T) {
	b, _, _ := scripted(t, Team{mon("Persian", "Slash", "Scratch")}, Team{mon("Magikarp", "Splash")}, Compat,
		rng.Roll(57, 256), rng.Roll(13, 256), rng.Roll(14, 256), rng.Roll(255, 256))
	slash, scratch := data.GetMove(data.MoveSlash), data.GetMove(data.MoveScratch)

	// base speed 115: threshold 57
	assert.False(t, b.rollCrit(P1, scratch))
	b.addVolatile(P1, Volatile{Kind: VolatileFocusEnergy})
	// Compat divides the threshold by four: 14
	assert.True(t, b.rollCrit(P1, scratch))
	assert.False(t, b.rollCrit(P1, scratch))
	// high crit multiplies by eight: 112
	assert.False(t, b.rollCrit(P1, slash))
}

func TestStageTable(t *testing.T) {
	assert.Equal(t, uint32(100), applyStage(100, 0))
	assert.Equal(t, uint32(25), applyStage(100, -6))
	assert.Equal(t, uint32(66), applyStage(100, -1))
	assert.Equal(t, uint32(150), applyStage(100, 1))
	assert.Equal(t, uint32(400), applyStage(100, 6))
}
