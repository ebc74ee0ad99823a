package battle

import (
	"testing"

	"github.com/kasuganosora/pkmnsim/game/data"
	"github.com/kasuganosora/pkmnsim/game/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImmunity_DrawsNothing(t *testing.T) {
	cases := []struct {
		name   string
		p1, p2 Team
	}{
		{"thunder wave vs ground", Team{mon("Jolteon", "Thunder Wave")}, Team{mon("Golem", "Harden")}},
		{"toxic vs poison", Team{mon("Snorlax", "Toxic")}, Team{mon("Gengar", "Harden")}},
		{"normal vs ghost", Team{mon("Raticate", "Tackle")}, Team{mon("Gengar", "Harden")}},
		{"leech seed vs grass", Team{mon("Jolteon", "Leech Seed")}, Team{mon("Venusaur", "Harden")}},
	}
	for _, mode := range []Mode{Compat, Strict} {
		for _, tc := range cases {
			t.Run(mode.String()+"/"+tc.name, func(t *testing.T) {
				b, src, sink := scripted(t, tc.p1, tc.p2, mode)
				mustStart(t, b)
				_, err := b.Update(Move(1), Move(1))
				require.NoError(t, err)
				assert.Equal(t, 0, src.Used())
				assert.Equal(t, uint64(0), b.RNG().Calls())
				assert.Contains(t, sink.Types(), "immune")
				foe := b.Side(P2).Active()
				assert.Equal(t, StatusNone, foe.Status)
				assert.Equal(t, foe.MaxHP(), foe.HP)
			})
		}
	}
}

func TestAccuracy_OneIn256Miss(t *testing.T) {
	p1 := Team{mon("Raticate", "Quick Attack")}
	p2 := Team{mon("Magikarp", "Splash")}

	b, src, sink := scripted(t, p1, p2, Compat, rng.Max)
	mustStart(t, b)
	_, err := b.Update(Move(1), Move(1))
	require.NoError(t, err)
	assert.Contains(t, sink.Types(), "miss")
	assert.Equal(t, b.Side(P2).Active().MaxHP(), b.Side(P2).Active().HP)
	assert.NoError(t, src.Err())

	b, src, _ = scripted(t, p1, p2, Strict, rng.Max, rng.Max, rng.Min)
	mustStart(t, b)
	_, err = b.Update(Move(1), Move(1))
	require.NoError(t, err)
	assert.Less(t, b.Side(P2).Active().HP, b.Side(P2).Active().MaxHP())
	assert.NoError(t, src.Err())
}

func TestSubstitute_AbsorbsWithoutOverflow(t *testing.T) {
	for _, tc := range []struct {
		mode       Mode
		recharging bool
	}{{Compat, false}, {Strict, true}} {
		t.Run(tc.mode.String(), func(t *testing.T) {
			b, src, _ := scripted(t,
				Team{mon("Alakazam", "Substitute")}, Team{mon("Snorlax", "Hyper Beam")}, tc.mode, plainHit...)
			mustStart(t, b)
			_, err := b.Update(Move(1), Move(1))
			require.NoError(t, err)

			zam := b.Side(P1).Active()
			assert.Equal(t, uint16(313-78), zam.HP)
			assert.False(t, zam.Volatiles.Has(VolatileSubstitute))
			snorlax := b.Side(P2).Active()
			assert.Equal(t, tc.recharging, snorlax.Volatiles.Has(VolatileRecharging))
			assert.Equal(t, tc.recharging, b.Side(P2).Request.Forced)
			assert.NoError(t, src.Err())
		})
	}
}

func TestSubstitute_ExactQuarter(t *testing.T) {
	b, _, sink := scripted(t, Team{mon("Alakazam", "Substitute")}, Team{mon("Magikarp", "Splash")}, Compat)
	zam := b.Side(P1).Active()
	zam.HP = zam.MaxHP() / 4
	b.substitute(P1)
	assert.True(t, zam.Fainted())
	assert.True(t, zam.Volatiles.Has(VolatileSubstitute))
	assert.Contains(t, sink.Types(), "faint")

	b, _, sink = scripted(t, Team{mon("Alakazam", "Substitute")}, Team{mon("Magikarp", "Splash")}, Strict)
	zam = b.Side(P1).Active()
	zam.HP = zam.MaxHP() / 4
	b.substitute(P1)
	assert.Equal(t, zam.MaxHP()/4, zam.HP)
	assert.False(t, zam.Volatiles.Has(VolatileSubstitute))
	assert.Equal(t, []string{"fail"}, sink.Types())
}

func TestStatModGlitch(t *testing.T) {
	for _, tc := range []struct {
		mode Mode
		spe  uint16
	}{{Compat, 18}, {Strict, 73}} {
		t.Run(tc.mode.String(), func(t *testing.T) {
			b, _, _ := scripted(t, Team{mon("Raticate", "Tackle")}, Team{mon("Chansey", "Harden")}, tc.mode)
			raticate := b.Side(P1).Active()
			raticate.Status = StatusParalysis
			raticate.applyStatusDrop()
			require.Equal(t, uint16(73), raticate.Stats.Spe)

			require.True(t, b.changeStage(P2, P2, data.StatDefense, 1, false))
			assert.Equal(t, tc.spe, raticate.Stats.Spe)
			assert.Equal(t, int8(1), b.Side(P2).Active().Boosts[data.StatDefense])
		})
	}
}

func TestChangeStage_Limits(t *testing.T) {
	b, _, sink := scripted(t, Team{mon("Raticate", "Tackle")}, Team{mon("Chansey", "Harden")}, Compat)
	c := b.Side(P1).Active()
	c.Boosts[data.StatAttack] = 6
	assert.False(t, b.changeStage(P1, P1, data.StatAttack, 2, false))
	assert.Equal(t, []string{"fail"}, sink.Types())

	c.Boosts[data.StatAttack] = 5
	assert.True(t, b.changeStage(P1, P1, data.StatAttack, 2, false))
	assert.Equal(t, int8(6), c.Boosts[data.StatAttack])
	assert.Equal(t, uint16(data.MaxStat), c.Stats.Atk)

	// Compat refuses a raise once the stat is at 999
	c.Boosts[data.StatAttack] = 5
	assert.False(t, b.changeStage(P1, P1, data.StatAttack, 1, true))
}

func TestToxic_CounterAcrossSwitch(t *testing.T) {
	for _, tc := range []struct {
		mode    Mode
		counter uint8
	}{{Compat, 2}, {Strict, 0}} {
		t.Run(tc.mode.String(), func(t *testing.T) {
			b, _, _ := scripted(t, Team{mon("Magikarp", "Splash")}, Team{mon("Chansey", "Splash")}, tc.mode)
			chansey := b.Side(P2).Active()
			chansey.Status = StatusToxic
			b.residual(P2)
			assert.Equal(t, uint16(703-43), chansey.HP)
			b.residual(P2)
			assert.Equal(t, uint16(703-43-86), chansey.HP)

			b.switchOut(P2)
			assert.Equal(t, StatusPoison, chansey.Status)
			assert.Equal(t, tc.counter, chansey.ToxicCounter)
		})
	}
}

func TestLeechSeed_Residual(t *testing.T) {
	b, _, _ := scripted(t, Team{mon("Venusaur", "Leech Seed")}, Team{mon("Chansey", "Splash")}, Compat)
	venusaur, chansey := b.Side(P1).Active(), b.Side(P2).Active()
	venusaur.HP -= 100
	b.addVolatile(P2, Volatile{Kind: VolatileLeechSeed})
	b.residual(P2)
	assert.Equal(t, uint16(703-43), chansey.HP)
	assert.Equal(t, venusaur.MaxHP()-100+43, venusaur.HP)
}

func TestFreeze_Thaw(t *testing.T) {
	b, src, sink := scripted(t, Team{mon("Magikarp", "Splash")}, Team{mon("Chansey", "Splash")}, Compat)
	c := b.Side(P1).Active()
	c.Status = StatusFreeze
	assert.False(t, b.beforeMove(P1))
	assert.Equal(t, 0, src.Used())
	assert.Equal(t, []string{"cant"}, sink.Types())

	b, src, _ = scripted(t, Team{mon("Magikarp", "Splash")}, Team{mon("Chansey", "Splash")}, Strict, rng.Min)
	c = b.Side(P1).Active()
	c.Status = StatusFreeze
	assert.True(t, b.beforeMove(P1))
	assert.Equal(t, StatusNone, c.Status)
	assert.NoError(t, src.Err())
}

func TestSleepClause(t *testing.T) {
	b, err := New(Team{mon("Gengar", "Hypnosis")}, Team{mon("Chansey", "Splash"), mon("Snorlax", "Rest")},
		[4]uint16{}, Options{SleepClause: true, RNG: rng.NewFixed()})
	require.NoError(t, err)
	bench := b.Side(P2).Team[1]
	bench.Status = StatusSleep
	assert.False(t, b.canInflict(P2, StatusSleep))
	assert.True(t, b.canInflict(P2, StatusParalysis))

	bench.SelfSleep = true
	assert.True(t, b.canInflict(P2, StatusSleep))

	bench.SelfSleep = false
	bench.HP = 0
	assert.True(t, b.canInflict(P2, StatusSleep))
}

func TestRecover_Compat255Bug(t *testing.T) {
	b, _, _ := scripted(t, Team{mon("Chansey", "Recover")}, Team{mon("Magikarp", "Splash")}, Compat)
	c := b.Side(P1).Active()
	for _, missing := range []uint16{255, 511} {
		c.HP = c.MaxHP() - missing
		assert.False(t, b.canRecover(c), missing)
	}
	c.HP = c.MaxHP() - 254
	assert.True(t, b.canRecover(c))
	c.HP = c.MaxHP()
	assert.False(t, b.canRecover(c))

	b.mode = Strict
	c.HP = c.MaxHP() - 255
	assert.True(t, b.canRecover(c))
}

func TestWrap_LocksTarget(t *testing.T) {
	rolls := append(append([]uint32{}, plainHit...), rng.Min) // two hits in total
	b, src, _ := scripted(t, Team{mon("Raticate", "Wrap")}, Team{mon("Chansey", "Tackle")}, Compat, rolls...)
	mustStart(t, b)

	_, err := b.Update(Move(1), Move(1))
	require.NoError(t, err)
	chansey := b.Side(P2).Active()
	assert.Equal(t, uint16(703-40), chansey.HP)
	assert.Equal(t, b.Side(P1).Active().MaxHP(), b.Side(P1).Active().HP)

	r1, r2 := b.Side(P1).Request, b.Side(P2).Request
	assert.True(t, r1.Forced)
	assert.True(t, r1.Trapped)
	assert.True(t, r2.Forced)
	assert.False(t, r2.Trapped)
	assert.Equal(t, []Choice{Move(0)}, b.Choices(P2))

	_, err = b.Update(Move(0), Move(0))
	require.NoError(t, err)
	assert.Equal(t, uint16(703-80), chansey.HP)
	assert.False(t, chansey.Volatiles.Has(VolatileBound))
	assert.False(t, b.Side(P1).Active().Volatiles.Has(VolatileTrapping))
	assert.False(t, b.Side(P1).Request.Forced)
	assert.NoError(t, src.Err())
}

func TestHaze(t *testing.T) {
	b, _, _ := scripted(t, Team{mon("Weezing", "Haze")}, Team{mon("Chansey", "Splash")}, Compat)
	user, foe := b.Side(P1).Active(), b.Side(P2).Active()
	user.Boosts[data.StatAttack] = 2
	user.Status = StatusToxic
	foe.Boosts[data.StatEvasion] = 3
	foe.Status = StatusParalysis
	b.addVolatile(P2, Volatile{Kind: VolatileConfusion, Turns: 3})
	b.addVolatile(P2, Volatile{Kind: VolatileSubstitute, Amount: 10})
	b.Side(P2).Conditions.Reflect = true

	b.haze(P1)
	assert.Equal(t, [6]int8{}, user.Boosts)
	assert.Equal(t, [6]int8{}, foe.Boosts)
	assert.Equal(t, StatusPoison, user.Status)
	assert.Equal(t, StatusNone, foe.Status)
	assert.Equal(t, foe.Stored.Spe, foe.Stats.Spe)
	assert.False(t, foe.Volatiles.Has(VolatileConfusion))
	assert.True(t, foe.Volatiles.Has(VolatileSubstitute))
	assert.Equal(t, Conditions{}, b.Side(P2).Conditions)
}

func TestTransform_RestoredOnSwitch(t *testing.T) {
	b, src, _ := scripted(t, Team{mon("Ditto", "Transform"), mon("Magikarp", "Splash")}, Team{mon("Chansey", "Harden")}, Compat)
	mustStart(t, b)
	_, err := b.Update(Move(1), Move(1))
	require.NoError(t, err)

	ditto := b.Side(P1).Active()
	chansey := b.Side(P2).Active()
	assert.Equal(t, chansey.Types, ditto.Types)
	assert.Equal(t, MoveSlot{ID: data.MoveHarden, PP: 5, MaxPP: 5}, ditto.Moves[0])
	assert.Equal(t, int8(1), ditto.Boosts[data.StatDefense])
	assert.Equal(t, chansey.Stats.Spc, ditto.Stats.Spc)
	assert.NotEqual(t, chansey.MaxHP(), ditto.MaxHP())
	assert.Equal(t, 0, src.Used())

	_, err = b.Update(Switch(2), Move(1))
	require.NoError(t, err)
	assert.Equal(t, data.MoveTransform, ditto.Moves[0].ID)
	assert.Equal(t, ditto.Species.Types, ditto.Types)
	assert.Equal(t, [6]int8{}, ditto.Boosts)
}

func TestCounter_FailsWithoutDamage(t *testing.T) {
	for _, mode := range []Mode{Compat, Strict} {
		b, src, sink := scripted(t, Team{mon("Chansey", "Counter")}, Team{mon("Magikarp", "Splash")}, mode)
		mustStart(t, b)
		_, err := b.Update(Move(1), Move(1))
		require.NoError(t, err)
		assert.Contains(t, sink.Types(), "fail")
		assert.Equal(t, 0, src.Used(), mode.String())
	}
}

func TestSpeedTie(t *testing.T) {
	b, src, _ := scripted(t, Team{mon("Magikarp", "Splash")}, Team{mon("Magikarp", "Splash")}, Compat)
	mustStart(t, b)
	order := b.orderActions(Move(1), Move(1))
	assert.Equal(t, P1, order[0].Player)
	assert.Equal(t, 0, src.Used())

	b, src, _ = scripted(t, Team{mon("Magikarp", "Splash")}, Team{mon("Magikarp", "Splash")}, Strict, rng.Max)
	mustStart(t, b)
	order = b.orderActions(Move(1), Move(1))
	assert.Equal(t, P2, order[0].Player)
	assert.NoError(t, src.Err())
}

func TestDisable_LocksSlot(t *testing.T) {
	// duration roll then slot roll
	b, src, _ := scripted(t, Team{mon("Raticate", "Tackle", "Quick Attack")}, Team{mon("Chansey", "Disable")}, Compat,
		rng.Roll(3, 8), rng.Roll(1, 2))
	require.True(t, b.enterDisable(P1))
	assert.NoError(t, src.Err())
	raticate := b.Side(P1).Active()
	assert.True(t, raticate.disabled(1, Compat))
	assert.False(t, raticate.disabled(0, Compat))

	req := b.moveRequest(P1)
	assert.Equal(t, [4]bool{false, true, true, true}, req.Disabled)
	assert.Equal(t, []Choice{Move(1)}, req.Choices())
}

func TestThrash_LocksThenConfuses(t *testing.T) {
	for _, mode := range []Mode{Compat, Strict} {
		t.Run(mode.String(), func(t *testing.T) {
			// first hit then two more turns, two locked hits, confusion for 5
			rolls := append(append([]uint32{}, plainHit...), rng.Min)
			rolls = append(rolls, repeat(plainHit, 2)...)
			rolls = append(rolls, rng.Roll(3, 4))
			b, src, _ := scripted(t, Team{mon("Nidoking", "Thrash")}, Team{mon("Chansey", "Splash")}, mode, rolls...)
			mustStart(t, b)
			nidoking, chansey := b.Side(P1).Active(), b.Side(P2).Active()
			pp := nidoking.Moves[0].PP

			_, err := b.Update(Move(1), Move(1))
			require.NoError(t, err)
			per := chansey.MaxHP() - chansey.HP
			require.NotZero(t, per)
			lock := nidoking.Volatiles.Get(VolatileThrashing)
			require.NotNil(t, lock)
			assert.Equal(t, uint8(2), lock.Turns)
			assert.True(t, b.Side(P1).Request.Forced)
			assert.Equal(t, []Choice{Move(0)}, b.Choices(P1))

			for turn := 2; turn <= 3; turn++ {
				_, err = b.Update(Move(0), Move(1))
				require.NoError(t, err, "turn %d", turn)
			}
			assert.Equal(t, chansey.MaxHP()-3*per, chansey.HP)
			assert.Equal(t, pp-1, nidoking.Moves[0].PP, "only the first use spends PP")
			assert.False(t, nidoking.Volatiles.Has(VolatileThrashing))
			cfz := nidoking.Volatiles.Get(VolatileConfusion)
			require.NotNil(t, cfz)
			assert.Equal(t, uint8(5), cfz.Turns)
			assert.False(t, b.Side(P1).Request.Forced)
			assert.NoError(t, src.Err())
		})
	}
}

func TestThrash_ReconfusesWhenAlreadyConfused(t *testing.T) {
	for _, mode := range []Mode{Compat, Strict} {
		t.Run(mode.String(), func(t *testing.T) {
			// no self-hit, the last locked hit, then a fresh two-turn confusion
			rolls := append(append([]uint32{rng.Min}, plainHit...), rng.Roll(0, 4))
			b, src, _ := scripted(t, Team{mon("Nidoking", "Thrash")}, Team{mon("Chansey", "Splash")}, mode, rolls...)
			mustStart(t, b)
			nidoking := b.Side(P1).Active()
			b.addVolatile(P1, Volatile{Kind: VolatileThrashing, Turns: 1, Move: data.MoveThrash, Acc: 255})
			b.addVolatile(P1, Volatile{Kind: VolatileConfusion, Turns: 5})
			b.Side(P1).Request = b.moveRequest(P1)

			_, err := b.Update(Move(0), Move(1))
			require.NoError(t, err)
			assert.False(t, nidoking.Volatiles.Has(VolatileThrashing))
			cfz := nidoking.Volatiles.Get(VolatileConfusion)
			require.NotNil(t, cfz)
			assert.Equal(t, uint8(2), cfz.Turns, "duration is rerolled, not kept")
			assert.NoError(t, src.Err())
		})
	}
}

func TestWrap_HoldsImmuneTarget(t *testing.T) {
	for _, mode := range []Mode{Compat, Strict} {
		t.Run(mode.String(), func(t *testing.T) {
			// hit, then the shortest hold; no crit or damage roll against a Ghost
			b, src, sink := scripted(t, Team{mon("Raticate", "Wrap")}, Team{mon("Gengar", "Harden")}, mode, rng.Min, rng.Min)
			mustStart(t, b)
			gengar := b.Side(P2).Active()

			_, err := b.Update(Move(1), Move(1))
			require.NoError(t, err)
			assert.NotContains(t, sink.Types(), "immune")
			assert.Equal(t, gengar.MaxHP(), gengar.HP)
			assert.True(t, gengar.Volatiles.Has(VolatileBound))
			assert.True(t, b.Side(P2).Request.Forced)
			assert.Equal(t, []Choice{Move(0)}, b.Choices(P2))

			sink.Reset()
			_, err = b.Update(Move(0), Move(0))
			require.NoError(t, err)
			var reason string
			for _, e := range sink.Events {
				if cant, ok := e.(*EventCant); ok && cant.Player == P2 {
					reason = cant.Reason
				}
			}
			assert.Equal(t, "partiallytrapped", reason)
			assert.Equal(t, gengar.MaxHP(), gengar.HP)
			assert.False(t, gengar.Volatiles.Has(VolatileBound))
			assert.NoError(t, src.Err())
		})
	}
}

func TestBide_ReleasesDoubleDamage(t *testing.T) {
	for _, mode := range []Mode{Compat, Strict} {
		t.Run(mode.String(), func(t *testing.T) {
			// Dragon Rage hit, a two-turn Bide, two more Dragon Rage hits
			b, src, _ := scripted(t, Team{mon("Raticate", "Dragon Rage")}, Team{mon("Chansey", "Bide")}, mode,
				rng.Min, rng.Min, rng.Min, rng.Min)
			mustStart(t, b)
			raticate, chansey := b.Side(P1).Active(), b.Side(P2).Active()

			for turn := 1; turn <= 3; turn++ {
				_, err := b.Update(Move(1), b.Choices(P2)[0])
				require.NoError(t, err, "turn %d", turn)
				if turn < 3 {
					assert.True(t, chansey.Volatiles.Has(VolatileBide), "turn %d", turn)
				}
			}
			assert.Equal(t, chansey.MaxHP()-120, chansey.HP)
			assert.Equal(t, raticate.MaxHP()-160, raticate.HP)
			assert.False(t, chansey.Volatiles.Has(VolatileBide))
			assert.False(t, b.Side(P2).Request.Forced)
			assert.NoError(t, src.Err())
		})
	}
}

func TestMultiHit_StopsWhenSubstituteBreaks(t *testing.T) {
	for _, tc := range []struct {
		name string
		sub  uint16
		hits uint8
	}{
		{"no substitute", 0, 5},
		{"substitute", 1, 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// hit, no crit, minimum damage, five hits
			rolls := append(append([]uint32{}, plainHit...), rng.Max)
			b, src, sink := scripted(t, Team{mon("Alakazam", "Splash")}, Team{mon("Snorlax", "Fury Attack")}, Compat, rolls...)
			mustStart(t, b)
			zam := b.Side(P1).Active()
			if tc.sub > 0 {
				b.addVolatile(P1, Volatile{Kind: VolatileSubstitute, Amount: tc.sub})
			}

			_, err := b.Update(Move(1), Move(1))
			require.NoError(t, err)
			var count *EventHitCount
			for _, e := range sink.Events {
				if hc, ok := e.(*EventHitCount); ok {
					count = hc
				}
			}
			require.NotNil(t, count)
			assert.Equal(t, tc.hits, count.Hits)
			if tc.sub > 0 {
				assert.Equal(t, zam.MaxHP(), zam.HP)
				assert.False(t, zam.Volatiles.Has(VolatileSubstitute))
			} else {
				lost := zam.MaxHP() - zam.HP
				assert.NotZero(t, lost)
				assert.Zero(t, lost%5, "every hit repeats the first damage")
			}
			assert.NoError(t, src.Err())
		})
	}
}

func TestFullParalysis_ClearsLocks(t *testing.T) {
	for _, mode := range []Mode{Compat, Strict} {
		t.Run(mode.String(), func(t *testing.T) {
			b, src, sink := scripted(t, Team{mon("Nidoking", "Thrash")}, Team{mon("Chansey", "Splash")}, mode, rng.Min)
			mustStart(t, b)
			nidoking, chansey := b.Side(P1).Active(), b.Side(P2).Active()
			nidoking.Status = StatusParalysis
			b.addVolatile(P1, Volatile{Kind: VolatileThrashing, Turns: 2, Move: data.MoveThrash, Acc: 255})
			b.addVolatile(P1, Volatile{Kind: VolatileBide, Turns: 2})
			pp := nidoking.Moves[0].PP

			_, err := b.Update(Move(1), Move(1))
			require.NoError(t, err)
			var reason string
			for _, e := range sink.Events {
				if cant, ok := e.(*EventCant); ok {
					reason = cant.Reason
				}
			}
			assert.Equal(t, "par", reason)
			assert.False(t, nidoking.Volatiles.Has(VolatileThrashing))
			assert.False(t, nidoking.Volatiles.Has(VolatileBide))
			assert.Equal(t, pp, nidoking.Moves[0].PP)
			assert.Equal(t, chansey.MaxHP(), chansey.HP)
			assert.False(t, b.Side(P1).Request.Forced)
			assert.NoError(t, src.Err())
		})
	}
}

func TestConfusion_SelfHit(t *testing.T) {
	b, src, sink := scripted(t, Team{mon("Snorlax", "Tackle")}, Team{mon("Chansey", "Splash")}, Strict, rng.Max)
	snorlax := b.Side(P1).Active()
	b.addVolatile(P1, Volatile{Kind: VolatileConfusion, Turns: 3})
	b.addVolatile(P1, Volatile{Kind: VolatileThrashing, Turns: 2, Move: data.MoveThrash})

	assert.False(t, b.beforeMove(P1))
	dmg := snorlax.MaxHP() - snorlax.HP
	assert.NotZero(t, dmg)
	assert.False(t, snorlax.Volatiles.Has(VolatileThrashing))
	assert.Equal(t, []string{"activate", "damage"}, sink.Types())
	assert.NoError(t, src.Err())

	t.Run("foe substitute", func(t *testing.T) {
		for _, mode := range []Mode{Compat, Strict} {
			b, src, _ := scripted(t, Team{mon("Snorlax", "Tackle")}, Team{mon("Chansey", "Splash")}, mode, rng.Max)
			snorlax := b.Side(P1).Active()
			b.addVolatile(P1, Volatile{Kind: VolatileConfusion, Turns: 3})
			b.addVolatile(P2, Volatile{Kind: VolatileSubstitute, Amount: 300})

			assert.False(t, b.beforeMove(P1))
			sub := b.Side(P2).Active().Volatiles.Get(VolatileSubstitute)
			require.NotNil(t, sub)
			if mode == Compat {
				assert.Equal(t, snorlax.MaxHP(), snorlax.HP)
				assert.Equal(t, 300-dmg, sub.Amount)
			} else {
				assert.Equal(t, snorlax.MaxHP()-dmg, snorlax.HP)
				assert.Equal(t, uint16(300), sub.Amount)
			}
			assert.NoError(t, src.Err())
		}
	})
}

func TestDeductPP(t *testing.T) {
	b, _, _ := scripted(t, Team{mon("Snorlax", "Tackle")}, Team{mon("Chansey", "Splash")}, Compat)
	ms := &MoveSlot{ID: data.MoveTackle, PP: 0, MaxPP: 56}
	b.deductPP(ms)
	assert.Equal(t, int8(-1), ms.PP)

	b.mode = Strict
	ms.PP = 0
	b.deductPP(ms)
	assert.Equal(t, int8(0), ms.PP)
}

func TestCounter_ReturnsDoubleDamage(t *testing.T) {
	for _, mode := range []Mode{Compat, Strict} {
		t.Run(mode.String(), func(t *testing.T) {
			// Tackle lands, then Counter's accuracy roll
			rolls := append(append([]uint32{}, plainHit...), rng.Min)
			b, src, _ := scripted(t, Team{mon("Raticate", "Tackle")}, Team{mon("Chansey", "Counter")}, mode, rolls...)
			mustStart(t, b)
			raticate, chansey := b.Side(P1).Active(), b.Side(P2).Active()

			_, err := b.Update(Move(1), Move(1))
			require.NoError(t, err)
			taken := chansey.MaxHP() - chansey.HP
			require.NotZero(t, taken)
			assert.Equal(t, raticate.MaxHP()-2*taken, raticate.HP)
			assert.NoError(t, src.Err())
		})
	}
}
