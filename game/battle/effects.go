package battle

import "github.com/kasuganosora/pkmnsim/game/data"

// changeStage moves target's stage for s by delta on behalf of user's move.
// It reports whether anything changed.
//
// Compat reproduces the stat-modifier glitch: after any successful change
// the paralysis and burn drops of user's foe are applied again, whether or
// not that combatant was the one modified. Strict re-applies only the
// modified combatant's own drop to the recomputed stat.
func (b *Battle) changeStage(user, target Player, s data.Stat, delta int8, quiet bool) bool {
	c := b.active(target)
	cur := c.Boosts[s]
	fail := func() bool {
		if !quiet {
			b.emit(&EventFail{Player: user})
		}
		return false
	}
	if delta > 0 {
		if cur >= 6 {
			return fail()
		}
		if b.mode == Compat && s <= data.StatSpecial && c.Stats.Get(s) >= data.MaxStat {
			return fail()
		}
		c.Boosts[s] = min(cur+delta, 6)
	} else {
		if cur <= -6 {
			return fail()
		}
		c.Boosts[s] = max(cur+delta, -6)
	}
	applied := c.Boosts[s] - cur

	if s <= data.StatSpecial {
		c.recalcStat(s, delta > 0 || b.mode == Strict)
		if b.mode == Strict {
			c.applyStatusDropTo(s)
		}
	}
	if applied > 0 {
		b.emit(&EventBoost{Player: target, Stat: s, Stages: applied})
	} else {
		b.emit(&EventUnboost{Player: target, Stat: s, Stages: -applied})
	}
	if b.mode == Compat {
		b.active(user.Foe()).applyStatusDrop()
	}
	return true
}

// selfEffect resolves a move that acts on its user or the field.
func (b *Battle) selfEffect(p Player, m *data.Move) {
	c := b.active(p)
	side := b.side(p)
	switch m.Effect {
	case data.EffectStatUp:
		b.changeStage(p, p, m.Stat, m.Stages, false)
	case data.EffectFocusEnergy:
		if c.Volatiles.Has(VolatileFocusEnergy) {
			b.emit(&EventFail{Player: p})
			return
		}
		b.addVolatile(p, Volatile{Kind: VolatileFocusEnergy})
		b.emit(&EventStart{Player: p, Condition: "Focus Energy"})
	case data.EffectMist:
		b.sideCondition(p, &side.Conditions.Mist, "Mist")
	case data.EffectLightScreen:
		b.sideCondition(p, &side.Conditions.LightScreen, "Light Screen")
	case data.EffectReflect:
		b.sideCondition(p, &side.Conditions.Reflect, "Reflect")
	case data.EffectHaze:
		b.haze(p)
	case data.EffectHeal:
		if !b.canRecover(c) {
			b.emit(&EventFail{Player: p})
			return
		}
		b.heal(p, c.MaxHP()/2, "")
	case data.EffectRest:
		if !b.canRecover(c) {
			b.emit(&EventFail{Player: p})
			return
		}
		c.Status = StatusSleep
		c.SleepTurns = 2
		c.SelfSleep = true
		b.emit(&EventStatus{Player: p, Status: StatusSleep, From: "Rest"})
		b.heal(p, c.MaxHP(), "")
	case data.EffectSubstitute:
		b.substitute(p)
	case data.EffectConversion:
		c.Types = b.active(p.Foe()).Types
		b.emit(&EventTypeChange{Player: p, Types: c.Types})
	case data.EffectBide:
		b.enterBide(p)
	case data.EffectSwitchAndTeleport:
		b.emit(&EventFail{Player: p})
	case data.EffectSplash:
		b.emit(&EventActivate{Player: p, Condition: "nothing", Move: m.ID})
	}
}

func (b *Battle) sideCondition(p Player, flag *bool, name string) {
	if *flag {
		b.emit(&EventFail{Player: p})
		return
	}
	*flag = true
	b.emit(&EventSideStart{Player: p, Condition: name})
}

// canRecover reports whether Recover or Rest may heal c. Compat fails when
// the missing HP is 255 modulo 256.
func (b *Battle) canRecover(c *Combatant) bool {
	missing := c.MaxHP() - c.HP
	if missing == 0 {
		return false
	}
	return b.mode == Strict || missing%256 != 255
}

// substitute pays a quarter of max HP for a decoy. At exactly a quarter,
// Compat creates it and the user faints; Strict refuses.
func (b *Battle) substitute(p Player) {
	c := b.active(p)
	if c.Volatiles.Has(VolatileSubstitute) {
		b.emit(&EventFail{Player: p, Reason: "Substitute"})
		return
	}
	cost := c.MaxHP() / 4
	if c.HP < cost || (c.HP == cost && b.mode == Strict) {
		b.emit(&EventFail{Player: p, Reason: "weak"})
		return
	}
	c.HP -= cost
	b.emit(&EventDamage{Player: p, HP: c.HP, MaxHP: c.MaxHP()})
	b.enterSubstitute(p, cost)
	if c.HP == 0 {
		b.faint(p)
	}
}

// haze resets both sides: stages and stats, confusion, Leech Seed,
// Disable, Focus Energy, binding, screens and Mist. The user's foe loses its
// status and bad poison becomes regular poison for both.
func (b *Battle) haze(p Player) {
	for _, q := range [2]Player{P1, P2} {
		c := b.active(q)
		c.resetStages()
		for _, k := range []VolatileKind{
			VolatileConfusion, VolatileLeechSeed, VolatileDisable, VolatileFocusEnergy,
			VolatileBound, VolatileTrapping,
		} {
			b.dropVolatile(q, k)
		}
		if c.Status == StatusToxic {
			c.Status = StatusPoison
		}
		b.side(q).Conditions = Conditions{}
	}
	b.cure(p.Foe(), false)
	if b.mode == Strict {
		for _, q := range [2]Player{P1, P2} {
			b.active(q).applyStatusDrop()
		}
	}
	b.emit(&EventClearAll{})
}

// statusMove resolves a non-damaging move aimed at the foe. Every check that
// needs no RNG runs before the accuracy roll.
func (b *Battle) statusMove(p Player, m *data.Move) {
	foe := p.Foe()
	t := b.active(foe)
	sub := t.Volatiles.Has(VolatileSubstitute)
	fail := func() { b.emit(&EventFail{Player: p}) }

	if t.Volatiles.Has(VolatileInvulnerable) {
		b.miss(p, m)
		return
	}

	switch m.Effect {
	case data.EffectSleep:
		if t.Status != StatusNone || (sub && b.mode == Strict) || b.clauseBlocks(foe, StatusSleep) {
			fail()
			return
		}
		// a recharging target can't dodge
		if !t.Volatiles.Has(VolatileRecharging) && !b.accurate(p, m) {
			return
		}
		b.inflict(foe, StatusSleep, "")

	case data.EffectPoison:
		s := StatusPoison
		if m.ID == data.MoveToxic {
			s = StatusToxic
		}
		if b.statusImmune(foe, s) {
			b.emit(&EventImmune{Player: foe})
			return
		}
		if sub || t.Status != StatusNone {
			fail()
			return
		}
		if !b.accurate(p, m) {
			return
		}
		b.inflict(foe, s, "")

	case data.EffectParalyze:
		if m.Type == data.Electric && t.Types.Effectiveness(m.Type) == 0 {
			b.emit(&EventImmune{Player: foe})
			return
		}
		if t.Status != StatusNone || (sub && b.mode == Strict) {
			fail()
			return
		}
		if !b.accurate(p, m) {
			return
		}
		b.inflict(foe, StatusParalysis, "")

	case data.EffectConfusion:
		if sub || t.Volatiles.Has(VolatileConfusion) {
			fail()
			return
		}
		if !b.accurate(p, m) {
			return
		}
		b.enterConfusion(foe, false)

	case data.EffectStatDown:
		if sub {
			fail()
			return
		}
		if b.side(foe).Conditions.Mist {
			b.emit(&EventActivate{Player: foe, Condition: "Mist"})
			return
		}
		if !b.accurate(p, m) {
			return
		}
		b.changeStage(p, foe, m.Stat, -m.Stages, false)

	case data.EffectLeechSeed:
		if t.Types.Has(data.Grass) {
			b.emit(&EventImmune{Player: foe})
			return
		}
		if sub || t.Volatiles.Has(VolatileLeechSeed) {
			fail()
			return
		}
		if !b.accurate(p, m) {
			return
		}
		b.addVolatile(foe, Volatile{Kind: VolatileLeechSeed})
		b.emit(&EventStart{Player: foe, Condition: "Leech Seed"})

	case data.EffectDisable:
		if t.Volatiles.Has(VolatileDisable) {
			fail()
			return
		}
		if !b.accurate(p, m) {
			return
		}
		if !b.enterDisable(foe) {
			fail()
		}

	case data.EffectTransform:
		b.transform(p)

	case data.EffectMimic:
		if !b.accurate(p, m) {
			return
		}
		b.mimic(p)
	}
}

// accurate draws the accuracy roll for a status move and logs a miss.
func (b *Battle) accurate(p Player, m *data.Move) bool {
	if m.Accuracy == 0 {
		return true
	}
	if b.rollHit(b.hitChance(p, m, uint16(m.AccuracyByte()))) {
		return true
	}
	b.emit(&EventMiss{Player: p, Target: p.Foe()})
	return false
}

// transform copies the foe's types, stats, stages and moves (at 5 PP each).
// The original form comes back when the user switches out.
func (b *Battle) transform(p Player) {
	c, t := b.active(p), b.active(p.Foe())
	if c.original == nil {
		c.original = &savedForm{types: c.Types, stored: c.Stored, moves: c.Moves}
	}
	c.Types = t.Types
	hp := c.Stored.HP
	c.Stored = t.Stored
	c.Stored.HP = hp
	c.Stats = t.Stats
	c.Stats.HP = hp
	c.Boosts = t.Boosts
	for i, m := range t.Moves {
		if m.Empty() {
			c.Moves[i] = MoveSlot{}
			continue
		}
		c.Moves[i] = MoveSlot{ID: m.ID, PP: 5, MaxPP: 5}
	}
	b.addVolatile(p, Volatile{Kind: VolatileTransform})
	b.emit(&EventTransform{Player: p, Target: p.Foe(), Species: t.Species.ID})
}

// mimic replaces the Mimic slot with a random move of the foe until the
// user switches out. PP carries over from Mimic.
func (b *Battle) mimic(p Player) {
	c, t := b.active(p), b.active(p.Foe())
	slot := c.slotOf(data.MoveMimic)
	var ids []data.MoveID
	for _, m := range t.Moves {
		if !m.Empty() {
			ids = append(ids, m.ID)
		}
	}
	if slot < 0 || len(ids) == 0 {
		b.emit(&EventFail{Player: p})
		return
	}
	id := ids[b.rng.Range(uint32(len(ids)))]
	c.Moves[slot].ID = id
	b.addVolatile(p, Volatile{Kind: VolatileMimic, Slot: uint8(slot), Move: id})
	b.emit(&EventMimic{Player: p, Move: id})
}
