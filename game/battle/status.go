package battle

import "github.com/kasuganosora/pkmnsim/game/data"

// statusImmune reports whether p's types shut out status s.
func (b *Battle) statusImmune(p Player, s Status) bool {
	t := b.active(p).Types
	switch s {
	case StatusPoison, StatusToxic:
		return t.Has(data.Poison)
	case StatusBurn:
		return t.Has(data.Fire)
	case StatusFreeze:
		return t.Has(data.Ice)
	}
	return false
}

// clauseBlocks reports whether the sleep or freeze clause stops s landing on
// p's side.
func (b *Battle) clauseBlocks(p Player, s Status) bool {
	switch {
	case s == StatusSleep && b.opts.SleepClause:
		for _, c := range b.side(p).Team {
			if !c.Fainted() && c.Status == StatusSleep && !c.SelfSleep {
				return true
			}
		}
	case s == StatusFreeze && b.opts.FreezeClause:
		for _, c := range b.side(p).Team {
			if !c.Fainted() && c.Status == StatusFreeze {
				return true
			}
		}
	}
	return false
}

// canInflict runs every check that doesn't need the RNG.
func (b *Battle) canInflict(p Player, s Status) bool {
	c := b.active(p)
	return !c.Fainted() && c.Status == StatusNone && !b.statusImmune(p, s) && !b.clauseBlocks(p, s)
}

// inflict puts s on p. Sleep draws its 1–7 turn duration here.
func (b *Battle) inflict(p Player, s Status, from string) {
	c := b.active(p)
	c.Status = s
	switch s {
	case StatusSleep:
		c.SleepTurns = uint8(b.rng.Range(7)) + 1
		c.SelfSleep = false
		b.dropVolatile(p, VolatileRecharging)
	case StatusToxic:
		if b.mode == Strict {
			c.ToxicCounter = 0
		}
	case StatusParalysis, StatusBurn:
		c.applyStatusDrop()
	}
	b.emit(&EventStatus{Player: p, Status: s, From: from})
}

// cure clears p's persistent status.
func (b *Battle) cure(p Player, msg bool) {
	c := b.active(p)
	if c.Status == StatusNone {
		return
	}
	s := c.Status
	c.Status = StatusNone
	c.SleepTurns = 0
	c.SelfSleep = false
	b.emit(&EventCureStatus{Player: p, Status: s, Msg: msg})
}

// beforeMove runs the checks that can stop p acting, in cartridge order:
// sleep, freeze, binding, flinch, recharge, disable countdown, confusion,
// paralysis. It reports whether p may go on.
func (b *Battle) beforeMove(p Player) bool {
	c := b.active(p)
	switch c.Status {
	case StatusSleep:
		c.SleepTurns--
		if c.SleepTurns == 0 {
			b.cure(p, true)
		} else {
			b.emit(&EventCant{Player: p, Reason: "slp"})
		}
		return false
	case StatusFreeze:
		// Without a thaw chance only a Fire move or Haze ends a freeze.
		if b.mode == Compat || b.rng.Range(256) >= 25 {
			b.emit(&EventCant{Player: p, Reason: "frz"})
			return false
		}
		b.cure(p, true)
	}
	if b.binding(p) {
		b.emit(&EventCant{Player: p, Reason: "partiallytrapped"})
		return false
	}
	if c.Volatiles.Has(VolatileFlinch) {
		b.dropVolatile(p, VolatileFlinch)
		b.emit(&EventCant{Player: p, Reason: "flinch"})
		return false
	}
	if c.Volatiles.Has(VolatileRecharging) {
		b.dropVolatile(p, VolatileRecharging)
		b.emit(&EventCant{Player: p, Reason: "recharge"})
		return false
	}
	b.tickDisable(p)
	if b.tickConfusion(p) {
		b.clearLocks(p)
		b.confusionHit(p)
		return false
	}
	if c.Status == StatusParalysis && b.rng.Range(256) < 63 {
		b.clearLocks(p)
		b.emit(&EventCant{Player: p, Reason: "par"})
		return false
	}
	return true
}

// confusionHit deals the 40 power typeless self-hit. In Compat the damage
// lands on the foe's substitute when it has one.
func (b *Battle) confusionHit(p Player) {
	c := b.active(p)
	d, ok := rawDamage{attacker: c, defender: c, power: 40}.calc(b.mode)
	if !ok {
		b.divideByZero(p)
		return
	}
	dmg := clamp16(d)
	b.lastDamage = dmg
	foe := p.Foe()
	if b.mode == Compat {
		if sub := b.active(foe).Volatiles.Get(VolatileSubstitute); sub != nil {
			if dmg >= sub.Amount {
				b.endVolatile(foe, VolatileSubstitute)
			} else {
				sub.Amount -= dmg
			}
			return
		}
	}
	b.selfDamage(p, dmg, "confusion")
}

// residual runs p's end-of-turn ticks: burn and poison, then Leech Seed,
// then releasing a bind whose user left. It stops as soon as p faints.
func (b *Battle) residual(p Player) {
	c := b.active(p)
	if c.Fainted() {
		return
	}
	sixteenth := max(c.MaxHP()/16, 1)

	if c.Status == StatusBurn || c.Status.Poisoned() {
		d := sixteenth
		if c.Status == StatusToxic {
			c.ToxicCounter++
			d *= uint16(c.ToxicCounter)
		}
		if _, fainted := b.selfDamage(p, d, c.Status.String()); fainted {
			return
		}
	}

	if c.Volatiles.Has(VolatileLeechSeed) {
		d := sixteenth
		if b.mode == Compat && c.Status == StatusToxic {
			c.ToxicCounter++
			d *= uint16(c.ToxicCounter)
		}
		dealt, fainted := b.selfDamage(p, d, "Leech Seed")
		b.heal(p.Foe(), dealt, "drain")
		if fainted {
			return
		}
	}

	if c.Volatiles.Has(VolatileBound) && !b.active(p.Foe()).Volatiles.Has(VolatileTrapping) {
		b.endVolatile(p, VolatileBound)
	}
}
