package battle

import "github.com/kasuganosora/pkmnsim/game/data"

// hitResult is what one hit did to its target.
type hitResult struct {
	dealt   uint16
	sub     bool // a substitute took the hit
	broke   bool // and broke
	fainted bool
}

func clamp16(d uint32) uint16 {
	if d > 0xFFFF {
		return 0xFFFF
	}
	return uint16(d)
}

// hit applies d damage from p's move m to the foe's active combatant. A
// substitute absorbs at most its remaining HP; nothing overflows to the
// combatant behind it.
func (b *Battle) hit(p Player, m *data.Move, d uint32) hitResult {
	target := p.Foe()
	t := b.active(target)
	dmg := clamp16(d)
	b.lastDamage = dmg

	if sub := t.Volatiles.Get(VolatileSubstitute); sub != nil {
		if dmg >= sub.Amount {
			absorbed := sub.Amount
			b.endVolatile(target, VolatileSubstitute)
			return hitResult{dealt: absorbed, sub: true, broke: true}
		}
		sub.Amount -= dmg
		b.emit(&EventActivate{Player: target, Condition: "Substitute", Move: m.ID})
		return hitResult{dealt: dmg, sub: true}
	}

	dealt := min(dmg, t.HP)
	t.HP -= dealt
	s := b.side(target)
	s.lastHit.damage, s.lastHit.move = dealt, m.ID
	if bide := t.Volatiles.Get(VolatileBide); bide != nil && b.mode == Strict {
		bide.Amount += dealt
	}
	b.emit(&EventDamage{Player: target, HP: t.HP, MaxHP: t.MaxHP()})

	if t.HP == 0 {
		b.faint(target)
		return hitResult{dealt: dealt, fainted: true}
	}
	if t.Volatiles.Has(VolatileRage) && dealt > 0 {
		b.emit(&EventActivate{Player: target, Condition: "Rage"})
		b.changeStage(target, target, data.StatAttack, 1, true)
	}
	return hitResult{dealt: dealt}
}

// selfDamage takes d HP from p without touching a substitute. It reports
// whether p fainted.
func (b *Battle) selfDamage(p Player, d uint16, from string) (uint16, bool) {
	c := b.active(p)
	dealt := min(d, c.HP)
	c.HP -= dealt
	b.emit(&EventDamage{Player: p, HP: c.HP, MaxHP: c.MaxHP(), From: from})
	if c.HP == 0 {
		b.faint(p)
		return dealt, true
	}
	return dealt, false
}

// heal restores up to amount HP to p.
func (b *Battle) heal(p Player, amount uint16, from string) {
	c := b.active(p)
	if c.Fainted() || c.HP == c.MaxHP() {
		return
	}
	c.HP = uint16(min(uint32(c.HP)+uint32(amount), uint32(c.MaxHP())))
	b.emit(&EventHeal{Player: p, HP: c.HP, MaxHP: c.MaxHP(), From: from})
}

// faint records p's active combatant fainting and releases the locks that
// depended on it.
func (b *Battle) faint(p Player) {
	b.emit(&EventFaint{Player: p})
	foe := b.active(p.Foe())
	if foe.Volatiles.Has(VolatileTrapping) {
		b.dropVolatile(p.Foe(), VolatileTrapping)
	}
	b.clearLocks(p)
	b.dropVolatile(p, VolatileRage)
	b.dropVolatile(p, VolatileRecharging)
}
