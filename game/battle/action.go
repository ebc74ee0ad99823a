package battle

import (
	"fmt"

	"github.com/kasuganosora/pkmnsim/game/data"
)

// useOpts describes how a move came to be executed.
type useOpts struct {
	from    string // calling move or lock, for the event log
	locked  bool   // a Thrash or Rage continuation
	release bool   // the second turn of a two-turn move
}

// runAction executes one ordered action.
func (b *Battle) runAction(a Action) {
	switch a.Choice.Kind {
	case ChoiceSwitch:
		b.switchIn(a.Player, int(a.Choice.Slot))
	case ChoiceMove:
		b.runMove(a.Player, a.Choice.Slot)
	}
}

// deductPP spends one PP. Compat lets it go negative; Strict stops at zero.
func (b *Battle) deductPP(ms *MoveSlot) {
	switch b.mode {
	case Compat:
		if ms.PP > -128 {
			ms.PP--
		}
	case Strict:
		if ms.PP > 0 {
			ms.PP--
		}
	}
}

// runMove resolves p's move choice: the before-move checks, then any lock
// that overrides the choice, then the chosen move.
func (b *Battle) runMove(p Player, slot uint8) {
	c := b.active(p)
	if c.Fainted() {
		return
	}
	// ① legality: sleep, freeze, binding, flinch, recharge, confusion, paralysis
	if !b.beforeMove(p) {
		return
	}

	// ② forced continuations
	if v := c.Volatiles.Get(VolatileBide); v != nil {
		b.continueBide(p)
		return
	}
	if v := c.Volatiles.Get(VolatileThrashing); v != nil {
		b.useMove(p, data.GetMove(v.Move), useOpts{from: "lockedmove", locked: true})
		b.tickThrashing(p)
		return
	}
	if c.Volatiles.Has(VolatileTrapping) {
		b.continueTrapping(p)
		return
	}
	if v := c.Volatiles.Get(VolatileCharging); v != nil {
		m := data.GetMove(v.Move)
		b.exitCharging(p)
		b.useMove(p, m, useOpts{release: true})
		return
	}
	if c.Volatiles.Has(VolatileRage) {
		b.useMove(p, data.GetMove(data.MoveRage), useOpts{from: "lockedmove", locked: true})
		return
	}

	if slot == 0 {
		// The lock that forced "move 0" may have ended before p acted.
		if !c.HasUsableMove(b.mode) {
			b.useMove(p, data.GetMove(data.MoveStruggle), useOpts{})
		}
		return
	}
	ms := &c.Moves[slot-1]
	if ms.Empty() {
		b.desync(fmt.Errorf("%s chose empty slot %d", p, slot))
		return
	}
	if c.disabled(int(slot-1), b.mode) {
		b.emit(&EventCant{Player: p, Reason: "Disable", Move: ms.ID})
		return
	}
	b.deductPP(ms)
	b.useMove(p, data.GetMove(ms.ID), useOpts{})
}

// continueBide stores another turn of damage or releases it.
func (b *Battle) continueBide(p Player) {
	v := b.active(p).Volatiles.Get(VolatileBide)
	if b.mode == Compat {
		v.Amount += b.lastDamage
	}
	v.Turns--
	if v.Turns > 0 {
		b.emit(&EventActivate{Player: p, Condition: "Bide"})
		return
	}
	d := uint32(v.Amount) * 2
	b.endVolatile(p, VolatileBide)
	m := data.GetMove(data.MoveBide)
	b.emit(&EventMove{Player: p, Move: m.ID, Target: p.Foe()})
	switch {
	case d == 0:
		b.emit(&EventFail{Player: p})
	case b.active(p.Foe()).Volatiles.Has(VolatileInvulnerable):
		b.emit(&EventMiss{Player: p, Target: p.Foe()})
	default:
		b.hit(p, m, d)
	}
}

// continueTrapping repeats the binding move's first damage. If the target
// has switched out the move is used again from scratch, spending PP.
func (b *Battle) continueTrapping(p Player) {
	c := b.active(p)
	v := c.Volatiles.Get(VolatileTrapping)
	m := data.GetMove(v.Move)
	if !b.active(p.Foe()).Volatiles.Has(VolatileBound) {
		b.dropVolatile(p, VolatileTrapping)
		if slot := c.slotOf(m.ID); slot >= 0 {
			b.deductPP(&c.Moves[slot])
		}
		b.useMove(p, m, useOpts{})
		return
	}
	b.emit(&EventMove{Player: p, Move: m.ID, Target: p.Foe(), From: "partiallytrapped"})
	if r := b.hit(p, m, uint32(v.Amount)); r.fainted {
		return
	}
	b.tickTrapping(p)
}

// useMove executes m for p once the move is committed.
func (b *Battle) useMove(p Player, m *data.Move, o useOpts) {
	b.emit(&EventMove{Player: p, Move: m.ID, Target: p.Foe(), From: o.from})
	b.side(p).lastUsed = m.ID

	switch m.Effect {
	case data.EffectCharge, data.EffectFlyDig:
		if !o.release {
			b.enterCharging(p, m.ID)
			return
		}
	case data.EffectMetronome:
		b.useMove(p, data.GetMove(metronomeMoves[b.rng.Range(uint32(len(metronomeMoves)))]), useOpts{from: "Metronome"})
		return
	case data.EffectMirrorMove:
		last := b.side(p.Foe()).lastUsed
		if last == data.MoveNone || last == data.MoveMirrorMove {
			b.emit(&EventFail{Player: p})
			return
		}
		b.useMove(p, data.GetMove(last), useOpts{from: "Mirror Move"})
		return
	}
	if m.SelfTargeting() {
		b.selfEffect(p, m)
		return
	}
	if !m.Damaging() {
		b.statusMove(p, m)
		return
	}
	b.attack(p, m, o)
}

var metronomeMoves []data.MoveID

func init() {
	for id := data.MoveID(1); int(id) <= data.MoveCount; id++ {
		if id != data.MoveMetronome && id != data.MoveStruggle {
			metronomeMoves = append(metronomeMoves, id)
		}
	}
}

// ignoresImmunity lists the damaging classes that hit regardless of type.
func ignoresImmunity(e data.Effect) bool {
	switch e {
	case data.EffectLevelDamage, data.EffectCounter, data.EffectBide, data.EffectPsywave:
		return true
	}
	return false
}

// attack runs the damaging pipeline: invulnerability, immunity, accuracy,
// critical hit, damage, application, secondary effects and move-class
// handling.
func (b *Battle) attack(p Player, m *data.Move, o useOpts) {
	foe := p.Foe()
	att, t := b.active(p), b.active(foe)

	// locks start whether or not the first turn connects
	chance := b.lockedChance(p, m, o)
	defer func() {
		if o.locked || b.halted || att.Fainted() {
			return
		}
		switch m.Effect {
		case data.EffectThrashing:
			b.enterThrashing(p, m.ID, chance)
		case data.EffectRage:
			b.enterRage(p, chance)
		}
	}()

	// ③ invulnerability; Swift skips the accuracy check that enforces it
	if t.Volatiles.Has(VolatileInvulnerable) && m.Effect != data.EffectSwift {
		b.miss(p, m)
		return
	}
	// type immunity is known before any roll; a binding move still holds
	// an immune target, for no damage
	immune := !ignoresImmunity(m.Effect) && t.Types.Effectiveness(m.Type) == 0
	if immune && m.Effect != data.EffectTrapping {
		b.emit(&EventImmune{Player: foe})
		b.missed(p, m)
		return
	}
	if m.Effect == data.EffectDreamEater && t.Status != StatusSleep {
		b.emit(&EventImmune{Player: foe})
		return
	}
	var counter uint32
	if m.Effect == data.EffectCounter {
		if counter = b.counterDamage(p); counter == 0 {
			b.emit(&EventFail{Player: p})
			return
		}
	}

	// ④ accuracy
	if m.Effect != data.EffectSwift && !b.rollHit(chance) {
		b.miss(p, m)
		return
	}

	// ⑤–⑥ critical hit and damage
	var d uint32
	crit := false
	switch m.Effect {
	case data.EffectFixedDamage:
		d = uint32(m.Chance)
	case data.EffectLevelDamage:
		d = uint32(att.Level)
	case data.EffectPsywave:
		d = 1
		if bound := uint32(att.Level) * 3 / 2; bound > 1 {
			d += b.rng.Range(bound - 1)
		}
	case data.EffectSuperFang:
		d = uint32(max(t.HP/2, 1))
	case data.EffectOHKO:
		if att.Stats.Spe < t.Stats.Spe {
			b.emit(&EventFail{Player: p})
			return
		}
		d = 0xFFFF
	case data.EffectCounter:
		d = counter
	case data.EffectTrapping:
		if immune {
			break
		}
		fallthrough
	default:
		crit = b.rollCrit(p, m)
		raw, ok := rawDamage{
			attacker: att, defender: t, defSide: b.side(foe),
			power: m.Power, special: m.Type.Special(), crit: crit,
			explode: m.Effect == data.EffectExplode,
		}.calc(b.mode)
		if !ok {
			b.divideByZero(p)
			return
		}
		var eff int
		d, eff = modify(raw, att.Types, m.Type, t.Types)
		if d == 0 {
			if b.mode == Compat {
				b.miss(p, m)
				return
			}
			d = 1
		}
		d = b.vary(d)
		if crit {
			b.emit(&EventCrit{Player: foe})
		}
		switch {
		case eff > 100:
			b.emit(&EventSuperEffective{Player: foe})
		case eff < 100:
			b.emit(&EventResisted{Player: foe})
		}
	}

	// ⑦ application, one or more hits
	hits := uint8(1)
	switch m.Effect {
	case data.EffectDoubleHit, data.EffectTwineedle:
		hits = 2
	case data.EffectMultiHit:
		hits = b.rollHits()
	}
	var r hitResult
	var total uint32
	landed := uint8(0)
	for landed < hits {
		r = b.hit(p, m, d)
		total += uint32(r.dealt)
		landed++
		if r.broke || r.fainted {
			break
		}
	}
	if hits > 1 {
		b.emit(&EventHitCount{Player: foe, Hits: landed})
	}
	if m.Effect == data.EffectOHKO && r.fainted {
		b.emit(&EventOHKO{Player: foe})
	}

	// ⑧ secondary effects
	if !r.sub && !r.fainted {
		b.secondary(p, m)
	}

	// ⑨ move-class handling after the hit
	dealt := clamp16(total)
	switch m.Effect {
	case data.EffectRecoil:
		b.selfDamage(p, max(dealt/4, 1), "Recoil")
	case data.EffectStruggle:
		b.selfDamage(p, max(dealt/2, 1), "Recoil")
	case data.EffectDrainHP, data.EffectDreamEater:
		b.heal(p, max(dealt/2, 1), "drain")
	case data.EffectHyperBeam:
		if !r.fainted && !(r.broke && b.mode == Compat) {
			b.addVolatile(p, Volatile{Kind: VolatileRecharging})
			b.emit(&EventMustRecharge{Player: p})
		}
	case data.EffectExplode:
		b.selfDamage(p, att.HP, "")
	case data.EffectPayDay:
		b.scatterCoins(p)
	case data.EffectTrapping:
		if !r.fainted {
			b.enterTrapping(p, m.ID, dealt)
		}
	}
}

// lockedChance returns the accuracy threshold for m. A Compat Thrash or
// Rage continuation re-applies the stages to the byte it carries, so the
// modifiers compound; Strict recomputes from the move.
func (b *Battle) lockedChance(p Player, m *data.Move, o useOpts) uint16 {
	if o.locked && b.mode == Compat {
		c := b.active(p)
		for _, k := range []VolatileKind{VolatileThrashing, VolatileRage} {
			if v := c.Volatiles.Get(k); v != nil {
				v.Acc = b.hitChance(p, m, v.Acc)
				return v.Acc
			}
		}
	}
	return b.hitChance(p, m, uint16(m.AccuracyByte()))
}

// miss logs a miss and runs the move's miss handling.
func (b *Battle) miss(p Player, m *data.Move) {
	b.emit(&EventMiss{Player: p, Target: p.Foe()})
	b.missed(p, m)
}

func (b *Battle) missed(p Player, m *data.Move) {
	switch m.Effect {
	case data.EffectJumpKick:
		b.selfDamage(p, 1, "crash")
	case data.EffectExplode:
		b.selfDamage(p, b.active(p).HP, "")
	}
}

// secondary rolls m's side effect. Every check that needs no RNG runs
// first, and a failed check draws nothing.
func (b *Battle) secondary(p Player, m *data.Move) {
	foe := p.Foe()
	t := b.active(foe)
	chance := uint32(m.Chance)
	switch m.Effect {
	case data.EffectBurnChance:
		if t.Status == StatusFreeze {
			b.cure(foe, true)
			return
		}
		if b.canInflict(foe, StatusBurn) && b.rng.Range(256) < chance {
			b.inflict(foe, StatusBurn, "")
		}
	case data.EffectFreezeChance:
		if b.canInflict(foe, StatusFreeze) && b.rng.Range(256) < chance {
			b.inflict(foe, StatusFreeze, "")
		}
	case data.EffectParalyzeChance:
		if b.canInflict(foe, StatusParalysis) && !t.Types.Has(m.Type) && b.rng.Range(256) < chance {
			b.inflict(foe, StatusParalysis, "")
		}
	case data.EffectPoisonChance, data.EffectTwineedle:
		if b.canInflict(foe, StatusPoison) && b.rng.Range(256) < chance {
			b.inflict(foe, StatusPoison, "")
		}
	case data.EffectConfusionChance:
		if !t.Volatiles.Has(VolatileConfusion) && b.rng.Range(256) < chance {
			b.enterConfusion(foe, false)
		}
	case data.EffectFlinchChance:
		if b.rng.Range(256) < chance {
			b.addVolatile(foe, Volatile{Kind: VolatileFlinch})
		}
	case data.EffectStatDownChance:
		if !b.side(foe).Conditions.Mist && b.rng.Range(256) < chance {
			b.changeStage(p, foe, m.Stat, -m.Stages, true)
		}
	}
}

// counterDamage is what Counter would return now, or zero when it fails.
// Compat reads the battle-wide last damage and the foe's last selected
// move; Strict uses only the hit the user took this turn.
func (b *Battle) counterDamage(p Player) uint32 {
	counterable := func(id data.MoveID) bool {
		m := data.GetMove(id)
		return m != nil && m.ID != data.MoveCounter && m.Damaging() &&
			(m.Type == data.Normal || m.Type == data.Fighting)
	}
	switch b.mode {
	case Compat:
		if !counterable(b.side(p.Foe()).lastSelected) {
			return 0
		}
		return 2 * uint32(b.lastDamage)
	default:
		hit := b.side(p).lastHit
		if hit.damage == 0 || !counterable(hit.move) {
			return 0
		}
		return 2 * uint32(hit.damage)
	}
}
