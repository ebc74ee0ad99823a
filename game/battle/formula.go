package battle

import "github.com/kasuganosora/pkmnsim/game/data"

// hitChance returns the accuracy threshold a Range(256) roll must land
// under. base is the move's accuracy byte, or the byte a Thrash/Rage lock
// carries.
func (b *Battle) hitChance(p Player, m *data.Move, base uint16) uint16 {
	att, def := b.active(p), b.active(p.Foe())
	accStage, evaStage := att.Boosts[data.StatAccuracy], def.Boosts[data.StatEvasion]
	if b.mode == Strict && m.Accuracy == 100 && accStage == 0 && evaStage == 0 {
		return 256
	}
	acc := applyStage(uint32(base), accStage)
	acc = applyStage(acc, -evaStage)
	return uint16(min(max(acc, 1), 255))
}

// rollHit draws the accuracy roll. Compat keeps a 255 threshold, so a 100%
// move still misses on a roll of 255.
func (b *Battle) rollHit(chance uint16) bool {
	return b.rng.Range(256) < uint32(chance)
}

// rollCrit draws the critical hit roll for p using its own species' base
// speed, which Transform doesn't change.
func (b *Battle) rollCrit(p Player, m *data.Move) bool {
	c := b.active(p)
	t := uint32(c.Species.Base.Spe) / 2
	if c.Volatiles.Has(VolatileFocusEnergy) {
		switch b.mode {
		case Compat:
			t /= 4
		case Strict:
			t = min(t*4, 255)
		}
	}
	if m.HighCrit {
		t = min(t*8, 255)
	}
	return b.rng.Range(256) < t
}

// rawDamage is the formula before STAB, type and variance.
type rawDamage struct {
	attacker, defender *Combatant
	defSide            *Side
	power              uint8
	special            bool
	crit               bool
	explode            bool
}

// calc returns the pre-modifier damage. ok is false when Compat divides by
// a zero defense.
func (r rawDamage) calc(mode Mode) (uint32, bool) {
	var atk, def uint32
	stat := func(c *Combatant, s data.Stat) uint32 {
		if r.crit {
			return uint32(c.Stored.Get(s))
		}
		return uint32(c.Stats.Get(s))
	}
	if r.special {
		atk, def = stat(r.attacker, data.StatSpecial), stat(r.defender, data.StatSpecial)
		if !r.crit && r.defSide != nil && r.defSide.Conditions.LightScreen {
			def *= 2
		}
	} else {
		atk, def = stat(r.attacker, data.StatAttack), stat(r.defender, data.StatDefense)
		if !r.crit && r.defSide != nil && r.defSide.Conditions.Reflect {
			def *= 2
		}
	}
	if r.explode {
		def /= 2
	}
	if atk > 255 || def > 255 {
		atk /= 4
		def /= 4
		if mode == Compat {
			atk &= 0xFF
			def &= 0xFF
		}
	}
	if def == 0 {
		if mode == Compat {
			return 0, false
		}
		def = 1
	}
	level := uint32(r.attacker.Level)
	if r.crit {
		level *= 2
	}
	d := (level*2/5 + 2) * uint32(r.power) * atk / def / 50
	if d > 997 {
		d = 997
	}
	return d + 2, true
}

// modify applies STAB and type effectiveness. eff is the combined
// multiplier in hundredths.
func modify(d uint32, attacker data.Types, moveType data.Type, defender data.Types) (uint32, int) {
	if moveType == data.Typeless {
		return d, 100
	}
	if attacker.Has(moveType) {
		d += d / 2
	}
	eff := 100
	for i, t := range defender {
		if i == 1 && t == defender[0] {
			break
		}
		e := uint32(data.Effectiveness(moveType, t))
		if e != data.Neutral {
			d = d * e / 10
		}
		eff = eff * int(e) / 10
	}
	return d, eff
}

// vary applies the 217–255 random factor. Damage of 0 or 1 draws nothing.
func (b *Battle) vary(d uint32) uint32 {
	if d <= 1 {
		return d
	}
	return d * (217 + b.rng.Range(39)) / 255
}
