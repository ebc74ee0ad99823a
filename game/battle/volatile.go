package battle

import (
	"sort"

	"github.com/kasuganosora/pkmnsim/game/data"
)

// VolatileKind enumerates the conditions that are cleared on switch-out.
type VolatileKind uint8

const (
	VolatileConfusion VolatileKind = iota
	VolatileFlinch
	VolatileBound    // held in place by the foe's binding move
	VolatileTrapping // using a binding move
	VolatileDisable
	VolatileSubstitute
	VolatileThrashing
	VolatileRage
	VolatileBide
	VolatileCharging
	VolatileInvulnerable
	VolatileRecharging
	VolatileLeechSeed
	VolatileFocusEnergy
	VolatileTransform
	VolatileMimic

	volatileKinds
)

var volatileNames = [volatileKinds]string{
	"confusion", "flinch", "partiallytrapped", "trapping", "Disable",
	"Substitute", "lockedmove", "Rage", "Bide", "twoturnmove",
	"invulnerable", "mustrecharge", "Leech Seed", "Focus Energy",
	"Transform", "Mimic",
}

func (k VolatileKind) String() string {
	if k < volatileKinds {
		return volatileNames[k]
	}
	return "???"
}

// Volatile is one active condition. Field meaning depends on Kind:
//
//	Turns   remaining duration (confusion, disable, thrashing, bide,
//	        trapping)
//	Amount  substitute HP, bide damage, trapping damage
//	Move    locked, disabled, charging or mimicked move
//	Slot    disabled or mimicked slot index
//	Acc     accuracy byte carried by Thrash and Rage locks
type Volatile struct {
	Kind   VolatileKind
	Turns  uint8
	Amount uint16
	Move   data.MoveID
	Slot   uint8
	Acc    uint16
}

// Volatiles is a small set ordered by kind. At most one entry per kind.
type Volatiles struct {
	set []Volatile
}

func (vs *Volatiles) index(k VolatileKind) (int, bool) {
	i := sort.Search(len(vs.set), func(i int) bool { return vs.set[i].Kind >= k })
	return i, i < len(vs.set) && vs.set[i].Kind == k
}

// Get returns the entry for k, or nil.
func (vs *Volatiles) Get(k VolatileKind) *Volatile {
	if i, ok := vs.index(k); ok {
		return &vs.set[i]
	}
	return nil
}

// Has reports whether k is active.
func (vs *Volatiles) Has(k VolatileKind) bool {
	_, ok := vs.index(k)
	return ok
}

// Kinds lists the active kinds in order.
func (vs *Volatiles) Kinds() []VolatileKind {
	out := make([]VolatileKind, len(vs.set))
	for i, v := range vs.set {
		out[i] = v.Kind
	}
	return out
}

// Len returns the number of active volatiles.
func (vs *Volatiles) Len() int { return len(vs.set) }

func (vs *Volatiles) put(v Volatile) *Volatile {
	i, ok := vs.index(v.Kind)
	if ok {
		vs.set[i] = v
		return &vs.set[i]
	}
	vs.set = append(vs.set, Volatile{})
	copy(vs.set[i+1:], vs.set[i:])
	vs.set[i] = v
	return &vs.set[i]
}

func (vs *Volatiles) remove(k VolatileKind) (Volatile, bool) {
	i, ok := vs.index(k)
	if !ok {
		return Volatile{}, false
	}
	v := vs.set[i]
	vs.set = append(vs.set[:i], vs.set[i+1:]...)
	return v, true
}

func (vs *Volatiles) clone() Volatiles {
	if vs.set == nil {
		return Volatiles{}
	}
	return Volatiles{set: append([]Volatile(nil), vs.set...)}
}

// ---------------------------------------------------------------------------
//  Transitions
// ---------------------------------------------------------------------------

// volatileRule holds the exit transition of a kind. Entering and ticking are
// driven by the pipeline at the points listed on each enter/tick method.
type volatileRule struct {
	// exit runs when the volatile ends for any reason other than a
	// switch-out; silent exits skip the event.
	exit func(b *Battle, p Player, v Volatile)
	// onSwitchOut runs when the holder leaves the field.
	onSwitchOut func(b *Battle, p Player, v Volatile)
}

var volatileRules [volatileKinds]volatileRule

func init() {
	volatileRules[VolatileConfusion].exit = func(b *Battle, p Player, v Volatile) {
		b.emit(&EventEnd{Player: p, Condition: "confusion"})
	}
	volatileRules[VolatileBound].exit = func(b *Battle, p Player, v Volatile) {
		b.emit(&EventEnd{Player: p, Condition: "partiallytrapped", Move: v.Move})
	}
	volatileRules[VolatileDisable].exit = func(b *Battle, p Player, v Volatile) {
		b.emit(&EventEnd{Player: p, Condition: "Disable", Move: v.Move})
	}
	volatileRules[VolatileSubstitute].exit = func(b *Battle, p Player, v Volatile) {
		b.emit(&EventEnd{Player: p, Condition: "Substitute"})
	}
	volatileRules[VolatileLeechSeed].exit = func(b *Battle, p Player, v Volatile) {
		b.emit(&EventEnd{Player: p, Condition: "Leech Seed"})
	}
	volatileRules[VolatileBide].exit = func(b *Battle, p Player, v Volatile) {
		b.emit(&EventEnd{Player: p, Condition: "Bide"})
	}
	volatileRules[VolatileTransform].onSwitchOut = func(b *Battle, p Player, v Volatile) {
		c := b.active(p)
		if c.original == nil {
			return
		}
		c.Types = c.original.types
		c.Stored = c.original.stored
		c.Moves = c.original.moves
		c.original = nil
	}
	volatileRules[VolatileMimic].onSwitchOut = func(b *Battle, p Player, v Volatile) {
		c := b.active(p)
		if c.Volatiles.Has(VolatileTransform) && c.original != nil {
			c.original.moves[v.Slot].ID = data.MoveMimic
			return
		}
		c.Moves[v.Slot].ID = data.MoveMimic
	}
}

func (b *Battle) addVolatile(p Player, v Volatile) *Volatile {
	return b.active(p).Volatiles.put(v)
}

// endVolatile removes k from p's active combatant and runs its exit.
func (b *Battle) endVolatile(p Player, k VolatileKind) {
	v, ok := b.active(p).Volatiles.remove(k)
	if !ok {
		return
	}
	if fn := volatileRules[k].exit; fn != nil {
		fn(b, p, v)
	}
}

// dropVolatile removes k without an event.
func (b *Battle) dropVolatile(p Player, k VolatileKind) {
	b.active(p).Volatiles.remove(k)
}

// clearVolatiles runs every switch-out transition and empties the set.
func (b *Battle) clearVolatiles(p Player) {
	c := b.active(p)
	for _, v := range c.Volatiles.set {
		if fn := volatileRules[v.Kind].onSwitchOut; fn != nil {
			fn(b, p, v)
		}
	}
	c.Volatiles = Volatiles{}
}

// clearLocks ends every multi-turn lock of p, as when the user is fully
// paralysed or hurts itself in confusion. Compat leaves the semi-invulnerable
// state of Fly and Dig in place.
func (b *Battle) clearLocks(p Player) {
	for _, k := range []VolatileKind{VolatileThrashing, VolatileBide, VolatileCharging, VolatileTrapping} {
		b.dropVolatile(p, k)
	}
	if b.mode == Strict {
		b.dropVolatile(p, VolatileInvulnerable)
	}
}

// enterConfusion confuses p for Range(4)+2 turns, replacing any confusion
// already there. Callers have already checked that p can be confused.
func (b *Battle) enterConfusion(p Player, self bool) {
	turns := uint8(b.rng.Range(4)) + 2
	b.addVolatile(p, Volatile{Kind: VolatileConfusion, Turns: turns})
	b.emit(&EventStart{Player: p, Condition: "confusion", Fatigue: self})
}

// tickConfusion runs before p acts. It reports whether p hurt itself.
func (b *Battle) tickConfusion(p Player) bool {
	v := b.active(p).Volatiles.Get(VolatileConfusion)
	if v == nil {
		return false
	}
	v.Turns--
	if v.Turns == 0 {
		b.endVolatile(p, VolatileConfusion)
		return false
	}
	b.emit(&EventActivate{Player: p, Condition: "confusion"})
	return b.rng.Range(256) >= 128
}

// enterDisable disables a random slot that still has PP for Range(8)+1
// turns. Duration is drawn before the slot.
func (b *Battle) enterDisable(p Player) bool {
	c := b.active(p)
	var slots []int
	for i, m := range c.Moves {
		if !m.Empty() && m.PP > 0 {
			slots = append(slots, i)
		}
	}
	if len(slots) == 0 {
		return false
	}
	turns := uint8(b.rng.Range(8)) + 1
	slot := slots[b.rng.Range(uint32(len(slots)))]
	b.addVolatile(p, Volatile{Kind: VolatileDisable, Turns: turns, Slot: uint8(slot), Move: c.Moves[slot].ID})
	b.emit(&EventStart{Player: p, Condition: "Disable", Move: c.Moves[slot].ID})
	return true
}

// tickDisable runs each time p tries to act.
func (b *Battle) tickDisable(p Player) {
	v := b.active(p).Volatiles.Get(VolatileDisable)
	if v == nil {
		return
	}
	v.Turns--
	if v.Turns == 0 {
		b.endVolatile(p, VolatileDisable)
	}
}

// bindingTurns is the distribution shared by binding and multi-hit moves.
var bindingTurns = [8]uint8{2, 2, 2, 3, 3, 3, 4, 5}

func (b *Battle) rollHits() uint8 {
	return bindingTurns[b.rng.Range(8)]
}

// enterTrapping locks p into a binding move against the foe. The first hit
// has already landed.
func (b *Battle) enterTrapping(p Player, move data.MoveID, damage uint16) {
	hits := b.rollHits()
	b.addVolatile(p, Volatile{Kind: VolatileTrapping, Turns: hits - 1, Move: move, Amount: damage})
	b.addVolatile(p.Foe(), Volatile{Kind: VolatileBound, Move: move})
	b.emit(&EventActivate{Player: p.Foe(), Condition: "partiallytrapped", Move: move})
}

// tickTrapping counts one continuation hit and releases both sides when the
// lock runs out.
func (b *Battle) tickTrapping(p Player) {
	v := b.active(p).Volatiles.Get(VolatileTrapping)
	if v == nil {
		return
	}
	if v.Turns > 0 {
		v.Turns--
	}
	if v.Turns == 0 {
		b.dropVolatile(p, VolatileTrapping)
		b.endVolatile(p.Foe(), VolatileBound)
	}
}

// binding reports whether p's foe is actively holding p.
func (b *Battle) binding(p Player) bool {
	return b.active(p).Volatiles.Has(VolatileBound) &&
		b.active(p.Foe()).Volatiles.Has(VolatileTrapping)
}

// enterThrashing locks p into move for 2–3 more turns.
func (b *Battle) enterThrashing(p Player, move data.MoveID, acc uint16) {
	turns := uint8(b.rng.Range(2)) + 2
	b.addVolatile(p, Volatile{Kind: VolatileThrashing, Turns: turns, Move: move, Acc: acc})
}

// tickThrashing counts one turn of the lock; when it ends the user becomes
// confused with a fresh duration, even if it already was.
func (b *Battle) tickThrashing(p Player) {
	v := b.active(p).Volatiles.Get(VolatileThrashing)
	if v == nil {
		return
	}
	v.Turns--
	if v.Turns > 0 {
		return
	}
	b.dropVolatile(p, VolatileThrashing)
	b.enterConfusion(p, true)
}

// enterBide starts storing energy for 2–3 turns.
func (b *Battle) enterBide(p Player) {
	turns := uint8(b.rng.Range(2)) + 2
	b.addVolatile(p, Volatile{Kind: VolatileBide, Turns: turns})
	b.emit(&EventStart{Player: p, Condition: "Bide"})
}

// enterSubstitute creates a substitute with hp hit points.
func (b *Battle) enterSubstitute(p Player, hp uint16) {
	b.addVolatile(p, Volatile{Kind: VolatileSubstitute, Amount: hp})
	b.emit(&EventStart{Player: p, Condition: "Substitute"})
}

// enterRage locks p into Rage until it faints or leaves the field.
func (b *Battle) enterRage(p Player, acc uint16) {
	b.addVolatile(p, Volatile{Kind: VolatileRage, Move: data.MoveRage, Acc: acc})
}

// enterCharging starts the first turn of a two-turn move.
func (b *Battle) enterCharging(p Player, move data.MoveID) {
	b.addVolatile(p, Volatile{Kind: VolatileCharging, Move: move})
	if m := data.GetMove(move); m.Effect == data.EffectFlyDig {
		b.addVolatile(p, Volatile{Kind: VolatileInvulnerable})
	}
	b.emit(&EventPrepare{Player: p, Move: move})
}

// exitCharging ends the charge before the release turn.
func (b *Battle) exitCharging(p Player) {
	b.dropVolatile(p, VolatileCharging)
	b.dropVolatile(p, VolatileInvulnerable)
}
