package battle

import (
	"github.com/kasuganosora/pkmnsim/game/data"
)

// Player identifies a side.
type Player uint8

const (
	P1 Player = iota
	P2
)

// Foe returns the other player.
func (p Player) Foe() Player { return p ^ 1 }

func (p Player) String() string {
	if p == P1 {
		return "p1"
	}
	return "p2"
}

// Status is a persistent, non-volatile status condition.
type Status uint8

const (
	StatusNone Status = iota
	StatusSleep
	StatusPoison
	StatusBurn
	StatusFreeze
	StatusParalysis
	StatusToxic
)

var statusNames = [...]string{"", "slp", "psn", "brn", "frz", "par", "tox"}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "???"
}

// Poisoned reports whether s is regular or bad poison.
func (s Status) Poisoned() bool { return s == StatusPoison || s == StatusToxic }

// MoveSlot is one of a combatant's four moves. PP is signed: Compat lets a
// re-used binding move push it below zero.
type MoveSlot struct {
	ID    data.MoveID
	PP    int8
	MaxPP uint8
}

// Empty reports whether the slot holds no move.
func (m MoveSlot) Empty() bool { return m.ID == data.MoveNone }

// Combatant is one member of a side's roster.
type Combatant struct {
	Species *data.Species
	Level   uint8
	Types   data.Types

	// Stored are the out-of-battle stats (or a transform target's); Stats are
	// the live values after stages and status drops.
	Stored data.Stats
	Stats  data.Stats
	Boosts [6]int8

	HP     uint16
	Status Status
	// SleepTurns counts down sleep; SelfSleep marks sleep from Rest.
	SleepTurns uint8
	SelfSleep  bool
	// ToxicCounter is the bad-poison multiplier.
	ToxicCounter uint8

	Moves     [4]MoveSlot
	Volatiles Volatiles

	original *savedForm
}

// savedForm holds what Transform overwrote.
type savedForm struct {
	types  data.Types
	stored data.Stats
	moves  [4]MoveSlot
}

// MaxHP returns the maximum HP.
func (c *Combatant) MaxHP() uint16 { return c.Stored.HP }

// Fainted reports whether HP is zero.
func (c *Combatant) Fainted() bool { return c.HP == 0 }

// Name returns the species name.
func (c *Combatant) Name() string { return c.Species.Name }

// MoveCount returns the number of occupied slots.
func (c *Combatant) MoveCount() int {
	n := 0
	for _, m := range c.Moves {
		if !m.Empty() {
			n++
		}
	}
	return n
}

// HasUsableMove reports whether any slot has PP and is not disabled.
func (c *Combatant) HasUsableMove(mode Mode) bool {
	for i := range c.Moves {
		if c.usable(i, mode) {
			return true
		}
	}
	return false
}

func (c *Combatant) usable(slot int, mode Mode) bool {
	m := c.Moves[slot]
	return !m.Empty() && m.PP > 0 && !c.disabled(slot, mode)
}

// disabled reports whether slot is locked by Disable. Compat remembers the
// slot index; Strict remembers the move, so the lock follows it through
// Transform.
func (c *Combatant) disabled(slot int, mode Mode) bool {
	v := c.Volatiles.Get(VolatileDisable)
	if v == nil {
		return false
	}
	switch mode {
	case Compat:
		return int(v.Slot) == slot
	default:
		return c.Moves[slot].ID == v.Move
	}
}

func (c *Combatant) slotOf(id data.MoveID) int {
	for i, m := range c.Moves {
		if m.ID == id {
			return i
		}
	}
	return -1
}

func (c *Combatant) clone() *Combatant {
	cp := *c
	cp.Volatiles = c.Volatiles.clone()
	if c.original != nil {
		o := *c.original
		cp.original = &o
	}
	return &cp
}

// ---------------------------------------------------------------------------
//  Stat stages
// ---------------------------------------------------------------------------

// stageRatios are the generation I stage multipliers from -6 to +6.
var stageRatios = [13][2]uint32{
	{25, 100}, {28, 100}, {33, 100}, {40, 100}, {50, 100}, {66, 100},
	{1, 1},
	{15, 10}, {2, 1}, {25, 10}, {3, 1}, {35, 10}, {4, 1},
}

func applyStage(v uint32, stage int8) uint32 {
	r := stageRatios[stage+6]
	return v * r[0] / r[1]
}

// recalcStat recomputes a live stat from the stored value and its stage.
// capHigh keeps it at or below data.MaxStat.
func (c *Combatant) recalcStat(s data.Stat, capHigh bool) {
	v := applyStage(uint32(c.Stored.Get(s)), c.Boosts[s])
	if capHigh && v > data.MaxStat {
		v = data.MaxStat
	}
	if v < 1 {
		v = 1
	}
	c.Stats.Set(s, uint16(v))
}

func (c *Combatant) recalcAll() {
	for s := data.StatAttack; s <= data.StatSpecial; s++ {
		c.recalcStat(s, true)
	}
}

// applyStatusDrop applies the paralysis speed drop or the burn attack drop
// to the live stats.
func (c *Combatant) applyStatusDrop() {
	switch c.Status {
	case StatusParalysis:
		c.Stats.Spe = max(c.Stats.Spe/4, 1)
	case StatusBurn:
		c.Stats.Atk = max(c.Stats.Atk/2, 1)
	}
}

// applyStatusDropTo re-applies the drop only if it concerns stat s.
func (c *Combatant) applyStatusDropTo(s data.Stat) {
	switch {
	case s == data.StatSpeed && c.Status == StatusParalysis:
		c.Stats.Spe = max(c.Stats.Spe/4, 1)
	case s == data.StatAttack && c.Status == StatusBurn:
		c.Stats.Atk = max(c.Stats.Atk/2, 1)
	}
}

// resetStages clears every stage and recomputes the live stats.
func (c *Combatant) resetStages() {
	c.Boosts = [6]int8{}
	c.recalcAll()
}
