package battle

import "github.com/kasuganosora/pkmnsim/game/data"

// Action is one side's resolved choice for the turn, with what ordering
// needs to know about it.
type Action struct {
	Player Player
	Choice Choice
	// Priority is the tier: switches are above every move.
	Priority int
	Speed    uint16
}

const switchPriority = 8

// TieBreak reports whether the first of two tied actions goes first.
type TieBreak func() bool

// TurnManager determines the action order for a turn.
type TurnManager interface {
	// MakeActionOrder sorts the two actions of a turn. The input is not
	// modified.
	MakeActionOrder(actions [2]Action, tie TieBreak) [2]Action
}

// DefaultTurnManager orders by priority tier, then by speed. Ties go to
// the TieBreak, which is only consulted on an exact tie.
type DefaultTurnManager struct{}

func (DefaultTurnManager) MakeActionOrder(actions [2]Action, tie TieBreak) [2]Action {
	a, b := actions[0], actions[1]
	switch {
	case a.Priority != b.Priority:
		if a.Priority > b.Priority {
			return [2]Action{a, b}
		}
		return [2]Action{b, a}
	case a.Speed != b.Speed:
		if a.Speed > b.Speed {
			return [2]Action{a, b}
		}
		return [2]Action{b, a}
	}
	if tie() {
		return [2]Action{a, b}
	}
	return [2]Action{b, a}
}

// newAction computes the tier and speed of p's choice.
func (b *Battle) newAction(p Player, c Choice) Action {
	act := Action{Player: p, Choice: c}
	active := b.active(p)
	act.Speed = active.Stats.Spe
	switch c.Kind {
	case ChoiceSwitch:
		act.Priority = switchPriority
	case ChoiceMove:
		if id := b.plannedMove(p, c); id != data.MoveNone {
			act.Priority = int(data.GetMove(id).Priority)
		}
	}
	return act
}

// plannedMove is the move p's choice will most likely execute, used only
// for its priority.
func (b *Battle) plannedMove(p Player, c Choice) data.MoveID {
	active := b.active(p)
	if c.Slot > 0 {
		return active.Moves[c.Slot-1].ID
	}
	for _, k := range []VolatileKind{VolatileThrashing, VolatileRage, VolatileCharging, VolatileTrapping} {
		if v := active.Volatiles.Get(k); v != nil {
			return v.Move
		}
	}
	if b.side(p).Request.Struggle() {
		return data.MoveStruggle
	}
	return data.MoveNone
}

// tieBreak flips a coin in Strict mode (and in Compat from
// rngTieGeneration on); otherwise player 1 moves first.
func (b *Battle) tieBreak() bool {
	if b.mode == Strict || b.opts.Generation >= rngTieGeneration {
		return b.rng.Range(2) == 0
	}
	return true
}

// orderActions returns the two actions in execution order.
func (b *Battle) orderActions(c1, c2 Choice) [2]Action {
	actions := [2]Action{b.newAction(P1, c1), b.newAction(P2, c2)}
	return b.opts.TurnMgr.MakeActionOrder(actions, b.tieBreak)
}
