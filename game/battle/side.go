package battle

import "github.com/kasuganosora/pkmnsim/game/data"

// Conditions are the screens and ward a side's active combatant has set up.
// In generation I they last until that combatant leaves the field.
type Conditions struct {
	Reflect     bool
	LightScreen bool
	Mist        bool
}

// Side is one player's half of the field.
type Side struct {
	// Team is the roster; Team[0] is active. Only switches reorder it.
	Team       []*Combatant
	Conditions Conditions
	Request    Request
	Coins      uint32

	lastSelected data.MoveID
	lastUsed     data.MoveID
	// lastHit is the damage the active combatant took from the foe's move
	// this turn.
	lastHit struct {
		damage uint16
		move   data.MoveID
	}
}

// Active returns the combatant on the field.
func (s *Side) Active() *Combatant { return s.Team[0] }

// LastSelected returns the move chosen for the side's latest action.
func (s *Side) LastSelected() data.MoveID { return s.lastSelected }

// LastUsed returns the move the side's active combatant last executed.
func (s *Side) LastUsed() data.MoveID { return s.lastUsed }

// Living reports whether any team member can still battle.
func (s *Side) Living() bool {
	for _, c := range s.Team {
		if !c.Fainted() {
			return true
		}
	}
	return false
}

// canReplace reports whether a benched combatant can come in.
func (s *Side) canReplace() bool {
	for _, c := range s.Team[1:] {
		if !c.Fainted() {
			return true
		}
	}
	return false
}

// switchable returns a bitset of roster positions (bit n-1 for position n)
// that can be switched in.
func (s *Side) switchable() uint8 {
	var bits uint8
	for i := 1; i < len(s.Team); i++ {
		if !s.Team[i].Fainted() {
			bits |= 1 << i
		}
	}
	return bits
}

// swap brings position n (1-based) to the front. The leaving combatant
// takes its place.
func (s *Side) swap(n int) {
	s.Team[0], s.Team[n-1] = s.Team[n-1], s.Team[0]
}

func (s *Side) clone() *Side {
	cp := *s
	cp.Team = make([]*Combatant, len(s.Team))
	for i, c := range s.Team {
		cp.Team[i] = c.clone()
	}
	return &cp
}
