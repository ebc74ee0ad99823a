package battle

import (
	"fmt"

	"github.com/kasuganosora/pkmnsim/game/data"
)

// ResultKind is the outcome of a step from player 1's point of view.
type ResultKind uint8

const (
	ResultNone ResultKind = iota
	ResultWin
	ResultLose
	ResultTie
	ResultError
)

func (k ResultKind) String() string {
	switch k {
	case ResultNone:
		return "none"
	case ResultWin:
		return "win"
	case ResultLose:
		return "lose"
	case ResultTie:
		return "tie"
	case ResultError:
		return "error"
	}
	return "???"
}

// Result is returned by every step: the outcome so far plus what each side
// is asked for next. It packs into a byte with the kind in the low nibble,
// player 1's request in bits 4–5 and player 2's in bits 6–7.
type Result struct {
	Kind ResultKind
	P1   RequestKind
	P2   RequestKind
}

// Ended reports whether the battle is over.
func (r Result) Ended() bool { return r.Kind != ResultNone }

// Encode packs r.
func (r Result) Encode() uint8 {
	return uint8(r.Kind) | uint8(r.P1)<<4 | uint8(r.P2)<<6
}

// DecodeResult unpacks a result byte.
func DecodeResult(b uint8) (Result, error) {
	r := Result{Kind: ResultKind(b & 0x0F), P1: RequestKind(b >> 4 & 0x03), P2: RequestKind(b >> 6)}
	if r.Kind > ResultError || r.P1 > RequestSwitch || r.P2 > RequestSwitch {
		return Result{}, fmt.Errorf("result 0x%02x: malformed", b)
	}
	return r, nil
}

func (r Result) String() string {
	return fmt.Sprintf("%s (p1 %s, p2 %s)", r.Kind, r.P1, r.P2)
}

// outcome decides whether the battle is over after a completed step.
func (b *Battle) outcome() ResultKind {
	p1, p2 := b.sides[P1].Living(), b.sides[P2].Living()
	switch {
	case !p1 && !p2:
		return ResultTie
	case !p2:
		return ResultWin
	case !p1:
		return ResultLose
	}
	if b.opts.EndlessBattleClause && !b.canProgress(P1) && !b.canProgress(P2) {
		return ResultTie
	}
	return ResultNone
}

// stalling moves can't end a battle on their own.
var stallingMoves = map[data.MoveID]bool{
	data.MoveTransform: true, data.MoveSplash: true, data.MoveTeleport: true,
	data.MoveRoar: true, data.MoveWhirlwind: true,
}

// canProgress reports whether any living member of p's team has a move that
// could end the battle. A member with no PP left will Struggle, which can.
func (b *Battle) canProgress(p Player) bool {
	for _, c := range b.side(p).Team {
		if c.Fainted() {
			continue
		}
		withPP := false
		for _, m := range c.Moves {
			if m.Empty() || m.PP <= 0 {
				continue
			}
			withPP = true
			if !stallingMoves[m.ID] {
				return true
			}
		}
		if !withPP {
			return true
		}
	}
	return false
}
